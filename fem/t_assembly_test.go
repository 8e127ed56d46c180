// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"testing"

	"github.com/ahadrauf/sugar/ana"
	"github.com/ahadrauf/sugar/ele"
	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// spring1 is a linear spring connecting the x channel of a node to the ground
type spring1 struct{ k float64 }

func (o *spring1) Type() string { return "spring1" }
func (o *spring1) Nnodes() int  { return 1 }
func (o *spring1) Outputs() (dynamic, ground [][]ele.Output) {
	return [][]ele.Output{{ele.X}}, [][]ele.Output{{ele.Y, ele.Z, ele.Rx, ele.Ry, ele.Rz}}
}
func (o *spring1) M(R [][]float64) [][]float64 { return [][]float64{{0}} }
func (o *spring1) K(R [][]float64) [][]float64 { return [][]float64{{o.k}} }
func (o *spring1) D(R [][]float64) [][]float64 { return [][]float64{{0}} }

// newBeam allocates a beam made of layer p1 of the SOI process
func newBeam(tst *testing.T, l, w float64) ele.Model {
	m, err := ele.New("beam2d", utl.Params{&utl.P{N: "l", V: l}, &utl.P{N: "w", V: w}}, inp.SoiBerk().Get("p1"))
	if err != nil {
		tst.Fatalf("cannot allocate beam:\n%v", err)
	}
	return m
}

// newAnchor allocates an anchor
func newAnchor(tst *testing.T) ele.Model {
	m, err := ele.New("anchor", nil, nil)
	if err != nil {
		tst.Fatalf("cannot allocate anchor:\n%v", err)
	}
	return m
}

// newCantilever returns a clamped beam with nodes "gnd" and "tip"
func newCantilever(tst *testing.T, l, w, rz float64) *Assembly {
	asm := NewAssembly(2, "gnd", "tip")
	if err := asm.Bind(newAnchor(tst), []string{"gnd"}, 0, 0, 0); err != nil {
		tst.Fatalf("%v", err)
	}
	if err := asm.Bind(newBeam(tst, l, w), []string{"gnd", "tip"}, 0, 0, rz); err != nil {
		tst.Fatalf("%v", err)
	}
	return asm
}

func Test_asm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm01. nodes and renaming")

	asm := NewAssembly(3)
	chk.Strings(tst, "default names", asm.NodeNames(), []string{"0", "1", "2"})
	chk.Int(tst, "dof count", asm.DofCount(), 18)

	// ground a channel before renaming
	asm.Node("1").SetGround(ele.Z)
	before := asm.Node("1").String()

	// round trip
	err := asm.Rename("1", "b")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if asm.Node("1") != nil {
		tst.Errorf("old name must not be available after renaming\n")
	}
	err = asm.Rename("b", "1")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, asm.Node("1").String(), before)
	chk.Strings(tst, "names after round trip", asm.NodeNames(), []string{"0", "1", "2"})
	chk.Int(tst, "dof count after round trip", asm.DofCount(), 17)

	// errors
	err = asm.Rename("0", "2")
	if !errors.Is(err, ErrNameConflict) {
		tst.Errorf("renaming into existent name must fail with ErrNameConflict. err = %v\n", err)
	}
	err = asm.Rename("x", "y")
	if !errors.Is(err, ErrNotFound) {
		tst.Errorf("renaming nonexistent node must fail with ErrNotFound. err = %v\n", err)
	}
	chk.Strings(tst, "names after errors", asm.NodeNames(), []string{"0", "1", "2"})

	// invalid construction
	checkPanic(tst, "repeated names", func() { NewAssembly(2, "a", "a") })
	checkPanic(tst, "wrong number of names", func() { NewAssembly(3, "a", "b") })
}

func Test_asm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm02. binding and grounding")

	asm := NewAssembly(3, "a", "b", "c")
	counts := []int{asm.DofCount()}

	// beam grounds z, rx, ry of both ends
	err := asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"a", "b"}, 0, 0, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	counts = append(counts, asm.DofCount())
	chk.Strings(tst, "a: dynamic", ele.OutputKeys(asm.Node("a").Dynamic), []string{"x", "y", "rz"})
	chk.Strings(tst, "a: ground", ele.OutputKeys(asm.Node("a").Ground), []string{"z", "rx", "ry"})

	// second beam grounds nothing new on b
	err = asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"b", "c"}, 0, 0, math.Pi/2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	counts = append(counts, asm.DofCount())

	// anchor grounds all remaining channels of a
	err = asm.Bind(newAnchor(tst), []string{"a"}, 0, 0, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	counts = append(counts, asm.DofCount())
	chk.Int(tst, "a: ndyn", asm.Node("a").Ndyn(), 0)
	chk.Strings(tst, "a: ground", ele.OutputKeys(asm.Node("a").Ground), []string{"z", "rx", "ry", "x", "y", "rz"})

	// anchoring twice is idempotent
	err = asm.Bind(newAnchor(tst), []string{"a"}, 0, 0, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	counts = append(counts, asm.DofCount())
	chk.Ints(tst, "dof counts", counts, []int{18, 12, 9, 6, 6})
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			tst.Errorf("dof count must never increase: %v\n", counts)
		}
	}

	// errors
	err = asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"a"}, 0, 0, 0)
	if !errors.Is(err, ErrArityMismatch) {
		tst.Errorf("wrong number of nodes must fail with ErrArityMismatch. err = %v\n", err)
	}
	err = asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"a", "d"}, 0, 0, 0)
	if !errors.Is(err, ErrNotFound) {
		tst.Errorf("nonexistent node must fail with ErrNotFound. err = %v\n", err)
	}
	chk.Int(tst, "number of elements", len(asm.Elems), 4)
	chk.Int(tst, "dof count after errors", asm.DofCount(), 6)

	// equations: a has none; b and c have x, y, rz
	asm.Seal()
	chk.Int(tst, "Ny", asm.Ny, 6)
	chk.Int(tst, "eq(b,x)", asm.Eq("b", ele.X), 0)
	chk.Int(tst, "eq(b,rz)", asm.Eq("b", ele.Rz), 2)
	chk.Int(tst, "eq(c,y)", asm.Eq("c", ele.Y), 4)
	chk.Int(tst, "eq(c,z)", asm.Eq("c", ele.Z), -1)
	chk.Int(tst, "eq(a,x)", asm.Eq("a", ele.X), -1)
	chk.Int(tst, "eq(d,x)", asm.Eq("d", ele.X), -1)
	chk.Ints(tst, "Umap of beam a-b", asm.Elems[0].Umap, []int{-1, -1, -1, 0, 1, 2})
	chk.Ints(tst, "Umap of beam b-c", asm.Elems[1].Umap, []int{0, 1, 2, 3, 4, 5})
	chk.Int(tst, "NnzKb", asm.NnzKb, 36+36)

	// sealed
	err = asm.Bind(newAnchor(tst), []string{"c"}, 0, 0, 0)
	if !errors.Is(err, ErrSealed) {
		tst.Errorf("binding to sealed assembly must fail with ErrSealed. err = %v\n", err)
	}
	asm.Unseal()
	err = asm.Bind(newAnchor(tst), []string{"c"}, 0, 0, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "dof count after unsealing", asm.DofCount(), 3)
	chk.Int(tst, "eq(b,rz) after unsealing", asm.Eq("b", ele.Rz), 2)
	chk.Int(tst, "eq(c,x) after unsealing", asm.Eq("c", ele.X), -1)
}

func Test_asm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm03. sparse and dense assembly")

	asm := NewAssembly(4, "a", "b", "c", "d")
	binds := []struct {
		m     ele.Model
		nodes []string
		rz    float64
	}{
		{newAnchor(tst), []string{"a"}, 0},
		{newBeam(tst, 100e-6, 2e-6), []string{"a", "b"}, 0},
		{newBeam(tst, 50e-6, 3e-6), []string{"b", "c"}, math.Pi / 3},
		{newBeam(tst, 80e-6, 2e-6), []string{"c", "d"}, -0.4},
		{newBeam(tst, 60e-6, 2e-6), []string{"b", "d"}, 1.2},
	}
	for _, b := range binds {
		if err := asm.Bind(b.m, b.nodes, 0, 0, b.rz); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}
	chk.Int(tst, "dof count", asm.DofCount(), 9)

	for _, kind := range []Kind{Mass, Stiffness, Damping} {
		As, err := asm.Assemble(kind, true)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		Ad, err := asm.Assemble(kind, false)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Int(tst, kind.String()+": N", As.N, 9)
		a, b := As.ToDense(), Ad.ToDense()
		var amax float64
		for i := range a {
			for j := range a[i] {
				amax = math.Max(amax, math.Abs(a[i][j]))
			}
		}
		chk.Deep2(tst, kind.String()+": sparse == dense", 1e-15*amax, a, b)
		for i := range a {
			for j := range a[i] {
				chk.Float64(tst, io.Sf("%s: symmetry[%d][%d]", kind, i, j), 1e-14*amax, a[i][j], a[j][i])
			}
		}
		chk.Float64(tst, kind.String()+": Get", 1e-15*amax, As.Get(4, 5), b[4][5])
	}

	// mass of single beam b-c must be scattered into b and c only
	M, _ := asm.Assemble(Mass, false)
	beam := asm.Elems[2]
	Ml := beam.Matrix(Mass)
	chk.Ints(tst, "Umap b-c", beam.Umap, []int{0, 1, 2, 3, 4, 5})
	chk.Float64(tst, "M[0][3] (b-c coupling)", 1e-15*math.Abs(Ml[0][3]), M.Get(0, 3), Ml[0][3])
}

func Test_asm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm04. cantilever")

	l, w := 100e-6, 2e-6
	Fy := 1e-6
	var sol ana.Cantilever
	err := sol.Init(utl.Params{
		&utl.P{N: "E", V: 169e9},
		&utl.P{N: "l", V: l},
		&utl.P{N: "w", V: w},
		&utl.P{N: "h", V: 40e-6},
		&utl.P{N: "Fy", V: Fy},
	})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	for _, sparse := range []bool{false, true} {
		asm := newCantilever(tst, l, w, 0)
		chk.Int(tst, "dof count", asm.DofCount(), 3)

		// K·q = F
		K, err := asm.Assemble(Stiffness, sparse)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		F := la.NewVector(asm.Ny)
		F[asm.Eq("tip", ele.Y)] = Fy
		q := la.NewVector(asm.Ny)
		err = K.Solve(q, F, "umfpack")
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		io.Pforan("sparse=%v: q = %v\n", sparse, q)
		sol.CheckTip(tst, q[asm.Eq("tip", ele.X)], q[asm.Eq("tip", ele.Y)], q[asm.Eq("tip", ele.Rz)], 1e-8)

		// tip state for renderers
		vals, err := asm.NodeState(q, "tip")
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Array(tst, "tip state", 1e-17, vals, []float64{q[0], q[1], 0, 0, 0, q[2]})
		vals, _ = asm.NodeState(q, "gnd")
		chk.Array(tst, "gnd state", 1e-17, vals, make([]float64, 6))
	}

	// rotated cantilever: transverse deflection along -x
	asm := newCantilever(tst, l, w, math.Pi/2)
	loads := NewNodalLoads(asm)
	if err = loads.Add("tip", ele.X, -Fy, nil); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	asm.SetForce(loads)
	q, converged, err := Equilibrium(asm, nil, 0, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if !converged {
		tst.Errorf("linear problem must converge\n")
	}
	chk.Float64(tst, "rotated δ", 1e-8*sol.TipDeflection(), q[asm.Eq("tip", ele.X)], -sol.TipDeflection())
}

func Test_asm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm05. forces")

	asm := NewAssembly(2, "a", "b")
	for _, name := range []string{"a", "b"} {
		if err := asm.Bind(&spring1{k: 2}, []string{name}, 0, 0, 0); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}

	// no force law
	q := la.NewVector(2)
	f, err := asm.AssembleForce(q, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "f (no law)", 1e-17, f, []float64{0, 0})
	dFdx, err := asm.AssembleForceJacobian(q, 0, true)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Deep2(tst, "dFdx (no law)", 1e-17, dFdx.ToDense(), [][]float64{{0, 0}, {0, 0}})

	// loads with multiplier
	loads := NewNodalLoads(asm)
	loads.Add("a", ele.X, 3, nil)
	loads.Add("b", ele.X, 4, func(t float64) float64 { return 2 * t })
	loads.Add("b", ele.X, 1, nil)
	err = loads.Add("b", ele.Y, 1, nil)
	if !errors.Is(err, ErrNotFound) {
		tst.Errorf("load on grounded channel must fail. err = %v\n", err)
	}
	err = loads.Add("c", ele.X, 1, nil)
	if !errors.Is(err, ErrNotFound) {
		tst.Errorf("load on nonexistent node must fail. err = %v\n", err)
	}
	io.Pforan("%v", loads)
	asm.SetForce(loads)
	f, _ = asm.AssembleForce(q, 0.5)
	chk.Array(tst, "f(t=0.5)", 1e-17, f, []float64{3, 5})

	// sum of forces
	springs := NewCubicSprings(asm)
	springs.Add("b", ele.X, 10)
	asm.SetForce(SumForces{loads, springs})
	q = la.Vector{1, 2}
	f, _ = asm.AssembleForce(q, 0)
	chk.Array(tst, "f(sum)", 1e-17, f, []float64{3, 1 - 80})
	dFdx, _ = asm.AssembleForceJacobian(q, 0, false)
	chk.Deep2(tst, "dFdx(sum)", 1e-17, dFdx.ToDense(), [][]float64{{0, 0}, {0, -120}})

	// wrong size
	_, err = asm.AssembleForce(la.NewVector(3), 0)
	if !errors.Is(err, ErrDimension) {
		tst.Errorf("wrong state size must fail with ErrDimension. err = %v\n", err)
	}
	asm.SetForce(badLaw{})
	_, err = asm.AssembleForce(q, 0)
	if !errors.Is(err, ErrDimension) {
		tst.Errorf("wrong force size must fail with ErrDimension. err = %v\n", err)
	}
	_, err = asm.AssembleForceJacobian(q, 0, true)
	if !errors.Is(err, ErrDimension) {
		tst.Errorf("wrong Jacobian size must fail with ErrDimension. err = %v\n", err)
	}
}

func Test_asm06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asm06. Jacobian of cubic springs")

	asm := NewAssembly(3)
	asm.Bind(newAnchor(tst), []string{"0"}, 0, 0, 0)
	asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"0", "1"}, 0, 0, 0)
	asm.Bind(newBeam(tst, 100e-6, 2e-6), []string{"1", "2"}, 0, 0, 0.3)
	springs := NewCubicSprings(asm)
	springs.Add("1", ele.Y, 1e12)
	springs.Add("2", ele.X, 2e12)
	springs.Add("2", ele.Rz, 5)
	asm.SetForce(springs)

	q := la.Vector{1e-6, -2e-6, 0.01, 3e-6, 1e-6, -0.02}
	for _, sparse := range []bool{false, true} {
		dFdx, err := asm.AssembleForceJacobian(q, 0, sparse)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Deep2(tst, io.Sf("dFdx (sparse=%v)", sparse), 1e-6, dFdx.ToDense(), numJacobian(tst, asm, q))
	}
}

// badLaw returns vectors and matrices of wrong size
type badLaw struct{}

func (o badLaw) F(q la.Vector, t float64) (la.Vector, error) { return la.NewVector(len(q) + 1), nil }
func (o badLaw) DFdx(q la.Vector, t float64, sparse bool) (*SysMat, error) {
	return NewSysMat(len(q)+1, 0, sparse), nil
}

// numJacobian computes dF/dq with central differences
func numJacobian(tst *testing.T, asm *Assembly, q la.Vector) (J [][]float64) {
	n := len(q)
	J = utl.Alloc(n, n)
	tmp := la.NewVector(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			copy(tmp, q)
			h := 1e-6 * math.Max(1e-6, math.Abs(q[j]))
			J[i][j] = num.DerivCen5(q[j], h, func(s float64) float64 {
				tmp[j] = s
				f, err := asm.AssembleForce(tmp, 0)
				if err != nil {
					tst.Fatalf("%v", err)
				}
				return f[i]
			})
		}
	}
	return
}

func checkPanic(tst *testing.T, msg string, fcn func()) {
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("%s: panic did not happen\n", msg)
		} else {
			io.Pforan("%s: ok, panic = %v\n", msg, err)
		}
	}()
	fcn()
}
