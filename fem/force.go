// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/ahadrauf/sugar/ele"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// ForceLaw defines the applied forces acting on the dynamic channels of an assembly
//  Note: DFdx must be consistent with F; i.e. checkable by finite differences
type ForceLaw interface {
	F(q la.Vector, t float64) (f la.Vector, err error)                  // [ny] force vector
	DFdx(q la.Vector, t float64, sparse bool) (dFdx *SysMat, err error) // [ny][ny] Jacobian dF/dq
}

// NodalLoads implements point loads with magnitudes independent of the state
type NodalLoads struct {
	asm   *Assembly
	eqs   []int                     // equation numbers of loaded channels
	vals  []float64                 // magnitudes of loads
	fcns  []func(t float64) float64 // load multipliers; nil => constant
	descr []string                  // descriptions for messages
}

// NewNodalLoads returns a new structure to hold point loads acting on asm
//  Note: seals the assembly
func NewNodalLoads(asm *Assembly) *NodalLoads {
	asm.Seal()
	return &NodalLoads{asm: asm}
}

// Add adds a load acting on a channel of a node
//  fcn -- multiplier; may be nil
//  Note: loads on grounded channels are reactions and are not allowed
func (o *NodalLoads) Add(name string, out ele.Output, val float64, fcn func(t float64) float64) (err error) {
	nod := o.asm.Node(name)
	if nod == nil {
		return fmt.Errorf("cannot apply load to node %q: %w", name, ErrNotFound)
	}
	eq := nod.GetEq(out)
	if eq < 0 {
		return fmt.Errorf("cannot apply load to channel %q of node %q because it is grounded: %w", out, name, ErrNotFound)
	}
	o.eqs = append(o.eqs, eq)
	o.vals = append(o.vals, val)
	o.fcns = append(o.fcns, fcn)
	o.descr = append(o.descr, io.Sf("%s:%s", name, out))
	return
}

// F returns the force vector
func (o *NodalLoads) F(q la.Vector, t float64) (f la.Vector, err error) {
	f = la.NewVector(o.asm.Ny)
	for i, eq := range o.eqs {
		mult := 1.0
		if o.fcns[i] != nil {
			mult = o.fcns[i](t)
		}
		f[eq] += mult * o.vals[i]
	}
	return
}

// DFdx returns a zero matrix
func (o *NodalLoads) DFdx(q la.Vector, t float64, sparse bool) (dFdx *SysMat, err error) {
	return NewSysMat(o.asm.Ny, 0, sparse), nil
}

// String returns a list of loads
func (o *NodalLoads) String() (l string) {
	for i, d := range o.descr {
		l += io.Sf("%s = %g\n", d, o.vals[i])
	}
	return
}

// CubicSprings implements nonlinear springs connecting channels of nodes to the ground
//  F_i = -k3 · q_i³
type CubicSprings struct {
	asm *Assembly
	eqs []int     // equation numbers of channels with springs
	k3  []float64 // cubic coefficients
}

// NewCubicSprings returns a new structure to hold cubic springs acting on asm
//  Note: seals the assembly
func NewCubicSprings(asm *Assembly) *CubicSprings {
	asm.Seal()
	return &CubicSprings{asm: asm}
}

// Add adds a cubic spring to a channel of a node
func (o *CubicSprings) Add(name string, out ele.Output, k3 float64) (err error) {
	nod := o.asm.Node(name)
	if nod == nil {
		return fmt.Errorf("cannot add spring to node %q: %w", name, ErrNotFound)
	}
	eq := nod.GetEq(out)
	if eq < 0 {
		return fmt.Errorf("cannot add spring to channel %q of node %q because it is grounded: %w", out, name, ErrNotFound)
	}
	o.eqs = append(o.eqs, eq)
	o.k3 = append(o.k3, k3)
	return
}

// F returns the force vector
func (o *CubicSprings) F(q la.Vector, t float64) (f la.Vector, err error) {
	f = la.NewVector(o.asm.Ny)
	for i, eq := range o.eqs {
		f[eq] -= o.k3[i] * q[eq] * q[eq] * q[eq]
	}
	return
}

// DFdx returns the diagonal Jacobian matrix
func (o *CubicSprings) DFdx(q la.Vector, t float64, sparse bool) (dFdx *SysMat, err error) {
	dFdx = NewSysMat(o.asm.Ny, len(o.eqs), sparse)
	for i, eq := range o.eqs {
		dFdx.Put(eq, eq, -3*o.k3[i]*q[eq]*q[eq])
	}
	return
}

// SumForces combines force laws by adding up their forces and Jacobians
type SumForces []ForceLaw

// F returns the sum of forces
func (o SumForces) F(q la.Vector, t float64) (f la.Vector, err error) {
	f = la.NewVector(len(q))
	for _, law := range o {
		fi, err := law.F(q, t)
		if err != nil {
			return nil, err
		}
		if len(fi) != len(f) {
			return nil, fmt.Errorf("force law returned vector of length %d instead of %d: %w", len(fi), len(f), ErrDimension)
		}
		for k := range f {
			f[k] += fi[k]
		}
	}
	return
}

// DFdx returns the sum of Jacobians
func (o SumForces) DFdx(q la.Vector, t float64, sparse bool) (dFdx *SysMat, err error) {
	dFdx = NewSysMat(len(q), 0, sparse)
	for _, law := range o {
		jac, err := law.DFdx(q, t, sparse)
		if err != nil {
			return nil, err
		}
		if jac.N != len(q) {
			return nil, fmt.Errorf("force law returned %d×%d Jacobian instead of %d×%d: %w", jac.N, jac.N, len(q), len(q), ErrDimension)
		}
		dFdx, err = dFdx.Add(jac)
		if err != nil {
			return nil, err
		}
	}
	return
}
