// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/ahadrauf/sugar/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Assembly holds all nodes and bound elements of a mechanical network
//  Lifecycle: nodes are created by NewAssembly; elements are bound afterwards, possibly grounding
//  channels of nodes. The first call to Seal (or to any assemble function) numbers the equations
//  and freezes the layout; binding is rejected until Unseal is called
type Assembly struct {

	// data
	Nodes   []*Node  // all nodes in construction order
	Elems   []*Bound // all bound elements
	ShowMsg bool     // show messages

	// force law; nil => no applied forces
	Force ForceLaw

	// derived
	Ny    int // total number of equations (dynamic channels). set by Seal
	NnzKb int // number of non-zeros in global matrices. set by Seal

	// auxiliary
	name2node map[string]*Node // maps names to nodes
	sealed    bool             // equations have been numbered
}

// NewAssembly returns a new assembly with n nodes
//  names -- names of nodes; if not given, nodes are named "0", "1", ..., "n-1"
//  Note: panics if the number of names differs from n or if names are repeated
func NewAssembly(n int, names ...string) (o *Assembly) {
	if len(names) == 0 {
		names = make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = io.Sf("%d", i)
		}
	}
	if len(names) != n {
		chk.Panic("number of node names (%d) must be equal to the number of nodes (%d)", len(names), n)
	}
	o = &Assembly{
		Nodes:     make([]*Node, n),
		name2node: make(map[string]*Node, n),
	}
	for i, name := range names {
		if _, ok := o.name2node[name]; ok {
			chk.Panic("node names must be unique. %q is repeated", name)
		}
		o.Nodes[i] = NewNode(name)
		o.name2node[name] = o.Nodes[i]
	}
	return
}

// Node returns a node by name
//  Note: returns nil if not found
func (o *Assembly) Node(name string) *Node {
	return o.name2node[name]
}

// NodeNames returns the names of nodes in construction order
func (o *Assembly) NodeNames() (names []string) {
	names = make([]string, len(o.Nodes))
	for i, nod := range o.Nodes {
		names[i] = nod.Name
	}
	return
}

// Rename renames node oldName as newName preserving its channels and position
func (o *Assembly) Rename(oldName, newName string) (err error) {
	nod, ok := o.name2node[oldName]
	if !ok {
		return fmt.Errorf("cannot rename node %q: %w", oldName, ErrNotFound)
	}
	if _, ok = o.name2node[newName]; ok {
		return fmt.Errorf("cannot rename node %q as %q: %w", oldName, newName, ErrNameConflict)
	}
	delete(o.name2node, oldName)
	nod.Name = newName
	o.name2node[newName] = nod
	return
}

// DofCount returns the number of dynamic channels of all nodes
func (o *Assembly) DofCount() (n int) {
	for _, nod := range o.Nodes {
		n += nod.Ndyn()
	}
	return
}

// Bind binds an element model to nodes and grounds the channels the model declares as grounded
//  names      -- [m.Nnodes()] names of nodes for each slot
//  rx, ry, rz -- rotation angles; R = Rx(rx)·Ry(ry)·Rz(rz)
func (o *Assembly) Bind(m ele.Model, names []string, rx, ry, rz float64) (err error) {

	// check
	if o.sealed {
		return fmt.Errorf("cannot bind %q element: %w", m.Type(), ErrSealed)
	}
	if len(names) != m.Nnodes() {
		return fmt.Errorf("%q element requires %d nodes but %d were given: %w", m.Type(), m.Nnodes(), len(names), ErrArityMismatch)
	}
	ele.CheckOutputs(m)

	// nodes
	nodes := make([]*Node, len(names))
	for i, name := range names {
		nod, ok := o.name2node[name]
		if !ok {
			return fmt.Errorf("cannot bind %q element to node %q: %w", m.Type(), name, ErrNotFound)
		}
		nodes[i] = nod
	}

	// new element
	o.Elems = append(o.Elems, &Bound{
		Model: m,
		Nodes: nodes,
		Rx:    rx,
		Ry:    ry,
		Rz:    rz,
		R:     ele.Rotation(rx, ry, rz),
	})

	// ground channels
	_, gnd := m.Outputs()
	for s, nod := range nodes {
		for _, out := range gnd[s] {
			nod.SetGround(out)
		}
	}
	return
}

// Seal numbers the equations and sets the assembly maps of elements. Nodes are numbered in
// construction order; the channels of a node follow the order in Node.Dynamic
//  Note: does nothing if sealed already
func (o *Assembly) Seal() {
	if o.sealed {
		return
	}
	var eq int
	for _, nod := range o.Nodes {
		nod.Eqs = make([]int, len(nod.Dynamic))
		for i := range nod.Dynamic {
			nod.Eqs[i] = eq
			eq++
		}
	}
	o.Ny = eq
	o.NnzKb = 0
	for _, e := range o.Elems {
		e.SetEqs()
		o.NnzKb += len(e.Umap) * len(e.Umap)
	}
	o.sealed = true
	if o.ShowMsg {
		io.Pf(">> Number of equations = %d\n", o.Ny)
		io.Pf(">> Number of non-zeros = %d\n", o.NnzKb)
	}
}

// Unseal discards the equation numbers and allows binding again
func (o *Assembly) Unseal() {
	for _, nod := range o.Nodes {
		nod.Eqs = nil
	}
	for _, e := range o.Elems {
		e.Umap = nil
	}
	o.Ny, o.NnzKb = 0, 0
	o.sealed = false
}

// Sealed tells whether the equations have been numbered
func (o *Assembly) Sealed() bool { return o.sealed }

// Eq returns the equation number of a channel of a node
//  Note: seals the assembly. returns -1 if the channel is grounded or the node does not exist
func (o *Assembly) Eq(name string, out ele.Output) int {
	o.Seal()
	nod, ok := o.name2node[name]
	if !ok {
		return -1
	}
	return nod.GetEq(out)
}

// NodeState returns the values of the six channels of a node for a given state vector. Grounded
// channels are zero
func (o *Assembly) NodeState(q la.Vector, name string) (vals []float64, err error) {
	o.Seal()
	if len(q) != o.Ny {
		return nil, fmt.Errorf("state vector has length %d but assembly has %d equations: %w", len(q), o.Ny, ErrDimension)
	}
	nod, ok := o.name2node[name]
	if !ok {
		return nil, fmt.Errorf("cannot get state of node %q: %w", name, ErrNotFound)
	}
	vals = make([]float64, ele.Nchannels)
	for i, out := range nod.Dynamic {
		vals[out] = q[nod.Eqs[i]]
	}
	return
}

// Assemble builds a global system matrix by scatter-adding the local matrices of all elements.
// Rows and columns of channels grounded at nodes are dropped
//  Note: seals the assembly
func (o *Assembly) Assemble(kind Kind, sparse bool) (A *SysMat, err error) {
	o.Seal()
	A = NewSysMat(o.Ny, o.NnzKb, sparse)
	for k, e := range o.Elems {
		a := e.Matrix(kind)
		if len(a) != len(e.Umap) {
			return nil, fmt.Errorf("%s matrix of element # %d (%q) has size %d but element has %d dynamic channels: %w", kind, k, e.Model.Type(), len(a), len(e.Umap), ErrDimension)
		}
		for i, I := range e.Umap {
			if I < 0 {
				continue
			}
			for j, J := range e.Umap {
				if J < 0 {
					continue
				}
				A.Put(I, J, a[i][j])
			}
		}
	}
	return
}

// AssembleMass builds the global mass matrix
func (o *Assembly) AssembleMass(sparse bool) (*SysMat, error) { return o.Assemble(Mass, sparse) }

// AssembleStiffness builds the global stiffness matrix
func (o *Assembly) AssembleStiffness(sparse bool) (*SysMat, error) {
	return o.Assemble(Stiffness, sparse)
}

// AssembleDamping builds the global damping matrix
func (o *Assembly) AssembleDamping(sparse bool) (*SysMat, error) { return o.Assemble(Damping, sparse) }

// SetForce sets the force law
func (o *Assembly) SetForce(law ForceLaw) { o.Force = law }

// AssembleForce returns the global force vector for state q at time t
//  Note: returns zeros if no force law is set
func (o *Assembly) AssembleForce(q la.Vector, t float64) (f la.Vector, err error) {
	o.Seal()
	if len(q) != o.Ny {
		return nil, fmt.Errorf("state vector has length %d but assembly has %d equations: %w", len(q), o.Ny, ErrDimension)
	}
	if o.Force == nil {
		return la.NewVector(o.Ny), nil
	}
	f, err = o.Force.F(q, t)
	if err != nil {
		return
	}
	if len(f) != o.Ny {
		return nil, fmt.Errorf("force law returned vector of length %d but assembly has %d equations: %w", len(f), o.Ny, ErrDimension)
	}
	return
}

// AssembleForceJacobian returns the derivative of the force vector with respect to the state
//  Note: returns a zero matrix if no force law is set
func (o *Assembly) AssembleForceJacobian(q la.Vector, t float64, sparse bool) (dFdx *SysMat, err error) {
	o.Seal()
	if len(q) != o.Ny {
		return nil, fmt.Errorf("state vector has length %d but assembly has %d equations: %w", len(q), o.Ny, ErrDimension)
	}
	if o.Force == nil {
		return NewSysMat(o.Ny, 0, sparse), nil
	}
	dFdx, err = o.Force.DFdx(q, t, sparse)
	if err != nil {
		return
	}
	if dFdx.N != o.Ny {
		return nil, fmt.Errorf("force law returned %d×%d Jacobian but assembly has %d equations: %w", dFdx.N, dFdx.N, o.Ny, ErrDimension)
	}
	return
}
