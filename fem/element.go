// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/ahadrauf/sugar/ele"
	"github.com/cpmech/gosl/chk"
)

// Bound holds one element model placed in an assembly. It is created by Assembly.Bind and must
// not be changed afterwards
type Bound struct {
	Model ele.Model   // element model
	Nodes []*Node     // [Model.Nnodes()] nodes bound to each slot
	Rx    float64     // rotation angle about x
	Ry    float64     // rotation angle about y
	Rz    float64     // rotation angle about z
	R     [][]float64 // [3][3] rotation matrix R = Rx·Ry·Rz
	Umap  []int       // [ndyn] assembly map (location array). -1 => dropped (channel grounded at node)
}

// SetEqs sets the assembly map from the equation numbers of nodes
//  Note: nodes must have their equations set already
func (o *Bound) SetEqs() {
	dyn, _ := o.Model.Outputs()
	o.Umap = make([]int, 0, ele.Ndyn(o.Model))
	for s, nod := range o.Nodes {
		for _, out := range dyn[s] {
			o.Umap = append(o.Umap, nod.GetEq(out))
		}
	}
}

// Matrix returns the local matrix of given kind
func (o *Bound) Matrix(kind Kind) [][]float64 {
	switch kind {
	case Mass:
		return o.Model.M(o.R)
	case Stiffness:
		return o.Model.K(o.R)
	case Damping:
		return o.Model.D(o.R)
	}
	chk.Panic("matrix kind %d is invalid", kind)
	return nil
}

// Kind defines the kind of system matrix
type Kind int

// kinds of system matrices
const (
	Mass      Kind = iota // mass matrix
	Stiffness             // stiffness matrix
	Damping               // damping matrix
)

// String returns the name of kind
func (o Kind) String() string {
	switch o {
	case Mass:
		return "mass"
	case Stiffness:
		return "stiffness"
	case Damping:
		return "damping"
	}
	return "unknown"
}
