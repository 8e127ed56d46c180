// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/utl"
)

// Anchor fixes a node to the substrate. All six channels of its node are grounded
//  Note: the geometry is only kept for renderers
type Anchor struct {
	L float64 // length
	W float64 // width
	H float64 // height (thickness of layer); zero if no layer is given
}

// register element
func init() {
	SetAllocator("anchor", func(prms utl.Params, layer *inp.Layer) (Model, error) {
		o := new(Anchor)
		for _, p := range prms {
			switch p.N {
			case "l":
				o.L = p.V
			case "w":
				o.W = p.V
			}
		}
		if layer != nil {
			o.H = layer.H
		}
		return o, nil
	})
}

// Type returns the type tag
func (o *Anchor) Type() string { return "anchor" }

// Nnodes returns the number of node slots
func (o *Anchor) Nnodes() int { return 1 }

// Outputs returns no dynamic channel and all grounded channels
func (o *Anchor) Outputs() (dynamic, ground [][]Output) {
	return [][]Output{{}}, [][]Output{AllOutputs()}
}

// M returns an empty mass matrix
func (o *Anchor) M(R [][]float64) [][]float64 { return [][]float64{} }

// K returns an empty stiffness matrix
func (o *Anchor) K(R [][]float64) [][]float64 { return [][]float64{} }

// D returns an empty damping matrix
func (o *Anchor) D(R [][]float64) [][]float64 { return [][]float64{} }
