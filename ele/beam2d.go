// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Beam2d represents a planar small-deflection Euler-Bernoulli beam
//
//          y
//          ^
//          |        l                   Props (from layer):   Nodes:
//         (0)=====================(1) --> x     E, ρ, μ, h, gap      0 and 1
//          w                                Geometry:
//                                             l, w
//
//  The two end nodes are located at the middle of the w-by-h end faces. Each node has the
//  dynamic channels (x, y, rz); (z, rx, ry) are grounded
type Beam2d struct {
	L     float64    // length
	W     float64    // width (in-plane)
	H     float64    // height (thickness of layer)
	Layer *inp.Layer // layer with material properties
}

// register element
func init() {
	SetAllocator("beam2d", func(prms utl.Params, layer *inp.Layer) (Model, error) {
		// missing dimensions are zero and rejected by NewBeam2d
		return NewBeam2d(prms.GetValueOrDefault("l", 0), prms.GetValueOrDefault("w", 0), layer)
	})
}

// NewBeam2d returns a new beam of length l and width w made of layer
func NewBeam2d(l, w float64, layer *inp.Layer) (o *Beam2d, err error) {
	if layer == nil {
		return nil, chk.Err("beam2d requires a layer")
	}
	if l <= 0 || w <= 0 {
		return nil, chk.Err("beam2d: length and width must be positive. l=%g, w=%g is invalid", l, w)
	}
	if layer.E <= 0 || layer.Rho <= 0 || layer.H <= 0 {
		return nil, chk.Err("beam2d: E, rho and h of layer %q must be all positive. E=%g, rho=%g, h=%g is invalid", layer.Name, layer.E, layer.Rho, layer.H)
	}
	return &Beam2d{L: l, W: w, H: layer.H, Layer: layer}, nil
}

// Type returns the type tag
func (o *Beam2d) Type() string { return "beam2d" }

// Nnodes returns the number of node slots
func (o *Beam2d) Nnodes() int { return 2 }

// Outputs returns the dynamic and grounded channels of both ends
func (o *Beam2d) Outputs() (dynamic, ground [][]Output) {
	dynamic = [][]Output{{X, Y, Rz}, {X, Y, Rz}}
	ground = [][]Output{{Z, Rx, Ry}, {Z, Rx, Ry}}
	return
}

// M returns the consistent mass matrix
func (o *Beam2d) M(R [][]float64) [][]float64 {
	A := o.W * o.H
	b11, b12, b22 := o.massPattern()
	return join(o.Layer.Rho*A*o.L/420, Planar(R), b11, b12, b22)
}

// K returns the stiffness matrix
func (o *Beam2d) K(R [][]float64) [][]float64 {
	l := o.L
	E := o.Layer.E
	A := o.W * o.H
	I := o.W * o.W * o.W * o.H / 12
	c := E * I / (l * l * l)
	a := E * A / l
	k11 := [][]float64{
		{a, 0, 0},
		{0, 12 * c, 6 * c * l},
		{0, 6 * c * l, 4 * c * l * l},
	}
	k12 := [][]float64{
		{-a, 0, 0},
		{0, -12 * c, 6 * c * l},
		{0, -6 * c * l, 2 * c * l * l},
	}
	k22 := [][]float64{
		{a, 0, 0},
		{0, 12 * c, -6 * c * l},
		{0, -6 * c * l, 4 * c * l * l},
	}
	return join(1, Planar(R), k11, k12, k22)
}

// D returns the squeeze-film damping matrix
//  Note: returns a zero matrix if the layer has no fluid gap
func (o *Beam2d) D(R [][]float64) [][]float64 {
	if o.Layer.FluidGap <= 0 {
		return utl.Alloc(6, 6)
	}
	b11, b12, b22 := o.massPattern()
	return join(o.Layer.Mu*o.L*o.W/(420*o.Layer.FluidGap), Planar(R), b11, b12, b22)
}

// massPattern returns the blocks of the consistent mass pattern
func (o *Beam2d) massPattern() (b11, b12, b22 [][]float64) {
	l := o.L
	b11 = [][]float64{
		{140, 0, 0},
		{0, 156, 22 * l},
		{0, 22 * l, 4 * l * l},
	}
	b12 = [][]float64{
		{70, 0, 0},
		{0, 54, -13 * l},
		{0, 13 * l, -3 * l * l},
	}
	b22 = [][]float64{
		{140, 0, 0},
		{0, 156, -22 * l},
		{0, -22 * l, 4 * l * l},
	}
	return
}
