// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Cantilever computes the small-deflection solution of an Euler-Bernoulli beam clamped at one end
// and loaded at the other end. Bending happens in the x-y plane
//
//            w (in-plane width)        Fy
//   ▨|====================================o --> Fx
//   ▨|                l
//
//   I = w³·h / 12    A = w·h
type Cantilever struct {

	// input
	E  float64 // Young's modulus
	L  float64 // length
	W  float64 // in-plane width
	H  float64 // out-of-plane thickness
	Fx float64 // axial tip load
	Fy float64 // transverse tip load

	// derived
	I float64 // second moment of area about z
	A float64 // cross-sectional area
}

// Init initialises this structure
func (o *Cantilever) Init(prms utl.Params) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "l":
			o.L = p.V
		case "w":
			o.W = p.V
		case "h":
			o.H = p.V
		case "Fx":
			o.Fx = p.V
		case "Fy":
			o.Fy = p.V
		default:
			return chk.Err("cantilever: parameter %q is invalid", p.N)
		}
	}
	if o.E <= 0 || o.L <= 0 || o.W <= 0 || o.H <= 0 {
		return chk.Err("cantilever: E, l, w and h must be positive. E=%g l=%g w=%g h=%g", o.E, o.L, o.W, o.H)
	}

	// derived
	o.I = o.W * o.W * o.W * o.H / 12.0
	o.A = o.W * o.H
	return
}

// Stiffness returns the transverse stiffness at the tip: 3EI/l³
func (o Cantilever) Stiffness() float64 {
	return 3.0 * o.E * o.I / (o.L * o.L * o.L)
}

// TipDeflection returns the transverse displacement of the free end
func (o Cantilever) TipDeflection() float64 {
	return o.Fy / o.Stiffness()
}

// TipRotation returns the rotation of the free end
func (o Cantilever) TipRotation() float64 {
	return o.Fy * o.L * o.L / (2.0 * o.E * o.I)
}

// AxialElongation returns the elongation due to the axial load
func (o Cantilever) AxialElongation() float64 {
	return o.Fx * o.L / (o.E * o.A)
}

// GuidedDeflection returns the transverse displacement of the free end when its rotation is
// prevented (fixed-guided beam)
func (o Cantilever) GuidedDeflection() float64 {
	return o.Fy * o.L * o.L * o.L / (12.0 * o.E * o.I)
}

// CheckTip checks the displacements and rotation of the free end
//  u, v -- axial and transverse displacements
//  θ    -- rotation
//  rtol -- tolerance relative to the analytical values
func (o Cantilever) CheckTip(tst *testing.T, u, v, θ, rtol float64) {
	chk.Float64(tst, "u", rtol*math.Abs(o.AxialElongation())+1e-30, u, o.AxialElongation())
	chk.Float64(tst, "v", rtol*math.Abs(o.TipDeflection())+1e-30, v, o.TipDeflection())
	chk.Float64(tst, "θ", rtol*math.Abs(o.TipRotation())+1e-30, θ, o.TipRotation())
}
