// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements lumped mechanical element models
package ele

import "github.com/cpmech/gosl/chk"

// Model defines what all element models must implement
//  Note: matrices are square with size equal to the total number of dynamic channels (see Ndyn).
//        rows/cols are ordered slot by slot following the dynamic channels declared for each slot;
//        e.g. with 3 dynamic channels per slot, row s·3+k is the k-th dynamic channel of slot s
type Model interface {

	// information
	Type() string                          // returns the type tag. ex: "beam2d"
	Nnodes() int                           // number of node slots
	Outputs() (dynamic, ground [][]Output) // [nnodes] channels that are dynamic and grounded for each slot

	// matrices for given 3×3 rotation matrix R
	M(R [][]float64) [][]float64 // mass matrix
	K(R [][]float64) [][]float64 // stiffness matrix
	D(R [][]float64) [][]float64 // damping matrix
}

// CheckOutputs panics if the channels of each slot of a model are not partitioned into dynamic and
// grounded channels or if the number of slots is inconsistent
func CheckOutputs(m Model) {
	dyn, gnd := m.Outputs()
	n := m.Nnodes()
	if len(dyn) != n || len(gnd) != n {
		chk.Panic("model %q has %d slots but declares channels of %d dynamic and %d grounded slots", m.Type(), n, len(dyn), len(gnd))
	}
	for s := 0; s < n; s++ {
		var seen [Nchannels]int
		for _, out := range dyn[s] {
			if out < 0 || out >= Nchannels {
				chk.Panic("model %q: slot %d declares invalid dynamic channel %d", m.Type(), s, out)
			}
			seen[out]++
		}
		for _, out := range gnd[s] {
			if out < 0 || out >= Nchannels {
				chk.Panic("model %q: slot %d declares invalid grounded channel %d", m.Type(), s, out)
			}
			seen[out]++
		}
		for k, cnt := range seen {
			if cnt != 1 {
				chk.Panic("model %q: slot %d declares channel %q %d times. channels must be partitioned into dynamic and grounded", m.Type(), s, Output(k), cnt)
			}
		}
	}
}

// Ndyn returns the number of local degrees of freedom; i.e. the size of M, K and D
func Ndyn(m Model) (n int) {
	dyn, _ := m.Outputs()
	for _, outs := range dyn {
		n += len(outs)
	}
	return
}
