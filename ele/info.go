// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Output defines one of the six kinematic channels of a node
type Output int

// channels
const (
	X  Output = iota // translation along x
	Y                // translation along y
	Z                // translation along z
	Rx               // rotation about x
	Ry               // rotation about y
	Rz               // rotation about z
)

// Nchannels is the number of channels of each node
const Nchannels = 6

// AllOutputs returns all channels in canonical order: x, y, z, rx, ry, rz
func AllOutputs() []Output {
	return []Output{X, Y, Z, Rx, Ry, Rz}
}

// String returns the key of channel. ex: "x", "rz"
func (o Output) String() string {
	if o < 0 || int(o) >= len(outputKeys) {
		return "?"
	}
	return outputKeys[o]
}

// ParseOutput returns the channel corresponding to key
func ParseOutput(key string) (out Output, err error) {
	for i, k := range outputKeys {
		if k == key {
			return Output(i), nil
		}
	}
	return 0, chk.Err("channel key %q is invalid. valid keys are %v", key, outputKeys)
}

// OutputKeys returns the keys of a list of channels
func OutputKeys(outs []Output) (keys []string) {
	keys = make([]string, len(outs))
	for i, out := range outs {
		keys[i] = out.String()
	}
	return
}

// outputKeys holds the keys of channels in canonical order
var outputKeys = []string{"x", "y", "z", "rx", "ry", "rz"}
