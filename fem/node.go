// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/ahadrauf/sugar/ele"
	"github.com/cpmech/gosl/io"
)

// Node holds the six channels of a point of the network. Each channel is either dynamic (a free
// unknown) or grounded (fixed at zero). A new node has all channels dynamic
type Node struct {
	Name    string       // name of node; unique within an assembly
	Dynamic []ele.Output // dynamic channels in canonical order minus the grounded ones
	Ground  []ele.Output // grounded channels in the order they were grounded
	Eqs     []int        // [len(Dynamic)] equation numbers; nil until the assembly is sealed
}

// NewNode returns a new node with all channels dynamic
func NewNode(name string) *Node {
	return &Node{Name: name, Dynamic: ele.AllOutputs(), Ground: make([]ele.Output, 0, ele.Nchannels)}
}

// SetGround moves a channel from the dynamic set into the grounded set
//  Note: grounding is one-way and idempotent; returns false if the channel was grounded already
func (o *Node) SetGround(out ele.Output) (changed bool) {
	for i, d := range o.Dynamic {
		if d == out {
			o.Dynamic = append(o.Dynamic[:i], o.Dynamic[i+1:]...)
			o.Ground = append(o.Ground, out)
			o.Eqs = nil
			return true
		}
	}
	return false
}

// IsDynamic tells whether a channel is a free unknown
func (o *Node) IsDynamic(out ele.Output) bool {
	for _, d := range o.Dynamic {
		if d == out {
			return true
		}
	}
	return false
}

// Ndyn returns the number of dynamic channels
func (o *Node) Ndyn() int { return len(o.Dynamic) }

// GetEq returns the equation number of a channel
//  Note: returns -1 if the channel is grounded or equations have not been set
func (o *Node) GetEq(out ele.Output) int {
	if o.Eqs == nil {
		return -1
	}
	for i, d := range o.Dynamic {
		if d == out {
			return o.Eqs[i]
		}
	}
	return -1
}

// String returns a representation of node
func (o *Node) String() string {
	return io.Sf("{%q dynamic:%v ground:%v eqs:%v}", o.Name, ele.OutputKeys(o.Dynamic), ele.OutputKeys(o.Ground), o.Eqs)
}
