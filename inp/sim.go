// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from process and netlist (JSON or YAML) files
package inp

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// SolverData holds data for the equilibrium solver
type SolverData struct {
	NmaxIt int     `json:"nmaxit" yaml:"nmaxit"` // max number of Newton-Raphson iterations
	Atol   float64 `json:"atol"   yaml:"atol"`   // absolute tolerance on the norm of the increment
	Sparse bool    `json:"sparse" yaml:"sparse"` // use sparse matrices and sparse linear solver
	LinSol string  `json:"linsol" yaml:"linsol"` // name of sparse linear solver; e.g. "umfpack"
	ShowR  bool    `json:"showr"  yaml:"showr"`  // show norm of increment at each iteration
}

// ElemData holds element data
type ElemData struct {
	Type  string             `json:"type"  yaml:"type"`  // type of element. ex: anchor, beam2d
	Nodes []string           `json:"nodes" yaml:"nodes"` // names of nodes bound to element slots
	Layer string             `json:"layer" yaml:"layer"` // name of layer
	Prms  map[string]float64 `json:"prms"  yaml:"prms"`  // geometric parameters. ex: l, w
	Rx    float64            `json:"rx"    yaml:"rx"`    // rotation angle about x [rad]
	Ry    float64            `json:"ry"    yaml:"ry"`    // rotation angle about y [rad]
	Rz    float64            `json:"rz"    yaml:"rz"`    // rotation angle about z [rad]
}

// LoadData holds a point load acting on one channel of a node
type LoadData struct {
	Node  string  `json:"node"  yaml:"node"`  // name of node
	Dof   string  `json:"dof"   yaml:"dof"`   // channel key. ex: x, y, rz
	Value float64 `json:"value" yaml:"value"` // magnitude of load
	Func  string  `json:"func"  yaml:"func"`  // name of multiplier function; "" or "one" => constant
}

// Netlist holds the declarative description of a mechanical network
type Netlist struct {

	// input
	Desc      string      `json:"desc"      yaml:"desc"`      // description of network
	Process   string      `json:"process"   yaml:"process"`   // process file name or "soi_berk"
	Nodes     []string    `json:"nodes"     yaml:"nodes"`     // names of nodes
	Elements  []*ElemData `json:"elements"  yaml:"elements"`  // elements
	Loads     []*LoadData `json:"loads"     yaml:"loads"`     // point loads
	Functions FuncsData   `json:"functions" yaml:"functions"` // load multipliers
	Solver    SolverData  `json:"solver"    yaml:"solver"`    // solver data

	// derived
	Key string     `json:"-" yaml:"-"` // netlist key; e.g. gripper.yaml => gripper
	Db  *ProcessDb `json:"-" yaml:"-"` // processes and layers
}

// ReadNetlist reads a netlist from a JSON or YAML file, including the referenced process file
func ReadNetlist(dir, fn string) (o *Netlist, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read netlist file %q:\n%v", fn, err)
	}

	// set default values
	o = new(Netlist)
	o.Solver.SetDefault()

	// decode
	err = decode(fn, b, o)
	if err != nil {
		return nil, chk.Err("cannot decode netlist file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(fn)

	// processes
	switch o.Process {
	case "", "soi_berk":
		o.Db = SoiBerk()
	default:
		o.Db, err = ReadProcess(dir, o.Process)
		if err != nil {
			return nil, err
		}
	}

	// check elements
	for i, edat := range o.Elements {
		if edat.Type == "" {
			return nil, chk.Err("element # %d in netlist %q has no type", i, fn)
		}
		if edat.Layer != "" && o.Db.Get(edat.Layer) == nil {
			return nil, chk.Err("element # %d in netlist %q refers to layer %q which is not available", i, fn, edat.Layer)
		}
	}

	// check loads
	for _, ld := range o.Loads {
		if _, err = o.Functions.Get(ld.Func); err != nil {
			return nil, err
		}
	}
	return
}

// Params returns the element parameters sorted by name
func (o *ElemData) Params() utl.Params {
	return mapToParams(o.Prms)
}

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 100
	o.Atol = 1e-6
	o.Sparse = true
	o.LinSol = "umfpack"
}
