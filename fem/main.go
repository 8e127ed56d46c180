// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the assembly of mechanical networks and the equilibrium solver
package fem

import (
	"fmt"
	"time"

	"github.com/ahadrauf/sugar/ele"
	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for the static analysis of a network described by a netlist
type Main struct {
	Net     *inp.Netlist // netlist data
	Asm     *Assembly    // assembly
	Loads   *NodalLoads  // point loads
	Solver  *Solver      // equilibrium solver
	Res     *Result      // results; available after Run
	ShowMsg bool         // show messages
}

// NewMain returns a new Main structure
//  Input:
//   dir     -- directory of netlist file
//   fn      -- netlist filename; e.g. "gripper.yaml"
//   verbose -- show messages
func NewMain(dir, fn string, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{ShowMsg: verbose}

	// read input data
	o.Net, err = inp.ReadNetlist(dir, fn)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Netlist file %q read\n", fn)
	}

	// build assembly
	o.Asm, o.Loads, err = BuildNetlist(o.Net)
	if err != nil {
		return nil, err
	}
	o.Asm.ShowMsg = verbose

	// allocate solver
	o.Solver = NewSolver(o.Asm, &o.Net.Solver)
	o.Solver.ShowMsg = verbose || o.Net.Solver.ShowR
	return
}

// Run finds the static equilibrium at time t
func (o *Main) Run(t float64) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() {
		if o.ShowMsg && err == nil {
			io.Pf("> Status = %v after %d iterations\n", o.Res.Status, o.Res.Iterations)
			io.Pfcyan("cpu time = %v\n", time.Since(cputime))
		}
	}()

	// message
	if o.ShowMsg {
		io.Pf("> Running equilibrium solver\n")
	}

	// solve
	o.Res, err = o.Solver.Run(nil, t)
	return
}

// BuildNetlist creates the assembly described by a netlist and the point loads acting on it
func BuildNetlist(nl *inp.Netlist) (asm *Assembly, loads *NodalLoads, err error) {

	// nodes
	if len(nl.Nodes) == 0 {
		return nil, nil, chk.Err("netlist must have at least one node")
	}
	names := make(map[string]bool)
	for _, name := range nl.Nodes {
		if names[name] {
			return nil, nil, fmt.Errorf("node %q is defined more than once: %w", name, ErrNameConflict)
		}
		names[name] = true
	}
	asm = NewAssembly(len(nl.Nodes), nl.Nodes...)

	// elements
	for i, edat := range nl.Elements {
		m, err := ele.New(edat.Type, edat.Params(), nl.Db.Get(edat.Layer))
		if err != nil {
			return nil, nil, fmt.Errorf("element # %d: %w", i, err)
		}
		err = asm.Bind(m, edat.Nodes, edat.Rx, edat.Ry, edat.Rz)
		if err != nil {
			return nil, nil, fmt.Errorf("element # %d: %w", i, err)
		}
	}

	// loads
	loads = NewNodalLoads(asm)
	for _, ld := range nl.Loads {
		out, err := ele.ParseOutput(ld.Dof)
		if err != nil {
			return nil, nil, err
		}
		fcn, err := nl.Functions.Get(ld.Func)
		if err != nil {
			return nil, nil, err
		}
		err = loads.Add(ld.Node, out, ld.Value, fcn)
		if err != nil {
			return nil, nil, err
		}
	}
	asm.SetForce(loads)
	return
}
