// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results of equilibrium analyses
package out

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahadrauf/sugar/ele"
	"github.com/ahadrauf/sugar/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// NodeResult holds the values of the six channels of a node
type NodeResult struct {
	Name   string             `json:"name"   yaml:"name"`   // name of node
	Vals   map[string]float64 `json:"vals"   yaml:"vals"`   // maps channel keys (x, y, ..., rz) to values
	Ground []string           `json:"ground" yaml:"ground"` // keys of grounded channels
}

// Results holds the outcome of an equilibrium analysis in a format suitable for renderers
type Results struct {
	Desc       string        `json:"desc"       yaml:"desc"`       // description
	Time       float64       `json:"time"       yaml:"time"`       // time of analysis
	Converged  bool          `json:"converged"  yaml:"converged"`  // convergence flag
	Status     string        `json:"status"     yaml:"status"`     // final status of solver
	Iterations int           `json:"iterations" yaml:"iterations"` // number of linear solves
	Norms      []float64     `json:"norms"      yaml:"norms"`      // norm of increment at each iteration
	Nodes      []*NodeResult `json:"nodes"      yaml:"nodes"`      // nodes in construction order
}

// NewResults collects the results of an assembly
func NewResults(desc string, t float64, asm *fem.Assembly, res *fem.Result) (o *Results, err error) {
	if asm == nil || res == nil {
		return nil, chk.Err("results require an assembly and the results of the solver")
	}
	o = &Results{
		Desc:       desc,
		Time:       t,
		Converged:  res.Converged,
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Norms:      res.Norms,
	}
	for _, nod := range asm.Nodes {
		vals, err := asm.NodeState(res.Q, nod.Name)
		if err != nil {
			return nil, err
		}
		r := &NodeResult{
			Name:   nod.Name,
			Vals:   make(map[string]float64, ele.Nchannels),
			Ground: ele.OutputKeys(nod.Ground),
		}
		for i, out := range ele.AllOutputs() {
			r.Vals[out.String()] = vals[i]
		}
		o.Nodes = append(o.Nodes, r)
	}
	return
}

// Node returns the results of a node; nil if not found
func (o *Results) Node(name string) *NodeResult {
	for _, r := range o.Nodes {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Save writes results to a JSON or YAML file (by extension)
func (o *Results) Save(dir, fn string) (err error) {
	var b []byte
	if isYaml(fn) {
		b, err = yaml.Marshal(o)
	} else {
		b, err = json.MarshalIndent(o, "", "  ")
	}
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dir, err)
	}
	err = os.WriteFile(filepath.Join(dir, fn), b, 0644)
	if err != nil {
		return chk.Err("cannot write results file %q:\n%v", fn, err)
	}
	return
}

// Read reads results from a JSON or YAML file (by extension)
func Read(dir, fn string) (o *Results, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", fn, err)
	}
	o = new(Results)
	if isYaml(fn) {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fn, err)
	}
	return
}

// String returns a table with the values of all nodes
func (o *Results) String() (l string) {
	l = io.Sf("%s: %s after %d iterations\n", o.Desc, o.Status, o.Iterations)
	l += io.Sf("%8s", "node")
	for _, out := range ele.AllOutputs() {
		l += io.Sf("%14s", out)
	}
	l += "\n"
	for _, r := range o.Nodes {
		l += io.Sf("%8s", r.Name)
		for _, out := range ele.AllOutputs() {
			l += io.Sf("%14.6e", r.Vals[out.String()])
		}
		l += "\n"
	}
	return
}

func isYaml(fn string) bool {
	ext := strings.ToLower(filepath.Ext(fn))
	return ext == ".yaml" || ext == ".yml"
}
