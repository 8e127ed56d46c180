// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// FuncData holds the definition of a load multiplier function
type FuncData struct {
	Name string             `json:"name" yaml:"name"` // name of function. ex: ramp, myfunction1, etc.
	Type string             `json:"type" yaml:"type"` // type of function. ex: cte, lin, rmp
	Prms map[string]float64 `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "" and "one" return the unit constant; "zero" returns the null function
func (o FuncsData) Get(name string) (fcn func(t float64) float64, err error) {
	switch name {
	case "", "one":
		return func(float64) float64 { return 1 }, nil
	case "zero":
		return func(float64) float64 { return 0 }, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, mapToParams(f.Prms))
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{name:%q, type:%q, prms:%v}", o.Name, o.Type, o.Prms)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// newFunc allocates a multiplier function
//  cte: f(t) = c
//  lin: f(t) = m (t - ts)
//  rmp: f(t) = ca for t < ta; cb for t > tb; linear in between
func newFunc(kind string, prms utl.Params) (fcn func(t float64) float64, err error) {
	get := prms.GetValueOrDefault
	switch kind {
	case "cte":
		c := get("c", 0)
		return func(float64) float64 { return c }, nil
	case "lin":
		m, ts := get("m", 0), get("ts", 0)
		return func(t float64) float64 { return m * (t - ts) }, nil
	case "rmp":
		ca, cb, ta, tb := get("ca", 0), get("cb", 1), get("ta", 0), get("tb", 1)
		if tb <= ta {
			return nil, chk.Err("ramp function requires ta < tb. ta=%g, tb=%g is invalid", ta, tb)
		}
		return func(t float64) float64 {
			if t < ta {
				return ca
			}
			if t > tb {
				return cb
			}
			return ca + (cb-ca)*(t-ta)/(tb-ta)
		}, nil
	}
	return nil, chk.Err("function type %q is not available", kind)
}
