// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gopkg.in/yaml.v3"
)

// Process holds the material properties of a fabrication process
type Process struct {
	Name  string     // name of process; e.g. "poly"
	E     float64    // Young's modulus [N/m²]
	Nu    float64    // Poisson's ratio
	Rho   float64    // density [kg/m³]
	K     float64    // thermal conductivity
	Mu    float64    // viscosity of surrounding fluid
	Eps   float64    // permittivity
	Rs    float64    // sheet resistance [Ω/square]
	Extra utl.Params // uncommon properties; e.g. thermal expansion coefficient
}

// Layer holds one structural layer made of a process material
//  Note: the embedded Process is a copy; changing the original process does not affect layers
type Layer struct {
	Process
	Name     string     // name of layer; e.g. "p1"
	H        float64    // thickness (height) of layer [m]
	FluidGap float64    // gap between layer and substrate filled with fluid [m]. zero => no squeeze-film damping
	Extra    utl.Params // uncommon layer properties
}

// NewLayer returns a new layer made of a copy of proc
func NewLayer(name string, proc *Process, h, gap float64, extra ...*utl.P) *Layer {
	if proc == nil {
		chk.Panic("cannot create layer %q without process", name)
	}
	return &Layer{Process: *proc, Name: name, H: h, FluidGap: gap, Extra: extra}
}

// Get returns the value of a named property, looking first at the named fields, then at the
// layer extensions and finally at the process extensions
func (o *Layer) Get(name string) (val float64, found bool) {
	switch name {
	case "E":
		return o.E, true
	case "nu":
		return o.Nu, true
	case "rho":
		return o.Rho, true
	case "k":
		return o.K, true
	case "mu":
		return o.Mu, true
	case "eps":
		return o.Eps, true
	case "rs":
		return o.Rs, true
	case "h":
		return o.H, true
	case "gap":
		return o.FluidGap, true
	}
	if p := o.Extra.Find(name); p != nil {
		return p.V, true
	}
	if p := o.Process.Extra.Find(name); p != nil {
		return p.V, true
	}
	return 0, false
}

// ProcessDb implements a database of processes and layers
type ProcessDb struct {
	Processes map[string]*Process // all processes
	Layers    map[string]*Layer   // all layers
}

// Get returns a layer
//  Note: returns nil if not found
func (o *ProcessDb) Get(layer string) *Layer {
	if o == nil {
		return nil
	}
	return o.Layers[layer]
}

// LayerNames returns the sorted names of all layers
func (o *ProcessDb) LayerNames() (names []string) {
	for name := range o.Layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// ReadProcess reads processes and layers from a JSON (.json, .proc) or YAML (.yaml, .yml) file
func ReadProcess(dir, fn string) (db *ProcessDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	var dat processFile
	err = decode(fn, b, &dat)
	if err != nil {
		return nil, chk.Err("cannot decode process file %q:\n%v", fn, err)
	}

	// processes
	db = &ProcessDb{
		Processes: make(map[string]*Process),
		Layers:    make(map[string]*Layer),
	}
	for _, p := range dat.Processes {
		if p.Name == "" {
			return nil, chk.Err("process in file %q must have a name", fn)
		}
		if _, ok := db.Processes[p.Name]; ok {
			return nil, chk.Err("process %q is defined more than once in file %q", p.Name, fn)
		}
		db.Processes[p.Name] = &Process{
			Name:  p.Name,
			E:     p.E,
			Nu:    p.Nu,
			Rho:   p.Rho,
			K:     p.K,
			Mu:    p.Mu,
			Eps:   p.Eps,
			Rs:    p.Rs,
			Extra: mapToParams(p.Extra),
		}
	}

	// layers
	for _, l := range dat.Layers {
		proc, ok := db.Processes[l.Process]
		if !ok {
			return nil, chk.Err("layer %q refers to process %q which is not defined in file %q", l.Name, l.Process, fn)
		}
		if l.H <= 0 {
			return nil, chk.Err("thickness of layer %q must be positive. h = %g is invalid", l.Name, l.H)
		}
		if l.Gap < 0 {
			return nil, chk.Err("fluid gap of layer %q must not be negative. gap = %g is invalid", l.Name, l.Gap)
		}
		if _, ok := db.Layers[l.Name]; ok {
			return nil, chk.Err("layer %q is defined more than once in file %q", l.Name, fn)
		}
		db.Layers[l.Name] = NewLayer(l.Name, proc, l.H, l.Gap, mapToParams(l.Extra)...)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// processFile defines the layout of process files
type processFile struct {
	Processes []*processData `json:"processes" yaml:"processes"`
	Layers    []*layerData   `json:"layers"    yaml:"layers"`
}

// processData holds process data as written in files
type processData struct {
	Name  string             `json:"name"  yaml:"name"`
	E     float64            `json:"E"     yaml:"E"`
	Nu    float64            `json:"nu"    yaml:"nu"`
	Rho   float64            `json:"rho"   yaml:"rho"`
	K     float64            `json:"k"     yaml:"k"`
	Mu    float64            `json:"mu"    yaml:"mu"`
	Eps   float64            `json:"eps"   yaml:"eps"`
	Rs    float64            `json:"rs"    yaml:"rs"`
	Extra map[string]float64 `json:"extra" yaml:"extra"`
}

// layerData holds layer data as written in files
type layerData struct {
	Name    string             `json:"name"    yaml:"name"`
	Process string             `json:"process" yaml:"process"`
	H       float64            `json:"h"       yaml:"h"`
	Gap     float64            `json:"gap"     yaml:"gap"`
	Extra   map[string]float64 `json:"extra"   yaml:"extra"`
}

// decode decodes JSON or YAML data depending on the extension of fn
func decode(fn string, b []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, v)
	}
	return json.Unmarshal(b, v)
}

// mapToParams converts a map of values into parameters sorted by name
func mapToParams(m map[string]float64) (prms utl.Params) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prms = append(prms, &utl.P{N: name, V: m[name]})
	}
	return
}
