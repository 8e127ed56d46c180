// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ErrUnknownModel is returned when a model type is not available in the factory
var ErrUnknownModel = errors.New("unknown element model")

// AllocatorType defines a function that allocates an element model
type AllocatorType func(prms utl.Params, layer *inp.Layer) (Model, error)

// New returns a new element model from factory
func New(name string, prms utl.Params, layer *inp.Layer) (m Model, err error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("cannot get allocator for element model %q: %w", name, ErrUnknownModel)
	}
	m, err = fcn(prms, layer)
	if err != nil {
		return nil, chk.Err("cannot allocate element model %q:\n%v", name, err)
	}
	CheckOutputs(m)
	return
}

// SetAllocator sets a new callback function to allocate an element model
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", name)
	}
	allocators[name] = fcn
}

// GetAllocator gets callback function to allocate an element model
func GetAllocator(name string) AllocatorType {
	if fcn, ok := allocators[name]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", name)
	return nil
}

// Names returns the sorted names of all available element models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
