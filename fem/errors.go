// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/ahadrauf/sugar/ele"
)

// errors that callers may check with errors.Is
var (
	ErrArityMismatch  = errors.New("arity mismatch")     // number of nodes differs from number of element slots
	ErrNameConflict   = errors.New("name conflict")      // node name exists already
	ErrNotFound       = errors.New("not found")          // node name does not exist
	ErrSingularSystem = errors.New("singular system")    // linear solver failed
	ErrSealed         = errors.New("assembly is sealed") // binding after equations were numbered
	ErrDimension      = errors.New("dimension mismatch") // vector or matrix of wrong size
	ErrUnknownModel   = ele.ErrUnknownModel              // element model not available in factory
)
