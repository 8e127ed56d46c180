// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// CondMax is the largest condition number of the diagonally scaled matrix accepted by Solve
var CondMax = 1e12

// SysMat holds a square global matrix in either sparse (triplet) or dense format
type SysMat struct {
	N      int         // dimension
	Sparse bool        // sparse format
	T      *la.Triplet // sparse matrix; duplicated entries are summed up. nil if dense
	D      *la.Matrix  // dense matrix; nil if sparse
}

// NewSysMat returns a new N×N matrix filled with zeros
//  nnz -- maximum number of entries put in sparse format
func NewSysMat(n, nnz int, sparse bool) (o *SysMat) {
	o = &SysMat{N: n, Sparse: sparse}
	if sparse {
		if n == 0 {
			nnz = 0
		}
		o.T = la.NewTriplet(n, n, nnz)
		return
	}
	o.D = la.NewMatrix(n, n)
	return
}

// Put adds x to entry (i,j)
func (o *SysMat) Put(i, j int, x float64) {
	if o.Sparse {
		o.T.Put(i, j, x)
		return
	}
	o.D.Add(i, j, x)
}

// Get returns entry (i,j)
//  Note: the sparse format is converted to dense first
func (o *SysMat) Get(i, j int) float64 {
	if o.Sparse {
		return o.T.ToDense().Get(i, j)
	}
	return o.D.Get(i, j)
}

// Nnz returns the number of entries put in sparse format or N² in dense format
func (o *SysMat) Nnz() int {
	if o.Sparse {
		return o.T.Len()
	}
	return o.N * o.N
}

// Dense returns a dense copy of the matrix
func (o *SysMat) Dense() *la.Matrix {
	if o.Sparse {
		return o.T.ToDense()
	}
	return o.D.GetCopy()
}

// ToDense returns a copy of the matrix as a dense N×N array
func (o *SysMat) ToDense() [][]float64 {
	return o.Dense().GetDeep2()
}

// MulVec returns y = o·v
func (o *SysMat) MulVec(v la.Vector) (y la.Vector) {
	y = la.NewVector(o.N)
	if o.N == 0 {
		return
	}
	if o.Sparse {
		la.SpTriMatVecMul(y, o.T, v)
		return
	}
	la.MatVecMul(y, 1, o.D, v)
	return
}

// Add returns a new matrix c = o + b
func (o *SysMat) Add(b *SysMat) (c *SysMat, err error) {
	return o.add(1, 1, b)
}

// Sub returns a new matrix c = o - b
func (o *SysMat) Sub(b *SysMat) (c *SysMat, err error) {
	return o.add(1, -1, b)
}

// Solve solves o·x = b
//  linsol -- name of sparse solver; e.g. "umfpack"
//  Note: singular or ill-conditioned matrices and failures of the linear solver are reported
//        with ErrSingularSystem
func (o *SysMat) Solve(x, b la.Vector, linsol string) (err error) {

	// check
	if len(x) != o.N || len(b) != o.N {
		return fmt.Errorf("cannot solve %d×%d system with len(x)=%d and len(b)=%d: %w", o.N, o.N, len(x), len(b), ErrDimension)
	}
	if o.N == 0 {
		return
	}

	// gosl solvers panic on failure
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("linear solver failed: %v: %w", r, ErrSingularSystem)
		}
	}()
	if err = o.checkCond(); err != nil {
		return
	}

	// solve
	if o.Sparse {
		solver := la.NewSparseSolver(linsol)
		defer solver.Free()
		solver.Init(o.T, nil)
		solver.Fact()
		solver.Solve(x, b)
	} else {
		la.DenSolve(x, o.D, b, true)
	}

	// check solution
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("solution x[%d] = %v is not finite: %w", i, v, ErrSingularSystem)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// add returns c = α·o + β·b
func (o *SysMat) add(α, β float64, b *SysMat) (c *SysMat, err error) {
	if b.N != o.N {
		return nil, fmt.Errorf("cannot add %d×%d matrix to %d×%d matrix: %w", b.N, b.N, o.N, o.N, ErrDimension)
	}
	if b.Sparse != o.Sparse {
		return nil, chk.Err("cannot add matrices with different formats. sparse=%v and sparse=%v", o.Sparse, b.Sparse)
	}
	c = NewSysMat(o.N, o.Nnz()+b.Nnz(), o.Sparse)
	if o.N == 0 {
		return
	}
	if o.Sparse {
		la.SpTriAdd(c.T, α, o.T, β, b.T)
		return
	}
	la.MatAdd(c.D, α, o.D, β, b.D)
	return
}

// checkCond returns ErrSingularSystem if a row is zero or if the condition number of
// S·A·S is too large, where S = diag(1/√|aᵢᵢ|) and S = 1 at zero diagonal entries
//  Note: la.MatCondNum panics if the matrix is exactly singular
func (o *SysMat) checkCond() error {
	a := o.Dense()
	s := la.NewVector(o.N)
	for i := 0; i < o.N; i++ {
		s[i] = 1
		if d := math.Abs(a.Get(i, i)); d > 0 {
			s[i] = 1 / math.Sqrt(d)
		}
	}
	for i := 0; i < o.N; i++ {
		zero := true
		for j := 0; j < o.N; j++ {
			if a.Get(i, j) != 0 {
				zero = false
			}
			a.Set(i, j, s[i]*a.Get(i, j)*s[j])
		}
		if zero {
			return fmt.Errorf("row %d of matrix is zero: %w", i, ErrSingularSystem)
		}
	}
	cond := la.MatCondNum(a, "F")
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond > CondMax {
		return fmt.Errorf("matrix is ill-conditioned. cond(S·A·S) = %g > %g: %w", cond, CondMax, ErrSingularSystem)
	}
	return nil
}
