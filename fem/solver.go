// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/ahadrauf/sugar/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Status defines the state of the equilibrium solver
type Status int

// states of solver
const (
	Iterating             Status = iota // iterations are running
	Converged                           // norm of increment is smaller than tolerance
	MaxIterationsExceeded               // iterations bound reached without convergence
)

// String returns the name of status
func (o Status) String() string {
	switch o {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterationsExceeded:
		return "max-iterations-exceeded"
	}
	return "unknown"
}

// Result holds the results of the equilibrium solver
type Result struct {
	Q          la.Vector // final state
	Converged  bool      // convergence flag
	Status     Status    // final status
	Iterations int       // number of linear solves. see note below
	Norms      []float64 // [Iterations] norm of increment at each iteration
}

// Note: convergence is only detected by the increment of a linear solve. Thus a linear system
// converges after 1 solve only if the first increment is already smaller than Atol; otherwise a
// 2nd solve returns the zero increment that confirms the state found by the 1st one. The Jacobian
// of every solve is checked, so a singular system is never reported as converged

// Solver implements the Newton-Raphson method to find the static equilibrium K·q = F(q, t)
//  The stiffness K is assembled once; only the forces and their Jacobian are updated
//   G(q) = K·q - F(q, t)
//   J(q) = K - dF/dq(q, t)
//   J·Δq = G  =>  q ← q - Δq   until ‖Δq‖ < Atol
type Solver struct {
	Asm     *Assembly       // assembly
	Dat     *inp.SolverData // solver data
	ShowMsg bool            // show messages
}

// NewSolver returns a new solver
//  dat -- solver data; nil => default values
func NewSolver(asm *Assembly, dat *inp.SolverData) (o *Solver) {
	if asm == nil {
		chk.Panic("solver requires an assembly")
	}
	if dat == nil {
		dat = new(inp.SolverData)
		dat.SetDefault()
	}
	return &Solver{Asm: asm, Dat: dat, ShowMsg: dat.ShowR}
}

// Run runs the iterations
//  q0 -- initial state; nil => zero vector
//  t  -- time
//  Note: failing to converge is not an error; check Result.Converged
func (o *Solver) Run(q0 la.Vector, t float64) (res *Result, err error) {

	// stiffness
	sparse := o.Dat.Sparse
	K, err := o.Asm.Assemble(Stiffness, sparse)
	if err != nil {
		return
	}

	// initial state
	ny := o.Asm.Ny
	res = &Result{Q: la.NewVector(ny), Status: Iterating}
	if q0 != nil {
		if len(q0) != ny {
			return nil, fmt.Errorf("initial state has length %d but assembly has %d equations: %w", len(q0), ny, ErrDimension)
		}
		copy(res.Q, q0)
	}
	q := res.Q

	// message
	if o.ShowMsg {
		io.Pf("%8s%23s\n", "it", "‖Δq‖")
	}

	// iterations
	G := la.NewVector(ny)
	Δq := la.NewVector(ny)
	for it := 1; it <= o.Dat.NmaxIt; it++ {

		// residual
		f, err := o.Asm.AssembleForce(q, t)
		if err != nil {
			return nil, err
		}
		Kq := K.MulVec(q)
		for i := 0; i < ny; i++ {
			G[i] = Kq[i] - f[i]
		}

		// Jacobian
		dFdx, err := o.Asm.AssembleForceJacobian(q, t, sparse)
		if err != nil {
			return nil, err
		}
		J, err := K.Sub(dFdx)
		if err != nil {
			return nil, err
		}

		// solve and update
		err = J.Solve(Δq, G, o.Dat.LinSol)
		if err != nil {
			return nil, fmt.Errorf("Newton-Raphson iteration %d: %w", it, err)
		}
		for i := 0; i < ny; i++ {
			q[i] -= Δq[i]
		}
		norm := Δq.Norm()
		res.Iterations = it
		res.Norms = append(res.Norms, norm)

		// message
		if o.ShowMsg {
			io.Pf("%8d%23.15e\n", it, norm)
		}

		// check convergence
		if norm < o.Dat.Atol {
			res.Converged = true
			res.Status = Converged
			return res, nil
		}
	}

	// failed
	res.Status = MaxIterationsExceeded
	io.PfRed("warning: equilibrium not found after %d iterations\n", res.Iterations)
	return
}

// Equilibrium finds the static equilibrium of an assembly with default solver data
//  q0 -- initial state; nil => zero vector
//  t  -- time
func Equilibrium(asm *Assembly, q0 la.Vector, t float64, sparse bool) (q la.Vector, converged bool, err error) {
	var dat inp.SolverData
	dat.SetDefault()
	dat.Sparse = sparse
	res, err := NewSolver(asm, &dat).Run(q0, t)
	if err != nil {
		return
	}
	return res.Q, res.Converged, nil
}
