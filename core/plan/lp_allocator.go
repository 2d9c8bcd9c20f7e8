package plan

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// LPAllocator solves the linear relaxation of the dispatch problem:
// minimise total marginal cost subject to the load balance and per-plant
// capacity. The relaxation ignores minimum-output floors, so any solution
// landing strictly inside one, like any solver failure, is handed to the
// merit allocator instead.
type LPAllocator struct {
	fallback MeritAllocator
}

// NewLPAllocator returns an LP-based allocator with the merit-order fallback.
func NewLPAllocator() *LPAllocator { return &LPAllocator{} }

// Name identifies the strategy in logs and metrics.
func (*LPAllocator) Name() string { return "lp" }

// Allocate implements the Allocator interface.
func (a *LPAllocator) Allocate(sorted []EvaluatedPlant, load float64) ([]float64, error) {
	if len(sorted) == 0 || load <= tolerance {
		return a.fallback.Allocate(sorted, load)
	}

	costs := make([]float64, len(sorted))
	caps := make([]float64, len(sorted))
	for i, ep := range sorted {
		costs[i] = ep.Cost
		caps[i] = ep.EffMax
	}

	sol, err := lpSolve(costs, caps, load)
	if err != nil {
		return a.fallback.Allocate(sorted, load)
	}

	alloc := make([]float64, len(sorted))
	for i := range sorted {
		p := sol[i]
		// Clamp solver noise back into bounds.
		if p < 0 {
			p = 0
		}
		if p > caps[i] {
			p = caps[i]
		}
		alloc[i] = p
	}
	for i, ep := range sorted {
		if alloc[i] > tolerance && alloc[i] < ep.EffMin-tolerance {
			return a.fallback.Allocate(sorted, load)
		}
	}
	return alloc, nil
}

// solveLP runs the simplex algorithm on the standard-form conversion of
// min c·x subject to x <= caps and sum(x) == target.
func solveLP(costs, caps []float64, target float64) ([]float64, error) {
	g := mat.NewDense(len(caps), len(caps), nil)
	h := make([]float64, len(caps))
	for i, c := range caps {
		g.Set(i, i, 1)
		h[i] = c
	}

	A := mat.NewDense(1, len(caps), nil)
	for i := range caps {
		A.Set(0, i, 1)
	}
	b := []float64{target}

	cStd, AStd, bStd := lp.Convert(costs, g, h, A, b)
	_, sol, err := lp.Simplex(cStd, AStd, bStd, 1e-7, nil)
	return sol, err
}

// lpSolve points to the function used to solve the LP. It can be overridden
// in tests to simulate solver failures.
var lpSolve = solveLP
