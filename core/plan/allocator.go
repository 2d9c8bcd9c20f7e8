package plan

import (
	"fmt"
	"math"
)

// tolerance below which residual demand counts as met. Well under the
// 0.1 MW output grid.
const tolerance = 1e-6

// Allocator distributes a load over a merit-ordered fleet, returning the raw
// (unrounded) MW per slot of the sorted slice.
type Allocator interface {
	Allocate(sorted []EvaluatedPlant, load float64) ([]float64, error)
}

// MeritAllocator fills plants cheapest-first. When the residual demand falls
// below the next plant's minimum output it first tries to leave that plant
// off, and only when the plants further down the order cannot cover the
// residual does it claw back output from the most recently committed plant.
// Costs are ascending, so only that single boundary commitment is ever in
// doubt and the repair never cascades.
type MeritAllocator struct{}

// Name identifies the strategy in logs and metrics.
func (MeritAllocator) Name() string { return "merit" }

// Allocate walks the merit order committing min(remaining, pmax) per plant.
func (MeritAllocator) Allocate(sorted []EvaluatedPlant, load float64) ([]float64, error) {
	alloc := make([]float64, len(sorted))
	remaining := load
	lastCommit := -1

	for i, ep := range sorted {
		if remaining <= tolerance {
			break
		}
		want := math.Min(remaining, ep.EffMax)
		if want <= tolerance {
			continue
		}
		if want < ep.EffMin {
			// want == remaining here: the plant cannot run this low.
			if tailCapacity(sorted[i+1:]) >= remaining-tolerance {
				// Leaving it off is cheaper than disturbing a cheaper
				// commitment; the rest of the fleet covers the residual.
				continue
			}
			freed, err := reclaim(sorted, alloc, lastCommit, ep, remaining, load)
			if err != nil {
				return nil, err
			}
			remaining += freed
			want = ep.EffMin
		}
		alloc[i] = want
		remaining -= want
		lastCommit = i
	}

	if remaining > tolerance {
		return nil, &InfeasibleError{Load: load, Shortfall: remaining, Reason: "total capacity insufficient"}
	}
	return alloc, nil
}

// reclaim frees just enough headroom from the most recent commitment so the
// boundary plant can run at its minimum output. The donor never drops below
// its own floor.
func reclaim(sorted []EvaluatedPlant, alloc []float64, last int, boundary EvaluatedPlant, remaining, load float64) (float64, error) {
	needed := boundary.EffMin - remaining
	if last < 0 {
		return 0, &InfeasibleError{Load: load, Reason: fmt.Sprintf("load below minimum output of %s", boundary.Name)}
	}
	headroom := alloc[last] - sorted[last].EffMin
	if headroom < needed-tolerance {
		return 0, &InfeasibleError{Load: load, Reason: fmt.Sprintf("minimum output of %s cannot be met", boundary.Name)}
	}
	freed := math.Min(needed, headroom)
	alloc[last] -= freed
	return freed, nil
}

func tailCapacity(tail []EvaluatedPlant) float64 {
	var sum float64
	for _, ep := range tail {
		sum += ep.EffMax
	}
	return sum
}
