package plan

import "sort"

// MeritOrder returns the fleet ordered by ascending marginal cost. The sort
// is stable so equal-cost plants keep their request order, which makes
// dispatch deterministic across runs.
func MeritOrder(evaluated []EvaluatedPlant) []EvaluatedPlant {
	sorted := make([]EvaluatedPlant, len(evaluated))
	copy(sorted, evaluated)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost < sorted[j].Cost
	})
	return sorted
}
