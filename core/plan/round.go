package plan

import (
	"math"
	"sort"
)

// Finalize rounds raw allocations to the 0.1 MW grid and reconciles the
// accumulated rounding residual so the reported total matches the load. The
// residual is absorbed whole by the largest assignment whose bounds accept
// it, then the next largest, ties falling to the plant earliest in merit
// order. Assignments come back in request order, plants left off included.
func Finalize(sorted []EvaluatedPlant, raw []float64, load float64) []Assignment {
	rounded := make([]float64, len(raw))
	var sum float64
	for i, v := range raw {
		rounded[i] = roundMW(v)
		sum += rounded[i]
	}

	if residual := roundMW(load - sum); residual != 0 {
		bySize := make([]int, len(rounded))
		for i := range bySize {
			bySize[i] = i
		}
		sort.SliceStable(bySize, func(a, b int) bool {
			return rounded[bySize[a]] > rounded[bySize[b]]
		})
		for _, i := range bySize {
			adj := roundMW(rounded[i] + residual)
			if adj < 0 || adj > sorted[i].EffMax+tolerance {
				continue
			}
			if adj > 0 && adj < sorted[i].EffMin-tolerance {
				continue
			}
			rounded[i] = adj
			break
		}
	}

	assignments := make([]Assignment, len(sorted))
	for i, ep := range sorted {
		assignments[ep.Index] = Assignment{Name: ep.Name, Power: rounded[i]}
	}
	return assignments
}

// roundMW rounds to one decimal, half up.
func roundMW(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
