package plan

import (
	"math"
	"testing"
)

func TestRoundMW(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.04, 0},
		{0.05, 0.1},
		{21.599999999999998, 21.6},
		{338.40000000000009, 338.4},
		{-0.08, -0.1},
	}
	for _, c := range cases {
		if got := roundMW(c.in); got != c.want {
			t.Fatalf("roundMW(%v): expected %v got %v", c.in, c.want, got)
		}
	}
}

func TestFinalize_NoResidual(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "a"}, Index: 0, EffMax: 100},
		{Plant: Plant{Name: "b"}, Index: 1, EffMax: 100},
	}
	got := Finalize(sorted, []float64{60, 40}, 100)
	if got[0].Power != 60 || got[1].Power != 40 {
		t.Fatalf("expected [60 40] got %v", got)
	}
}

func TestFinalize_ResidualGoesToLargest(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "a"}, Index: 0, EffMax: 100},
		{Plant: Plant{Name: "b"}, Index: 1, EffMax: 100},
		{Plant: Plant{Name: "c"}, Index: 2, EffMax: 100},
	}
	// Everything rounds down to zero, leaving the whole 0.1 MW residual.
	// The merit-earliest plant takes it.
	got := Finalize(sorted, []float64{0.03, 0.03, 0.04}, 0.1)
	want := []float64{0.1, 0, 0}
	for i, w := range want {
		if got[i].Power != w {
			t.Fatalf("slot %d: expected %v got %v", i, w, got[i].Power)
		}
	}
}

func TestFinalize_ResidualSkipsPlantAtCapacity(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "full"}, Index: 0, EffMax: 10},
		{Plant: Plant{Name: "spare"}, Index: 1, EffMax: 5},
		{Plant: Plant{Name: "idle"}, Index: 2, EffMax: 5},
	}
	got := Finalize(sorted, []float64{10, 0.03, 0.03}, 10.06)
	if got[0].Power != 10 || got[1].Power != 0.1 || got[2].Power != 0 {
		t.Fatalf("residual must fall through to the next-largest, got %v", got)
	}
}

func TestFinalize_NegativeResidual(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "a"}, Index: 0, EffMax: 100},
		{Plant: Plant{Name: "b"}, Index: 1, EffMax: 100},
	}
	got := Finalize(sorted, []float64{5.06, 5.06}, 10.12)
	// Both round up to 5.1; the first (merit tie-break) gives 0.1 back.
	if got[0].Power != 5.0 || got[1].Power != 5.1 {
		t.Fatalf("expected [5.0 5.1] got %v", got)
	}
}

func TestFinalize_NegativeResidualRespectsFloor(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "floored"}, Index: 0, EffMin: 5, EffMax: 10},
		{Plant: Plant{Name: "b"}, Index: 1, EffMax: 10},
		{Plant: Plant{Name: "c"}, Index: 2, EffMax: 10},
	}
	got := Finalize(sorted, []float64{5.0, 2.56, 2.56}, 10.12)
	// The largest plant sits on its floor and cannot give 0.1 back.
	want := []float64{5.0, 2.5, 2.6}
	for i, w := range want {
		if got[i].Power != w {
			t.Fatalf("slot %d: expected %v got %v", i, w, got[i].Power)
		}
	}
}

func TestFinalize_RestoresRequestOrder(t *testing.T) {
	sorted := []EvaluatedPlant{
		{Plant: Plant{Name: "second"}, Index: 1, EffMax: 100},
		{Plant: Plant{Name: "first"}, Index: 0, EffMax: 100},
	}
	got := Finalize(sorted, []float64{70, 30}, 100)
	if got[0].Name != "first" || got[1].Name != "second" {
		t.Fatalf("assignments must follow request order, got %v", got)
	}
	if got[0].Power != 30 || got[1].Power != 70 {
		t.Fatalf("expected [30 70] got %v", got)
	}
	if sum := got[0].Power + got[1].Power; math.Abs(sum-100) > 0.1 {
		t.Fatalf("sum must match load, got %v", sum)
	}
}
