package plan

import "testing"

func TestMeritOrder_Ascending(t *testing.T) {
	evaluated := []EvaluatedPlant{
		{Plant: Plant{Name: "expensive"}, Index: 0, Cost: 42},
		{Plant: Plant{Name: "free"}, Index: 1, Cost: 0},
		{Plant: Plant{Name: "mid"}, Index: 2, Cost: 31},
	}
	sorted := MeritOrder(evaluated)
	want := []string{"free", "mid", "expensive"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Fatalf("position %d: expected %s got %s", i, name, sorted[i].Name)
		}
	}
	// input slice must be left untouched
	if evaluated[0].Name != "expensive" {
		t.Fatalf("merit order must not mutate its input")
	}
}

func TestMeritOrder_TieKeepsRequestOrder(t *testing.T) {
	evaluated := []EvaluatedPlant{
		{Plant: Plant{Name: "first"}, Index: 0, Cost: 31.28},
		{Plant: Plant{Name: "second"}, Index: 1, Cost: 31.28},
		{Plant: Plant{Name: "third"}, Index: 2, Cost: 31.28},
	}
	sorted := MeritOrder(evaluated)
	for i, name := range []string{"first", "second", "third"} {
		if sorted[i].Name != name {
			t.Fatalf("equal-cost plants must keep request order, position %d got %s", i, sorted[i].Name)
		}
	}
}
