package plan

import (
	"math"
	"testing"
)

func TestEvaluate_GasFired(t *testing.T) {
	fuels := FuelPrices{Gas: 13.4, Kerosine: 50.8, CO2: 20, Wind: 60}
	ep := Evaluate(Plant{Name: "g1", Type: GasFired, Efficiency: 0.53, PMin: 100, PMax: 460}, fuels)

	want := 13.4/0.53 + 20*0.3
	if math.Abs(ep.Cost-want) > 1e-9 {
		t.Fatalf("expected cost %v got %v", want, ep.Cost)
	}
	if ep.EffMin != 100 || ep.EffMax != 460 {
		t.Fatalf("thermal range must be untouched, got [%v,%v]", ep.EffMin, ep.EffMax)
	}
}

func TestEvaluate_Turbojet(t *testing.T) {
	fuels := FuelPrices{Kerosine: 50.8}
	ep := Evaluate(Plant{Name: "tj1", Type: Turbojet, Efficiency: 0.3, PMax: 16}, fuels)
	if math.Abs(ep.Cost-50.8/0.3) > 1e-9 {
		t.Fatalf("expected kerosine cost, got %v", ep.Cost)
	}
}

func TestEvaluate_WindScalesWithAvailability(t *testing.T) {
	plant := Plant{Name: "w1", Type: WindTurbine, Efficiency: 1, PMin: 5, PMax: 150}
	for _, pct := range []float64{0, 25, 60, 100} {
		ep := Evaluate(plant, FuelPrices{Wind: pct})
		if ep.Cost != 0 {
			t.Fatalf("wind must be free, got %v", ep.Cost)
		}
		if ep.EffMin != 0 {
			t.Fatalf("wind must not have a floor, got %v", ep.EffMin)
		}
		if math.Abs(ep.EffMax-150*pct/100) > 1e-9 {
			t.Fatalf("availability %v%%: expected pmax %v got %v", pct, 150*pct/100, ep.EffMax)
		}
	}
}

func TestEvaluate_PricesDoNotMoveWindFromFront(t *testing.T) {
	wind := Plant{Name: "w", Type: WindTurbine, PMax: 100}
	gas := Plant{Name: "g", Type: GasFired, Efficiency: 0.5, PMax: 100}
	for _, gasPrice := range []float64{0.01, 13.4, 500} {
		fuels := FuelPrices{Gas: gasPrice, Wind: 50}
		if Evaluate(wind, fuels).Cost >= Evaluate(gas, fuels).Cost {
			t.Fatalf("wind must stay cheapest at gas price %v", gasPrice)
		}
	}
}

func TestEvaluateFleet_KeepsPositions(t *testing.T) {
	plants := []Plant{
		{Name: "a", Type: GasFired, Efficiency: 0.5, PMax: 100},
		{Name: "b", Type: WindTurbine, PMax: 20},
	}
	evaluated := EvaluateFleet(plants, FuelPrices{Gas: 10, Wind: 100})
	for i, ep := range evaluated {
		if ep.Index != i {
			t.Fatalf("expected index %d for %s, got %d", i, ep.Name, ep.Index)
		}
	}
}
