package plan

// gasEmissionFactor is the CO2 emitted per MWh produced by a gas-fired
// plant, in tons. It is a property of the technology, not of a particular
// plant, so it applies identically to every gas plant.
const gasEmissionFactor = 0.3

// EvaluatedPlant is the per-request view of a plant: its marginal cost under
// current fuel prices and its effective operating range. Wind plants cost
// nothing, cannot be forced to a floor and see their capacity scaled by the
// current availability.
type EvaluatedPlant struct {
	Plant
	Index  int     // position in the request, for tie-breaks and output order
	Cost   float64 // euro/MWh
	EffMin float64 // MW, 0 for wind
	EffMax float64 // MW, availability-scaled for wind
}

// Evaluate derives the marginal cost and effective range of a plant under
// the given fuel prices. Total over the closed PlantType set: it never fails
// on a validated plant.
func Evaluate(p Plant, fuels FuelPrices) EvaluatedPlant {
	ep := EvaluatedPlant{Plant: p, EffMin: p.PMin, EffMax: p.PMax}
	switch p.Type {
	case GasFired:
		ep.Cost = fuels.Gas/p.Efficiency + fuels.CO2*gasEmissionFactor
	case Turbojet:
		ep.Cost = fuels.Kerosine / p.Efficiency
	case WindTurbine:
		ep.Cost = 0
		ep.EffMin = 0
		ep.EffMax = p.PMax * fuels.Wind / 100
	}
	return ep
}

// EvaluateFleet evaluates every plant of a request, recording each plant's
// original position so output order survives the merit sort.
func EvaluateFleet(plants []Plant, fuels FuelPrices) []EvaluatedPlant {
	evaluated := make([]EvaluatedPlant, len(plants))
	for i, p := range plants {
		ep := Evaluate(p, fuels)
		ep.Index = i
		evaluated[i] = ep
	}
	return evaluated
}
