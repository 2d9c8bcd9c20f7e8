package plan

import (
	"fmt"
	"strings"
)

// PlantType identifies the production technology of a plant. The set is
// closed: cost evaluation relies on an exhaustive switch over it.
type PlantType int

const (
	GasFired PlantType = iota
	Turbojet
	WindTurbine
)

// String returns the wire name of the plant type.
func (t PlantType) String() string {
	switch t {
	case GasFired:
		return "gasfired"
	case Turbojet:
		return "turbojet"
	case WindTurbine:
		return "windturbine"
	default:
		return "unknown"
	}
}

// ParsePlantType maps a wire name to its PlantType.
func ParsePlantType(s string) (PlantType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gasfired":
		return GasFired, nil
	case "turbojet":
		return Turbojet, nil
	case "windturbine":
		return WindTurbine, nil
	default:
		return 0, fmt.Errorf("unknown plant type %q", s)
	}
}

// Thermal reports whether the plant burns fuel and therefore has a
// price-dependent marginal cost and a hard minimum output.
func (t PlantType) Thermal() bool {
	return t == GasFired || t == Turbojet
}

// FuelPrices holds the market conditions supplied with a dispatch request.
// Wind is the available wind as a percentage of installed capacity.
type FuelPrices struct {
	Gas      float64 // euro/MWh
	Kerosine float64 // euro/MWh
	CO2      float64 // euro/ton
	Wind     float64 // percent, 0-100
}

// Plant describes one power plant within a request.
type Plant struct {
	Name       string
	Type       PlantType
	Efficiency float64 // (0,1] for thermal types, ignored for wind
	PMin       float64 // MW
	PMax       float64 // MW
}

// Request is a single dispatch problem: the demand to cover, current fuel
// prices and the fleet able to cover it. Plant order is preserved for
// tie-breaking and for the order of the resulting assignments.
type Request struct {
	Load   float64
	Fuels  FuelPrices
	Plants []Plant
}

// Assignment is the power granted to one plant, on the 0.1 MW grid.
type Assignment struct {
	Name  string  `json:"name"`
	Power float64 `json:"p"`
}

// Validate checks the structural invariants the engine relies on. The engine
// itself assumes a validated request; callers run this before ComputePlan.
func (r Request) Validate() error {
	if r.Load < 0 {
		return &InvalidInputError{Field: "load", Reason: "must not be negative"}
	}
	if r.Fuels.Wind < 0 || r.Fuels.Wind > 100 {
		return &InvalidInputError{Field: "fuels.wind", Reason: "must be between 0 and 100"}
	}
	seen := make(map[string]struct{}, len(r.Plants))
	for _, p := range r.Plants {
		if p.Name == "" {
			return &InvalidInputError{Field: "plant.name", Reason: "must not be empty"}
		}
		if _, dup := seen[p.Name]; dup {
			return &InvalidInputError{Field: "plant.name", Reason: fmt.Sprintf("duplicate plant name %q", p.Name)}
		}
		seen[p.Name] = struct{}{}
		if p.PMin < 0 {
			return &InvalidInputError{Field: "plant.pmin", Reason: fmt.Sprintf("%s: must not be negative", p.Name)}
		}
		if p.PMax < p.PMin {
			return &InvalidInputError{Field: "plant.pmax", Reason: fmt.Sprintf("%s: must not be below pmin", p.Name)}
		}
		if p.Type.Thermal() && (p.Efficiency <= 0 || p.Efficiency > 1) {
			return &InvalidInputError{Field: "plant.efficiency", Reason: fmt.Sprintf("%s: must be in (0,1]", p.Name)}
		}
	}
	return nil
}
