package plan

import (
	"encoding/json"
	"fmt"

	coreplan "github.com/abrokate/powerplant-coding-challenge/core/plan"
)

// payload mirrors the production-plan request wire format.
type payload struct {
	Load        float64        `json:"load"`
	Fuels       fuelsPayload   `json:"fuels"`
	Powerplants []plantPayload `json:"powerplants"`
}

type plantPayload struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Efficiency float64 `json:"efficiency"`
	PMin       float64 `json:"pmin"`
	PMax       float64 `json:"pmax"`
}

// fuelsPayload accepts both the decorated fuel keys ("gas(euro/MWh)") and
// the bare ones ("gas").
type fuelsPayload struct {
	Gas      float64
	Kerosine float64
	CO2      float64
	Wind     float64
}

func (f *fuelsPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pick := func(dst *float64, keys ...string) error {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				*dst = v
				return nil
			}
		}
		return fmt.Errorf("missing fuel value: %s", keys[0])
	}
	if err := pick(&f.Gas, "gas(euro/MWh)", "gas"); err != nil {
		return err
	}
	if err := pick(&f.Kerosine, "kerosine(euro/MWh)", "kerosine"); err != nil {
		return err
	}
	if err := pick(&f.CO2, "co2(euro/ton)", "co2"); err != nil {
		return err
	}
	return pick(&f.Wind, "wind(%)", "wind")
}

// ParsePayload decodes a production-plan payload into an engine request.
// Shape errors surface here; range and uniqueness violations are left to
// Request.Validate.
func ParsePayload(data []byte) (coreplan.Request, error) {
	var pl payload
	if err := json.Unmarshal(data, &pl); err != nil {
		return coreplan.Request{}, fmt.Errorf("malformed payload: %w", err)
	}
	req := coreplan.Request{
		Load: pl.Load,
		Fuels: coreplan.FuelPrices{
			Gas:      pl.Fuels.Gas,
			Kerosine: pl.Fuels.Kerosine,
			CO2:      pl.Fuels.CO2,
			Wind:     pl.Fuels.Wind,
		},
		Plants: make([]coreplan.Plant, len(pl.Powerplants)),
	}
	for i, pp := range pl.Powerplants {
		typ, err := coreplan.ParsePlantType(pp.Type)
		if err != nil {
			return coreplan.Request{}, err
		}
		req.Plants[i] = coreplan.Plant{
			Name:       pp.Name,
			Type:       typ,
			Efficiency: pp.Efficiency,
			PMin:       pp.PMin,
			PMax:       pp.PMax,
		}
	}
	return req, nil
}
