package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrokate/powerplant-coding-challenge/core/plan"
)

const planPayload = `{
  "load": 910,
  "fuels": {
    "gas(euro/MWh)": 13.4,
    "kerosine(euro/MWh)": 50.8,
    "co2(euro/ton)": 20,
    "wind(%)": 60
  },
  "powerplants": [
    {"name": "gasfiredbig1", "type": "gasfired", "efficiency": 0.53, "pmin": 100, "pmax": 460},
    {"name": "gasfiredbig2", "type": "gasfired", "efficiency": 0.53, "pmin": 100, "pmax": 460},
    {"name": "gasfiredsomewhatsmaller", "type": "gasfired", "efficiency": 0.37, "pmin": 40, "pmax": 210},
    {"name": "tj1", "type": "turbojet", "efficiency": 0.3, "pmin": 0, "pmax": 16},
    {"name": "windpark1", "type": "windturbine", "efficiency": 1, "pmin": 0, "pmax": 150},
    {"name": "windpark2", "type": "windturbine", "efficiency": 1, "pmin": 0, "pmax": 36}
  ]
}`

func writePayload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(planPayload), 0o600))
	return path
}

func TestPlanCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"plan", writePayload(t)})

	require.NoError(t, rootCmd.Execute())

	var got []plan.Assignment
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 6)

	total := 0.0
	for _, a := range got {
		total += a.Power
	}
	assert.InDelta(t, 910.0, total, 1e-9)
}

func TestPlanCommandUnknownStrategy(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"plan", "--strategy", "annealing", writePayload(t)})

	require.Error(t, rootCmd.Execute())
	planStrategy = "merit"
}

func TestPlanCommandMissingFile(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"plan", filepath.Join(t.TempDir(), "nope.json")})

	require.Error(t, rootCmd.Execute())
}
