package verify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundry-sim/factoryflow/factory"
	"github.com/foundry-sim/factoryflow/verify"
)

func TestFactoryOKRoundTrip(t *testing.T) {
	input := `{
		"target": {"item": "iron", "rate_per_min": 60},
		"machines": {"furnace": {"crafts_per_min": 60, "max_machines": null}},
		"recipes": {
			"smelt": {"machine": "furnace", "time_s": 1,
				"in": {"iron_ore": 1}, "out": {"iron": 1}}
		},
		"raw_supply_per_min": {"iron_ore": 1000}
	}`

	p, err := factory.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := factory.Solve(p, factory.Options{})
	require.NoError(t, err)

	require.NoError(t, verify.Factory(p, res))
}

func TestFactoryOKDetectsTamperedResult(t *testing.T) {
	input := `{
		"target": {"item": "iron", "rate_per_min": 60},
		"machines": {"furnace": {"crafts_per_min": 60, "max_machines": null}},
		"recipes": {
			"smelt": {"machine": "furnace", "time_s": 1,
				"in": {"iron_ore": 1}, "out": {"iron": 1}}
		},
		"raw_supply_per_min": {"iron_ore": 1000}
	}`

	p, err := factory.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := factory.Solve(p, factory.Options{})
	require.NoError(t, err)

	res.RawConsumptionPerMin["iron_ore"] = 999

	require.ErrorIs(t, verify.Factory(p, res), verify.ErrViolation)
}

func TestFactoryInfeasibleRoundTrip(t *testing.T) {
	input := `{
		"target": {"item": "iron", "rate_per_min": 60},
		"machines": {"furnace": {"crafts_per_min": 60, "max_machines": null}},
		"recipes": {
			"smelt": {"machine": "furnace", "time_s": 1,
				"in": {"iron_ore": 1}, "out": {"iron": 1}}
		},
		"raw_supply_per_min": {"iron_ore": 30}
	}`

	p, err := factory.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := factory.Solve(p, factory.Options{})
	require.NoError(t, err)
	require.Equal(t, "infeasible", res.Status)

	require.NoError(t, verify.Factory(p, res))
}
