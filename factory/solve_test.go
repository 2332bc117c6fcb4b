package factory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundry-sim/factoryflow/factory"
)

// Trivial one-recipe factory.
func TestSolveTrivialOneRecipe(t *testing.T) {
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

	require.Equal(t, "ok", res.Status)
	require.InDelta(t, 60.0, res.PerRecipeCraftsPerMin["smelt"], 1e-6)
	require.Equal(t, 1, res.PerMachineCounts["furnace"])
	require.InDelta(t, 60.0, res.RawConsumptionPerMin["iron_ore"], 1e-6)
}

// Raw-cap infeasible.
func TestSolveRawCapInfeasible(t *testing.T) {
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
	require.InDelta(t, 30.0, res.MaxFeasibleTarget, 1e-6)
	require.NotEmpty(t, res.Bottlenecks)
	found := false
	for _, hint := range res.Bottlenecks {
		if strings.Contains(hint, "iron_ore") {
			found = true
		}
	}
	require.True(t, found, "expected a bottleneck hint naming iron_ore, got %v", res.Bottlenecks)
}

// Chained recipes with an intermediate item.
func TestSolveChainedRecipes(t *testing.T) {
	input := `{
		"target": {"item": "gear", "rate_per_min": 10},
		"machines": {
			"press":    {"crafts_per_min": 60, "max_machines": null},
			"assembler": {"crafts_per_min": 60, "max_machines": null}
		},
		"recipes": {
			"A": {"machine": "press", "time_s": 1, "in": {"ore": 1}, "out": {"plate": 1}},
			"B": {"machine": "assembler", "time_s": 6, "in": {"plate": 2}, "out": {"gear": 1}}
		},
		"raw_supply_per_min": {"ore": 10000}
	}`

	p, err := factory.Parse(strings.NewReader(input))
	require.NoError(t, err)

	res, err := factory.Solve(p, factory.Options{})
	require.NoError(t, err)

	require.Equal(t, "ok", res.Status)
	require.InDelta(t, 20.0, res.PerRecipeCraftsPerMin["A"], 1e-6)
	require.InDelta(t, 10.0, res.PerRecipeCraftsPerMin["B"], 1e-6)
	require.InDelta(t, 20.0, res.RawConsumptionPerMin["ore"], 1e-6)
}

func TestSolveIsDeterministic(t *testing.T) {
	input := `{
		"target": {"item": "gear", "rate_per_min": 10},
		"machines": {
			"press":    {"crafts_per_min": 60, "max_machines": 5},
			"assembler": {"crafts_per_min": 60, "max_machines": 5}
		},
		"recipes": {
			"A": {"machine": "press", "time_s": 1, "in": {"ore": 1}, "out": {"plate": 1}},
			"B": {"machine": "assembler", "time_s": 6, "in": {"plate": 2}, "out": {"gear": 1}}
		},
		"raw_supply_per_min": {"ore": 10000}
	}`

	run := func() factory.Result {
		p, err := factory.Parse(strings.NewReader(input))
		require.NoError(t, err)
		res, err := factory.Solve(p, factory.Options{})
		require.NoError(t, err)
		return res
	}

	require.Equal(t, run(), run())
}

func TestParseRejectsUnproducedTarget(t *testing.T) {
	input := `{
		"target": {"item": "widget", "rate_per_min": 1},
		"machines": {"m": {"crafts_per_min": 1, "max_machines": null}},
		"recipes": {"r": {"machine": "m", "time_s": 1, "in": {"a": 1}, "out": {"b": 1}}}
	}`

	_, err := factory.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, factory.ErrTargetNotProduced)
}

func TestParseRejectsNegativeMaxMachines(t *testing.T) {
	input := `{
		"target": {"item": "b", "rate_per_min": 1},
		"machines": {"m": {"crafts_per_min": 1, "max_machines": -1}},
		"recipes": {"r": {"machine": "m", "time_s": 1, "in": {"a": 1}, "out": {"b": 1}}}
	}`

	_, err := factory.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, factory.ErrNegativeMaxMachines)
}

func TestParseRejectsModuleLoadoutBelowSpeedFloor(t *testing.T) {
	input := `{
		"target": {"item": "b", "rate_per_min": 1},
		"machines": {"m": {"crafts_per_min": 1, "max_machines": null}},
		"recipes": {"r": {"machine": "m", "time_s": 1, "in": {"a": 1}, "out": {"b": 1},
			"modules": {"speed": -2, "prod": 0}}}
	}`

	_, err := factory.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, factory.ErrInvalidModuleLoadout)
}

func TestParseRejectsNegativeProductivity(t *testing.T) {
	input := `{
		"target": {"item": "b", "rate_per_min": 1},
		"machines": {"m": {"crafts_per_min": 1, "max_machines": null}},
		"recipes": {"r": {"machine": "m", "time_s": 1, "in": {"a": 1}, "out": {"b": 1},
			"modules": {"speed": 0, "prod": -0.5}}}
	}`

	_, err := factory.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, factory.ErrInvalidModuleLoadout)
}

// speed=-1 sits exactly on the module-loadout invariant's floor
// (speed >= -1), so Parse must accept it; the recipe it lands on
// crafts at an effective rate of zero and can never run. Solve must
// report that cleanly as infeasible rather than dividing by the
// recipe's zero effective rate.
func TestSolveStoppedMachineIsInfeasibleNotDivideByZero(t *testing.T) {
	input := `{
		"target": {"item": "iron", "rate_per_min": 60},
		"machines": {"furnace": {"crafts_per_min": 60, "max_machines": null}},
		"recipes": {
			"smelt": {"machine": "furnace", "time_s": 1,
				"in": {"iron_ore": 1}, "out": {"iron": 1},
				"modules": {"speed": -1, "prod": 0}}
		},
		"raw_supply_per_min": {"iron_ore": 1000}
	}`

	p, err := factory.Parse(strings.NewReader(input))
	require.NoError(t, err)

	res, err := factory.Solve(p, factory.Options{})
	require.NoError(t, err)

	require.Equal(t, "infeasible", res.Status)
	require.InDelta(t, 0.0, res.MaxFeasibleTarget, 1e-9)
}
