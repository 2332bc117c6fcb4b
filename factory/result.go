package factory

import (
	"fmt"
	"math"

	"github.com/foundry-sim/factoryflow/lp"
)

const tolerance = lp.Tolerance

// Result is the factory solver's output document.
type Result struct {
	Status                string             `json:"status"`
	PerRecipeCraftsPerMin map[string]float64 `json:"per_recipe_crafts_per_min,omitempty"`
	PerMachineCounts      map[string]int     `json:"per_machine_counts,omitempty"`
	RawConsumptionPerMin  map[string]float64 `json:"raw_consumption_per_min,omitempty"`
	MaxFeasibleTarget     float64            `json:"max_feasible_target,omitempty"`
	Bottlenecks           []string           `json:"bottlenecks,omitempty"`
}

func extractOK(p *Problem, meta *modelMeta, sol lp.Solution) Result {
	res := Result{
		Status:                "ok",
		PerRecipeCraftsPerMin: map[string]float64{},
		PerMachineCounts:      map[string]int{},
		RawConsumptionPerMin:  map[string]float64{},
	}

	for r := range p.Recipes {
		if sol.X[r] > tolerance {
			res.PerRecipeCraftsPerMin[p.Recipes[r].Name] = sol.X[r]
		}
	}

	machineUsage := make([]float64, len(p.Machines))
	for r := range p.Recipes {
		machineUsage[p.Recipes[r].MachineIdx] += sol.X[r] * meta.PerMachineCoeff[r]
	}
	for mi, usage := range machineUsage {
		if usage > tolerance {
			res.PerMachineCounts[p.MachineName(mi)] = int(math.Ceil(usage - tolerance))
		}
	}

	for i, row := range meta.Rows {
		if row.Kind != rowRaw {
			continue
		}
		cap := p.RawCapByItem[row.ItemIdx]
		consumption := cap - sol.Slack[i]
		if math.Abs(consumption) < tolerance {
			consumption = 0
		}
		res.RawConsumptionPerMin[p.ItemName(row.ItemIdx)] = consumption
	}

	return res
}

func extractInfeasible(p *Problem, meta *modelMeta, sol lp.Solution) Result {
	maxFeasible := sol.X[meta.FreeVarIdx]
	if maxFeasible < tolerance {
		maxFeasible = 0
	}

	var hints []string
	for i, row := range meta.Rows {
		if sol.Slack[i] > tolerance {
			continue
		}
		switch row.Kind {
		case rowRaw:
			hints = append(hints, fmt.Sprintf("raw supply cap reached for %s", p.ItemName(row.ItemIdx)))
		case rowMachine:
			hints = append(hints, fmt.Sprintf("machine capacity reached for %s", p.MachineName(row.MachineIdx)))
		}
	}

	return Result{
		Status:            "infeasible",
		MaxFeasibleTarget: maxFeasible,
		Bottlenecks:       hints,
	}
}
