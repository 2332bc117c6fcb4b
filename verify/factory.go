package verify

import (
	"fmt"

	"github.com/foundry-sim/factoryflow/factory"
)

// Factory reloads a factory.Problem and its factory.Result and
// recomputes every constraint from its mathematical definition,
// independent of how the solver reached its answer.
func Factory(p *factory.Problem, res factory.Result) error {
	switch res.Status {
	case "ok":
		return factoryOK(p, res)
	case "infeasible":
		return factoryInfeasible(p, res)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrViolation, res.Status)
	}
}

func factoryOK(p *factory.Problem, res factory.Result) error {
	craftsPerMin := make([]float64, len(p.Recipes))
	for i, r := range p.Recipes {
		craftsPerMin[i] = res.PerRecipeCraftsPerMin[r.Name]
	}

	for item := range p.Items {
		var net float64
		for i, r := range p.Recipes {
			net += (r.Out[item] - r.In[item]) * craftsPerMin[i]
		}

		cap, isRaw := p.RawCapByItem[item]
		switch {
		case item == p.TargetItemIdx:
			if !closeEnough(net, p.TargetRate) {
				return fmt.Errorf("%w: item %s net production %g != target rate %g",
					ErrViolation, p.ItemName(item), net, p.TargetRate)
			}
		case isRaw:
			consumption := -net
			if !lessOrEqual(consumption, cap) {
				return fmt.Errorf("%w: raw %s consumption %g exceeds cap %g",
					ErrViolation, p.ItemName(item), consumption, cap)
			}
			if reported, ok := res.RawConsumptionPerMin[p.ItemName(item)]; ok && !closeEnough(reported, consumption) {
				return fmt.Errorf("%w: raw %s reported consumption %g != recomputed %g",
					ErrViolation, p.ItemName(item), reported, consumption)
			}
		default:
			if !closeEnough(net, 0) {
				return fmt.Errorf("%w: intermediate %s net production %g != 0",
					ErrViolation, p.ItemName(item), net)
			}
		}
	}

	usage := make([]float64, len(p.Machines))
	for i, r := range p.Recipes {
		usage[r.MachineIdx] += craftsPerMin[i] / r.EffCraftsPerMin
	}
	for mi := range p.Machines {
		if p.Machines[mi].MaxMachines == nil {
			continue
		}
		if !lessOrEqual(usage[mi], float64(*p.Machines[mi].MaxMachines)) {
			return fmt.Errorf("%w: machine %s utilization %g exceeds cap %d",
				ErrViolation, p.MachineName(mi), usage[mi], *p.Machines[mi].MaxMachines)
		}
	}

	return nil
}

// factoryInfeasible checks that the problem with target_rate replaced
// by max_feasible_target is itself feasible.
func factoryInfeasible(p *factory.Problem, res factory.Result) error {
	relaxed := *p
	relaxed.TargetRate = res.MaxFeasibleTarget
	replayed, err := factory.Solve(&relaxed, factory.Options{})
	if err != nil {
		return fmt.Errorf("%w: replay at max_feasible_target failed: %v", ErrViolation, err)
	}
	if replayed.Status != "ok" {
		return fmt.Errorf("%w: problem at max_feasible_target=%g is still infeasible",
			ErrViolation, res.MaxFeasibleTarget)
	}
	return nil
}
