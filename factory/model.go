package factory

import "github.com/foundry-sim/factoryflow/lp"

// Options configures the rarely-varied knobs the reference
// implementation exposes.
type Options struct {
	// ApplyProductivity multiplies Out quantities by (1+Prod) in the
	// conservation constraints when true. The reference sample
	// outputs omit this multiplication; default false preserves that
	// behavior.
	ApplyProductivity bool
}

// rowKind classifies a constraint row for bottleneck diagnostics:
// only raw and machine rows (both inequalities) are ever reported as
// bottlenecks.
type rowKind int

const (
	rowTarget rowKind = iota
	rowIntermediate
	rowRaw
	rowMachine
	rowZeroRate
)

type rowMeta struct {
	Kind      rowKind
	ItemIdx   int // valid for rowRaw, rowTarget, rowIntermediate
	MachineIdx int // valid for rowMachine
}

// modelMeta accompanies an *lp.Model built by buildModel (primary or
// fallback form) with enough bookkeeping to extract a Result from its lp.Solution.
type modelMeta struct {
	Rows []rowMeta
	// PerMachineCoeff[r] is 1/eff_r, the coefficient a recipe
	// contributes to its machine class's capacity row and to the
	// machine-minimizing objective.
	PerMachineCoeff []float64
	// FreeVarIdx is the fallback model's free target-rate variable t,
	// or -1 for the primary model.
	FreeVarIdx int
}

func outCoeff(p *Problem, r *recipe, item int, opts Options) float64 {
	q, ok := r.Out[item]
	if !ok {
		return 0
	}
	if opts.ApplyProductivity {
		return q * (1 + r.Prod)
	}
	return q
}

// buildModel builds the primary LP: one variable per
// recipe, conservation rows for every item, capacity rows for every
// bounded machine class, and an objective minimizing total machines
// used. targetRate overrides p.TargetRate as the target row's RHS.
// With withFreeTarget set, the same rows are built for the fallback
// model instead: the target row's RHS is replaced by a free variable
// t, and the objective maximizes t.
func buildModel(p *Problem, opts Options, targetRate float64, withFreeTarget bool) (*lp.Model, modelMeta) {
	m := lp.NewModel(len(p.Recipes))
	coeff := make([]float64, len(p.Recipes))
	for r := range p.Recipes {
		if eff := p.Recipes[r].EffCraftsPerMin; eff > lp.Tolerance {
			coeff[r] = 1 / eff
		}
		// eff_r <= 0 only arises at the speed=-1 boundary of the
		// module-loadout invariant (speed >= -1): the machine is
		// fully stopped and the recipe can craft nothing per minute.
		// coeff[r] stays 0 here rather than 1/0, and the recipe's
		// variable is pinned to zero by an explicit row below instead
		// of being divided into the machine-capacity row/objective.
	}

	meta := modelMeta{PerMachineCoeff: coeff, FreeVarIdx: -1}

	freeVar := -1
	if withFreeTarget {
		freeVar = m.AddVar()
		meta.FreeVarIdx = freeVar
	}

	for r := range p.Recipes {
		if p.Recipes[r].EffCraftsPerMin > lp.Tolerance {
			continue
		}
		m.AddConstraint(lp.Constraint{
			Coeffs: map[int]float64{r: 1},
			Sense:  lp.Leq,
			RHS:    0,
			Label:  "zero-rate:" + p.Recipes[r].Name,
		})
		meta.Rows = append(meta.Rows, rowMeta{Kind: rowZeroRate})
	}

	for item := range p.Items {
		coeffs := make(map[int]float64)
		for r := range p.Recipes {
			net := outCoeff(p, &p.Recipes[r], item, opts) - p.Recipes[r].In[item]
			if net != 0 {
				coeffs[r] = net
			}
		}

		rawCap, isRaw := p.RawCapByItem[item]

		switch {
		case item == p.TargetItemIdx:
			rhs := targetRate
			if withFreeTarget {
				coeffs[freeVar] = -1
				rhs = 0
			}
			m.AddConstraint(lp.Constraint{Coeffs: coeffs, Sense: lp.Eq, RHS: rhs, Label: "target:" + p.ItemName(item)})
			meta.Rows = append(meta.Rows, rowMeta{Kind: rowTarget, ItemIdx: item})
		case isRaw:
			// consumption - production <= cap; invert sign of the
			// production-minus-consumption coefficients above.
			inv := make(map[int]float64, len(coeffs))
			for r, v := range coeffs {
				inv[r] = -v
			}
			m.AddConstraint(lp.Constraint{Coeffs: inv, Sense: lp.Leq, RHS: rawCap, Label: "raw:" + p.ItemName(item)})
			meta.Rows = append(meta.Rows, rowMeta{Kind: rowRaw, ItemIdx: item})
		default:
			m.AddConstraint(lp.Constraint{Coeffs: coeffs, Sense: lp.Eq, RHS: 0, Label: "item:" + p.ItemName(item)})
			meta.Rows = append(meta.Rows, rowMeta{Kind: rowIntermediate, ItemIdx: item})
		}
	}

	for mi := range p.Machines {
		if p.Machines[mi].MaxMachines == nil {
			continue
		}
		coeffs := make(map[int]float64)
		for r := range p.Recipes {
			if p.Recipes[r].MachineIdx == mi {
				coeffs[r] = coeff[r]
			}
		}
		m.AddConstraint(lp.Constraint{
			Coeffs: coeffs,
			Sense:  lp.Leq,
			RHS:    float64(*p.Machines[mi].MaxMachines),
			Label:  "machine:" + p.MachineName(mi),
		})
		meta.Rows = append(meta.Rows, rowMeta{Kind: rowMachine, MachineIdx: mi})
	}

	objective := make([]float64, m.NumVars)
	if withFreeTarget {
		objective[freeVar] = -1 // maximize t == minimize -t
	} else {
		for r := range p.Recipes {
			objective[r] = coeff[r]
		}
	}
	m.SetObjective(objective)

	return m, meta
}
