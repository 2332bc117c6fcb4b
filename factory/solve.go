package factory

import "github.com/foundry-sim/factoryflow/lp"

// Solve runs the two-phase factory LP. On success it
// returns the minimum-machine production schedule; on infeasibility
// it rebuilds the model with the target rate replaced by a maximized
// free variable and returns max_feasible_target plus bottleneck hints.
func Solve(p *Problem, opts Options) (Result, error) {
	model, meta := buildModel(p, opts, p.TargetRate, false)
	sol, err := lp.Solve(model)
	if err != nil {
		return Result{}, err
	}
	if sol.Status == lp.StatusOptimal {
		return extractOK(p, &meta, sol), nil
	}

	fallback, fmeta := buildModel(p, opts, 0, true)
	fsol, err := lp.Solve(fallback)
	if err != nil {
		return Result{}, err
	}
	if fsol.Status != lp.StatusOptimal {
		// t = 0 (no production at all) is always feasible for the
		// fallback model, so this only triggers if the raw/machine
		// caps conflict with each other independent of the target —
		// report it as a zero-throughput infeasibility.
		return Result{Status: "infeasible", Bottlenecks: []string{"no feasible production plan exists at any target rate"}}, nil
	}
	return extractInfeasible(p, &fmeta, fsol), nil
}
