package verify

import (
	"fmt"

	"github.com/foundry-sim/factoryflow/belts"
)

// Belts reloads a belts.Problem and its belts.Result and recomputes
// every constraint from its mathematical definition, independent of
// how the solver reached its answer.
func Belts(p *belts.Problem, res belts.Result) error {
	switch res.Status {
	case "ok":
		return beltsOK(p, res)
	case "infeasible":
		return beltsInfeasible(p, res)
	default:
		return fmt.Errorf("%w: unknown status %q", ErrViolation, res.Status)
	}
}

func beltsOK(p *belts.Problem, res belts.Result) error {
	if len(res.Flows) != len(p.Edges) {
		return fmt.Errorf("%w: %d reported flows, expected one per input edge (%d)",
			ErrViolation, len(res.Flows), len(p.Edges))
	}

	inflow := make([]float64, len(p.Nodes))
	outflow := make([]float64, len(p.Nodes))

	for i, e := range p.Edges {
		flow := res.Flows[i].Flow
		if flow < e.Lo-absTolerance || flow > e.Hi+absTolerance {
			return fmt.Errorf("%w: edge %s->%s flow %g outside [%g, %g]",
				ErrViolation, p.NodeName(e.From), p.NodeName(e.To), flow, e.Lo, e.Hi)
		}
		outflow[e.From] += flow
		inflow[e.To] += flow
	}

	sinkSet := make(map[int]bool, len(p.Sinks))
	for _, s := range p.Sinks {
		sinkSet[s] = true
	}
	sourceSet := make(map[int]bool, len(p.Sources))
	for _, s := range p.Sources {
		sourceSet[s] = true
	}

	for i := range p.Nodes {
		if sourceSet[i] || sinkSet[i] {
			continue
		}
		if !closeEnough(inflow[i], outflow[i]) {
			return fmt.Errorf("%w: node %s inflow %g != outflow %g",
				ErrViolation, p.NodeName(i), inflow[i], outflow[i])
		}
		if p.Cap[i] != nil && !lessOrEqual(inflow[i], *p.Cap[i]) {
			return fmt.Errorf("%w: node %s inflow %g exceeds cap %g",
				ErrViolation, p.NodeName(i), inflow[i], *p.Cap[i])
		}
	}

	var sinkInflow float64
	for _, s := range p.Sinks {
		sinkInflow += inflow[s]
		if p.Cap[s] != nil && !lessOrEqual(inflow[s], *p.Cap[s]) {
			return fmt.Errorf("%w: sink %s inflow %g exceeds cap %g",
				ErrViolation, p.NodeName(s), inflow[s], *p.Cap[s])
		}
	}
	if !closeEnough(sinkInflow, res.MaxFlowPerMin) {
		return fmt.Errorf("%w: sum of sink inflow %g != reported max_flow_per_min %g",
			ErrViolation, sinkInflow, res.MaxFlowPerMin)
	}

	return nil
}

// beltsInfeasible checks that cut_reachable forms a valid s-t cut whose
// capacity is strictly less than the total demand the lower bounds
// impose, and that the reported demand_balance matches the resulting
// shortfall.
func beltsInfeasible(p *belts.Problem, res belts.Result) error {
	if res.Deficit == nil {
		return fmt.Errorf("%w: infeasible result missing deficit", ErrViolation)
	}
	if res.Deficit.DemandBalance <= absTolerance {
		return fmt.Errorf("%w: reported demand_balance %g is not positive",
			ErrViolation, res.Deficit.DemandBalance)
	}

	reachable := make(map[string]bool, len(res.CutReachable))
	for _, id := range res.CutReachable {
		reachable[id] = true
	}

	var cutCapacity float64
	for _, e := range p.Edges {
		from, to := p.NodeName(e.From), p.NodeName(e.To)
		if reachable[from] && !reachable[to] {
			cutCapacity += e.Hi - e.Lo
		}
	}

	excess := make([]float64, len(p.Nodes))
	for _, e := range p.Edges {
		excess[e.To] += e.Lo
		excess[e.From] -= e.Lo
	}
	var totalDemand float64
	for _, ex := range excess {
		if ex > 0 {
			totalDemand += ex
		}
	}

	// A valid s-t cut separating the excess supply from its sink must
	// have capacity strictly below the demand the lower bounds impose.
	if cutCapacity >= totalDemand-absTolerance {
		return fmt.Errorf("%w: cut capacity %g is not below total demand %g",
			ErrViolation, cutCapacity, totalDemand)
	}
	if !closeEnough(totalDemand-cutCapacity, res.Deficit.DemandBalance) {
		return fmt.Errorf("%w: demand_balance %g does not match recomputed shortfall %g",
			ErrViolation, res.Deficit.DemandBalance, totalDemand-cutCapacity)
	}

	return nil
}
