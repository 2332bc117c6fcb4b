package belts

import (
	"math"

	"github.com/foundry-sim/factoryflow/network"
)

// Solve runs the two-pass bounded-flow reduction: a feasibility pass
// checks the lower bounds are satisfiable, then a maximization pass
// computes the maximum flow subject to them.
func Solve(p *Problem) (Result, error) {
	fg, exp := buildExpansion(p)
	opts := network.DefaultFlowOptions()

	feasibleFlow, err := fg.MaxFlow(exp.superSourceF, exp.superSinkF, opts)
	if err != nil {
		return Result{}, err
	}

	if feasibleFlow < exp.totalPositiveExcess-tolerance {
		return infeasibleResult(p, fg, exp, feasibleFlow), nil
	}

	retireFeasibilityPass(fg, exp)

	superSource2 := fg.AddNode()
	superSink2 := fg.AddNode()
	if _, err := fg.AddEdge(superSource2, exp.preSource, math.Inf(1)); err != nil {
		return Result{}, err
	}
	if _, err := fg.AddEdge(exp.postSink, superSink2, math.Inf(1)); err != nil {
		return Result{}, err
	}
	if _, err := fg.MaxFlow(superSource2, superSink2, opts); err != nil {
		return Result{}, err
	}

	return okResult(p, fg, exp), nil
}

func okResult(p *Problem, fg *network.FlowGraph, exp *expansion) Result {
	flows := make([]FlowEdge, len(p.Edges))
	var maxFlow float64
	sinkSet := make(map[int]bool, len(p.Sinks))
	for _, s := range p.Sinks {
		sinkSet[s] = true
	}

	for i, e := range p.Edges {
		mapped := fg.Flow(exp.edgeIdx[i]) + e.Lo
		flows[i] = FlowEdge{From: p.NodeName(e.From), To: p.NodeName(e.To), Flow: mapped}
		if sinkSet[e.To] {
			maxFlow += mapped
		}
	}

	return Result{Status: "ok", MaxFlowPerMin: maxFlow, Flows: flows}
}

func infeasibleResult(p *Problem, fg *network.FlowGraph, exp *expansion, feasibleFlow float64) Result {
	reachable := fg.ReachableFrom(exp.superSourceF, tolerance)

	var cutReachable []string
	for i := range p.Nodes {
		if reachable[exp.inIdx[i]] {
			cutReachable = append(cutReachable, p.NodeName(i))
		}
	}

	var tightNodes []string
	for i := range p.Nodes {
		if exp.nodeCapEdge[i] >= 0 && fg.TightEdge(exp.nodeCapEdge[i], tolerance) {
			tightNodes = append(tightNodes, p.NodeName(i))
		}
	}

	var tightEdges []EdgeRef
	for i, e := range p.Edges {
		if fg.TightEdge(exp.edgeIdx[i], tolerance) {
			tightEdges = append(tightEdges, EdgeRef{From: p.NodeName(e.From), To: p.NodeName(e.To)})
		}
	}

	return Result{
		Status:       "infeasible",
		CutReachable: cutReachable,
		Deficit: &Deficit{
			DemandBalance: exp.totalPositiveExcess - feasibleFlow,
			TightNodes:    tightNodes,
			TightEdges:    tightEdges,
		},
	}
}
