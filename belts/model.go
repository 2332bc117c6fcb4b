package belts

import (
	"math"

	"github.com/foundry-sim/factoryflow/network"
)

const tolerance = 1e-9

// expansion holds the bookkeeping needed to run the feasibility and
// maximization passes over a built network.FlowGraph and to map its
// residual state back onto the original problem.
type expansion struct {
	inIdx, outIdx []int // per original node -> flow graph node
	edgeIdx       []int // per original edge -> forward transformed edge
	nodeCapEdge   []int // per capped original node -> its split edge, else -1

	preSource, postSink      int
	superSourceF, superSinkF int
	excessEdges              []int // edges incident to superSourceF/superSinkF
	circulationEdge          int
	totalPositiveExcess      float64
}

// buildExpansion performs node-splitting and lower-bound elimination,
// and wires the super-source/super-sink circulation that makes the
// feasibility pass an ordinary max-flow computation.
func buildExpansion(p *Problem) (*network.FlowGraph, *expansion) {
	fg := network.NewFlowGraph(0)
	exp := &expansion{
		inIdx:       make([]int, len(p.Nodes)),
		outIdx:      make([]int, len(p.Nodes)),
		edgeIdx:     make([]int, len(p.Edges)),
		nodeCapEdge: make([]int, len(p.Nodes)),
	}

	for i := range p.Nodes {
		if p.Cap[i] != nil {
			in := fg.AddNode()
			out := fg.AddNode()
			idx, _ := fg.AddEdge(in, out, *p.Cap[i])
			exp.inIdx[i], exp.outIdx[i], exp.nodeCapEdge[i] = in, out, idx
		} else {
			n := fg.AddNode()
			exp.inIdx[i], exp.outIdx[i], exp.nodeCapEdge[i] = n, n, -1
		}
	}

	// Aggregator nodes stand in for "the source" and "the sink" in the
	// circulation construction, whether there are zero, one, or many of
	// either.
	exp.preSource = fg.AddNode()
	exp.postSink = fg.AddNode()
	for _, s := range p.Sources {
		fg.AddEdge(exp.preSource, exp.inIdx[s], math.Inf(1))
	}
	for _, t := range p.Sinks {
		fg.AddEdge(exp.outIdx[t], exp.postSink, math.Inf(1))
	}

	excess := make([]float64, len(p.Nodes))
	for i, e := range p.Edges {
		idx, _ := fg.AddEdge(exp.outIdx[e.From], exp.inIdx[e.To], e.Hi-e.Lo)
		exp.edgeIdx[i] = idx
		excess[e.To] += e.Lo
		excess[e.From] -= e.Lo
	}

	exp.superSourceF = fg.AddNode()
	exp.superSinkF = fg.AddNode()
	for i, ex := range excess {
		switch {
		case ex > tolerance:
			idx, _ := fg.AddEdge(exp.superSourceF, exp.inIdx[i], ex)
			exp.excessEdges = append(exp.excessEdges, idx)
			exp.totalPositiveExcess += ex
		case ex < -tolerance:
			idx, _ := fg.AddEdge(exp.outIdx[i], exp.superSinkF, -ex)
			exp.excessEdges = append(exp.excessEdges, idx)
		}
	}

	exp.circulationEdge, _ = fg.AddEdge(exp.postSink, exp.preSource, math.Inf(1))
	return fg, exp
}

// retireFeasibilityPass disables the helper edges that made the
// feasibility pass a self-contained max-flow problem (the
// super-source/super-sink edges and the circulation-closing edge), so
// the maximization pass's fresh super-source/sink don't interact with
// them.
func retireFeasibilityPass(fg *network.FlowGraph, exp *expansion) {
	for _, idx := range exp.excessEdges {
		fg.Disable(idx)
	}
	fg.Disable(exp.circulationEdge)
}
