package network

import "math"

// FlowOptions configures MaxFlow. An Epsilon of zero or below (as in
// the zero value) makes MaxFlow use DefaultFlowOptions' tolerance.
type FlowOptions struct {
	// Epsilon treats residual capacities at or below it as zero, the
	// same absolute tolerance used by the lp package.
	Epsilon float64
}

// DefaultFlowOptions returns the fixed tolerance used throughout this
// module (1e-9).
func DefaultFlowOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9}
}

// residualEdge is one directed arc of the residual network. Edges are
// always appended in forward/reverse pairs: edges[2k] is the forward
// arc added by AddEdge, edges[2k+1] its paired reverse arc, so the
// partner of edge i is always i^1.
type residualEdge struct {
	to   int
	cap  float64
	orig float64
}

// FlowGraph is a capacitated directed graph over node indices
// [0, NumNodes), built incrementally with AddNode/AddEdge and solved
// with MaxFlow. It is the low-level numeric kernel; the belts package
// owns the domain-specific transform (node splitting, lower-bound
// elimination, super-source/sink) that produces the FlowGraph this
// type operates on.
type FlowGraph struct {
	adj   [][]int
	edges []residualEdge
}

// NewFlowGraph returns an empty graph with n nodes and no edges.
func NewFlowGraph(n int) *FlowGraph {
	return &FlowGraph{adj: make([][]int, n)}
}

// AddNode appends a fresh node and returns its index.
func (fg *FlowGraph) AddNode() int {
	fg.adj = append(fg.adj, nil)
	return len(fg.adj) - 1
}

// NumNodes reports the current node count.
func (fg *FlowGraph) NumNodes() int { return len(fg.adj) }

// AddEdge adds a directed arc u→v with capacity cap (and an implicit
// zero-capacity reverse arc for residual bookkeeping), returning the
// forward arc's index — the handle used by Flow and TightEdge. Edges
// are iterated in insertion order during BFS, which is what makes
// MaxFlow deterministic across repeated runs on the same input.
func (fg *FlowGraph) AddEdge(u, v int, cap float64) (int, error) {
	if u < 0 || u >= len(fg.adj) || v < 0 || v >= len(fg.adj) {
		return 0, ErrNodeOutOfRange
	}
	if cap < -1e-9 {
		return 0, ErrNegativeCapacity
	}
	if cap < 0 {
		cap = 0
	}
	idx := len(fg.edges)
	fg.edges = append(fg.edges, residualEdge{to: v, cap: cap, orig: cap})
	fg.adj[u] = append(fg.adj[u], idx)
	fg.edges = append(fg.edges, residualEdge{to: u, cap: 0, orig: 0})
	fg.adj[v] = append(fg.adj[v], idx+1)
	return idx, nil
}

// from returns the tail node of edge i, recovered from its paired
// reverse arc's head.
func (fg *FlowGraph) from(i int) int { return fg.edges[i^1].to }

// Flow reports the net flow carried by the forward arc returned from
// AddEdge: its original capacity minus whatever residual capacity
// remains after MaxFlow.
func (fg *FlowGraph) Flow(idx int) float64 {
	return fg.edges[idx].orig - fg.edges[idx].cap
}

// TightEdge reports whether the forward arc idx has its residual
// capacity saturated to within eps — i.e. flow == original capacity.
func (fg *FlowGraph) TightEdge(idx int, eps float64) bool {
	return fg.edges[idx].cap <= eps
}

// Disable zeroes both arcs of the edge pair containing idx, removing
// it (and any flow it still carries as residual capacity) from future
// augmenting paths. Used to retire the feasibility pass's
// super-source/sink and circulation-closing edges before the
// maximization pass reuses the same residual graph.
func (fg *FlowGraph) Disable(idx int) {
	pair := idx &^ 1
	fg.edges[pair].cap = 0
	fg.edges[pair+1].cap = 0
}

// MaxFlow augments source→sink via Edmonds–Karp (BFS shortest
// augmenting path) until none remains, mutating residual capacities
// in place, and returns the total flow pushed by this call. Calling
// MaxFlow again after adding fresh edges/nodes resumes augmentation
// on the already-partially-saturated graph — this is how the belts
// maximization pass builds on the feasibility pass's residual state.
func (fg *FlowGraph) MaxFlow(source, sink int, opts FlowOptions) (float64, error) {
	n := len(fg.adj)
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return 0, ErrNodeOutOfRange
	}
	eps := opts.Epsilon
	if eps <= 0 {
		eps = DefaultFlowOptions().Epsilon
	}

	var total float64
	parentEdge := make([]int, n)
	visited := make([]bool, n)
	for {
		for i := range parentEdge {
			parentEdge[i] = -1
			visited[i] = false
		}
		visited[source] = true
		queue := []int{source}
		for qi := 0; qi < len(queue) && !visited[sink]; qi++ {
			u := queue[qi]
			for _, idx := range fg.adj[u] {
				e := fg.edges[idx]
				if e.cap > eps && !visited[e.to] {
					visited[e.to] = true
					parentEdge[e.to] = idx
					queue = append(queue, e.to)
				}
			}
		}
		if !visited[sink] {
			break
		}

		bottleneck := math.Inf(1)
		for v := sink; v != source; {
			idx := parentEdge[v]
			if fg.edges[idx].cap < bottleneck {
				bottleneck = fg.edges[idx].cap
			}
			v = fg.from(idx)
		}
		for v := sink; v != source; {
			idx := parentEdge[v]
			fg.edges[idx].cap -= bottleneck
			fg.edges[idx^1].cap += bottleneck
			v = fg.from(idx)
		}
		total += bottleneck
	}
	return total, nil
}

// ReachableFrom returns, for every node, whether it is reachable from
// source in the current residual graph (positive-capacity arcs only).
// After an infeasible MaxFlow(S*, T*) run this is the reachable side
// of the minimum cut.
func (fg *FlowGraph) ReachableFrom(source int, eps float64) []bool {
	n := len(fg.adj)
	visited := make([]bool, n)
	visited[source] = true
	queue := []int{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, idx := range fg.adj[u] {
			e := fg.edges[idx]
			if e.cap > eps && !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return visited
}
