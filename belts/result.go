package belts

// FlowEdge is one reported edge flow in the original graph.
type FlowEdge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

// EdgeRef names an edge by its endpoints, used for tight_edges.
type EdgeRef struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Deficit reports why a belts instance is infeasible.
type Deficit struct {
	DemandBalance float64   `json:"demand_balance"`
	TightNodes    []string  `json:"tight_nodes"`
	TightEdges    []EdgeRef `json:"tight_edges"`
}

// Result is the belts solver's output document.
type Result struct {
	Status        string     `json:"status"`
	MaxFlowPerMin float64    `json:"max_flow_per_min,omitempty"`
	Flows         []FlowEdge `json:"flows,omitempty"`
	CutReachable  []string   `json:"cut_reachable,omitempty"`
	Deficit       *Deficit   `json:"deficit,omitempty"`
}
