package belts

import (
	"encoding/json"
	"fmt"
	"io"
)

// Input is the JSON envelope a belts problem arrives in. Nodes and
// Edges arrive as arrays, so their input order is preserved by
// decoding alone — no separate sort step is needed (unlike factory's
// maps).
type Input struct {
	Nodes []nodeInput `json:"nodes"`
	Edges []edgeInput `json:"edges"`
}

type nodeInput struct {
	ID   string   `json:"id"`
	Role string   `json:"role"`
	Cap  *float64 `json:"cap"`
}

type edgeInput struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Lo   float64 `json:"lo"`
	Hi   float64 `json:"hi"`
}

// edge is an original edge addressed by node arena index.
type edge struct {
	From, To int
	Lo, Hi   float64
}

// Problem is a parsed belts instance. Nodes and Edges are flat arenas
// in input order; nodeIndex is the name↔index bimap kept at the I/O
// boundary and never threaded into the flow model builder.
type Problem struct {
	Nodes     []string
	nodeIndex map[string]int
	Role      []string // "source", "sink", or "internal"
	Cap       []*float64
	Edges     []edge
	Sources   []int
	Sinks     []int
}

// NodeName reports the identifier of node i.
func (p *Problem) NodeName(i int) string { return p.Nodes[i] }

// Parse reads a belts Input document from r and validates it,
// returning an arena-indexed Problem.
func Parse(r io.Reader) (*Problem, error) {
	var in Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("belts: decode input: %w", err)
	}

	nodeIndex := make(map[string]int, len(in.Nodes))
	nodes := make([]string, len(in.Nodes))
	roles := make([]string, len(in.Nodes))
	caps := make([]*float64, len(in.Nodes))
	var sources, sinks []int

	for i, n := range in.Nodes {
		if _, dup := nodeIndex[n.ID]; dup {
			return nil, fmt.Errorf("belts: node %s: %w", n.ID, ErrDuplicateNode)
		}
		role := n.Role
		switch role {
		case "":
			role = "internal"
		case "source", "sink", "internal":
		default:
			return nil, fmt.Errorf("belts: node %s: %w", n.ID, ErrInvalidRole)
		}
		if n.Cap != nil && *n.Cap < 0 {
			return nil, fmt.Errorf("belts: node %s: %w", n.ID, ErrNegativeCap)
		}

		nodeIndex[n.ID] = i
		nodes[i] = n.ID
		roles[i] = role
		caps[i] = n.Cap
		switch role {
		case "source":
			sources = append(sources, i)
		case "sink":
			sinks = append(sinks, i)
		}
	}
	if len(sinks) == 0 {
		return nil, fmt.Errorf("belts: %w", ErrNoSink)
	}

	edges := make([]edge, len(in.Edges))
	for i, e := range in.Edges {
		from, ok := nodeIndex[e.From]
		if !ok {
			return nil, fmt.Errorf("belts: edge %d: %s: %w", i, e.From, ErrUnknownNode)
		}
		to, ok := nodeIndex[e.To]
		if !ok {
			return nil, fmt.Errorf("belts: edge %d: %s: %w", i, e.To, ErrUnknownNode)
		}
		if e.Lo < 0 {
			return nil, fmt.Errorf("belts: edge %d: %w", i, ErrNegativeBound)
		}
		if e.Hi < e.Lo {
			return nil, fmt.Errorf("belts: edge %d: %w", i, ErrInvalidBounds)
		}
		edges[i] = edge{From: from, To: to, Lo: e.Lo, Hi: e.Hi}
	}

	return &Problem{
		Nodes:     nodes,
		nodeIndex: nodeIndex,
		Role:      roles,
		Cap:       caps,
		Edges:     edges,
		Sources:   sources,
		Sinks:     sinks,
	}, nil
}
