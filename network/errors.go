package network

import "errors"

// Sentinel errors returned by FlowGraph construction and MaxFlow.
var (
	// ErrNodeOutOfRange is returned when an edge or terminal refers to
	// a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrNegativeCapacity is returned when AddEdge is given a capacity
	// below -Epsilon.
	ErrNegativeCapacity = errors.New("network: negative edge capacity")
)
