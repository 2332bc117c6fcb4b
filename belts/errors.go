package belts

import "errors"

var (
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrInvalidRole   = errors.New("role must be source, sink, internal, or empty")
	ErrNegativeCap   = errors.New("node cap must be non-negative")
	ErrNoSink        = errors.New("at least one sink node is required")
	ErrUnknownNode   = errors.New("edge references an unknown node")
	ErrNegativeBound = errors.New("edge lo must be non-negative")
	ErrInvalidBounds = errors.New("edge hi must be >= lo")
)
