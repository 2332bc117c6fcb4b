package lp

import "errors"

// Sentinel errors returned by Solve and Model validation.
var (
	// ErrNoVariables is returned when a Model has zero variables.
	ErrNoVariables = errors.New("lp: model has no variables")

	// ErrUnbounded is returned when phase 2 finds an entering column
	// with no positive entry to bound the ratio test — the objective
	// decreases without limit.
	ErrUnbounded = errors.New("lp: objective is unbounded")

	// ErrIterationLimit is returned when a phase fails to reach
	// optimality within the configured pivot budget. With Bland's
	// rule this should never trigger on well-posed models; it guards
	// against a malformed Model producing a degenerate tableau.
	ErrIterationLimit = errors.New("lp: simplex iteration limit exceeded")
)
