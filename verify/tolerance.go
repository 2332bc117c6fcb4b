package verify

import "math"

// Verifier tolerance is looser than the solvers' own 1e-9 absolute:
// 1e-6 relative, 1e-9 absolute, combined the usual way so
// large-magnitude quantities aren't held to an unreasonably tight
// absolute bound.
const (
	relTolerance = 1e-6
	absTolerance = 1e-9
)

func closeEnough(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Abs(a)
	if math.Abs(b) > scale {
		scale = math.Abs(b)
	}
	return diff <= absTolerance+relTolerance*scale
}

func lessOrEqual(a, b float64) bool {
	return a <= b+absTolerance+relTolerance*math.Abs(b)
}
