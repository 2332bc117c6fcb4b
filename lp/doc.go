// Package lp implements a small two-phase primal simplex solver over a
// dense tableau backed by gonum.org/v1/gonum/mat.
//
// A Model is an arena of continuous variables x_j >= 0, a set of
// equality or "<=" Constraints over those variables, and a linear
// objective to minimize. Solve runs phase 1 (minimize the sum of
// artificial variables, to test feasibility) and, if phase 1 reaches
// zero, phase 2 (minimize the real objective starting from the
// phase-1 basis).
//
// gonum's own gonum.org/v1/gonum/optimize/convex/lp.Simplex is not
// used here: it returns only the optimal point, not the per-row slack
// that the factory model builder needs for its bottleneck diagnostics.
// Building the tableau directly on *mat.Dense keeps every row's slack
// inspectable after the solve.
//
// Determinism is achieved with Bland's anti-cycling rule: the entering
// column is always the lowest-index column with a negative reduced
// cost, and ties in the minimum-ratio leaving-row test are broken by
// the lowest basic-variable index. The same Model therefore always
// pivots through the same sequence of bases.
package lp
