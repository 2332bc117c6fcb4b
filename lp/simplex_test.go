// ErrIterationLimit is not exercised directly below: it guards a
// malformed Model against a degenerate tableau, but Bland's
// anti-cycling rule guarantees termination on any well-posed model, so
// there is no well-posed construction that drives a real Model into
// that ceiling.
package lp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundry-sim/factoryflow/lp"
)

func TestSolveNoVariables(t *testing.T) {
	m := lp.NewModel(0)

	_, err := lp.Solve(m)
	require.ErrorIs(t, err, lp.ErrNoVariables)
}

// A single unconstrained variable with a strictly decreasing objective
// has no finite optimum: phase 1 is trivially feasible (there are no
// rows to satisfy), and phase 2's ratio test finds no leaving row to
// bound how far x0 can grow.
func TestSolveUnbounded(t *testing.T) {
	m := lp.NewModel(1)
	m.SetObjective([]float64{-1})

	_, err := lp.Solve(m)
	require.ErrorIs(t, err, lp.ErrUnbounded)
}

// Two equality rows over the same single variable pin it to two
// different values, which phase 1 can never simultaneously satisfy.
func TestSolvePhase1Infeasible(t *testing.T) {
	m := lp.NewModel(1)
	m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{0: 1}, Sense: lp.Eq, RHS: 5, Label: "a"})
	m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{0: 1}, Sense: lp.Eq, RHS: 1, Label: "b"})

	sol, err := lp.Solve(m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusInfeasible, sol.Status)
}

// Two identical "<=" rows tie in the minimum-ratio leaving-row test;
// Bland's rule must break the tie by lowest basic-variable index
// rather than picking arbitrarily, so the same model always pivots
// through the same bases and lands on the same optimum.
func TestSolveBlandsRuleBreaksRatioTies(t *testing.T) {
	build := func() lp.Solution {
		m := lp.NewModel(2)
		m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{0: 1}, Sense: lp.Leq, RHS: 4, Label: "r0"})
		m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{0: 1}, Sense: lp.Leq, RHS: 4, Label: "r1"})
		m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{1: 1}, Sense: lp.Leq, RHS: 3, Label: "r2"})
		m.SetObjective([]float64{-1, -1}) // maximize x0 + x1

		sol, err := lp.Solve(m)
		require.NoError(t, err)
		return sol
	}

	a, b := build(), build()
	require.Equal(t, lp.StatusOptimal, a.Status)
	require.InDelta(t, 4.0, a.X[0], 1e-9)
	require.InDelta(t, 3.0, a.X[1], 1e-9)
	require.InDelta(t, -7.0, a.Objective, 1e-9)
	require.Equal(t, a, b, "the same model must pivot through the same bases on every run")
}

// Slack is reported per row for "<=" constraints: the objective drives
// the single row to its bound, so its reported slack is zero.
func TestSolveReportsPerRowSlack(t *testing.T) {
	m := lp.NewModel(1)
	m.AddConstraint(lp.Constraint{Coeffs: map[int]float64{0: 1}, Sense: lp.Leq, RHS: 10, Label: "loose"})
	m.SetObjective([]float64{-1}) // maximize x0, tightening the row to x0=10

	sol, err := lp.Solve(m)
	require.NoError(t, err)
	require.Equal(t, lp.StatusOptimal, sol.Status)
	require.InDelta(t, 10.0, sol.X[0], 1e-9)
	require.InDelta(t, 0.0, sol.Slack[0], 1e-9)
}
