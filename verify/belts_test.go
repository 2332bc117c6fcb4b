package verify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foundry-sim/factoryflow/belts"
	"github.com/foundry-sim/factoryflow/verify"
)

func TestBeltsOKRoundTrip(t *testing.T) {
	input := `{
		"nodes": [
			{"id": "s", "role": "source"},
			{"id": "m", "role": "internal", "cap": 3},
			{"id": "t", "role": "sink"}
		],
		"edges": [
			{"from": "s", "to": "m", "lo": 0, "hi": 10},
			{"from": "m", "to": "t", "lo": 0, "hi": 10}
		]
	}`

	p, err := belts.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := belts.Solve(p)
	require.NoError(t, err)

	require.NoError(t, verify.Belts(p, res))
}

func TestBeltsOKDetectsTamperedFlow(t *testing.T) {
	input := `{
		"nodes": [{"id": "s", "role": "source"}, {"id": "t", "role": "sink"}],
		"edges": [{"from": "s", "to": "t", "lo": 0, "hi": 5}]
	}`

	p, err := belts.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := belts.Solve(p)
	require.NoError(t, err)

	res.Flows[0].Flow = 9

	require.ErrorIs(t, verify.Belts(p, res), verify.ErrViolation)
}

func TestBeltsInfeasibleRoundTrip(t *testing.T) {
	input := `{
		"nodes": [{"id": "s", "role": "source"}, {"id": "a", "role": "internal"}, {"id": "t", "role": "sink"}],
		"edges": [
			{"from": "s", "to": "a", "lo": 10, "hi": 10},
			{"from": "a", "to": "t", "lo": 0, "hi": 5}
		]
	}`

	p, err := belts.Parse(strings.NewReader(input))
	require.NoError(t, err)
	res, err := belts.Solve(p)
	require.NoError(t, err)
	require.Equal(t, "infeasible", res.Status)

	require.NoError(t, verify.Belts(p, res))
}
