package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/internal/cli"
)

func TestSweepFoldsEverySeed(t *testing.T) {
	cfg := sweepConfig{
		width: 12, height: 9, seeds: 4, firstSeed: 1, workers: 3,
		rooms: []int{0, 3}, maxDims: []int{3}, depths: []int{0, 4},
	}
	sets := paramSets(cfg)
	require.Len(t, sets, 4)

	aggs, err := sweep(cfg, sets)
	require.NoError(t, err)
	require.Len(t, aggs, 4)
	for i, a := range aggs {
		assert.Equal(t, sets[i], a.params)
		assert.Equal(t, 4, a.runs)
		assert.Zero(t, a.split, "%s left a split network", a.params)
		assert.Positive(t, a.deadEnds)
	}
	assert.Equal(t, 4, aggs[0].passes, "one pass per maze without rooms or depth cap")
	assert.Zero(t, aggs[0].placed)
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	cfg := sweepConfig{width: 10, height: 10}
	j := job{params: paramSet{rooms: 4, maxDim: 3}, seed: 7}
	assert.Equal(t, runScenario(cfg, j), runScenario(cfg, j))
}

func TestRunPrintsRanking(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-w", "8", "-h", "6", "-seeds", "2", "-workers", "2", "-top", "3", "-log-level", "error"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Sweeping 24 parameter sets x 2 seeds")
	assert.Contains(t, out.String(), "Top 3 by dead ends:")
	assert.Contains(t, out.String(), " 3) deadEnds=")
}

func TestRunRejectsBadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-w", "0"})
	var exit *cli.ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.Code)
}
