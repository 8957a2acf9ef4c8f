package fuzzy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniverse_ForcesExactUpperBound pins the last sample to the maximum X.
func TestUniverse_ForcesExactUpperBound(t *testing.T) {
	terms := fuzzy.Terms{
		"a": {{X: 0, Y: 0}, {X: 0.5, Y: 1}},
		"b": {{X: 0.2, Y: 1}, {X: 1, Y: 0}},
	}
	got, err := fuzzy.Universe(terms, 0.3)
	require.NoError(t, err)
	require.Len(t, got, 4, "round(1/0.3) = 3 steps")
	assert.Equal(t, 0.0, got[0])
	assert.InDelta(t, 0.3, got[1], 1e-15)
	assert.InDelta(t, 0.6, got[2], 1e-15)
	assert.Equal(t, 1.0, got[3])
}

// TestUniverse_Ascending checks ordering and bounds at the default step.
func TestUniverse_Ascending(t *testing.T) {
	terms := fuzzy.Terms{"t": {{X: -3, Y: 0}, {X: 4.2, Y: 1}}}
	got, err := fuzzy.Universe(terms, fuzzy.DefaultStep)
	require.NoError(t, err)
	assert.Len(t, got, 721)
	assert.Equal(t, -3.0, got[0])
	assert.Equal(t, 4.2, got[len(got)-1])
	assert.IsIncreasing(t, got)
}

// TestUniverse_SinglePoint yields a one-sample universe.
func TestUniverse_SinglePoint(t *testing.T) {
	got, err := fuzzy.Universe(fuzzy.Terms{"t": {{X: 7, Y: 1}}}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, got)
}

// TestUniverse_Errors rejects empty term sets and unusable steps.
func TestUniverse_Errors(t *testing.T) {
	_, err := fuzzy.Universe(fuzzy.Terms{}, 0.1)
	assert.ErrorIs(t, err, fuzzy.ErrEmptyUniverse)

	_, err = fuzzy.Universe(fuzzy.Terms{"t": nil}, 0.1)
	assert.ErrorIs(t, err, fuzzy.ErrEmptyUniverse)

	terms := fuzzy.Terms{"t": {{X: 0, Y: 1}}}
	for _, step := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = fuzzy.Universe(terms, step)
		assert.ErrorIs(t, err, fuzzy.ErrBadStep, "step %v", step)
	}
}

// TestUniverse_TooManySamples rejects steps whose sample count would not fit.
func TestUniverse_TooManySamples(t *testing.T) {
	terms := fuzzy.Terms{"t": {{X: 0, Y: 0}, {X: 10, Y: 1}}}

	for _, step := range []float64{1e-320, 1e-10, 10.0 / fuzzy.MaxSamples} {
		_, err := fuzzy.Universe(terms, step)
		assert.ErrorIs(t, err, fuzzy.ErrBadStep, "step %v", step)
	}

	_, err := fuzzy.Evaluate(`[{"id": "a", "points": [[0, 1]]}]`,
		`[{"id": "b", "points": [[0, 0], [10, 1]]}]`, `[]`, 0, fuzzy.WithStep(1e-320))
	assert.ErrorIs(t, err, fuzzy.ErrBadStep)
}
