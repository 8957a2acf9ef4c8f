package fuzzy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
	"github.com/stretchr/testify/assert"
)

// TestMembership_Extrapolation returns the endpoint Y at and beyond the support.
func TestMembership_Extrapolation(t *testing.T) {
	pts := []fuzzy.Point{{X: 2, Y: 0.3}, {X: 4, Y: 1}, {X: 8, Y: 0.6}}

	assert.Equal(t, 0.3, fuzzy.Membership(-100, pts))
	assert.Equal(t, 0.3, fuzzy.Membership(2, pts))
	assert.Equal(t, 0.6, fuzzy.Membership(8, pts))
	assert.Equal(t, 0.6, fuzzy.Membership(1e9, pts))
}

// TestMembership_Interpolation checks linear interpolation inside segments.
func TestMembership_Interpolation(t *testing.T) {
	pts := []fuzzy.Point{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 20, Y: 0}}

	cases := map[float64]float64{2.5: 0.25, 10: 1, 15: 0.5, 19: 0.1}
	for x, want := range cases {
		assert.InDelta(t, want, fuzzy.Membership(x, pts), 1e-12, "x=%v", x)
	}
}

// TestMembership_VerticalStep picks the first segment that contains x.
func TestMembership_VerticalStep(t *testing.T) {
	pts := []fuzzy.Point{{X: 0, Y: 0}, {X: 5, Y: 0.2}, {X: 5, Y: 0.8}, {X: 10, Y: 1}}

	assert.InDelta(t, 0.2, fuzzy.Membership(5, pts), 1e-12)
	assert.InDelta(t, 0.9, fuzzy.Membership(7.5, pts), 1e-12)
}

// TestMembership_Degenerate covers the single-point and empty cases.
func TestMembership_Degenerate(t *testing.T) {
	single := []fuzzy.Point{{X: 3, Y: 0.4}}
	assert.Equal(t, 0.4, fuzzy.Membership(-1, single))
	assert.Equal(t, 0.4, fuzzy.Membership(7, single))

	assert.Equal(t, 0.0, fuzzy.Membership(1, nil))
	assert.Equal(t, 0.0, fuzzy.Membership(math.NaN(), []fuzzy.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}))
}

// TestFuzzify evaluates every term, including ones no rule uses.
func TestFuzzify(t *testing.T) {
	terms := fuzzy.Terms{
		"cold": {{X: 0, Y: 1}, {X: 10, Y: 0}},
		"hot":  {{X: 0, Y: 0}, {X: 10, Y: 1}},
	}
	got := fuzzy.Fuzzify(4, terms)
	assert.Len(t, got, 2)
	assert.InDelta(t, 0.6, got["cold"], 1e-12)
	assert.InDelta(t, 0.4, got["hot"], 1e-12)
}
