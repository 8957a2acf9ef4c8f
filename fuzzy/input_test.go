package fuzzy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coldTerms = `[{"id": "cold", "points": [[10, 0], [0, 1]]}]`

// TestResolveShape_Variants checks every tagged shape and the rejected ones.
func TestResolveShape_Variants(t *testing.T) {
	list := []any{map[string]any{"id": "a", "points": []any{}}}

	shape, got, err := fuzzy.ResolveShape(list, "key")
	require.NoError(t, err)
	assert.Equal(t, fuzzy.ShapeList, shape)
	assert.Equal(t, list, got)

	shape, got, err = fuzzy.ResolveShape(map[string]any{"key": list, "other": 1}, "key")
	require.NoError(t, err)
	assert.Equal(t, fuzzy.ShapeNamedMapping, shape)
	assert.Equal(t, list, got)

	shape, got, err = fuzzy.ResolveShape(map[string]any{"anything": list}, "key")
	require.NoError(t, err)
	assert.Equal(t, fuzzy.ShapeSingleEntryMapping, shape)
	assert.Equal(t, list, got)

	_, _, err = fuzzy.ResolveShape(map[string]any{"a": list, "b": list}, "key")
	assert.ErrorIs(t, err, fuzzy.ErrStructure, "two keys without the expected one are ambiguous")

	_, _, err = fuzzy.ResolveShape(map[string]any{"a": "not a list"}, "key")
	assert.ErrorIs(t, err, fuzzy.ErrStructure, "single value must be a list")

	_, _, err = fuzzy.ResolveShape(map[string]any{}, "key")
	assert.ErrorIs(t, err, fuzzy.ErrStructure, "empty mapping is ambiguous")

	_, _, err = fuzzy.ResolveShape(42.0, "key")
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "float64")
}

// TestNormalizeTerms_SortsPointsStably verifies ascending X order with ties kept in input order.
func TestNormalizeTerms_SortsPointsStably(t *testing.T) {
	terms, err := fuzzy.NormalizeTerms(`[{"id": "t", "points": [[10, 1], [5, 0.2], [5, 0.8], [0, 0]]}]`, "")
	require.NoError(t, err)
	assert.Equal(t, []fuzzy.Point{{X: 0, Y: 0}, {X: 5, Y: 0.2}, {X: 5, Y: 0.8}, {X: 10, Y: 1}}, terms["t"])

	terms, err = fuzzy.NormalizeTerms(`[{"id": "t", "points": [[5, 0.8], [5, 0.2]]}]`, "")
	require.NoError(t, err)
	assert.Equal(t, []fuzzy.Point{{X: 5, Y: 0.8}, {X: 5, Y: 0.2}}, terms["t"])
}

// TestNormalizeTerms_Inputs covers every accepted input form.
func TestNormalizeTerms_Inputs(t *testing.T) {
	want := fuzzy.Terms{"cold": {{X: 0, Y: 1}, {X: 10, Y: 0}}}

	cases := map[string]any{
		"json string":  coldTerms,
		"json bytes":   []byte(coldTerms),
		"named key":    `{"температура": ` + coldTerms + `, "comment": "ignored"}`,
		"single entry": `{"variable": ` + coldTerms + `}`,
		"decoded": []any{map[string]any{
			"id":     "cold",
			"points": []any{[]any{10.0, 0.0}, []any{"0", 1}},
		}},
		"typed":        []fuzzy.TermDef{{ID: "cold", Points: [][]float64{{10, 0}, {0, 1, 99}}}},
		"typed map":    map[string][]fuzzy.TermDef{"x": {{ID: "cold", Points: [][]float64{{0, 1}, {10, 0}}}}},
		"terms":        fuzzy.Terms{"cold": {{X: 10, Y: 0}, {X: 0, Y: 1}}},
		"numeric text": `[{"id": "cold", "points": [["10", "0"], [" 0 ", "1"]]}]`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := fuzzy.NormalizeTerms(in, fuzzy.TemperatureKey)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// TestNormalizeTerms_Errors maps malformed inputs to their error class.
func TestNormalizeTerms_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want error
	}{
		{"bad json", `[{"id": "a",`, fuzzy.ErrParse},
		{"ambiguous", `{"a": [], "b": []}`, fuzzy.ErrStructure},
		{"single non-list", `{"a": {"id": "x"}}`, fuzzy.ErrStructure},
		{"named non-list", `{"температура": 3}`, fuzzy.ErrStructure},
		{"number", `7`, fuzzy.ErrUnsupportedType},
		{"bool value", true, fuzzy.ErrUnsupportedType},
		{"missing id", `[{"points": [[0, 1]]}]`, fuzzy.ErrValidation},
		{"missing points", `[{"id": "a"}]`, fuzzy.ErrValidation},
		{"term not object", `[[0, 1]]`, fuzzy.ErrValidation},
		{"points not list", `[{"id": "a", "points": 3}]`, fuzzy.ErrValidation},
		{"short point", `[{"id": "a", "points": [[0]]}]`, fuzzy.ErrValidation},
		{"non-numeric", `[{"id": "a", "points": [[0, "high"]]}]`, fuzzy.ErrValidation},
		{"non-finite", `[{"id": "a", "points": [["inf", 1]]}]`, fuzzy.ErrValidation},
		{"no points", `[{"id": "a", "points": []}]`, fuzzy.ErrValidation},
		{"object id", `[{"id": {}, "points": [[0, 1]]}]`, fuzzy.ErrValidation},
		{"empty terms value", fuzzy.Terms{"a": nil}, fuzzy.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fuzzy.NormalizeTerms(tc.in, fuzzy.TemperatureKey)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNormalizeTerms_DuplicateIDLaterWins keeps the last definition of a repeated ID.
func TestNormalizeTerms_DuplicateIDLaterWins(t *testing.T) {
	terms, err := fuzzy.NormalizeTerms(`[
		{"id": "a", "points": [[0, 1]]},
		{"id": "a", "points": [[3, 0.5]]}
	]`, "")
	require.NoError(t, err)
	assert.Equal(t, []fuzzy.Point{{X: 3, Y: 0.5}}, terms["a"])
}

// TestNormalizeRules_Forms covers rule decoding and numeric identifiers.
func TestNormalizeRules_Forms(t *testing.T) {
	want := []fuzzy.Rule{{Antecedent: "cold", Consequent: "high"}, {Antecedent: "1", Consequent: "2.5"}}

	got, err := fuzzy.NormalizeRules(`[["cold", "high"], [1, 2.5]]`)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = fuzzy.NormalizeRules([][2]string{{"cold", "high"}, {"1", "2.5"}})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = fuzzy.NormalizeRules(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = fuzzy.NormalizeRules(`[]`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestNormalizeRules_Errors maps malformed rule lists to their error class.
func TestNormalizeRules_Errors(t *testing.T) {
	_, err := fuzzy.NormalizeRules(`[["a", "b"]`)
	assert.ErrorIs(t, err, fuzzy.ErrParse)

	_, err = fuzzy.NormalizeRules(`{"a": "b"}`)
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedType)

	_, err = fuzzy.NormalizeRules(`[["a"]]`)
	assert.ErrorIs(t, err, fuzzy.ErrValidation)

	_, err = fuzzy.NormalizeRules(`[["a", null]]`)
	assert.ErrorIs(t, err, fuzzy.ErrValidation)
}

// TestShape_String documents the shape labels.
func TestShape_String(t *testing.T) {
	assert.Equal(t, "list", fuzzy.ShapeList.String())
	assert.Equal(t, "named-mapping", fuzzy.ShapeNamedMapping.String())
	assert.Equal(t, "single-entry-mapping", fuzzy.ShapeSingleEntryMapping.String())
	assert.Equal(t, "Shape(9)", fuzzy.Shape(9).String())
}

// TestNewValidator_FiniteTag checks that the "finite" tag is registered and enforced.
func TestNewValidator_FiniteTag(t *testing.T) {
	var v interface {
		Struct(any) error
	}
	require.NotPanics(t, func() { v = fuzzy.NewValidator() })

	type reading struct {
		Value float64 `validate:"finite"`
	}
	assert.NoError(t, v.Struct(reading{Value: 1.5}))
	assert.Error(t, v.Struct(reading{Value: math.Inf(-1)}))
	assert.Error(t, v.Struct(reading{Value: math.NaN()}))
	assert.Error(t, v.Struct(fuzzy.TermDef{ID: "a", Points: [][]float64{{0, math.NaN()}}}))
}
