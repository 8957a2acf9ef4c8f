// Package fuzzy evaluates small Mamdani-style rule bases over piecewise-linear
// fuzzy sets and returns a single crisp output.
//
// 🚀 What does it compute?
//
//	Given the terms of an input variable (temperature), the terms of an output
//	variable (heating level) and a list of rules "IF temperature is A THEN
//	heating is B", Evaluate:
//	  1. fuzzifies the crisp reading against every input term;
//	  2. samples the output universe at a fixed step;
//	  3. clips each fired consequent by its activation (min) and aggregates
//	     all of them pointwise (max);
//	  4. returns the first sample whose aggregated membership is maximal.
//
// ✨ Input shapes:
//
//	Term sets may be a JSON string or an already-decoded value. The top level
//	is either a list of {"id": ..., "points": [[x, y], ...]} objects, a mapping
//	holding such a list under the variable's key, or a mapping with exactly one
//	entry of any name. See Shape.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fuzzyrel/fuzzy"
//
//	out, err := fuzzy.Evaluate(
//	  `{"температура": [{"id": "cold", "points": [[0, 1], [10, 0]]}]}`,
//	  `[{"id": "low", "points": [[0, 1], [5, 0]]}]`,
//	  `[["cold", "low"]]`,
//	  3.5,
//	  fuzzy.WithStep(0.05),
//	)
//
// Errors:
//
//   - ErrParse: a string input is not valid JSON.
//   - ErrStructure: a mapping is ambiguous or does not hold a list.
//   - ErrValidation: a term lacks "id"/"points" or a point is not numeric.
//   - ErrUnsupportedType: the input is neither string, list nor mapping.
//   - ErrUnknownTerm: a fired rule names an undefined output term.
//   - ErrEmptyUniverse: the output variable has no points.
//   - ErrBadStep: the sampling step is not a positive finite number.
//
// A rule whose antecedent is not defined is not an error: it simply never fires.
//
// Performance:
//
//   - Time:   O(T·P + R·S·P), T input terms, R rules, S samples, P points per term
//   - Memory: O(S)
package fuzzy
