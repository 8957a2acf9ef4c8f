package fuzzy

import (
	"fmt"
	"math"
)

// Inference is the full trace of one evaluation.
type Inference struct {
	// Input is the crisp reading that was fuzzified.
	Input float64

	// Activations maps every input term to its membership degree at Input.
	Activations map[string]float64

	// Fired lists the rules with positive activation, in rule order.
	Fired []Rule

	// Universe holds the output samples, ascending.
	Universe []float64

	// Aggregate[i] is the aggregated membership at Universe[i].
	Aggregate []float64

	// Peak is the maximal aggregated membership (0 when nothing fired).
	Peak float64

	// Output is the defuzzified crisp value.
	Output float64
}

// Evaluator holds normalized terms, rules and the sampled output universe.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	temperature Terms
	heating     Terms
	rules       []Rule
	universe    []float64
	opts        Options
}

// NewEvaluator normalizes the input terms, output terms and rules and samples
// the output universe.
//
// Steps:
//  1. Apply options; a bad step surfaces as ErrBadStep.
//  2. Normalize temperature terms (key opts.TemperatureKey).
//  3. Normalize heating terms (key opts.HeatingKey).
//  4. Normalize rules.
//  5. Build the universe from the heating terms.
//
// Errors: ErrBadStep, ErrParse, ErrStructure, ErrValidation,
// ErrUnsupportedType, ErrEmptyUniverse.
func NewEvaluator(temperature, heating, rules any, opts ...Option) (*Evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	temp, err := NormalizeTerms(temperature, o.TemperatureKey)
	if err != nil {
		return nil, fmt.Errorf("temperature terms: %w", err)
	}
	heat, err := NormalizeTerms(heating, o.HeatingKey)
	if err != nil {
		return nil, fmt.Errorf("heating terms: %w", err)
	}
	rs, err := NormalizeRules(rules)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	universe, err := Universe(heat, o.Step)
	if err != nil {
		return nil, err
	}

	return &Evaluator{
		temperature: temp,
		heating:     heat,
		rules:       rs,
		universe:    universe,
		opts:        o,
	}, nil
}

// Temperature returns the normalized input terms. Callers must not mutate them.
func (e *Evaluator) Temperature() Terms { return e.temperature }

// Heating returns the normalized output terms. Callers must not mutate them.
func (e *Evaluator) Heating() Terms { return e.heating }

// Rules returns a copy of the normalized rules.
func (e *Evaluator) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)

	return out
}

// Universe returns a copy of the output samples.
func (e *Evaluator) Universe() []float64 {
	out := make([]float64, len(e.universe))
	copy(out, e.universe)

	return out
}

// Evaluate returns the crisp output for the reading current.
func (e *Evaluator) Evaluate(current float64) (float64, error) {
	inf, err := e.Infer(current)
	if err != nil {
		return 0, err
	}

	return inf.Output, nil
}

// Infer runs fuzzification, min-max aggregation and defuzzification for
// the reading current.
//
// Rules are applied in order:
//   - an antecedent missing from the input terms has activation 0;
//   - activation ≤ 0 skips the rule without touching the output terms;
//   - a fired rule whose consequent is missing fails with ErrUnknownTerm;
//   - otherwise Aggregate[i] = max(Aggregate[i], min(activation, μ(Universe[i]))).
//
// Complexity: O(T·P + R·S·P).
func (e *Evaluator) Infer(current float64) (*Inference, error) {
	act := Fuzzify(current, e.temperature)
	agg := make([]float64, len(e.universe))
	var fired []Rule

	for _, r := range e.rules {
		activation := act[r.Antecedent] // absent antecedent reads as 0
		if activation <= 0 {
			continue
		}
		pts, ok := e.heating[r.Consequent]
		if !ok {
			return nil, fmt.Errorf("%w: %q (rule %s)", ErrUnknownTerm, r.Consequent, r)
		}
		fired = append(fired, r)
		for i, s := range e.universe {
			clipped := math.Min(activation, Membership(s, pts))
			if clipped > agg[i] {
				agg[i] = clipped
			}
		}
	}

	out, peak := defuzzify(e.universe, agg)

	return &Inference{
		Input:       current,
		Activations: act,
		Fired:       fired,
		Universe:    e.Universe(),
		Aggregate:   agg,
		Peak:        peak,
		Output:      out,
	}, nil
}

// defuzzify returns the first sample whose aggregated membership lies within
// PeakTolerance of the maximum, together with that maximum. Without a
// positive maximum it returns the first sample (0 for an empty universe).
func defuzzify(universe, agg []float64) (float64, float64) {
	if len(universe) == 0 {
		return 0, 0
	}
	peak := agg[0]
	for _, mu := range agg[1:] {
		if mu > peak {
			peak = mu
		}
	}
	if peak <= 0 {
		return universe[0], peak
	}
	for i, mu := range agg {
		if math.Abs(mu-peak) < PeakTolerance {
			return universe[i], peak
		}
	}

	return universe[0], peak
}

// Evaluate normalizes the inputs and returns the crisp heating level for
// the temperature reading current. See NewEvaluator and Evaluator.Infer.
func Evaluate(temperature, heating, rules any, current float64, opts ...Option) (float64, error) {
	ev, err := NewEvaluator(temperature, heating, rules, opts...)
	if err != nil {
		return 0, err
	}

	return ev.Evaluate(current)
}

// Infer is Evaluate returning the full trace.
func Infer(temperature, heating, rules any, current float64, opts ...Option) (*Inference, error) {
	ev, err := NewEvaluator(temperature, heating, rules, opts...)
	if err != nil {
		return nil, err
	}

	return ev.Infer(current)
}
