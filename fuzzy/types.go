// Package fuzzy defines the term, rule and option types of the evaluator.
package fuzzy

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for normalization and inference.
var (
	// ErrParse indicates that a string input is not syntactically valid JSON.
	ErrParse = errors.New("fuzzy: malformed JSON input")

	// ErrStructure indicates a term container that is neither a list nor an
	// unambiguous single-entry mapping holding a list.
	ErrStructure = errors.New("fuzzy: invalid term container structure")

	// ErrValidation indicates a term definition without "id" or "points",
	// or a point that cannot be read as a pair of finite reals.
	ErrValidation = errors.New("fuzzy: invalid term definition")

	// ErrUnsupportedType indicates an input that is not a string, list or mapping.
	ErrUnsupportedType = errors.New("fuzzy: unsupported input type")

	// ErrUnknownTerm indicates a fired rule whose consequent is not defined
	// among the output terms.
	ErrUnknownTerm = errors.New("fuzzy: rule references undefined output term")

	// ErrEmptyUniverse indicates that the output terms define no points,
	// so the universe of discourse has no bounds.
	ErrEmptyUniverse = errors.New("fuzzy: output terms define no points")

	// ErrBadStep indicates a sampling step that is not positive and finite.
	ErrBadStep = errors.New("fuzzy: universe step must be positive and finite")
)

const (
	// DefaultStep is the distance between consecutive universe samples.
	DefaultStep = 0.01

	// PeakTolerance is the absolute distance from the maximal aggregated
	// membership within which a sample still counts as a peak. Samples are
	// scanned in ascending order, so the smallest peak sample wins.
	PeakTolerance = 1e-9

	// MaxSamples bounds the universe size; a step that would need more
	// samples over the output range is rejected with ErrBadStep.
	MaxSamples = 10_000_000

	// TemperatureKey is the mapping key that labels the input variable.
	TemperatureKey = "температура"

	// HeatingKey is the mapping key that labels the output variable.
	HeatingKey = "уровень нагрева"
)

// Point is a control point (X, Y) of a piecewise-linear membership function.
// Y is a membership degree, conventionally in [0,1]; it is never clamped.
type Point struct {
	X float64
	Y float64
}

// Terms maps a term ID to its control points sorted ascending by X.
type Terms map[string][]Point

// IDs returns the term IDs sorted lexicographically.
func (t Terms) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bounds returns the smallest and largest X over all points.
// ok is false when no term has any point.
func (t Terms) Bounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, pts := range t {
		for _, p := range pts {
			lo = math.Min(lo, p.X)
			hi = math.Max(hi, p.X)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}

	return lo, hi, true
}

// Rule reads "IF input is Antecedent THEN output is Consequent".
type Rule struct {
	Antecedent string `json:"antecedent" yaml:"antecedent"`
	Consequent string `json:"consequent" yaml:"consequent"`
}

// String renders the rule as "antecedent→consequent".
func (r Rule) String() string {
	return fmt.Sprintf("%s→%s", r.Antecedent, r.Consequent)
}

// TermDef is the decoded form of one term definition.
// Every point needs at least two coordinates, all finite; coordinates past
// the second are ignored. Validate with a validator from NewValidator.
type TermDef struct {
	ID     string      `json:"id" yaml:"id"`
	Points [][]float64 `json:"points" yaml:"points" validate:"min=1,dive,min=2,dive,finite"`
}

// Shape tells how a term container was resolved.
type Shape int

const (
	// ShapeList is a bare list of term definitions.
	ShapeList Shape = iota

	// ShapeNamedMapping is a mapping holding the list under the variable's key.
	ShapeNamedMapping

	// ShapeSingleEntryMapping is a mapping with exactly one entry whose value is the list.
	ShapeSingleEntryMapping
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeNamedMapping:
		return "named-mapping"
	case ShapeSingleEntryMapping:
		return "single-entry-mapping"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Option configures the evaluator via functional arguments.
// An invalid Option is recorded and surfaced when the evaluator is built.
type Option func(*Options)

// Options holds the tunables of an evaluation.
type Options struct {
	// Step is the distance between universe samples.
	Step float64

	// TemperatureKey is the mapping key looked up for the input terms.
	TemperatureKey string

	// HeatingKey is the mapping key looked up for the output terms.
	HeatingKey string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultStep and the default variable keys.
func DefaultOptions() Options {
	return Options{
		Step:           DefaultStep,
		TemperatureKey: TemperatureKey,
		HeatingKey:     HeatingKey,
	}
}

// WithStep sets the universe sampling step.
//
//	step > 0 and finite: used as is
//	otherwise:           ErrBadStep
func WithStep(step float64) Option {
	return func(o *Options) {
		if !(step > 0) || math.IsInf(step, 1) {
			o.err = fmt.Errorf("%w: got %v", ErrBadStep, step)
			return
		}
		o.Step = step
	}
}

// WithTemperatureKey overrides the mapping key of the input variable.
func WithTemperatureKey(key string) Option {
	return func(o *Options) { o.TemperatureKey = key }
}

// WithHeatingKey overrides the mapping key of the output variable.
func WithHeatingKey(key string) Option {
	return func(o *Options) { o.HeatingKey = key }
}
