// Package scenario loads YAML files that bundle the inputs of a fuzzy
// evaluation: input and output terms, rules, readings and the sampling step.
//
//	name: boiler
//	step: 0.05
//	temperature:
//	  - id: cold
//	    points: [[0, 1], [10, 0]]
//	heating:
//	  - id: low
//	    points: [[0, 1], [5, 0]]
//	rules:
//	  - [cold, low]
//	readings: [0, 2.5, 7]
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
)

// Sentinel errors for scenario loading.
var (
	// ErrDecode indicates a file that is not valid YAML for a Scenario.
	ErrDecode = errors.New("scenario: cannot decode")

	// ErrInvalid indicates a decoded scenario that fails validation.
	ErrInvalid = errors.New("scenario: invalid")
)

// scenarioValidate knows the "finite" tag of fuzzy.TermDef.
var scenarioValidate = fuzzy.NewValidator()

// Scenario is one evaluation setup.
type Scenario struct {
	Name        string          `yaml:"name" json:"name"`
	Step        float64         `yaml:"step,omitempty" json:"step,omitempty" validate:"omitempty,gt=0"`
	Temperature []fuzzy.TermDef `yaml:"temperature" json:"temperature" validate:"required,min=1,dive"`
	Heating     []fuzzy.TermDef `yaml:"heating" json:"heating" validate:"required,min=1,dive"`
	Rules       [][]string      `yaml:"rules" json:"rules" validate:"dive,len=2,dive,required"`
	Readings    []float64       `yaml:"readings" json:"readings" validate:"required,min=1,dive,finite"`
	Plot        string          `yaml:"plot,omitempty" json:"plot,omitempty"`
}

// Result pairs a reading with its crisp output.
type Result struct {
	Reading float64 `json:"reading"`
	Output  float64 `json:"output"`
}

// Parse decodes and validates a scenario from r. Unknown keys are rejected.
//
// Errors: ErrDecode, ErrInvalid.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the scenario file: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate checks the struct tags of s and its term definitions.
func (s *Scenario) Validate() error {
	if err := scenarioValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Options translates the scenario settings into evaluator options.
func (s *Scenario) Options() []fuzzy.Option {
	if s.Step > 0 {
		return []fuzzy.Option{fuzzy.WithStep(s.Step)}
	}

	return nil
}

// RuleList returns the rules as fuzzy.Rule pairs.
func (s *Scenario) RuleList() []fuzzy.Rule {
	out := make([]fuzzy.Rule, len(s.Rules))
	for i, r := range s.Rules {
		out[i] = fuzzy.Rule{Antecedent: r[0], Consequent: r[1]}
	}

	return out
}

// Evaluator builds a reusable evaluator from the scenario, applying extra
// options after the scenario's own.
func (s *Scenario) Evaluator(opts ...fuzzy.Option) (*fuzzy.Evaluator, error) {
	return fuzzy.NewEvaluator(s.Temperature, s.Heating, s.RuleList(), append(s.Options(), opts...)...)
}

// Run evaluates every reading in order.
//
// Errors: any error of fuzzy.NewEvaluator or Evaluator.Evaluate, the latter
// annotated with the failing reading.
func (s *Scenario) Run(opts ...fuzzy.Option) ([]Result, error) {
	ev, err := s.Evaluator(opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(s.Readings))
	for _, x := range s.Readings {
		y, err := ev.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("reading %v: %w", x, err)
		}
		out = append(out, Result{Reading: x, Output: y})
	}

	return out, nil
}
