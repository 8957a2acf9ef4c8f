package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzyrel/fuzzy"
	"github.com/katalvlaran/fuzzyrel/internal/plot"
	"github.com/katalvlaran/fuzzyrel/internal/scenario"
)

var errNoInput = errors.New("either --scenario or --temperature, --heating and --rules are required")

// fuzzyFlags are the flags of the fuzzy subcommand.
type fuzzyFlags struct {
	scenario       string
	temperature    string
	heating        string
	rules          string
	values         []float64
	step           float64
	plot           string
	temperatureKey string
	heatingKey     string
}

// fuzzyCmd evaluates readings against term and rule files or a scenario.
func (a *app) fuzzyCmd() *cobra.Command {
	f := &fuzzyFlags{}
	cmd := &cobra.Command{
		Use:   "fuzzy",
		Short: "Evaluate the heating level for temperature readings",
		Long: `Evaluate the Mamdani rule base for one or more temperature readings.

Terms and rules come either from three JSON files (--temperature, --heating,
--rules) or from a YAML scenario (--scenario). --value overrides the
scenario readings; --plot renders the trace of the first reading.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFuzzy(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "YAML scenario file")
	fl.StringVar(&f.temperature, "temperature", "", "JSON file with the input terms")
	fl.StringVar(&f.heating, "heating", "", "JSON file with the output terms")
	fl.StringVar(&f.rules, "rules", "", "JSON file with [antecedent, consequent] rules")
	fl.Float64SliceVarP(&f.values, "value", "v", nil, "temperature reading(s)")
	fl.Float64Var(&f.step, "step", fuzzy.DefaultStep, "universe sampling step")
	fl.StringVarP(&f.plot, "plot", "p", "", "write the inference plot of the first reading (png, svg, pdf)")
	fl.StringVar(&f.temperatureKey, "temperature-key", fuzzy.TemperatureKey, "mapping key of the input terms")
	fl.StringVar(&f.heatingKey, "heating-key", fuzzy.HeatingKey, "mapping key of the output terms")

	return cmd
}

// runFuzzy builds the evaluator, evaluates every reading and prints results.
func (a *app) runFuzzy(cmd *cobra.Command, f *fuzzyFlags) error {
	opts := []fuzzy.Option{
		fuzzy.WithTemperatureKey(f.temperatureKey),
		fuzzy.WithHeatingKey(f.heatingKey),
	}
	if cmd.Flags().Changed("step") {
		opts = append(opts, fuzzy.WithStep(f.step))
	}

	var (
		ev       *fuzzy.Evaluator
		readings = f.values
		plotPath = f.plot
		err      error
	)
	switch {
	case f.scenario != "":
		s, err := scenario.Load(f.scenario)
		if err != nil {
			return err
		}
		a.logger.Debug("scenario loaded", "name", s.Name, "readings", len(s.Readings))
		if ev, err = s.Evaluator(opts...); err != nil {
			return err
		}
		if len(readings) == 0 {
			readings = s.Readings
		}
		if plotPath == "" {
			plotPath = s.Plot
		}
	case f.temperature != "" && f.heating != "" && f.rules != "":
		if ev, err = evaluatorFromFiles(f, opts); err != nil {
			return err
		}
	default:
		return errNoInput
	}
	if len(readings) == 0 {
		return fmt.Errorf("%w: no readings, use --value", errBadFlag)
	}
	a.logger.Info("evaluator ready",
		"input_terms", len(ev.Temperature()), "output_terms", len(ev.Heating()),
		"rules", len(ev.Rules()), "samples", len(ev.Universe()))

	results := make([]scenario.Result, 0, len(readings))
	for i, x := range readings {
		inf, err := ev.Infer(x)
		if err != nil {
			return fmt.Errorf("reading %v: %w", x, err)
		}
		a.logger.Debug("reading evaluated", "reading", x, "fired", len(inf.Fired), "peak", inf.Peak, "output", inf.Output)
		if i == 0 && plotPath != "" {
			if err := plot.Save(plotPath, inf, ev.Heating(), plot.WithTitle(fmt.Sprintf("Heating level at %v", x))); err != nil {
				return fmt.Errorf("failed to save the plot: %w", err)
			}
			a.logger.Info("plot saved", "path", plotPath)
		}
		results = append(results, scenario.Result{Reading: x, Output: inf.Output})
	}

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, results)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%v -> %v\n", r.Reading, r.Output)
	}

	return nil
}

// evaluatorFromFiles reads the three JSON inputs and builds an evaluator.
func evaluatorFromFiles(f *fuzzyFlags, opts []fuzzy.Option) (*fuzzy.Evaluator, error) {
	var data [3][]byte
	for i, path := range []string{f.temperature, f.heating, f.rules} {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		data[i] = b
	}

	return fuzzy.NewEvaluator(data[0], data[1], data[2], opts...)
}
