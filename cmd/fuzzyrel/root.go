package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// Output formats of --output.
const (
	outputText = "text"
	outputJSON = "json"
)

var errBadFlag = errors.New("invalid flag value")

// app carries the global flags and the logger shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	output    string

	logger *slog.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "fuzzyrel",
		Short: "Fuzzy heating control and hierarchy relation metrics",
		Long: `fuzzyrel evaluates Mamdani fuzzy rules (temperature -> heating level)
and derives adjacency, relation and entropy descriptors of hierarchies
given as edge lists.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", outputText, "log format: text or json")
	pf.StringVarP(&a.output, "output", "o", outputText, "result format: text or json")

	root.AddCommand(
		a.adjacencyCmd(),
		a.relationsCmd(),
		a.entropyCmd(),
		a.fuzzyCmd(),
	)

	return root
}

// setup validates the global flags and installs the logger on stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("%w: --log-level %q", errBadFlag, a.logLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(a.logFormat) {
	case outputText:
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	case outputJSON:
		a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	default:
		return fmt.Errorf("%w: --log-format %q", errBadFlag, a.logFormat)
	}

	a.output = strings.ToLower(a.output)
	if a.output != outputText && a.output != outputJSON {
		return fmt.Errorf("%w: --output %q", errBadFlag, a.output)
	}
	a.logger.Debug("command started", "command", cmd.CommandPath())

	return nil
}

// jsonOutput reports whether results are printed as JSON.
func (a *app) jsonOutput() bool { return a.output == outputJSON }
