// Package cli implements the schedsim command line tool. Every command reads a
// YAML scenario, runs one simulation and prints a human readable report or
// JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"os-project/internal/logger"
)

type rootOptions struct {
	file       string
	jsonOutput bool
	logLevel   string
}

// NewRootCommand builds the schedsim command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling and Banker's algorithm simulator",
		Long: `schedsim simulates cpu scheduling (fcfs, sjf, priority, rr, rms, edf) and
checks resource allocation states with the Banker's algorithm.

Scenarios are YAML files. Scheduling scenarios list jobs:

  jobs:
    - {name: P1, arrival_time: 0, burst_time: 5, priority: 1}

Banker's scenarios list processes with allocation and max vectors plus either
the available or the total vector.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), opts.logLevel, "text"))
		},
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Scenario YAML file")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output JSON instead of human-readable text")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newAperiodicCommand(opts),
		newPeriodicCommand(opts),
		newCompareCommand(opts),
		newBankersCommand(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func readScenario(path string, out any) error {
	if path == "" {
		return fmt.Errorf("a scenario file is required (--file)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
