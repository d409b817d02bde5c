package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-project/internal/core"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
)

func newAperiodicCommand(opts *rootOptions) *cobra.Command {
	var algorithm string
	var quantum int
	cmd := &cobra.Command{
		Use:   "aperiodic",
		Short: "Schedule one-shot processes with fcfs, sjf, priority or rr",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := core.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if alg.IsPeriodic() {
				return fmt.Errorf("%q is a periodic algorithm, use the periodic command", alg)
			}
			processes, err := loadProcesses(opts.file, false)
			if err != nil {
				return err
			}
			output, err := schedulers.RunAperiodic(processes, alg, schedulers.WithTimeQuantum(quantum))
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), responses.NewScheduleResponse(output))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderAperiodic(output))
			return err
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(core.FirstComeFirstServe), "Algorithm: fcfs, sjf, priority, rr")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round robin time quantum")
	return cmd
}

func newPeriodicCommand(opts *rootOptions) *cobra.Command {
	var algorithm string
	var maxHyperperiod int
	cmd := &cobra.Command{
		Use:   "periodic",
		Short: "Schedule periodic tasks over one hyperperiod with rms or edf",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := core.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if !alg.IsPeriodic() {
				return fmt.Errorf("%q is not a periodic algorithm, use rms or edf", alg)
			}
			tasks, err := loadProcesses(opts.file, true)
			if err != nil {
				return err
			}
			output, err := schedulers.RunPeriodic(tasks, alg, schedulers.WithMaxHyperperiod(maxHyperperiod))
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), responses.NewPeriodicResponse(output))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPeriodic(output))
			return err
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(core.RateMonotonic), "Algorithm: rms, edf")
	cmd.Flags().IntVar(&maxHyperperiod, "max-hyperperiod", schedulers.DefaultMaxHyperperiod, "Reject task sets whose hyperperiod exceeds this many ticks")
	return cmd
}

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var quantum int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every aperiodic algorithm on the same processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := loadProcesses(opts.file, false)
			if err != nil {
				return err
			}
			outputs, err := schedulers.CompareAperiodic(cmd.Context(), processes, schedulers.WithTimeQuantum(quantum))
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				response := make(map[string]responses.ScheduleResponse, len(outputs))
				for _, output := range outputs {
					response[string(output.Algorithm)] = responses.NewScheduleResponse(output)
				}
				return writeJSON(cmd.OutOrStdout(), response)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderComparison(outputs))
			return err
		},
	}
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round robin time quantum")
	return cmd
}

func loadProcesses(path string, periodic bool) ([]core.Process, error) {
	var scenario requests.ScheduleRequests
	if err := readScenario(path, &scenario); err != nil {
		return nil, err
	}
	return scenario.Processes(periodic)
}
