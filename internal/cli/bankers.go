package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-project/internal/bankers"
	"os-project/internal/requests"
	"os-project/internal/responses"
)

func newBankersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bankers",
		Short: "Deadlock avoidance with the Banker's algorithm",
	}
	cmd.AddCommand(newSafetyCommand(opts), newRequestCommand(opts))
	return cmd
}

func newSafetyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "safety",
		Short: "Check whether an allocation state is safe",
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenario requests.BankersRequest
			if err := readScenario(opts.file, &scenario); err != nil {
				return err
			}
			state, err := scenario.State()
			if err != nil {
				return err
			}
			output, err := bankers.CheckSafety(state)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), responses.NewSafetyResponse(output, scenario.ResourceTypes))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderSafety(responses.NewSafetyResponse(output, scenario.ResourceTypes)))
			return err
		},
	}
}

func newRequestCommand(opts *rootOptions) *cobra.Command {
	var process string
	var request []int
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Evaluate a resource request of one process",
		RunE: func(cmd *cobra.Command, args []string) error {
			var scenario requests.BankersRequest
			if err := readScenario(opts.file, &scenario); err != nil {
				return err
			}
			if cmd.Flags().Changed("process") {
				scenario.Process = process
			}
			if cmd.Flags().Changed("request") {
				scenario.Request = request
			}
			if scenario.Process == "" {
				return fmt.Errorf("a process is required (--process)")
			}
			state, err := scenario.State()
			if err != nil {
				return err
			}
			output, err := bankers.EvaluateRequest(state, scenario.Process, scenario.Request)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), responses.NewRequestResponse(output, scenario.ResourceTypes))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderRequest(responses.NewRequestResponse(output, scenario.ResourceTypes)))
			return err
		},
	}
	cmd.Flags().StringVarP(&process, "process", "p", "", "Requesting process name")
	cmd.Flags().IntSliceVarP(&request, "request", "r", nil, "Request vector, e.g. 1,0,2")
	return cmd
}
