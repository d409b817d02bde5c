package bankers

import (
	"fmt"
	"log/slog"

	"os-project/internal/core"
)

// EvaluateRequest decides whether the named process may be granted request.
func EvaluateRequest(state core.SystemResourceState, processName string, request core.ResourceVector) (core.RequestOutput, error) {
	index := state.IndexOf(processName)
	if index < 0 {
		return core.RequestOutput{}, fmt.Errorf("%w: unknown process %q", core.ErrInvalidInput, processName)
	}
	return EvaluateRequestAt(state, index, request)
}

// EvaluateRequestAt validates request against the process need and the
// available vector, then grants it only if the resulting state is safe. The
// input state is never modified.
func EvaluateRequestAt(state core.SystemResourceState, index int, request core.ResourceVector) (core.RequestOutput, error) {
	if err := validateState(state); err != nil {
		return core.RequestOutput{}, err
	}
	if index < 0 || index >= len(state.Processes) {
		return core.RequestOutput{}, fmt.Errorf("%w: process index %d out of range", core.ErrInvalidInput, index)
	}
	if err := validateVector("request", request, len(state.Available)); err != nil {
		return core.RequestOutput{}, err
	}

	process := state.Processes[index]
	warnings := validateRequest(process, state.Available, request)
	if len(warnings) > 0 {
		slog.Debug("request rejected", "process", process.Name, "warnings", len(warnings))
		return core.RequestOutput{Granted: false, Warnings: warnings, State: state.Clone()}, nil
	}

	hypothetical := state.Clone()
	target := &hypothetical.Processes[index]
	target.Allocation = target.Allocation.Add(request)
	target.Need = target.Need.Sub(request)
	hypothetical.Available = hypothetical.Available.Sub(request)

	names, allocation, need := columns(hypothetical)
	safety := IsSafe(names, allocation, need, hypothetical.Available)
	slog.Debug("request evaluated", "process", process.Name, "granted", safety.Safe)

	output := core.RequestOutput{Granted: safety.Safe, Warnings: []string{}, Safety: &safety}
	if safety.Safe {
		output.State = hypothetical
	} else {
		output.State = state.Clone()
	}
	return output, nil
}

func validateRequest(process core.ProcessResourceState, available, request core.ResourceVector) []string {
	var warnings []string
	for i, req := range request {
		if req > process.Need[i] {
			warnings = append(warnings, fmt.Sprintf("Request[%d] = %d exceeds Need[%d] = %d for %s", i, req, i, process.Need[i], process.Name))
		}
		if req > available[i] {
			warnings = append(warnings, fmt.Sprintf("Request[%d] = %d exceeds Available[%d] = %d", i, req, i, available[i]))
		}
	}
	return warnings
}
