// Package bankers implements the Banker's algorithm for deadlock avoidance:
// the safety check over an allocation snapshot and the evaluation of a single
// resource request against it.
package bankers

import (
	"fmt"
	"log/slog"

	"os-project/internal/core"
)

// NewProcessState builds a process state with Need = Max - Allocation.
func NewProcessState(name string, allocation, maximum core.ResourceVector) core.ProcessResourceState {
	need := make(core.ResourceVector, len(allocation))
	for i := range allocation {
		if i < len(maximum) {
			need[i] = maximum[i]
		}
		need[i] -= allocation[i]
	}
	return core.ProcessResourceState{
		Name:       name,
		Allocation: allocation.Clone(),
		Max:        maximum.Clone(),
		Need:       need,
	}
}

// NewSystemState derives Available = Total - sum(Allocation).
func NewSystemState(total core.ResourceVector, processes []core.ProcessResourceState) (core.SystemResourceState, error) {
	available := total.Clone()
	for _, p := range processes {
		if len(p.Allocation) != len(total) {
			return core.SystemResourceState{}, fmt.Errorf("%w: process %q allocates %d resource types, system has %d",
				core.ErrInvalidInput, p.Name, len(p.Allocation), len(total))
		}
		available = available.Sub(p.Allocation)
	}
	for i, a := range available {
		if a < 0 {
			return core.SystemResourceState{}, fmt.Errorf("%w: resource %d is over allocated by %d", core.ErrInvalidInput, i, -a)
		}
	}
	state := core.SystemResourceState{Available: available, Processes: make([]core.ProcessResourceState, len(processes))}
	for i, p := range processes {
		state.Processes[i] = p.Clone()
	}
	return state, nil
}

// IsSafe runs the safety algorithm. Each pass admits the first unfinished
// process, in index order, whose need fits in work. On an unsafe state the
// sequence and trace are empty.
func IsSafe(names []string, allocation, need []core.ResourceVector, available core.ResourceVector) core.SafetyOutput {
	n := len(allocation)
	work := available.Clone()
	finished := make([]bool, n)
	sequence := make([]string, 0, n)
	trace := make([]core.SafetyStep, 0, n)

	for count := 0; count < n; count++ {
		admitted := -1
		for i := 0; i < n; i++ {
			if !finished[i] && need[i].LessOrEqual(work) {
				admitted = i
				break
			}
		}
		if admitted < 0 {
			return core.SafetyOutput{Safe: false, Sequence: []string{}, Trace: []core.SafetyStep{}}
		}

		work = work.Add(allocation[admitted])
		finished[admitted] = true
		sequence = append(sequence, names[admitted])
		trace = append(trace, core.SafetyStep{
			Process:    names[admitted],
			Need:       need[admitted].Clone(),
			Allocation: allocation[admitted].Clone(),
			WorkAfter:  work.Clone(),
			Action:     fmt.Sprintf("%s can be satisfied. Work = Work + Allocation", names[admitted]),
		})
	}
	return core.SafetyOutput{Safe: true, Sequence: sequence, Trace: trace}
}

func CheckSafety(state core.SystemResourceState) (core.SafetyOutput, error) {
	if err := validateState(state); err != nil {
		return core.SafetyOutput{}, err
	}
	names, allocation, need := columns(state)
	output := IsSafe(names, allocation, need, state.Available)
	slog.Debug("safety check", "processes", len(names), "safe", output.Safe, "sequence", output.Sequence)
	return output, nil
}

func columns(state core.SystemResourceState) ([]string, []core.ResourceVector, []core.ResourceVector) {
	names := make([]string, len(state.Processes))
	allocation := make([]core.ResourceVector, len(state.Processes))
	need := make([]core.ResourceVector, len(state.Processes))
	for i, p := range state.Processes {
		names[i] = p.Name
		allocation[i] = p.Allocation
		need[i] = p.Need
	}
	return names, allocation, need
}

func validateState(state core.SystemResourceState) error {
	m := len(state.Available)
	if err := validateVector("available", state.Available, m); err != nil {
		return err
	}
	for _, p := range state.Processes {
		if err := validateVector(p.Name+" allocation", p.Allocation, m); err != nil {
			return err
		}
		if err := validateVector(p.Name+" need", p.Need, m); err != nil {
			return err
		}
	}
	return nil
}

func validateVector(label string, v core.ResourceVector, length int) error {
	if len(v) != length {
		return fmt.Errorf("%w: %s has %d resource types, expected %d", core.ErrInvalidInput, label, len(v), length)
	}
	for i, x := range v {
		if x < 0 {
			return fmt.Errorf("%w: %s[%d] = %d is negative", core.ErrInvalidInput, label, i, x)
		}
	}
	return nil
}
