package schedulers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"os-project/internal/core"
)

// DefaultMaxHyperperiod bounds the number of ticks a periodic simulation runs.
const DefaultMaxHyperperiod = 1_000_000

type options struct {
	timeQuantum    int
	maxHyperperiod int
}

type Option func(*options)

// WithTimeQuantum overrides the round robin quantum. Non-positive values keep
// the default.
func WithTimeQuantum(quantum int) Option {
	return func(o *options) {
		if quantum > 0 {
			o.timeQuantum = quantum
		}
	}
}

// WithMaxHyperperiod caps the hyperperiod a periodic simulation accepts.
// Non-positive values keep the default.
func WithMaxHyperperiod(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxHyperperiod = limit
		}
	}
}

func newOptions(opts []Option) options {
	o := options{timeQuantum: DefaultTimeQuantum, maxHyperperiod: DefaultMaxHyperperiod}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Schedule runs one aperiodic algorithm. An empty process list yields an
// empty timeline and no results.
func Schedule(processes []core.Process, algorithm core.Algorithm, opts ...Option) ([]core.GanttEntry, []core.ScheduleResult, error) {
	o := newOptions(opts)
	switch algorithm {
	case core.FirstComeFirstServe:
		timeline, results := ScheduleFirstComeFirstServe(processes)
		return timeline, results, nil
	case core.ShortestJobFirst:
		timeline, results := ScheduleShortestJobFirst(processes)
		return timeline, results, nil
	case core.Priority:
		timeline, results := SchedulePriority(processes)
		return timeline, results, nil
	case core.RoundRobin:
		timeline, results := ScheduleRoundRobin(processes, o.timeQuantum)
		return timeline, results, nil
	}
	return nil, nil, fmt.Errorf("%w: %q is not an aperiodic algorithm", core.ErrInvalidInput, algorithm)
}

func RunAperiodic(processes []core.Process, algorithm core.Algorithm, opts ...Option) (core.SchedulingOutput, error) {
	if err := validateProcesses(processes, false); err != nil {
		return core.SchedulingOutput{}, err
	}
	timeline, results, err := Schedule(processes, algorithm, opts...)
	if err != nil {
		return core.SchedulingOutput{}, err
	}
	return core.SchedulingOutput{
		Algorithm: algorithm,
		Timeline:  timeline,
		Results:   results,
		Analytics: generateAnalytics(timeline, results),
	}, nil
}

func RunPeriodic(tasks []core.Process, algorithm core.Algorithm, opts ...Option) (core.SchedulingOutput, error) {
	if err := validateProcesses(tasks, true); err != nil {
		return core.SchedulingOutput{}, err
	}
	timeline, summaries, total, h, err := ScheduleHyperperiod(tasks, algorithm, opts...)
	if err != nil {
		return core.SchedulingOutput{}, err
	}
	return core.SchedulingOutput{
		Algorithm:               algorithm,
		Timeline:                timeline,
		Summaries:               summaries,
		Hyperperiod:             h,
		TotalUtilizationPercent: total,
		Analytics:               generateTimelineAnalytics(timeline, 0, h),
	}, nil
}

// CompareAperiodic runs every aperiodic algorithm on the same input side by
// side. Outputs follow core.AperiodicAlgorithms order.
func CompareAperiodic(ctx context.Context, processes []core.Process, opts ...Option) ([]core.SchedulingOutput, error) {
	if err := validateProcesses(processes, false); err != nil {
		return nil, err
	}
	outputs := make([]core.SchedulingOutput, len(core.AperiodicAlgorithms))
	group, ctx := errgroup.WithContext(ctx)
	for i, algorithm := range core.AperiodicAlgorithms {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output, err := RunAperiodic(processes, algorithm, opts...)
			if err != nil {
				return err
			}
			outputs[i] = output
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func validateProcesses(processes []core.Process, periodic bool) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: at least one process is required", core.ErrInvalidInput)
	}
	for _, p := range processes {
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %q burst must be > 0", core.ErrInvalidInput, p.Name)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %q arrival must be >= 0", core.ErrInvalidInput, p.Name)
		}
		if periodic && p.Period <= 0 {
			return fmt.Errorf("%w: process %q period must be > 0", core.ErrInvalidInput, p.Name)
		}
	}
	return nil
}
