package schedulers

import (
	"fmt"
	"log/slog"
	"math"

	"os-project/internal/core"
)

// instance is the k-th release of a periodic task inside the hyperperiod.
type instance struct {
	task      int
	number    int
	arrival   int
	deadline  int
	remaining int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) (int, error) {
	q := a / gcd(a, b)
	if q > math.MaxInt/b {
		return 0, fmt.Errorf("%w: least common multiple of %d and %d overflows", core.ErrInvalidInput, a, b)
	}
	return q * b, nil
}

// Hyperperiod is the least common multiple of every task period.
func Hyperperiod(tasks []core.Process) (int, error) {
	h := 1
	for _, t := range tasks {
		if t.Period <= 0 {
			return 0, fmt.Errorf("%w: task %q period must be > 0", core.ErrInvalidInput, t.Name)
		}
		var err error
		if h, err = lcm(h, t.Period); err != nil {
			return 0, err
		}
	}
	return h, nil
}

// ScheduleHyperperiod simulates rms or edf tick by tick over one hyperperiod.
// An instance that misses its deadline keeps competing for the cpu until the
// hyperperiod ends. Hyperperiods above the WithMaxHyperperiod ceiling are
// rejected before simulating.
func ScheduleHyperperiod(tasks []core.Process, algorithm core.Algorithm, opts ...Option) ([]core.GanttEntry, []core.PeriodicSummary, float64, int, error) {
	if len(tasks) == 0 {
		return nil, nil, 0, 0, fmt.Errorf("%w: at least one periodic task is required", core.ErrInvalidInput)
	}

	var higher func(a, b *instance) bool
	switch algorithm {
	case core.RateMonotonic:
		higher = func(a, b *instance) bool { return tasks[a.task].Period < tasks[b.task].Period }
	case core.EarliestDeadline:
		higher = func(a, b *instance) bool { return a.deadline < b.deadline }
	default:
		return nil, nil, 0, 0, fmt.Errorf("%w: %q is not a periodic algorithm", core.ErrInvalidInput, algorithm)
	}
	less := func(a, b *instance) bool {
		if higher(a, b) {
			return true
		}
		if higher(b, a) {
			return false
		}
		if a.task != b.task {
			return a.task < b.task
		}
		return a.number < b.number
	}

	h, err := Hyperperiod(tasks)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	if limit := newOptions(opts).maxHyperperiod; h > limit {
		return nil, nil, 0, 0, fmt.Errorf("%w: hyperperiod %d exceeds the limit of %d", core.ErrInvalidInput, h, limit)
	}
	slog.Debug("running periodic algorithm", "algorithm", algorithm, "tasks", len(tasks), "hyperperiod", h)

	releases := make(map[int][]*instance)
	for i, t := range tasks {
		for k := 0; k < h/t.Period; k++ {
			arrival := k * t.Period
			releases[arrival] = append(releases[arrival], &instance{
				task:      i,
				number:    k + 1,
				arrival:   arrival,
				deadline:  (k + 1) * t.Period,
				remaining: t.Burst,
			})
		}
	}

	var (
		ready    []*instance
		current  *instance
		timeline []core.GanttEntry
	)
	for time := 0; time < h; time++ {
		ready = append(ready, releases[time]...)
		if current != nil && current.remaining > 0 {
			ready = append(ready, current)
		}

		current = nil
		if len(ready) > 0 {
			best := 0
			for i := 1; i < len(ready); i++ {
				if less(ready[i], ready[best]) {
					best = i
				}
			}
			current = ready[best]
			ready = append(ready[:best], ready[best+1:]...)
		}
		if current == nil {
			continue
		}

		last := len(timeline) - 1
		if last >= 0 && timeline[last].Label == tasks[current.task].Name &&
			timeline[last].Instance == current.number && timeline[last].End == time {
			timeline[last].End = time + 1
		} else {
			timeline = append(timeline, core.GanttEntry{
				Label:    tasks[current.task].Name,
				Instance: current.number,
				Start:    time,
				End:      time + 1,
				Deadline: current.deadline,
			})
			last = len(timeline) - 1
		}
		current.remaining--

		if time+1 == current.deadline && current.remaining > 0 {
			timeline[last].DeadlineMissed = true
		}
	}

	summaries, total := summarizePeriodic(tasks, timeline, h)
	return timeline, summaries, total, h, nil
}

func summarizePeriodic(tasks []core.Process, timeline []core.GanttEntry, h int) ([]core.PeriodicSummary, float64) {
	summaries := make([]core.PeriodicSummary, 0, len(tasks))
	var total float64
	for _, t := range tasks {
		summary := core.PeriodicSummary{
			Name:          t.Name,
			Period:        t.Period,
			Burst:         t.Burst,
			InstanceCount: h / t.Period,
		}
		for _, entry := range timeline {
			if entry.Label != t.Name {
				continue
			}
			summary.TotalExecuted += entry.Duration()
			if entry.DeadlineMissed {
				summary.MissedDeadlineCount++
			}
		}
		summary.UtilizationPercent = float64(summary.TotalExecuted) / float64(h) * 100
		total += summary.UtilizationPercent
		summaries = append(summaries, summary)
	}
	return summaries, total
}
