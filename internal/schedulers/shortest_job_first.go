package schedulers

import (
	"log/slog"

	"os-project/internal/core"
)

func ScheduleShortestJobFirst(processes []core.Process) ([]core.GanttEntry, []core.ScheduleResult) {
	slog.Debug("running sjf algorithm", "processes", len(processes))
	return scheduleNonPreemptive(processes, func(a, b *job) bool {
		return a.process.Burst < b.process.Burst
	})
}

func SchedulePriority(processes []core.Process) ([]core.GanttEntry, []core.ScheduleResult) {
	slog.Debug("running priority algorithm", "processes", len(processes))
	return scheduleNonPreemptive(processes, func(a, b *job) bool {
		return a.process.Priority < b.process.Priority
	})
}

// scheduleNonPreemptive runs every process to completion, picking the
// smallest job by less among those that have arrived at each decision point.
func scheduleNonPreemptive(processes []core.Process, less func(a, b *job) bool) ([]core.GanttEntry, []core.ScheduleResult) {
	pending := arrivalOrder(processes)
	readyQueue := newPriorityQueue(less)

	timeline := make([]core.GanttEntry, 0, len(pending))
	results := make([]core.ScheduleResult, 0, len(pending))

	clock := 0
	for len(pending) > 0 || readyQueue.Len() > 0 {
		for len(pending) > 0 && pending[0].process.Arrival <= clock {
			readyQueue.Push(pending[0])
			pending = pending[1:]
		}

		if readyQueue.Len() == 0 {
			// cpu idle until the next arrival
			clock = pending[0].process.Arrival
			continue
		}

		next := readyQueue.Pop()
		start := clock
		end := start + next.process.Burst
		clock = end

		timeline = append(timeline, core.GanttEntry{Label: next.process.Name, Start: start, End: end})
		results = append(results, completeRun(next.process, start, end))
	}
	return timeline, results
}
