package schedulers

import (
	"log/slog"
	"sort"

	"os-project/internal/core"
)

func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.GanttEntry, []core.ScheduleResult) {
	slog.Debug("running fcfs algorithm", "processes", len(processes))
	jobs := arrivalOrder(processes)

	timeline := make([]core.GanttEntry, 0, len(jobs))
	results := make([]core.ScheduleResult, 0, len(jobs))

	clock := 0
	for _, j := range jobs {
		start := max(clock, j.process.Arrival)
		end := start + j.process.Burst
		clock = end

		timeline = append(timeline, core.GanttEntry{Label: j.process.Name, Start: start, End: end})
		results = append(results, completeRun(j.process, start, end))
	}
	return timeline, results
}

func sortJobsByArrival(jobs []*job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].process.Arrival < jobs[j].process.Arrival
	})
}

// completeRun builds the result of a process that ran once, start to end.
func completeRun(p core.Process, start, end int) core.ScheduleResult {
	return core.ScheduleResult{
		Process:    p,
		Start:      start,
		End:        end,
		Waiting:    start - p.Arrival,
		Turnaround: end - p.Arrival,
		Response:   start - p.Arrival,
	}
}
