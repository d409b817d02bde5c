package schedulers

import (
	"log/slog"

	"os-project/internal/core"
)

const DefaultTimeQuantum = 2

func ScheduleRoundRobin(processes []core.Process, timeQuantum int) ([]core.GanttEntry, []core.ScheduleResult) {
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}
	slog.Debug("running roundRobin algorithm", "processes", len(processes), "timeQuantum", timeQuantum)

	pending := arrivalOrder(processes)
	readyQueue := &fifoQueue{}

	admit := func(clock int) {
		for len(pending) > 0 && pending[0].process.Arrival <= clock {
			readyQueue.Push(pending[0])
			pending = pending[1:]
		}
	}

	timeline := make([]core.GanttEntry, 0, len(pending))
	results := make([]core.ScheduleResult, 0, len(pending))

	clock := 0
	for len(pending) > 0 || readyQueue.Len() > 0 {
		admit(clock)
		if readyQueue.Len() == 0 {
			clock = pending[0].process.Arrival
			continue
		}

		current := readyQueue.Pop()
		if !current.started {
			current.started = true
			current.firstRun = clock
		}
		start := clock
		end := start + min(timeQuantum, current.remaining)
		current.remaining -= end - start
		clock = end

		timeline = append(timeline, core.GanttEntry{Label: current.process.Name, Start: start, End: end})

		if current.remaining > 0 {
			// arrivals during the slice go ahead of the preempted process
			admit(clock)
			readyQueue.Push(current)
			continue
		}

		p := current.process
		results = append(results, core.ScheduleResult{
			Process:    p,
			Start:      current.firstRun,
			End:        end,
			Waiting:    end - p.Arrival - p.Burst,
			Turnaround: end - p.Arrival,
			Response:   current.firstRun - p.Arrival,
		})
	}
	return timeline, results
}
