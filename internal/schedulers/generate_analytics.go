package schedulers

import (
	"os-project/internal/core"
	"os-project/internal/util"
)

func generateAnalytics(timeline []core.GanttEntry, results []core.ScheduleResult) core.Analytics {
	if len(timeline) == 0 {
		return core.Analytics{}
	}
	from, to := timeline[0].Start, timeline[len(timeline)-1].End
	for _, r := range results {
		from = min(from, r.Process.Arrival)
	}

	analytics := generateTimelineAnalytics(timeline, from, to)
	analytics.AverageWaiting, analytics.AverageResponse, analytics.AverageTurnaround = util.CalculateAverage(results)
	if analytics.TotalTime > 0 {
		analytics.Throughput = float64(len(results)) / float64(analytics.TotalTime)
	}
	return analytics
}

// generateTimelineAnalytics measures busy and idle cpu time in [from, to).
func generateTimelineAnalytics(timeline []core.GanttEntry, from, to int) core.Analytics {
	analytics := core.Analytics{TotalTime: to - from}
	for _, entry := range timeline {
		analytics.BusyTime += entry.Duration()
	}
	analytics.IdleTime = analytics.TotalTime - analytics.BusyTime
	if analytics.TotalTime > 0 {
		analytics.CPUUtilization = float64(analytics.BusyTime) / float64(analytics.TotalTime)
	}
	return analytics
}
