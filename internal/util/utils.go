package util

import "os-project/internal/core"

func CalculateAverage(results []core.ScheduleResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(results) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, result := range results {
		waitingTimeSum += float64(result.Waiting)
		responseTimeSum += float64(result.Response)
		turnAroundTimeSum += float64(result.Turnaround)
	}

	processCount := float64(len(results))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
