package responses

import (
	"os-project/internal/core"
	"os-project/internal/util"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	StartTime      int    `json:"start_time"`
	EndTime        int    `json:"end_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type GanttResponse struct {
	Name           string `json:"name"`
	Instance       int    `json:"instance,omitempty"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Deadline       int    `json:"deadline,omitempty"`
	DeadlineMissed bool   `json:"deadline_missed"`
	Color          string `json:"color"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	GanttChart            []GanttResponse   `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}

type PeriodicTaskResponse struct {
	Name               string  `json:"name"`
	Period             int     `json:"period"`
	BurstTime          int     `json:"burst_time"`
	TotalInstances     int     `json:"total_instances"`
	TotalExecutionTime int     `json:"total_execution_time"`
	MissedDeadlines    int     `json:"missed_deadlines"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

type PeriodicResponse struct {
	Algorithm               string                 `json:"algorithm"`
	Hyperperiod             int                    `json:"hyperperiod"`
	TotalUtilizationPercent float64                `json:"total_utilization_percent"`
	IdleTime                int                    `json:"idle_time"`
	GanttChart              []GanttResponse        `json:"gantt_chart"`
	Summary                 []PeriodicTaskResponse `json:"summary"`
}

func NewScheduleResponse(output core.SchedulingOutput) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(output.Results))
	for _, r := range output.Results {
		details = append(details, ProcessResponse{
			ProcessId:      r.Process.ID,
			Name:           r.Process.Name,
			ArrivalTime:    r.Process.Arrival,
			BurstTime:      r.Process.Burst,
			StartTime:      r.Start,
			EndTime:        r.End,
			ResponseTime:   r.Response,
			TurnAroundTime: r.Turnaround,
			WaitingTime:    r.Waiting,
		})
	}
	a := output.Analytics
	return ScheduleResponse{
		Algorithm:             string(output.Algorithm),
		TotalTime:             a.TotalTime,
		IdleTime:              a.IdleTime,
		AverageWaitingTime:    a.AverageWaiting,
		AverageResponseTime:   a.AverageResponse,
		AverageTurnAroundTime: a.AverageTurnaround,
		CpuUtilization:        a.CPUUtilization,
		CpuThroughput:         a.Throughput,
		GanttChart:            NewGanttChart(output.Timeline),
		Details:               details,
	}
}

func NewPeriodicResponse(output core.SchedulingOutput) PeriodicResponse {
	summary := make([]PeriodicTaskResponse, 0, len(output.Summaries))
	for _, s := range output.Summaries {
		summary = append(summary, PeriodicTaskResponse{
			Name:               s.Name,
			Period:             s.Period,
			BurstTime:          s.Burst,
			TotalInstances:     s.InstanceCount,
			TotalExecutionTime: s.TotalExecuted,
			MissedDeadlines:    s.MissedDeadlineCount,
			UtilizationPercent: s.UtilizationPercent,
		})
	}
	return PeriodicResponse{
		Algorithm:               string(output.Algorithm),
		Hyperperiod:             output.Hyperperiod,
		TotalUtilizationPercent: output.TotalUtilizationPercent,
		IdleTime:                output.Analytics.IdleTime,
		GanttChart:              NewGanttChart(output.Timeline),
		Summary:                 summary,
	}
}

func NewGanttChart(timeline []core.GanttEntry) []GanttResponse {
	chart := make([]GanttResponse, 0, len(timeline))
	for _, g := range timeline {
		color := util.ColorFor(g.Label)
		if g.DeadlineMissed {
			color = util.MissedColor
		}
		chart = append(chart, GanttResponse{
			Name:           g.Label,
			Instance:       g.Instance,
			Start:          g.Start,
			End:            g.End,
			Deadline:       g.Deadline,
			DeadlineMissed: g.DeadlineMissed,
			Color:          color,
		})
	}
	return chart
}
