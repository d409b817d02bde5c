package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when a run can not start from the given input.
// No partial result accompanies it.
var ErrInvalidInput = errors.New("invalid input")

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
	RateMonotonic       Algorithm = "rms"
	EarliestDeadline    Algorithm = "edf"
)

// AperiodicAlgorithms lists the one-shot algorithms in presentation order.
var AperiodicAlgorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	switch algorithm {
	case FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin, RateMonotonic, EarliestDeadline:
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, name)
}

func (a Algorithm) IsPeriodic() bool {
	return a == RateMonotonic || a == EarliestDeadline
}

// Process describes a job submitted to the simulated cpu. Period is only
// meaningful for periodic tasks.
type Process struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority int    `json:"priority"`
	Period   int    `json:"period,omitempty"`
}

// GanttEntry is one contiguous stretch of cpu time given to a single process
// (or periodic instance). Gaps between entries are idle time.
type GanttEntry struct {
	Label          string `json:"label"`
	Instance       int    `json:"instance,omitempty"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
	Deadline       int    `json:"deadline,omitempty"`
	DeadlineMissed bool   `json:"deadline_missed"`
}

func (g GanttEntry) Duration() int {
	return g.End - g.Start
}

type ScheduleResult struct {
	Process    Process `json:"process"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Waiting    int     `json:"waiting"`
	Turnaround int     `json:"turnaround"`
	Response   int     `json:"response"`
}

type PeriodicSummary struct {
	Name                string  `json:"name"`
	Period              int     `json:"period"`
	Burst               int     `json:"burst"`
	InstanceCount       int     `json:"instance_count"`
	TotalExecuted       int     `json:"total_executed"`
	MissedDeadlineCount int     `json:"missed_deadline_count"`
	UtilizationPercent  float64 `json:"utilization_percent"`
}

// Analytics aggregates cpu level metrics over a timeline.
type Analytics struct {
	TotalTime         int     `json:"total_time"`
	BusyTime          int     `json:"busy_time"`
	IdleTime          int     `json:"idle_time"`
	CPUUtilization    float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"`
	AverageWaiting    float64 `json:"average_waiting"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageResponse   float64 `json:"average_response"`
}

// SchedulingOutput is the immutable result of one scheduling run. Results is
// filled for aperiodic algorithms, Summaries for periodic ones.
type SchedulingOutput struct {
	Algorithm               Algorithm         `json:"algorithm"`
	Timeline                []GanttEntry      `json:"timeline"`
	Results                 []ScheduleResult  `json:"results,omitempty"`
	Summaries               []PeriodicSummary `json:"summaries,omitempty"`
	Hyperperiod             int               `json:"hyperperiod,omitempty"`
	TotalUtilizationPercent float64           `json:"total_utilization_percent,omitempty"`
	Analytics               Analytics         `json:"analytics"`
}
