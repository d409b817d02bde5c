package requests

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"os-project/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	Period      int    `json:"period,omitempty" yaml:"period,omitempty"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// Processes validates the jobs and converts them to core processes. Jobs
// without an id get a fresh uuid.
func (r ScheduleRequests) Processes(periodic bool) ([]core.Process, error) {
	if len(r.Jobs) == 0 {
		return nil, fmt.Errorf("%w: jobs must not be empty", core.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(r.Jobs))
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		name := strings.TrimSpace(job.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: job %d has no name", core.ErrInvalidInput, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: process name %q must be unique", core.ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
		if job.ArrivalTime < 0 || job.Priority < 0 {
			return nil, fmt.Errorf("%w: job %q has a negative field", core.ErrInvalidInput, name)
		}
		if job.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: job %q burst_time must be > 0", core.ErrInvalidInput, name)
		}
		if periodic && job.Period <= 0 {
			return nil, fmt.Errorf("%w: job %q period must be > 0", core.ErrInvalidInput, name)
		}

		id := job.ProcessId
		if id == "" {
			id = uuid.NewString()
		}
		processes = append(processes, core.Process{
			ID:       id,
			Name:     name,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
			Period:   job.Period,
		})
	}
	return processes, nil
}
