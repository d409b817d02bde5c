package requests

import (
	"fmt"
	"strings"

	"os-project/internal/bankers"
	"os-project/internal/core"
)

type ResourceProcess struct {
	Name       string `json:"name" yaml:"name"`
	Allocation []int  `json:"allocation" yaml:"allocation"`
	Max        []int  `json:"max" yaml:"max"`
}

// BankersRequest describes a resource allocation snapshot. Either Available
// or Total must be given; with Total the available vector is derived from the
// allocations.
type BankersRequest struct {
	ResourceTypes []string          `json:"resource_types,omitempty" yaml:"resource_types,omitempty"`
	Total         []int             `json:"total,omitempty" yaml:"total,omitempty"`
	Available     []int             `json:"available,omitempty" yaml:"available,omitempty"`
	Processes     []ResourceProcess `json:"processes" yaml:"processes"`

	Process string `json:"process,omitempty" yaml:"process,omitempty"`
	Request []int  `json:"request,omitempty" yaml:"request,omitempty"`
}

func (r BankersRequest) State() (core.SystemResourceState, error) {
	if len(r.Processes) == 0 {
		return core.SystemResourceState{}, fmt.Errorf("%w: processes must not be empty", core.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(r.Processes))
	processes := make([]core.ProcessResourceState, 0, len(r.Processes))
	for i, p := range r.Processes {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return core.SystemResourceState{}, fmt.Errorf("%w: process %d has no name", core.ErrInvalidInput, i)
		}
		if _, dup := seen[name]; dup {
			return core.SystemResourceState{}, fmt.Errorf("%w: process name %q must be unique", core.ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
		if len(p.Max) != len(p.Allocation) {
			return core.SystemResourceState{}, fmt.Errorf("%w: process %q max and allocation differ in length", core.ErrInvalidInput, name)
		}
		processes = append(processes, bankers.NewProcessState(name, p.Allocation, p.Max))
	}

	switch {
	case r.Available != nil:
		return core.SystemResourceState{Available: core.ResourceVector(r.Available).Clone(), Processes: processes}, nil
	case r.Total != nil:
		return bankers.NewSystemState(r.Total, processes)
	}
	return core.SystemResourceState{}, fmt.Errorf("%w: either available or total is required", core.ErrInvalidInput)
}
