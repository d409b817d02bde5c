package core

// ResourceVector holds one non-negative count per resource type, aligned to a
// fixed resource type list.
type ResourceVector []int

func (v ResourceVector) Clone() ResourceVector {
	if v == nil {
		return nil
	}
	out := make(ResourceVector, len(v))
	copy(out, v)
	return out
}

// LessOrEqual reports whether every component of v is <= the matching
// component of other. Vectors must have the same length.
func (v ResourceVector) LessOrEqual(other ResourceVector) bool {
	for i := range v {
		if v[i] > other[i] {
			return false
		}
	}
	return true
}

func (v ResourceVector) Add(other ResourceVector) ResourceVector {
	out := v.Clone()
	for i := range out {
		out[i] += other[i]
	}
	return out
}

func (v ResourceVector) Sub(other ResourceVector) ResourceVector {
	out := v.Clone()
	for i := range out {
		out[i] -= other[i]
	}
	return out
}

type ProcessResourceState struct {
	Name       string         `json:"name"`
	Allocation ResourceVector `json:"allocation"`
	Max        ResourceVector `json:"max"`
	Need       ResourceVector `json:"need"`
}

func (p ProcessResourceState) Clone() ProcessResourceState {
	return ProcessResourceState{
		Name:       p.Name,
		Allocation: p.Allocation.Clone(),
		Max:        p.Max.Clone(),
		Need:       p.Need.Clone(),
	}
}

type SystemResourceState struct {
	Available ResourceVector         `json:"available"`
	Processes []ProcessResourceState `json:"processes"`
}

func (s SystemResourceState) Clone() SystemResourceState {
	out := SystemResourceState{
		Available: s.Available.Clone(),
		Processes: make([]ProcessResourceState, len(s.Processes)),
	}
	for i, p := range s.Processes {
		out.Processes[i] = p.Clone()
	}
	return out
}

func (s SystemResourceState) IndexOf(name string) int {
	for i, p := range s.Processes {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// SafetyStep records one admission of the safety algorithm.
type SafetyStep struct {
	Process    string         `json:"process"`
	Need       ResourceVector `json:"need"`
	Allocation ResourceVector `json:"allocation"`
	WorkAfter  ResourceVector `json:"work_after"`
	Action     string         `json:"action"`
}

type SafetyOutput struct {
	Safe     bool         `json:"safe"`
	Sequence []string     `json:"sequence"`
	Trace    []SafetyStep `json:"trace"`
}

// RequestOutput carries the verdict on a resource request. State is the
// committed state: the granted state, or an untouched copy of the input.
type RequestOutput struct {
	Granted  bool                `json:"granted"`
	Warnings []string            `json:"warnings"`
	Safety   *SafetyOutput       `json:"safety,omitempty"`
	State    SystemResourceState `json:"state"`
}
