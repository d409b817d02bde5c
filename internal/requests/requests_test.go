package requests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-project/internal/core"
)

func TestScheduleRequests_Processes(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: "fixed", Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{Name: " P2 ", ArrivalTime: 1, BurstTime: 3},
	}}

	processes, err := request.Processes(false)

	require.NoError(t, err)
	require.Len(t, processes, 2)
	assert.Equal(t, core.Process{ID: "fixed", Name: "P1", Arrival: 0, Burst: 5, Priority: 2}, processes[0])
	assert.Equal(t, "P2", processes[1].Name)
	_, err = uuid.Parse(processes[1].ID)
	assert.NoError(t, err)
}

func TestScheduleRequests_Invalid(t *testing.T) {
	cases := map[string]ScheduleRequests{
		"empty":          {},
		"missing name":   {Jobs: []Job{{BurstTime: 1}}},
		"duplicate name": {Jobs: []Job{{Name: "P1", BurstTime: 1}, {Name: "P1", BurstTime: 2}}},
		"zero burst":     {Jobs: []Job{{Name: "P1"}}},
		"negative":       {Jobs: []Job{{Name: "P1", BurstTime: 1, ArrivalTime: -2}}},
	}
	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := request.Processes(false)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}

	_, err := ScheduleRequests{Jobs: []Job{{Name: "T1", BurstTime: 1}}}.Processes(true)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestBankersRequest_State(t *testing.T) {
	request := BankersRequest{
		Total: []int{10, 5, 7},
		Processes: []ResourceProcess{
			{Name: "P0", Allocation: []int{0, 1, 0}, Max: []int{7, 5, 3}},
			{Name: "P1", Allocation: []int{2, 0, 0}, Max: []int{3, 2, 2}},
		},
	}

	state, err := request.State()

	require.NoError(t, err)
	assert.Equal(t, core.ResourceVector{8, 4, 7}, state.Available)
	assert.Equal(t, core.ResourceVector{1, 2, 2}, state.Processes[1].Need)

	request.Available = []int{3, 3, 2}
	state, err = request.State()
	require.NoError(t, err)
	assert.Equal(t, core.ResourceVector{3, 3, 2}, state.Available)
}

func TestBankersRequest_Invalid(t *testing.T) {
	cases := map[string]BankersRequest{
		"no processes":    {Available: []int{1}},
		"no vectors":      {Processes: []ResourceProcess{{Name: "P0", Allocation: []int{0}, Max: []int{1}}}},
		"length mismatch": {Available: []int{1}, Processes: []ResourceProcess{{Name: "P0", Allocation: []int{0}, Max: []int{1, 1}}}},
		"duplicate": {Available: []int{1}, Processes: []ResourceProcess{
			{Name: "P0", Allocation: []int{0}, Max: []int{1}},
			{Name: "P0", Allocation: []int{0}, Max: []int{1}},
		}},
	}
	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := request.State()
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}
