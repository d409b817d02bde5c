package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-project/config"
	"os-project/internal/responses"
)

func newTestApp() *fiber.App {
	return NewApp(NewSchedulerHandlerImpl(&config.SchedulerConfig{RoundRobinTimeQuantum: 2}))
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

const twoJobs = `{"jobs":[
	{"name":"P1","arrival_time":0,"burst_time":5},
	{"name":"P2","arrival_time":1,"burst_time":3}
]}`

func TestHealth(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestFirstComeFirstServe(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/fcfs", twoJobs)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.ScheduleResponse
	decode(t, resp, &body)

	assert.Equal(t, "fcfs", body.Algorithm)
	require.Len(t, body.Details, 2)
	assert.Equal(t, 0, body.Details[0].WaitingTime)
	assert.Equal(t, 4, body.Details[1].WaitingTime)
	assert.NotEmpty(t, body.Details[0].ProcessId)
	require.Len(t, body.GanttChart, 2)
	assert.Equal(t, 5, body.GanttChart[1].Start)
	assert.Equal(t, 8, body.GanttChart[1].End)
	assert.NotEmpty(t, body.GanttChart[0].Color)
	assert.InDelta(t, 2.0, body.AverageWaitingTime, 1e-9)
}

func TestRoundRobin(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/rr", `{"jobs":[
		{"name":"P1","arrival_time":0,"burst_time":4},
		{"name":"P2","arrival_time":1,"burst_time":2}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.ScheduleResponse
	decode(t, resp, &body)

	require.Len(t, body.GanttChart, 3)
	assert.Equal(t, "P1", body.GanttChart[2].Name)
	assert.Equal(t, 3, body.Details[0].TurnAroundTime)
	assert.Equal(t, 6, body.Details[1].TurnAroundTime)
}

func TestAllAlgorithms(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all", twoJobs)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]responses.ScheduleResponse
	decode(t, resp, &body)

	assert.Len(t, body, 4)
	for _, name := range []string{"fcfs", "sjf", "priority", "rr"} {
		assert.Contains(t, body, name)
	}
}

func TestRateMonotonic(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/rms", `{"jobs":[
		{"name":"T1","burst_time":1,"period":2},
		{"name":"T2","burst_time":3,"period":4}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.PeriodicResponse
	decode(t, resp, &body)

	assert.Equal(t, 4, body.Hyperperiod)
	require.Len(t, body.Summary, 2)
	assert.Equal(t, 1, body.Summary[1].MissedDeadlines)
	last := body.GanttChart[len(body.GanttChart)-1]
	assert.True(t, last.DeadlineMissed)
	assert.Equal(t, "#FFCCCC", last.Color)
}

func TestPeriodic_RejectsLargeHyperperiod(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/edf", `{"jobs":[
		{"name":"A","burst_time":1,"period":1000003},
		{"name":"B","burst_time":1,"period":1000033}
	]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, app, "/api/v1/rms", `{"jobs":[
		{"name":"A","burst_time":1,"period":2147483647},
		{"name":"B","burst_time":1,"period":2147483629},
		{"name":"C","burst_time":1,"period":2147483587}
	]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	limited := NewApp(NewSchedulerHandlerImpl(&config.SchedulerConfig{RoundRobinTimeQuantum: 2, MaxHyperperiod: 10}))
	resp = post(t, limited, "/api/v1/rms", `{"jobs":[
		{"name":"T1","burst_time":1,"period":4},
		{"name":"T2","burst_time":2,"period":6}
	]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEarliestDeadlineFirst_RequiresPeriod(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/edf", twoJobs)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScheduling_InvalidInput(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/sjf", `{"jobs":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, app, "/api/v1/priority", `{"jobs":[{"name":"P1","burst_time":1},{"name":"P1","burst_time":2}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, app, "/api/v1/fcfs", `{"jobs":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "invalid request format", body["error"])
}

const textbook = `{
	"available": [3, 3, 2],
	"processes": [
		{"name": "P0", "allocation": [0, 1, 0], "max": [7, 5, 3]},
		{"name": "P1", "allocation": [2, 0, 0], "max": [3, 2, 2]},
		{"name": "P2", "allocation": [3, 0, 2], "max": [9, 0, 2]},
		{"name": "P3", "allocation": [2, 1, 1], "max": [2, 2, 2]},
		{"name": "P4", "allocation": [0, 0, 2], "max": [4, 3, 3]}
	]`

func TestBankersSafety(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/bankers/safety", textbook+"}")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body responses.SafetyResponse
	decode(t, resp, &body)

	assert.Equal(t, "SAFE", body.Result)
	assert.Equal(t, []string{"P1", "P3", "P0", "P2", "P4"}, body.Sequence)
	assert.Len(t, body.Steps, 5)
	assert.Empty(t, body.ResourceTypes)
}

func TestBankers_EchoResourceTypes(t *testing.T) {
	app := newTestApp()
	named := `{"resource_types": ["A", "B", "C"],` + textbook[1:]

	resp := post(t, app, "/api/v1/bankers/safety", named+"}")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var safety responses.SafetyResponse
	decode(t, resp, &safety)
	assert.Equal(t, []string{"A", "B", "C"}, safety.ResourceTypes)

	resp = post(t, app, "/api/v1/bankers/request", named+`, "process": "P1", "request": [1, 0, 2]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var request responses.RequestResponse
	decode(t, resp, &request)
	assert.Equal(t, []string{"A", "B", "C"}, request.ResourceTypes)
}

func TestBankersRequest(t *testing.T) {
	app := newTestApp()

	resp := post(t, app, "/api/v1/bankers/request", textbook+`, "process": "P1", "request": [1, 0, 2]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var granted responses.RequestResponse
	decode(t, resp, &granted)
	assert.True(t, granted.Granted)
	assert.Equal(t, "REQUEST GRANTED - SAFE STATE", granted.Result)
	assert.Equal(t, []int{2, 3, 0}, []int(granted.Available))

	resp = post(t, app, "/api/v1/bankers/request", textbook+`, "process": "P4", "request": [3, 3, 0]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var denied responses.RequestResponse
	decode(t, resp, &denied)
	assert.False(t, denied.Granted)
	assert.Equal(t, "REQUEST DENIED - UNSAFE STATE", denied.Result)
	assert.Equal(t, []int{3, 3, 2}, []int(denied.Available))

	resp = post(t, app, "/api/v1/bankers/request", textbook+`, "process": "P1", "request": [2, 0, 0]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var invalid responses.RequestResponse
	decode(t, resp, &invalid)
	assert.Equal(t, "INVALID REQUEST", invalid.Result)
	assert.Equal(t, []string{"Request[0] = 2 exceeds Need[0] = 1 for P1"}, invalid.Warnings)

	resp = post(t, app, "/api/v1/bankers/request", textbook+`, "process": "P9", "request": [0, 0, 0]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
