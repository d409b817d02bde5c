package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"os-project/internal/core"
	"os-project/internal/responses"
	"os-project/internal/util"
)

const unitWidth = 3

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).MarginBottom(1)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func renderGantt(timeline []core.GanttEntry) string {
	if len(timeline) == 0 {
		return mutedStyle.Render("(empty timeline)")
	}
	var blocks []string
	clock := timeline[0].Start
	for _, entry := range timeline {
		if entry.Start > clock {
			blocks = append(blocks, ganttBlock("idle", clock, entry.Start, "#374151"))
		}
		label := entry.Label
		if entry.Instance > 0 {
			label = fmt.Sprintf("%s(%d)", entry.Label, entry.Instance)
		}
		color := util.ColorFor(entry.Label)
		if entry.DeadlineMissed {
			label += "!"
			color = "#EF4444"
		}
		blocks = append(blocks, ganttBlock(label, entry.Start, entry.End, color))
		clock = entry.End
	}
	blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, "", strconv.Itoa(clock)))
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func ganttBlock(label string, start, end int, color string) string {
	width := max((end-start)*unitWidth, len(label)+2)
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("#F9FAFB")).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
	ticks := lipgloss.NewStyle().Width(width).Render(strconv.Itoa(start))
	return lipgloss.JoinVertical(lipgloss.Left, bar, ticks)
}

func renderAperiodic(output core.SchedulingOutput) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Process", "Arrival", "Burst", "Priority", "Start", "End", "Waiting", "Turnaround", "Response")
	for _, r := range output.Results {
		t.Row(r.Process.Name,
			strconv.Itoa(r.Process.Arrival),
			strconv.Itoa(r.Process.Burst),
			strconv.Itoa(r.Process.Priority),
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			strconv.Itoa(r.Waiting),
			strconv.Itoa(r.Turnaround),
			strconv.Itoa(r.Response))
	}

	a := output.Analytics
	stats := fmt.Sprintf("Average waiting: %.2f  Average turnaround: %.2f  Average response: %.2f\nCPU utilization: %.2f%%  Idle: %d  Throughput: %.3f",
		a.AverageWaiting, a.AverageTurnaround, a.AverageResponse, a.CPUUtilization*100, a.IdleTime, a.Throughput)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(strings.ToUpper(string(output.Algorithm))+" Result"),
		t.Render(),
		stats,
		"",
		renderGantt(output.Timeline),
	)
}

func renderPeriodic(output core.SchedulingOutput) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Task", "Period", "Burst", "Instances", "Executed", "Missed", "Utilization %")
	for _, s := range output.Summaries {
		missed := strconv.Itoa(s.MissedDeadlineCount)
		if s.MissedDeadlineCount > 0 {
			missed = dangerStyle.Render(missed)
		}
		t.Row(s.Name,
			strconv.Itoa(s.Period),
			strconv.Itoa(s.Burst),
			strconv.Itoa(s.InstanceCount),
			strconv.Itoa(s.TotalExecuted),
			missed,
			fmt.Sprintf("%.2f", s.UtilizationPercent))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s Result (Periodic - LCM: %d)", strings.ToUpper(string(output.Algorithm)), output.Hyperperiod)),
		t.Render(),
		fmt.Sprintf("Total System Utilization: %.2f%%", output.TotalUtilizationPercent),
		"",
		renderGantt(output.Timeline),
	)
}

func renderComparison(outputs []core.SchedulingOutput) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Algorithm", "Avg waiting", "Avg turnaround", "Avg response", "Makespan", "Throughput")
	for _, output := range outputs {
		a := output.Analytics
		t.Row(string(output.Algorithm),
			fmt.Sprintf("%.2f", a.AverageWaiting),
			fmt.Sprintf("%.2f", a.AverageTurnaround),
			fmt.Sprintf("%.2f", a.AverageResponse),
			strconv.Itoa(a.TotalTime),
			fmt.Sprintf("%.3f", a.Throughput))
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Algorithm comparison"), t.Render())
}

func renderSafety(response responses.SafetyResponse) string {
	verdict := dangerStyle.Render(response.Result)
	if response.Safe {
		verdict = okStyle.Render(response.Result)
	}
	parts := []string{titleStyle.Render("Banker's Algorithm - Safety Check"), verdict}
	parts = append(parts, renderTrace(response.Sequence, response.Steps, response.ResourceTypes)...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRequest(response responses.RequestResponse) string {
	verdict := dangerStyle.Render(response.Result)
	if response.Granted {
		verdict = okStyle.Render(response.Result)
	}
	parts := []string{titleStyle.Render("Banker's Algorithm - Request Check"), verdict}
	for _, w := range response.Warnings {
		parts = append(parts, warningStyle.Render("• "+w))
	}
	parts = append(parts, renderTrace(response.Sequence, response.Steps, response.ResourceTypes)...)
	parts = append(parts, "Available: "+formatVector(response.Available, response.ResourceTypes))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTrace(sequence []string, steps []core.SafetyStep, resourceTypes []string) []string {
	if len(sequence) == 0 {
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Step", "Process", "Need", "Allocation", "Work")
	for i, s := range steps {
		t.Row(strconv.Itoa(i+1), s.Process,
			formatVector(s.Need, resourceTypes),
			formatVector(s.Allocation, resourceTypes),
			formatVector(s.WorkAfter, resourceTypes))
	}
	return []string{"Safe Sequence: " + strings.Join(sequence, " → "), t.Render()}
}

func formatVector(v core.ResourceVector, resourceTypes []string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		if i < len(resourceTypes) && resourceTypes[i] != "" {
			parts[i] = fmt.Sprintf("%s:%d", resourceTypes[i], x)
		} else {
			parts[i] = strconv.Itoa(x)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
