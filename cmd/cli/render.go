package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task"
)

const (
	dueLayout   = "Mon Jan 2 15:04"
	shortIDSize = 8
)

func renderRanked(w io.Writer, tasks []task.RankedTask) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "ID", "Title", "Priority", "Due", "Min", "Score", "Why"})
	for i, rt := range tasks {
		t := rt.Task
		tw.AppendRow(table.Row{
			i + 1,
			shortID(t.ID),
			t.Title,
			t.Priority,
			formatDue(t.DueDate),
			t.EstimatedMinutes,
			fmt.Sprintf("%.1f", t.PriorityScore),
			rt.Explanation,
		})
	}
	tw.Render()
}

func renderIntent(w io.Writer, it model.TaskIntent) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"Intent", it.Intent},
		{"Confidence", fmt.Sprintf("%.2f", it.Confidence)},
		{"Task", it.TaskDescription},
		{"Category", it.Category},
		{"Urgency", it.Urgency},
		{"Due", it.DueDate},
		{"Minutes", it.EstimatedMinutes},
		{"Action", it.Action},
		{"Context", it.Context},
		{"Keywords", strings.Join(it.Keywords, ", ")},
	})
	tw.Render()
}

func renderTask(w io.Writer, rt task.RankedTask) {
	t := rt.Task
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRows([]table.Row{
		{"ID", t.ID},
		{"Title", t.Title},
		{"Status", t.Status},
		{"Category", t.Category},
		{"Priority", t.Priority},
		{"Due", formatDue(t.DueDate)},
		{"Minutes", t.EstimatedMinutes},
		{"Energy", t.EnergyLevel},
		{"Dopamine", fmt.Sprintf("%.2f", t.DopamineScore)},
		{"Score", fmt.Sprintf("%.1f (urgency %.1f, importance %.1f)", t.PriorityScore, t.UrgencyScore, t.ImportanceScore)},
		{"Tags", strings.Join(t.Tags, ", ")},
		{"Why", rt.Explanation},
	})
	tw.Render()
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.Local().Format(dueLayout)
}

func shortID(id string) string {
	if len(id) <= shortIDSize {
		return id
	}
	return id[:shortIDSize]
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
