// Package ranking orders and filters tasks for presentation.
package ranking

import (
	"sort"
	"strings"
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/scoring"
)

// View thresholds.
const (
	DefaultQuickMinutes   = 15
	HyperfocusMinMinutes  = 30
	HyperfocusMinDopamine = 0.6
	HighDopamineThreshold = 0.7
	QuickWinMinutes       = 15
	DefaultExplanation    = "Standard priority task"
)

const (
	scoreEqualityTolerance = 1e-9
	optimalEnergyHeadroom  = 1
)

// Reason labels used by Explain.
const (
	ReasonOverdue        = "Overdue"
	ReasonDueToday       = "Due today"
	ReasonDueSoon        = "Due soon"
	ReasonUrgentPriority = "Urgent priority"
	ReasonHighDopamine   = "High motivation"
	ReasonQuickWin       = "Quick win"
	ReasonOptimalTime    = "Optimal time for "
)

// Prioritize returns scored copies of tasks sorted by score, highest first.
// Equal scores put dated tasks first, earlier due dates first, and otherwise keep input order.
func Prioritize(tasks []model.Task, tc scoring.TimeContext) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = scoring.Apply(t, tc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ranksBefore(out[i], out[j])
	})
	return out
}

func ranksBefore(a, b model.Task) bool {
	if diff := a.PriorityScore - b.PriorityScore; diff > scoreEqualityTolerance || diff < -scoreEqualityTolerance {
		return diff > 0
	}
	switch {
	case a.DueDate != nil && b.DueDate == nil:
		return true
	case a.DueDate == nil || b.DueDate == nil:
		return false
	}
	return a.DueDate.Before(*b.DueDate)
}

// OptimalNow keeps tasks the user can take on right now: within reach of the
// current energy level and inside the category window. Time-sensitive tasks are
// always kept. Input order is preserved.
func OptimalNow(tasks []model.Task, currentEnergyLevel int, now time.Time) []model.Task {
	hour := now.Hour()
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if scoring.IsTimeSensitive(t, now) {
			out = append(out, t)
			continue
		}
		if t.EnergyLevel <= currentEnergyLevel+optimalEnergyHeadroom && scoring.InOptimalWindow(t.Category, hour) {
			out = append(out, t)
		}
	}
	return out
}

// QuickTasks returns pending tasks that fit in maxMinutes. maxMinutes <= 0 means 15.
func QuickTasks(tasks []model.Task, maxMinutes int) []model.Task {
	if maxMinutes <= 0 {
		maxMinutes = DefaultQuickMinutes
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusPending && t.EstimatedMinutes <= maxMinutes {
			out = append(out, t)
		}
	}
	return out
}

// HyperfocusTasks returns long, rewarding pending tasks.
func HyperfocusTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.StatusPending && t.EstimatedMinutes >= HyperfocusMinMinutes && t.DopamineScore >= HyperfocusMinDopamine {
			out = append(out, t)
		}
	}
	return out
}

// Explain lists, in fixed order, why a task ranks where it does.
func Explain(task model.Task, tc scoring.TimeContext) string {
	var reasons []string

	switch {
	case scoring.IsOverdue(task, tc.Now):
		reasons = append(reasons, ReasonOverdue)
	case scoring.IsDueToday(task, tc.Now):
		reasons = append(reasons, ReasonDueToday)
	case scoring.IsDueSoon(task, tc.Now):
		reasons = append(reasons, ReasonDueSoon)
	}
	if task.Priority == model.PriorityUrgent {
		reasons = append(reasons, ReasonUrgentPriority)
	}
	if task.DopamineScore >= HighDopamineThreshold {
		reasons = append(reasons, ReasonHighDopamine)
	}
	if task.EstimatedMinutes <= QuickWinMinutes {
		reasons = append(reasons, ReasonQuickWin)
	}
	if scoring.InOptimalWindow(task.Category, tc.Now.Hour()) {
		reasons = append(reasons, ReasonOptimalTime+string(task.Category))
	}

	if len(reasons) == 0 {
		return DefaultExplanation
	}
	return strings.Join(reasons, ", ")
}
