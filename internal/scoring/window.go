package scoring

import (
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/datemath"
)

// InOptimalWindow reports whether hour falls in the category's optimal window.
func InOptimalWindow(category model.Category, hour int) bool {
	if category == model.CategoryUrgent {
		return true
	}
	for _, r := range optimalHours[category] {
		if hour >= r.start && hour <= r.end {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the task's due day is before today in now's location.
func IsOverdue(task model.Task, now time.Time) bool {
	return task.DueDate != nil && datemath.DayBefore(*task.DueDate, now, now.Location())
}

// IsDueToday reports whether the task is due on now's calendar day.
func IsDueToday(task model.Task, now time.Time) bool {
	return task.DueDate != nil && datemath.SameDay(*task.DueDate, now, now.Location())
}

// IsDueSoon reports whether the due instant lies within the next 24 hours.
func IsDueSoon(task model.Task, now time.Time) bool {
	if task.DueDate == nil {
		return false
	}
	due := *task.DueDate
	return due.After(now) && !due.After(now.Add(dueSoonWindow))
}

// IsTimeSensitive reports overdue, due today, or due within 24 hours.
func IsTimeSensitive(task model.Task, now time.Time) bool {
	return IsOverdue(task, now) || IsDueToday(task, now) || IsDueSoon(task, now)
}

func inHighEnergyBand(hour int) bool {
	return hour >= highEnergyStart && hour <= highEnergyEnd
}

func inMediumEnergyBand(hour int) bool {
	return hour >= mediumEnergyStart && hour <= mediumEnergyEnd
}
