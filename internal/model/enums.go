package model

import (
	"encoding/json"
	"strings"
)

// Category groups tasks by life area.
type Category string

const (
	CategoryWork        Category = "work"
	CategoryPersonal    Category = "personal"
	CategoryHealth      Category = "health"
	CategoryLearning    Category = "learning"
	CategorySocial      Category = "social"
	CategoryCreative    Category = "creative"
	CategoryMaintenance Category = "maintenance"
	CategoryUrgent      Category = "urgent"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning,
	CategorySocial, CategoryCreative, CategoryMaintenance, CategoryUrgent,
}

// ParseCategory maps free text to a Category. Unknown values yield personal.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c
		}
	}
	return CategoryPersonal
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*c = CategoryPersonal
		return nil
	}
	*c = ParseCategory(s)
	return nil
}

// Priority is the tier the user declared, distinct from the computed score.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority tier from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// ParsePriority maps free text to a Priority. Unknown values yield medium.
func ParsePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Priorities {
		if p == known {
			return p
		}
	}
	return PriorityMedium
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*p = PriorityMedium
		return nil
	}
	*p = ParsePriority(s)
	return nil
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "inProgress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status.
var Statuses = []Status{StatusPending, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled}

// ParseStatus maps free text to a Status. Unknown values yield pending.
func ParseStatus(s string) Status {
	trimmed := strings.TrimSpace(s)
	for _, known := range Statuses {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return StatusPending
}

// IsValidStatus reports whether s names a known status exactly.
func IsValidStatus(s string) bool {
	for _, known := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return true
		}
	}
	return false
}

// IsOpen reports whether a task in this status still needs doing.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusPaused
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*s = StatusPending
		return nil
	}
	*s = ParseStatus(raw)
	return nil
}

// Recurrence is how often a recurring task repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// ParseRecurrence maps free text to a Recurrence. Unknown values yield none.
func ParseRecurrence(s string) Recurrence {
	switch r := Recurrence(strings.ToLower(strings.TrimSpace(s))); r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return r
	}
	return RecurrenceNone
}

func (r *Recurrence) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*r = RecurrenceNone
		return nil
	}
	*r = ParseRecurrence(s)
	return nil
}

// IntentType is the classified goal of an utterance.
type IntentType string

const (
	IntentCreateTask   IntentType = "createTask"
	IntentReminder     IntentType = "reminder"
	IntentEditTask     IntentType = "editTask"
	IntentDeleteTask   IntentType = "deleteTask"
	IntentCompleteTask IntentType = "completeTask"
	IntentListTasks    IntentType = "listTasks"
	IntentHelp         IntentType = "help"
	IntentQuestion     IntentType = "question"
	IntentUnknown      IntentType = "unknown"
)

// IntentTypes lists every intent type.
var IntentTypes = []IntentType{
	IntentCreateTask, IntentReminder, IntentEditTask, IntentDeleteTask,
	IntentCompleteTask, IntentListTasks, IntentHelp, IntentQuestion, IntentUnknown,
}

// ParseIntentType maps free text to an IntentType. Unknown values yield unknown.
func ParseIntentType(s string) IntentType {
	trimmed := strings.TrimSpace(s)
	for _, known := range IntentTypes {
		if strings.EqualFold(trimmed, string(known)) {
			return known
		}
	}
	return IntentUnknown
}

func (i *IntentType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*i = IntentUnknown
		return nil
	}
	*i = ParseIntentType(s)
	return nil
}
