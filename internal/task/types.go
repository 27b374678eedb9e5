package task

import "adhd-task-assistant/internal/model"

// View selects which slice of the open tasks List returns.
type View string

const (
	ViewPrioritized View = "prioritized"
	ViewOptimal     View = "optimal"
	ViewQuick       View = "quick"
	ViewHyperfocus  View = "hyperfocus"
)

// Views lists every supported view.
var Views = []View{ViewPrioritized, ViewOptimal, ViewQuick, ViewHyperfocus}

// ParseView maps a string to a View. Empty means prioritized.
func ParseView(s string) (View, error) {
	if s == "" {
		return ViewPrioritized, nil
	}
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrInvalidView
}

// HandleInput is one utterance from the user plus their declared energy (1-5, 0 means default).
type HandleInput struct {
	Utterance   string
	EnergyLevel int
}

// RankedTask is a scored task with the reasons behind its rank.
type RankedTask struct {
	Task        model.Task `json:"task"`
	Explanation string     `json:"explanation"`
}

// HandleOutput is the result of acting on an utterance.
type HandleOutput struct {
	Intent  model.TaskIntent `json:"intent"`
	Message string           `json:"message"`
	Task    *model.Task      `json:"task,omitempty"`  // Task created or changed, if any
	Tasks   []RankedTask     `json:"tasks,omitempty"` // Populated for listTasks
}

// ListInput selects a view over open tasks.
type ListInput struct {
	View        View
	EnergyLevel int
	MaxMinutes  int // Only used by the quick view
}

// ListOutput is a ranked view.
type ListOutput struct {
	View  View         `json:"view"`
	Tasks []RankedTask `json:"tasks"`
}

// UpdateStatusInput moves a task to a new status.
type UpdateStatusInput struct {
	ID     string
	Status model.Status
}
