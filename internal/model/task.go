package model

import (
	"time"

	"github.com/google/uuid"
)

// Task limits.
const (
	DefaultEstimatedMinutes = 15
	DefaultEnergyLevel      = 3
	MinEnergyLevel          = 1
	MaxEnergyLevel          = 5
	MaxScore                = 100.0
)

// Task is a persisted unit of work.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         Category   `json:"category"`
	Priority         Priority   `json:"priority"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	EnergyLevel      int        `json:"energyLevel"`
	DopamineScore    float64    `json:"dopamineScore"`
	Tags             []string   `json:"tags"`
	IsRecurring      bool       `json:"isRecurring"`
	RecurrenceType   Recurrence `json:"recurrenceType,omitempty"`

	// Derived by the scoring engine.
	UrgencyScore    float64 `json:"urgencyScore"`
	ImportanceScore float64 `json:"importanceScore"`
	PriorityScore   float64 `json:"priorityScore"`
}

// NewTaskInput carries the user-supplied fields of a new task.
type NewTaskInput struct {
	Title            string
	Description      string
	Category         Category
	Priority         Priority
	DueDate          *time.Time
	EstimatedMinutes int
	EnergyLevel      int
	DopamineScore    float64
	Tags             []string
	IsRecurring      bool
	RecurrenceType   Recurrence
}

// NewTask builds a pending task with a fresh id. Out-of-range fields are clamped.
func NewTask(in NewTaskInput, now time.Time) Task {
	t := Task{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Description:      in.Description,
		Category:         in.Category,
		Priority:         in.Priority,
		Status:           StatusPending,
		CreatedAt:        now,
		DueDate:          copyTime(in.DueDate),
		EstimatedMinutes: in.EstimatedMinutes,
		EnergyLevel:      in.EnergyLevel,
		DopamineScore:    in.DopamineScore,
		Tags:             append([]string(nil), in.Tags...),
		IsRecurring:      in.IsRecurring,
		RecurrenceType:   in.RecurrenceType,
	}
	if !t.IsRecurring {
		t.RecurrenceType = RecurrenceNone
	}
	t.Normalize()
	return t
}

// Normalize clamps every bounded field into its valid range and fills defaults.
func (t *Task) Normalize() {
	t.Category = ParseCategory(string(t.Category))
	t.Priority = ParsePriority(string(t.Priority))
	t.Status = ParseStatus(string(t.Status))
	t.RecurrenceType = ParseRecurrence(string(t.RecurrenceType))

	if t.EstimatedMinutes <= 0 {
		t.EstimatedMinutes = DefaultEstimatedMinutes
	}
	switch {
	case t.EnergyLevel == 0:
		t.EnergyLevel = DefaultEnergyLevel
	case t.EnergyLevel < MinEnergyLevel:
		t.EnergyLevel = MinEnergyLevel
	case t.EnergyLevel > MaxEnergyLevel:
		t.EnergyLevel = MaxEnergyLevel
	}
	t.DopamineScore = clamp(t.DopamineScore, 0, 1)
	t.UrgencyScore = clamp(t.UrgencyScore, 0, MaxScore)
	t.ImportanceScore = clamp(t.ImportanceScore, 0, MaxScore)
	t.PriorityScore = clamp(t.PriorityScore, 0, MaxScore)
	if t.Tags == nil {
		t.Tags = []string{}
	}

	if t.Status == StatusCompleted && t.CompletedAt == nil {
		done := t.CreatedAt
		t.CompletedAt = &done
	}
	if t.Status != StatusCompleted {
		t.CompletedAt = nil
	}
}

// SetStatus transitions the task and keeps CompletedAt in step with it.
func (t *Task) SetStatus(status Status, now time.Time) {
	if status == StatusCompleted {
		if t.Status != StatusCompleted || t.CompletedAt == nil {
			done := now
			t.CompletedAt = &done
		}
	} else {
		t.CompletedAt = nil
	}
	t.Status = status
}

// HasTag reports whether the task carries tag.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	c.DueDate = copyTime(t.DueDate)
	c.CompletedAt = copyTime(t.CompletedAt)
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
