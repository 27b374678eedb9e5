package model

import (
	"time"
)

// TaskIntent is the transient result of classifying one utterance.
type TaskIntent struct {
	Intent           IntentType `json:"intent"`
	TaskDescription  string     `json:"taskDescription"`
	RawTranscript    string     `json:"rawTranscript"`
	Category         Category   `json:"category"`
	Urgency          Priority   `json:"urgency"`
	DueDate          string     `json:"dueDate"`
	Context          string     `json:"context"`
	Confidence       float64    `json:"confidence"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Keywords         []string   `json:"keywords"`
	Action           string     `json:"action"`
	TargetTaskID     string     `json:"targetTaskId"`
}

// Clone returns a deep copy of the intent.
func (i TaskIntent) Clone() TaskIntent {
	c := i
	if i.Keywords != nil {
		c.Keywords = append([]string(nil), i.Keywords...)
	}
	return c
}

// DueResolver turns a due-date token or ISO string into an absolute deadline.
type DueResolver interface {
	ResolveDue(value string, base time.Time) (time.Time, bool)
}

// NewTaskFromIntent builds a task from a createTask or reminder intent.
// Energy and dopamine are estimated from category and duration.
func NewTaskFromIntent(intent TaskIntent, now time.Time, resolver DueResolver) Task {
	title := intent.TaskDescription
	if title == "" {
		title = intent.RawTranscript
	}

	minutes := intent.EstimatedMinutes
	if minutes <= 0 {
		minutes = DefaultEstimatedMinutes
	}

	var due *time.Time
	if resolver != nil && intent.DueDate != "" {
		if d, ok := resolver.ResolveDue(intent.DueDate, now); ok {
			due = &d
		}
	}

	category := ParseCategory(string(intent.Category))

	return NewTask(NewTaskInput{
		Title:            title,
		Description:      intent.RawTranscript,
		Category:         category,
		Priority:         ParsePriority(string(intent.Urgency)),
		DueDate:          due,
		EstimatedMinutes: minutes,
		EnergyLevel:      EstimateEnergyLevel(minutes),
		DopamineScore:    EstimateDopamine(category, minutes),
		Tags:             intent.Keywords,
	}, now)
}

// EstimateEnergyLevel maps a duration to the effort it is likely to take.
func EstimateEnergyLevel(minutes int) int {
	switch {
	case minutes <= 15:
		return 2
	case minutes <= 30:
		return 3
	case minutes <= 60:
		return 4
	default:
		return 5
	}
}

var categoryDopamine = map[Category]float64{
	CategoryCreative:    0.8,
	CategorySocial:      0.7,
	CategoryLearning:    0.6,
	CategoryPersonal:    0.5,
	CategoryHealth:      0.5,
	CategoryWork:        0.4,
	CategoryUrgent:      0.4,
	CategoryMaintenance: 0.3,
}

// EstimateDopamine guesses the reward value of a task. Short tasks get a small boost.
func EstimateDopamine(category Category, minutes int) float64 {
	score, ok := categoryDopamine[category]
	if !ok {
		score = categoryDopamine[CategoryPersonal]
	}
	if minutes > 0 && minutes <= 15 {
		score += 0.1
	}
	return clamp(score, 0, 1)
}
