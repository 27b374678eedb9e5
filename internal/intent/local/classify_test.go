package local

import (
	"context"
	"reflect"
	"testing"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/log"
)

func TestClassify(t *testing.T) {
	c := New(log.NewNop())

	tests := []struct {
		name         string
		utterance    string
		wantIntent   model.IntentType
		wantConf     float64
		wantCategory model.Category
		wantUrgency  model.Priority
		wantDue      string
		wantMinutes  int
		wantAction   string
	}{
		{
			name: "call mom this evening", utterance: "I need to call mom this evening",
			wantIntent: model.IntentCreateTask, wantConf: 0.8, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantDue: "today", wantMinutes: 5, wantAction: "i need to",
		},
		{
			name: "complete laundry", utterance: "I finished the laundry",
			wantIntent: model.IntentCompleteTask, wantConf: 0.9, wantCategory: model.CategoryMaintenance,
			wantUrgency: model.PriorityMedium, wantMinutes: 30, wantAction: "finished",
		},
		{
			name: "create beats complete", utterance: "add milk and mark as done the report",
			wantIntent: model.IntentCreateTask, wantConf: 0.8, wantCategory: model.CategoryWork,
			wantUrgency: model.PriorityMedium, wantMinutes: 120, wantAction: "add",
		},
		{
			name: "complete beats delete", utterance: "completed, so remove it",
			wantIntent: model.IntentCompleteTask, wantConf: 0.9, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantMinutes: 30, wantAction: "completed",
		},
		{
			name: "edit meeting", utterance: "reschedule the meeting to tomorrow",
			wantIntent: model.IntentEditTask, wantConf: 0.85, wantCategory: model.CategoryWork,
			wantUrgency: model.PriorityMedium, wantDue: "tomorrow", wantMinutes: 60, wantAction: "reschedule",
		},
		{
			name: "delete gym", utterance: "delete the gym session",
			wantIntent: model.IntentDeleteTask, wantConf: 0.9, wantCategory: model.CategoryHealth,
			wantUrgency: model.PriorityMedium, wantMinutes: 30, wantAction: "delete",
		},
		{
			name: "list agenda", utterance: "What's on my agenda today?",
			wantIntent: model.IntentListTasks, wantConf: 0.95, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantDue: "today", wantMinutes: 30, wantAction: "what's on",
		},
		{
			name: "help", utterance: "help",
			wantIntent: model.IntentHelp, wantConf: 0.9, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantMinutes: 30, wantAction: "help",
		},
		{
			name: "unmatched falls back to create", utterance: "blah blah blah",
			wantIntent: model.IntentCreateTask, wantConf: 0.3, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantMinutes: 30,
		},
		{
			name: "urgent category and tier", utterance: "urgent fix the sink asap",
			wantIntent: model.IntentCreateTask, wantConf: 0.3, wantCategory: model.CategoryUrgent,
			wantUrgency: model.PriorityUrgent, wantMinutes: 30,
		},
		{
			name: "low urgency learning", utterance: "maybe read a book someday",
			wantIntent: model.IntentCreateTask, wantConf: 0.3, wantCategory: model.CategoryLearning,
			wantUrgency: model.PriorityLow, wantMinutes: 30,
		},
		{
			name: "important project next week", utterance: "I must finish the project next week",
			wantIntent: model.IntentCreateTask, wantConf: 0.8, wantCategory: model.CategoryWork,
			wantUrgency: model.PriorityHigh, wantDue: "next week", wantMinutes: 120, wantAction: "i must",
		},
		{
			name: "word boundaries", utterance: "the caravan padded quietly",
			wantIntent: model.IntentCreateTask, wantConf: 0.3, wantCategory: model.CategoryPersonal,
			wantUrgency: model.PriorityMedium, wantMinutes: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.utterance)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Urgency != tt.wantUrgency {
				t.Errorf("Urgency = %q, want %q", got.Urgency, tt.wantUrgency)
			}
			if got.DueDate != tt.wantDue {
				t.Errorf("DueDate = %q, want %q", got.DueDate, tt.wantDue)
			}
			if got.EstimatedMinutes != tt.wantMinutes {
				t.Errorf("EstimatedMinutes = %d, want %d", got.EstimatedMinutes, tt.wantMinutes)
			}
			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.RawTranscript != tt.utterance {
				t.Errorf("RawTranscript = %q, want %q", got.RawTranscript, tt.utterance)
			}
		})
	}
}

func TestClassify_ScenarioExtraction(t *testing.T) {
	c := New(log.NewNop())

	got, _ := c.Classify(context.Background(), "I need to call mom this evening")

	if got.TaskDescription != "Call mom this evening" {
		t.Errorf("TaskDescription = %q", got.TaskDescription)
	}
	if got.Context != "evening" {
		t.Errorf("Context = %q, want evening", got.Context)
	}
	want := []string{"call", "mom", "evening"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", got.Keywords, want)
	}
}

func TestCleanDescription(t *testing.T) {
	c := New(log.NewNop())

	tests := []struct {
		in   string
		want string
	}{
		{"Um, so, please add a task to buy milk", "Buy milk"},
		{"remind me to water the plants", "Water the plants"},
		{"I have to Finish Taxes", "Finish Taxes"},
		{"umbrella shopping", "Umbrella shopping"},
		{"so", "So"},
		{"okay", "Okay"},
		{"create a budget spreadsheet", "Budget spreadsheet"},
		{"add an appointment with the vet", "Appointment with the vet"},
		{"create another list", "Another list"},
		{"add apples to the cart", "Apples to the cart"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := c.cleanDescription(tt.in); got != tt.want {
				t.Errorf("cleanDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"call the dentist, then email bob!!", []string{"call", "dentist", "email", "bob"}},
		{"call call mom", []string{"call", "call", "mom"}},
		{"to do it", []string{}},
		{"don\u2019t forget rent", []string{"forget", "rent"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := extractKeywords(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractKeywords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_TypographicApostrophe(t *testing.T) {
	c := New(log.NewNop())

	got, _ := c.Classify(context.Background(), "don\u2019t forget to pay rent")

	if got.Intent != model.IntentCreateTask || got.Confidence != ConfidenceCreateTask {
		t.Errorf("Intent = %s (%.2f), want createTask (0.80)", got.Intent, got.Confidence)
	}
	if got.Action != "don't forget" {
		t.Errorf("Action = %q, want don't forget", got.Action)
	}
	for _, k := range got.Keywords {
		if k == "don't" || k == "don\u2019t" {
			t.Errorf("Keywords = %v, apostrophe word kept", got.Keywords)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(log.NewNop())
	a, _ := c.Classify(context.Background(), "Schedule a doctor appointment tomorrow morning")
	b, _ := c.Classify(context.Background(), "Schedule a doctor appointment tomorrow morning")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Classify() not deterministic: %+v vs %+v", a, b)
	}
	if a.Category != model.CategoryHealth || a.DueDate != "tomorrow" || a.EstimatedMinutes != 60 || a.Context != "morning" {
		t.Errorf("unexpected extraction: %+v", a)
	}
}
