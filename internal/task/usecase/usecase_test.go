package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task"
	"adhd-task-assistant/internal/task/repository"
	"adhd-task-assistant/pkg/datemath"
	"adhd-task-assistant/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRecognizer struct {
	intent model.TaskIntent
	got    string
}

func (m *mockRecognizer) Recognize(ctx context.Context, utterance string) model.TaskIntent {
	m.got = utterance
	out := m.intent
	if out.RawTranscript == "" {
		out.RawTranscript = utterance
	}
	return out
}
func (m *mockRecognizer) CacheStats() cache.Stats { return cache.Stats{} }
func (m *mockRecognizer) ClearCache()             {}

type mockRepo struct {
	tasks   []model.Task
	saveErr error
	loadErr error
	deleted []string
}

func (m *mockRepo) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]model.Task, len(m.tasks))
	for i, t := range m.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

func (m *mockRepo) SaveTask(ctx context.Context, t model.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			m.tasks[i] = t.Clone()
			return nil
		}
	}
	m.tasks = append(m.tasks, t.Clone())
	return nil
}

func (m *mockRepo) GetTaskByID(ctx context.Context, id string) (model.Task, error) {
	if m.loadErr != nil {
		return model.Task{}, m.loadErr
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockRepo) byID(id string) model.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return model.Task{}
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

var fixedNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func newTestUseCase(it model.TaskIntent, repo *mockRepo, cal Calendar) *implUseCase {
	uc := New(&mockLogger{}, &mockRecognizer{intent: it}, repo, cal, "primary", datemath.NewParserInLocation(time.UTC))
	uc.now = func() time.Time { return fixedNow }
	uc.randN = func(int) int { return 0 }
	return uc
}

func seedTask(id, title string) model.Task {
	return model.Task{
		ID:               id,
		Title:            title,
		Category:         model.CategoryPersonal,
		Priority:         model.PriorityMedium,
		Status:           model.StatusPending,
		CreatedAt:        fixedNow.Add(-time.Hour),
		EstimatedMinutes: 30,
		EnergyLevel:      3,
		DopamineScore:    0.3,
		Tags:             []string{},
	}
}

var sc = model.Scope{UserID: "user-1"}

func TestHandleUtterance_Create(t *testing.T) {
	it := model.TaskIntent{
		Intent:           model.IntentCreateTask,
		TaskDescription:  "Call mom",
		Category:         model.CategorySocial,
		Urgency:          model.PriorityHigh,
		DueDate:          "tomorrow",
		Confidence:       0.8,
		EstimatedMinutes: 10,
		Keywords:         []string{"call", "mom", "tomorrow"},
		Action:           "remind me",
	}
	repo := &mockRepo{}
	cal := &mockCalendar{}
	uc := newTestUseCase(it, repo, cal)

	out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "remind me to call mom tomorrow"})
	if err != nil {
		t.Fatalf("HandleUtterance() error = %v", err)
	}
	if len(repo.tasks) != 1 {
		t.Fatalf("saved %d tasks, want 1", len(repo.tasks))
	}
	saved := repo.tasks[0]
	if saved.Title != "Call mom" || saved.Priority != model.PriorityHigh || saved.Category != model.CategorySocial {
		t.Errorf("saved = %+v", saved)
	}
	if saved.DueDate == nil || saved.DueDate.Day() != 16 {
		t.Errorf("DueDate = %v, want May 16", saved.DueDate)
	}
	if !saved.HasTag(tagReminder) {
		t.Errorf("Tags = %v, want reminder tag", saved.Tags)
	}
	if saved.PriorityScore <= 0 {
		t.Error("expected derived score on saved task")
	}
	if out.Task == nil || out.Task.ID != saved.ID {
		t.Errorf("output task = %+v", out.Task)
	}
	if !strings.HasPrefix(out.Message, `Added "Call mom"`) {
		t.Errorf("Message = %q", out.Message)
	}
	if len(cal.requests) != 1 || cal.requests[0].Summary != "Call mom" || cal.requests[0].CalendarID != "primary" {
		t.Errorf("calendar requests = %+v", cal.requests)
	}
	if want := time.Date(2024, 5, 16, defaultEventHour, 0, 0, 0, time.UTC); !cal.requests[0].StartTime.Equal(want) {
		t.Errorf("event start = %v, want %v", cal.requests[0].StartTime, want)
	}
	if got := cal.requests[0].EndTime.Sub(cal.requests[0].StartTime); got != 10*time.Minute {
		t.Errorf("event length = %v", got)
	}
	if cal.requests[0].ReminderMinutes != reminderLeadMinutes {
		t.Errorf("ReminderMinutes = %d, want %d", cal.requests[0].ReminderMinutes, reminderLeadMinutes)
	}
}

func TestHandleUtterance_ReminderUsesTimeOfDay(t *testing.T) {
	it := model.TaskIntent{
		Intent:          model.IntentReminder,
		TaskDescription: "Call mom",
		DueDate:         "today",
		Context:         "evening",
	}
	cal := &mockCalendar{}
	uc := newTestUseCase(it, &mockRepo{}, cal)

	if _, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "remind me to call mom this evening"}); err != nil {
		t.Fatalf("HandleUtterance() error = %v", err)
	}
	if len(cal.requests) != 1 {
		t.Fatalf("calendar requests = %d, want 1", len(cal.requests))
	}
	req := cal.requests[0]
	if want := time.Date(2024, 5, 15, 19, 0, 0, 0, time.UTC); !req.StartTime.Equal(want) {
		t.Errorf("event start = %v, want %v", req.StartTime, want)
	}
	if popup := req.StartTime.Add(-time.Duration(req.ReminderMinutes) * time.Minute); popup.Day() != 15 || popup.Hour() != 18 {
		t.Errorf("popup fires at %v, want 18:50 on May 15", popup)
	}
}

func TestEventStart(t *testing.T) {
	uc := newTestUseCase(model.TaskIntent{}, &mockRepo{}, nil)
	endOfToday := time.Date(2024, 5, 15, 23, 59, 59, 0, time.UTC)
	endOfTomorrow := endOfToday.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		due       time.Time
		timeOfDay string
		now       time.Time
		want      time.Time
	}{
		{name: "evening today", due: endOfToday, timeOfDay: "evening", now: fixedNow, want: time.Date(2024, 5, 15, 19, 0, 0, 0, time.UTC)},
		{name: "morning tomorrow", due: endOfTomorrow, timeOfDay: "morning", now: fixedNow, want: time.Date(2024, 5, 16, 9, 0, 0, 0, time.UTC)},
		{name: "night tomorrow", due: endOfTomorrow, timeOfDay: "night", now: fixedNow, want: time.Date(2024, 5, 16, 21, 0, 0, 0, time.UTC)},
		{name: "no context tomorrow", due: endOfTomorrow, now: fixedNow, want: time.Date(2024, 5, 16, defaultEventHour, 0, 0, 0, time.UTC)},
		{name: "passed hour today moves to next hour", due: endOfToday, timeOfDay: "morning", now: time.Date(2024, 5, 15, 10, 20, 0, 0, time.UTC), want: time.Date(2024, 5, 15, 11, 0, 0, 0, time.UTC)},
		{name: "late evening keeps deadline", due: endOfToday, now: time.Date(2024, 5, 15, 23, 30, 0, 0, time.UTC), want: endOfToday},
		{name: "explicit time kept", due: time.Date(2024, 5, 16, 14, 30, 0, 0, time.UTC), timeOfDay: "evening", now: fixedNow, want: time.Date(2024, 5, 16, 14, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uc.eventStart(tt.due, tt.timeOfDay, tt.now); !got.Equal(tt.want) {
				t.Errorf("eventStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleUtterance_CreateCalendarBehaviour(t *testing.T) {
	t.Run("calendar failure is not fatal", func(t *testing.T) {
		it := model.TaskIntent{Intent: model.IntentReminder, TaskDescription: "Pay rent", DueDate: "today"}
		repo := &mockRepo{}
		uc := newTestUseCase(it, repo, &mockCalendar{err: errors.New("boom")})

		if _, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "pay rent today"}); err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		if len(repo.tasks) != 1 || !repo.tasks[0].HasTag(tagReminder) {
			t.Errorf("tasks = %+v", repo.tasks)
		}
	})

	t.Run("undated task skips calendar", func(t *testing.T) {
		it := model.TaskIntent{Intent: model.IntentCreateTask, TaskDescription: "Water plants"}
		cal := &mockCalendar{}
		uc := newTestUseCase(it, &mockRepo{}, cal)

		if _, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "water plants"}); err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		if len(cal.requests) != 0 {
			t.Errorf("calendar called %d times", len(cal.requests))
		}
	})

	t.Run("nil calendar", func(t *testing.T) {
		it := model.TaskIntent{Intent: model.IntentCreateTask, TaskDescription: "Water plants", DueDate: "today"}
		uc := newTestUseCase(it, &mockRepo{}, nil)
		if _, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "water plants today"}); err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
	})
}

func TestHandleUtterance_StorageErrorPropagates(t *testing.T) {
	it := model.TaskIntent{Intent: model.IntentCreateTask, TaskDescription: "Call mom"}
	repo := &mockRepo{saveErr: repository.ErrStorageUnavailable}
	uc := newTestUseCase(it, repo, nil)

	_, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "call mom"})
	if !errors.Is(err, repository.ErrStorageUnavailable) {
		t.Errorf("error = %v, want ErrStorageUnavailable", err)
	}
}

func TestHandleUtterance_Complete(t *testing.T) {
	tests := []struct {
		name   string
		intent model.TaskIntent
		wantID string
	}{
		{
			name: "fuzzy title match",
			intent: model.TaskIntent{
				Intent:          model.IntentCompleteTask,
				TaskDescription: "I finished the report",
				Action:          "finished",
				Keywords:        []string{"finished", "report"},
			},
			wantID: "t2",
		},
		{
			name: "explicit target id",
			intent: model.TaskIntent{
				Intent:       model.IntentCompleteTask,
				TargetTaskID: "t1",
				Action:       "done with",
			},
			wantID: "t1",
		},
		{
			name: "keyword overlap fallback",
			intent: model.TaskIntent{
				Intent:          model.IntentCompleteTask,
				TaskDescription: "completed mom thing",
				Action:          "completed",
				Keywords:        []string{"completed", "mom", "thing"},
			},
			wantID: "t1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom"), seedTask("t2", "Write quarterly report")}}
			uc := newTestUseCase(tt.intent, repo, nil)

			out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "x"})
			if err != nil {
				t.Fatalf("HandleUtterance() error = %v", err)
			}
			done := repo.byID(tt.wantID)
			if done.Status != model.StatusCompleted || done.CompletedAt == nil || !done.CompletedAt.Equal(fixedNow) {
				t.Errorf("task %s = %+v", tt.wantID, done)
			}
			if !strings.HasPrefix(out.Message, celebrations[0]) {
				t.Errorf("Message = %q, want celebration", out.Message)
			}
		})
	}
}

func TestHandleUtterance_NoTarget(t *testing.T) {
	for _, intentType := range []model.IntentType{model.IntentCompleteTask, model.IntentEditTask, model.IntentDeleteTask} {
		t.Run(string(intentType), func(t *testing.T) {
			it := model.TaskIntent{Intent: intentType, TaskDescription: "xyz", Keywords: []string{"xyz"}}
			repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom")}}
			uc := newTestUseCase(it, repo, nil)

			out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "xyz"})
			if err != nil {
				t.Fatalf("HandleUtterance() error = %v", err)
			}
			if out.Message != msgNoTarget {
				t.Errorf("Message = %q", out.Message)
			}
			if len(repo.deleted) != 0 || repo.tasks[0].Status != model.StatusPending {
				t.Error("task must be untouched")
			}
		})
	}
}

func TestHandleUtterance_CompletedTasksAreNotTargets(t *testing.T) {
	done := seedTask("t1", "Call mom")
	done.SetStatus(model.StatusCompleted, fixedNow.Add(-time.Hour))
	it := model.TaskIntent{Intent: model.IntentCompleteTask, TargetTaskID: "t1"}
	uc := newTestUseCase(it, &mockRepo{tasks: []model.Task{done}}, nil)

	out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "x"})
	if err != nil {
		t.Fatalf("HandleUtterance() error = %v", err)
	}
	if out.Message != msgNoTarget {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestHandleUtterance_Edit(t *testing.T) {
	t.Run("reschedule", func(t *testing.T) {
		it := model.TaskIntent{
			Intent:          model.IntentEditTask,
			TaskDescription: "Move the dentist to next week",
			Action:          "move",
			DueDate:         "next week",
			Urgency:         model.PriorityMedium,
			Keywords:        []string{"move", "dentist", "next", "week"},
		}
		repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom"), seedTask("t2", "Call the dentist")}}
		uc := newTestUseCase(it, repo, nil)

		out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "move the dentist to next week"})
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		got := repo.byID("t2")
		if got.DueDate == nil || got.DueDate.Weekday() != time.Monday || !got.DueDate.After(fixedNow) {
			t.Errorf("DueDate = %v, want next Monday", got.DueDate)
		}
		if got.Title != "Call the dentist" {
			t.Errorf("Title changed to %q", got.Title)
		}
		if !strings.HasPrefix(out.Message, "Updated") {
			t.Errorf("Message = %q", out.Message)
		}
	})

	t.Run("rename and reprioritize", func(t *testing.T) {
		it := model.TaskIntent{
			Intent:          model.IntentEditTask,
			TaskDescription: "Rename call mom to call dad",
			Action:          "rename",
			Urgency:         model.PriorityUrgent,
		}
		repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom")}}
		uc := newTestUseCase(it, repo, nil)

		if _, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "rename call mom to call dad"}); err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		got := repo.byID("t1")
		if got.Title != "Call dad" || got.Priority != model.PriorityUrgent {
			t.Errorf("task = %+v", got)
		}
	})

	t.Run("nothing to change", func(t *testing.T) {
		it := model.TaskIntent{Intent: model.IntentEditTask, TargetTaskID: "t1", Urgency: model.PriorityMedium}
		repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom")}}
		uc := newTestUseCase(it, repo, nil)

		out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "edit call mom"})
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		if !strings.HasPrefix(out.Message, "What should I change") {
			t.Errorf("Message = %q", out.Message)
		}
	})
}

func TestHandleUtterance_Delete(t *testing.T) {
	it := model.TaskIntent{
		Intent:          model.IntentDeleteTask,
		TaskDescription: "Delete the gym task",
		Action:          "delete",
		Keywords:        []string{"delete", "gym", "task"},
	}
	repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom"), seedTask("t2", "Gym")}}
	uc := newTestUseCase(it, repo, nil)

	out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "delete the gym task"})
	if err != nil {
		t.Fatalf("HandleUtterance() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "t2" {
		t.Errorf("deleted = %v", repo.deleted)
	}
	if out.Message != `Deleted "Gym".` {
		t.Errorf("Message = %q", out.Message)
	}
}

func TestHandleUtterance_ListHelpUnknown(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		var tasks []model.Task
		for i, title := range []string{"a1", "b2", "c3", "d4", "e5", "f6"} {
			tk := seedTask(title, title)
			if i == 3 {
				tk.Priority = model.PriorityUrgent
			}
			tasks = append(tasks, tk)
		}
		uc := newTestUseCase(model.TaskIntent{Intent: model.IntentListTasks}, &mockRepo{tasks: tasks}, nil)

		out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "what should i do"})
		if err != nil {
			t.Fatalf("HandleUtterance() error = %v", err)
		}
		if len(out.Tasks) != listPreviewSize {
			t.Fatalf("len = %d, want %d", len(out.Tasks), listPreviewSize)
		}
		if out.Tasks[0].Task.ID != "d4" {
			t.Errorf("first = %s, want d4", out.Tasks[0].Task.ID)
		}
		if !strings.Contains(out.Message, "6 open tasks") {
			t.Errorf("Message = %q", out.Message)
		}
	})

	t.Run("list empty", func(t *testing.T) {
		uc := newTestUseCase(model.TaskIntent{Intent: model.IntentListTasks}, &mockRepo{}, nil)
		out, _ := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "list"})
		if out.Message != msgNoOpenTasks {
			t.Errorf("Message = %q", out.Message)
		}
	})

	t.Run("help", func(t *testing.T) {
		uc := newTestUseCase(model.TaskIntent{Intent: model.IntentHelp}, &mockRepo{}, nil)
		out, _ := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "help"})
		if out.Message != msgHelp {
			t.Errorf("Message = %q", out.Message)
		}
	})

	for _, it := range []model.IntentType{model.IntentUnknown, model.IntentQuestion} {
		t.Run(string(it), func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(model.TaskIntent{Intent: it}, repo, nil)
			out, err := uc.HandleUtterance(context.Background(), sc, task.HandleInput{Utterance: "  "})
			if err != nil {
				t.Fatalf("HandleUtterance() error = %v", err)
			}
			if out.Message != msgNotUnderstood || len(repo.tasks) != 0 {
				t.Errorf("Message = %q tasks = %d", out.Message, len(repo.tasks))
			}
		})
	}
}

func TestList(t *testing.T) {
	quick := seedTask("quick", "Reply to Sam")
	quick.EstimatedMinutes = 10
	deep := seedTask("deep", "Paint")
	deep.Category = model.CategoryCreative
	deep.EstimatedMinutes = 90
	deep.DopamineScore = 0.8
	done := seedTask("done", "Old")
	done.SetStatus(model.StatusCompleted, fixedNow)

	newUC := func() *implUseCase {
		repo := &mockRepo{tasks: []model.Task{quick, deep, done}}
		return newTestUseCase(model.TaskIntent{}, repo, nil)
	}

	tests := []struct {
		name    string
		input   task.ListInput
		wantIDs []string
		wantErr error
	}{
		{name: "default is prioritized", input: task.ListInput{}, wantIDs: []string{"deep", "quick"}},
		{name: "quick", input: task.ListInput{View: task.ViewQuick}, wantIDs: []string{"quick"}},
		{name: "hyperfocus", input: task.ListInput{View: task.ViewHyperfocus}, wantIDs: []string{"deep"}},
		{name: "optimal", input: task.ListInput{View: task.ViewOptimal, EnergyLevel: 3}, wantIDs: []string{"deep"}},
		{name: "invalid view", input: task.ListInput{View: "weird"}, wantErr: task.ErrInvalidView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUC().List(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("List() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(out.Tasks) != len(tt.wantIDs) {
				t.Fatalf("got %d tasks, want %v", len(out.Tasks), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if out.Tasks[i].Task.ID != id {
					t.Errorf("tasks[%d] = %s, want %s", i, out.Tasks[i].Task.ID, id)
				}
				if out.Tasks[i].Explanation == "" {
					t.Errorf("tasks[%d] missing explanation", i)
				}
			}
		})
	}
}

func TestList_CallerLabelDoesNotPartition(t *testing.T) {
	repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Pay rent")}}
	uc := newTestUseCase(model.TaskIntent{}, repo, nil)

	for _, s := range []model.Scope{{UserID: "user-1"}, {UserID: "user-2"}, {UserID: "anonymous"}} {
		out, err := uc.List(context.Background(), s, task.ListInput{})
		if err != nil {
			t.Fatalf("List(%s) error = %v", s.UserID, err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].Task.ID != "t1" {
			t.Errorf("List(%s) = %+v, want the shared task list", s.UserID, out.Tasks)
		}
	}
}

func TestList_StorageError(t *testing.T) {
	uc := newTestUseCase(model.TaskIntent{}, &mockRepo{loadErr: repository.ErrStorageUnavailable}, nil)
	if _, err := uc.List(context.Background(), sc, task.ListInput{}); !errors.Is(err, repository.ErrStorageUnavailable) {
		t.Errorf("error = %v", err)
	}
}

func TestDetail(t *testing.T) {
	repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom")}}
	uc := newTestUseCase(model.TaskIntent{}, repo, nil)

	if _, err := uc.Detail(context.Background(), sc, ""); !errors.Is(err, task.ErrEmptyID) {
		t.Errorf("empty id error = %v", err)
	}
	if _, err := uc.Detail(context.Background(), sc, "nope"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("missing id error = %v", err)
	}
	got, err := uc.Detail(context.Background(), sc, "t1")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if got.Task.PriorityScore <= 0 || got.Explanation == "" {
		t.Errorf("Detail() = %+v", got)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   task.UpdateStatusInput
		wantErr error
	}{
		{name: "empty id", input: task.UpdateStatusInput{Status: model.StatusCompleted}, wantErr: task.ErrEmptyID},
		{name: "invalid status", input: task.UpdateStatusInput{ID: "t1", Status: "finished"}, wantErr: task.ErrInvalidStatus},
		{name: "unknown task", input: task.UpdateStatusInput{ID: "nope", Status: model.StatusPaused}, wantErr: task.ErrTaskNotFound},
		{name: "complete", input: task.UpdateStatusInput{ID: "t1", Status: model.StatusCompleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{tasks: []model.Task{seedTask("t1", "Call mom")}}
			uc := newTestUseCase(model.TaskIntent{}, repo, nil)

			got, err := uc.UpdateStatus(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.Status != model.StatusCompleted || got.CompletedAt == nil {
				t.Errorf("UpdateStatus() = %+v", got)
			}
			if stored := repo.byID("t1"); stored.Status != model.StatusCompleted {
				t.Errorf("stored status = %s", stored.Status)
			}
		})
	}
}

func TestTimeContext(t *testing.T) {
	uc := newTestUseCase(model.TaskIntent{}, &mockRepo{}, nil)
	cases := map[int]int{0: 3, -2: 1, 9: 5, 4: 4}
	for in, want := range cases {
		if got := uc.timeContext(in).EnergyLevel; got != want {
			t.Errorf("timeContext(%d).EnergyLevel = %d, want %d", in, got, want)
		}
	}
}
