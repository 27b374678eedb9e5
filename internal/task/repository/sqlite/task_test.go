package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.db")
	r, err := New(context.Background(), repository.Options{Path: path}, &mockLogger{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func fullTask() model.Task {
	created := time.Date(2024, 5, 15, 9, 30, 0, 123, time.UTC)
	due := created.Add(26 * time.Hour)
	done := created.Add(2 * time.Hour)
	return model.Task{
		ID:               "task-1",
		Title:            "Call the dentist",
		Description:      "about the cleaning",
		Category:         model.CategoryHealth,
		Priority:         model.PriorityUrgent,
		Status:           model.StatusCompleted,
		CreatedAt:        created,
		DueDate:          &due,
		CompletedAt:      &done,
		EstimatedMinutes: 10,
		EnergyLevel:      2,
		DopamineScore:    0.45,
		Tags:             []string{"call", "dentist", "call"},
		IsRecurring:      true,
		RecurrenceType:   model.RecurrenceYearly,
		UrgencyScore:     90,
		ImportanceScore:  95,
		PriorityScore:    78,
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func TestSaveAndGet_RoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	want := fullTask()

	if err := r.SaveTask(ctx, want); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	got, err := r.GetTaskByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}

	if got.ID != want.ID || got.Title != want.Title || got.Description != want.Description {
		t.Errorf("identity fields = %+v", got)
	}
	if got.Category != want.Category || got.Priority != want.Priority || got.Status != want.Status {
		t.Errorf("enum fields = %s/%s/%s", got.Category, got.Priority, got.Status)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if !sameTime(got.DueDate, want.DueDate) || !sameTime(got.CompletedAt, want.CompletedAt) {
		t.Errorf("DueDate/CompletedAt = %v/%v", got.DueDate, got.CompletedAt)
	}
	if got.EstimatedMinutes != 10 || got.EnergyLevel != 2 || got.DopamineScore != 0.45 {
		t.Errorf("effort fields = %d/%d/%v", got.EstimatedMinutes, got.EnergyLevel, got.DopamineScore)
	}
	if len(got.Tags) != 3 || got.Tags[0] != "call" || got.Tags[2] != "call" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if !got.IsRecurring || got.RecurrenceType != model.RecurrenceYearly {
		t.Errorf("recurrence = %v/%s", got.IsRecurring, got.RecurrenceType)
	}
	if got.UrgencyScore != 90 || got.ImportanceScore != 95 || got.PriorityScore != 78 {
		t.Errorf("scores = %v/%v/%v", got.UrgencyScore, got.ImportanceScore, got.PriorityScore)
	}
}

func TestSaveTask_Upsert(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	task := fullTask()
	task.DueDate = nil
	task.Tags = nil

	if err := r.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	task.Title = "Call the dentist again"
	task.Status = model.StatusPending
	task.CompletedAt = nil
	if err := r.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask() second error = %v", err)
	}

	all, err := r.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	got := all[0]
	if got.Title != "Call the dentist again" || got.Status != model.StatusPending {
		t.Errorf("upsert did not replace: %+v", got)
	}
	if got.DueDate != nil || got.CompletedAt != nil {
		t.Errorf("expected nil dates, got %v/%v", got.DueDate, got.CompletedAt)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty slice", got.Tags)
	}
}

func TestGetAllTasks_CreationOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"c", "a", "b"} {
		task := fullTask()
		task.ID = id
		task.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := r.SaveTask(ctx, task); err != nil {
			t.Fatalf("SaveTask(%s) error = %v", id, err)
		}
	}

	all, err := r.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	var ids []string
	for _, task := range all {
		ids = append(ids, task.ID)
	}
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("ids = %v, want [c a b]", ids)
	}
}

func TestGetTaskByID_Absent(t *testing.T) {
	r := newTestRepo(t)
	got, err := r.GetTaskByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetTaskByID() error = %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero task, got %+v", got)
	}
}

func TestDeleteTask(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	task := fullTask()
	if err := r.SaveTask(ctx, task); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}

	if err := r.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := r.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask() twice error = %v", err)
	}
	got, _ := r.GetTaskByID(ctx, task.ID)
	if got.ID != "" {
		t.Error("task still present after delete")
	}
}

func TestNew_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	r1, err := New(ctx, repository.Options{Path: path}, &mockLogger{})
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	if err := r1.SaveTask(ctx, fullTask()); err != nil {
		t.Fatalf("SaveTask() error = %v", err)
	}
	r1.Close()

	r2, err := New(ctx, repository.Options{Path: path}, &mockLogger{})
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer r2.Close()
	all, err := r2.GetAllTasks(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAllTasks() = %d tasks, err %v", len(all), err)
	}
}

func TestStorageUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("nil repository", func(t *testing.T) {
		var r *implRepository
		if _, err := r.GetAllTasks(ctx); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("GetAllTasks() error = %v", err)
		}
		if err := r.SaveTask(ctx, fullTask()); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("SaveTask() error = %v", err)
		}
		if _, err := r.GetTaskByID(ctx, "x"); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("GetTaskByID() error = %v", err)
		}
		if err := r.DeleteTask(ctx, "x"); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("DeleteTask() error = %v", err)
		}
	})

	t.Run("closed database", func(t *testing.T) {
		r := newTestRepo(t)
		r.Close()
		if _, err := r.GetAllTasks(ctx); !errors.Is(err, repository.ErrStorageUnavailable) {
			t.Errorf("GetAllTasks() error = %v", err)
		}
	})
}
