package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task/repository"
)

const taskColumns = `id, title, description, category, priority, status, created_at, due_date, completed_at,
	estimated_minutes, energy_level, dopamine_score, tags, is_recurring, recurrence_type,
	urgency_score, importance_score, priority_score`

func (r *implRepository) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at, rowid`)
	if err != nil {
		return nil, r.storageError(ctx, "GetAllTasks", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, r.storageError(ctx, "GetAllTasks", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, r.storageError(ctx, "GetAllTasks", err)
	}
	return tasks, nil
}

func (r *implRepository) SaveTask(ctx context.Context, t model.Task) error {
	if err := r.ready(); err != nil {
		return err
	}

	tags, err := json.Marshal(nonNilTags(t.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			description=excluded.description,
			category=excluded.category,
			priority=excluded.priority,
			status=excluded.status,
			due_date=excluded.due_date,
			completed_at=excluded.completed_at,
			estimated_minutes=excluded.estimated_minutes,
			energy_level=excluded.energy_level,
			dopamine_score=excluded.dopamine_score,
			tags=excluded.tags,
			is_recurring=excluded.is_recurring,
			recurrence_type=excluded.recurrence_type,
			urgency_score=excluded.urgency_score,
			importance_score=excluded.importance_score,
			priority_score=excluded.priority_score`,
		t.ID, t.Title, t.Description, string(t.Category), string(t.Priority), string(t.Status),
		t.CreatedAt.UnixNano(), nullableUnix(t.DueDate), nullableUnix(t.CompletedAt),
		t.EstimatedMinutes, t.EnergyLevel, t.DopamineScore, string(tags),
		t.IsRecurring, string(t.RecurrenceType),
		t.UrgencyScore, t.ImportanceScore, t.PriorityScore,
	)
	if err != nil {
		return r.storageError(ctx, "SaveTask", err)
	}
	return nil
}

func (r *implRepository) GetTaskByID(ctx context.Context, id string) (model.Task, error) {
	if err := r.ready(); err != nil {
		return model.Task{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		return model.Task{}, r.storageError(ctx, "GetTaskByID", err)
	}
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.ready(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return r.storageError(ctx, "DeleteTask", err)
	}
	return nil
}

func (r *implRepository) ready() error {
	if r == nil || r.db == nil {
		return repository.ErrStorageUnavailable
	}
	return nil
}

func (r *implRepository) storageError(ctx context.Context, op string, err error) error {
	r.l.Errorf(ctx, "internal.task.repository.sqlite.%s: %v", op, err)
	return fmt.Errorf("%w: %w", repository.ErrStorageUnavailable, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                          model.Task
		category, priority, status string
		recurrence, tags           string
		createdAt                  int64
		dueDate, completedAt       sql.NullInt64
	)
	err := s.Scan(
		&t.ID, &t.Title, &t.Description, &category, &priority, &status,
		&createdAt, &dueDate, &completedAt,
		&t.EstimatedMinutes, &t.EnergyLevel, &t.DopamineScore, &tags,
		&t.IsRecurring, &recurrence,
		&t.UrgencyScore, &t.ImportanceScore, &t.PriorityScore,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Category = model.Category(category)
	t.Priority = model.Priority(priority)
	t.Status = model.Status(status)
	t.RecurrenceType = model.Recurrence(recurrence)
	t.CreatedAt = time.Unix(0, createdAt).UTC()
	t.DueDate = fromNullable(dueDate)
	t.CompletedAt = fromNullable(completedAt)

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("decode tags: %w", err)
	}
	t.Tags = nonNilTags(t.Tags)
	return t, nil
}

func nullableUnix(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixNano()
}

func fromNullable(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(0, v.Int64).UTC()
	return &t
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
