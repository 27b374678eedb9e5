package repository

import (
	"context"

	"adhd-task-assistant/internal/model"
)

// Repository is the persistence contract for tasks.
// Every method fails with ErrStorageUnavailable when storage is not initialized.
type Repository interface {
	// GetAllTasks returns every stored task in creation order.
	GetAllTasks(ctx context.Context) ([]model.Task, error)

	// SaveTask inserts or replaces the task with the same ID.
	SaveTask(ctx context.Context, task model.Task) error

	// GetTaskByID returns the zero Task when the id is unknown.
	GetTaskByID(ctx context.Context, id string) (model.Task, error)

	// DeleteTask removes a task. Unknown ids are not an error.
	DeleteTask(ctx context.Context, id string) error
}
