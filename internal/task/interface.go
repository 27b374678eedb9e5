package task

import (
	"context"

	"adhd-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// HandleUtterance recognizes the intent of one utterance and acts on it.
	HandleUtterance(ctx context.Context, sc model.Scope, input HandleInput) (HandleOutput, error)

	// List returns open tasks through one of the ranked views.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one task, freshly scored.
	Detail(ctx context.Context, sc model.Scope, id string) (RankedTask, error)

	// UpdateStatus transitions a task and persists it.
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Task, error)
}
