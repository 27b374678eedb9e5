package usecase

import (
	"context"
	"fmt"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/scoring"
	"adhd-task-assistant/internal/task"
)

// UpdateStatus transitions a task and persists it.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	if input.ID == "" {
		return model.Task{}, task.ErrEmptyID
	}
	if !model.IsValidStatus(string(input.Status)) {
		return model.Task{}, task.ErrInvalidStatus
	}

	t, err := uc.repo.GetTaskByID(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: get task %s: %v", logPrefixUpdateStatus, input.ID, err)
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	tc := uc.timeContext(0)
	t.SetStatus(model.ParseStatus(string(input.Status)), tc.Now)
	t = scoring.Apply(t, tc)
	if err := uc.repo.SaveTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "%s: save task %s: %v", logPrefixUpdateStatus, input.ID, err)
		return model.Task{}, fmt.Errorf("save task: %w", err)
	}

	uc.l.Infof(ctx, "%s: user=%s task=%s status=%s", logPrefixUpdateStatus, sc.UserID, t.ID, t.Status)
	return t, nil
}
