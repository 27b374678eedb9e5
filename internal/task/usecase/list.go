package usecase

import (
	"context"
	"fmt"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/ranking"
	"adhd-task-assistant/internal/scoring"
	"adhd-task-assistant/internal/task"
)

// List returns open tasks through the requested ranked view.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	view, err := task.ParseView(string(input.View))
	if err != nil {
		return task.ListOutput{}, err
	}

	tc := uc.timeContext(input.EnergyLevel)
	open, err := uc.openTasks(ctx, tc)
	if err != nil {
		return task.ListOutput{}, err
	}

	var selected []model.Task
	switch view {
	case task.ViewOptimal:
		selected = ranking.OptimalNow(open, tc.EnergyLevel, tc.Now)
	case task.ViewQuick:
		selected = ranking.QuickTasks(open, input.MaxMinutes)
	case task.ViewHyperfocus:
		selected = ranking.HyperfocusTasks(open)
	default:
		selected = open
	}

	uc.l.Debugf(ctx, "%s: user=%s view=%s open=%d selected=%d", logPrefixList, sc.UserID, view, len(open), len(selected))
	return task.ListOutput{View: view, Tasks: explainAll(selected, tc)}, nil
}

// Detail returns one task, freshly scored.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.RankedTask, error) {
	if id == "" {
		return task.RankedTask{}, task.ErrEmptyID
	}
	t, err := uc.repo.GetTaskByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: get task %s: %v", logPrefixDetail, id, err)
		return task.RankedTask{}, fmt.Errorf("get task: %w", err)
	}
	if t.ID == "" {
		return task.RankedTask{}, task.ErrTaskNotFound
	}

	tc := uc.timeContext(0)
	t = scoring.Apply(t, tc)
	return task.RankedTask{Task: t, Explanation: ranking.Explain(t, tc)}, nil
}

// openTasks loads non-terminal tasks in priority order.
func (uc *implUseCase) openTasks(ctx context.Context, tc scoring.TimeContext) ([]model.Task, error) {
	all, err := uc.repo.GetAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.task.usecase.openTasks: %v", err)
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	open := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.Status.IsOpen() {
			open = append(open, t)
		}
	}
	return ranking.Prioritize(open, tc), nil
}

// timeContext clamps the declared energy; 0 means the default level.
func (uc *implUseCase) timeContext(energy int) scoring.TimeContext {
	switch {
	case energy == 0:
		energy = model.DefaultEnergyLevel
	case energy < model.MinEnergyLevel:
		energy = model.MinEnergyLevel
	case energy > model.MaxEnergyLevel:
		energy = model.MaxEnergyLevel
	}
	return scoring.TimeContext{Now: uc.now().In(uc.dateMath.Location()), EnergyLevel: energy}
}
