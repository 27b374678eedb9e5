package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/ranking"
	"adhd-task-assistant/internal/scoring"
	"adhd-task-assistant/internal/task"
	"adhd-task-assistant/pkg/gcalendar"
)

// HandleUtterance recognizes the utterance and applies it to the task list.
func (uc *implUseCase) HandleUtterance(ctx context.Context, sc model.Scope, input task.HandleInput) (task.HandleOutput, error) {
	it := uc.recognizer.Recognize(ctx, input.Utterance)
	tc := uc.timeContext(input.EnergyLevel)

	uc.l.Infof(ctx, "%s: user=%s intent=%s confidence=%.2f", logPrefixHandle, sc.UserID, it.Intent, it.Confidence)

	switch it.Intent {
	case model.IntentCreateTask, model.IntentReminder:
		return uc.create(ctx, it, tc)
	case model.IntentCompleteTask:
		return uc.complete(ctx, it, tc)
	case model.IntentEditTask:
		return uc.edit(ctx, it, tc)
	case model.IntentDeleteTask:
		return uc.remove(ctx, it, tc)
	case model.IntentListTasks:
		return uc.listForUtterance(ctx, it, tc)
	case model.IntentHelp:
		return task.HandleOutput{Intent: it, Message: msgHelp}, nil
	default:
		return task.HandleOutput{Intent: it, Message: msgNotUnderstood}, nil
	}
}

func (uc *implUseCase) create(ctx context.Context, it model.TaskIntent, tc scoring.TimeContext) (task.HandleOutput, error) {
	t := model.NewTaskFromIntent(it, tc.Now, uc.dateMath)
	if isReminder(it) && !t.HasTag(tagReminder) {
		t.Tags = append(t.Tags, tagReminder)
	}
	t = scoring.Apply(t, tc)

	if err := uc.repo.SaveTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "%s: save task: %v", logPrefixHandle, err)
		return task.HandleOutput{}, fmt.Errorf("save task: %w", err)
	}

	uc.tryCreateCalendarEvent(ctx, t, it.Context, tc.Now)

	msg := fmt.Sprintf("Added %q", t.Title)
	if t.DueDate != nil {
		msg += fmt.Sprintf(", due %s", t.DueDate.In(uc.dateMath.Location()).Format("Mon Jan 2"))
	}
	return task.HandleOutput{Intent: it, Message: msg + ".", Task: &t}, nil
}

func (uc *implUseCase) complete(ctx context.Context, it model.TaskIntent, tc scoring.TimeContext) (task.HandleOutput, error) {
	open, err := uc.openTasks(ctx, tc)
	if err != nil {
		return task.HandleOutput{}, err
	}
	target, ok := resolveTarget(it, open)
	if !ok {
		return task.HandleOutput{Intent: it, Message: msgNoTarget}, nil
	}

	target.SetStatus(model.StatusCompleted, tc.Now)
	target = scoring.Apply(target, tc)
	if err := uc.repo.SaveTask(ctx, target); err != nil {
		uc.l.Errorf(ctx, "%s: save task: %v", logPrefixHandle, err)
		return task.HandleOutput{}, fmt.Errorf("save task: %w", err)
	}

	msg := fmt.Sprintf("%s %q is done.", uc.celebrate(), target.Title)
	return task.HandleOutput{Intent: it, Message: msg, Task: &target}, nil
}

func (uc *implUseCase) edit(ctx context.Context, it model.TaskIntent, tc scoring.TimeContext) (task.HandleOutput, error) {
	open, err := uc.openTasks(ctx, tc)
	if err != nil {
		return task.HandleOutput{}, err
	}

	req := parseEdit(it)
	lookup := it
	lookup.TaskDescription = req.target
	target, ok := resolveTarget(lookup, open)
	if !ok {
		return task.HandleOutput{Intent: it, Message: msgNoTarget}, nil
	}

	var changes []string
	if req.newTitle != "" && req.newTitle != target.Title {
		target.Title = req.newTitle
		changes = append(changes, fmt.Sprintf("renamed to %q", req.newTitle))
	}
	if it.DueDate != "" {
		if due, ok := uc.dateMath.ResolveDue(it.DueDate, tc.Now); ok {
			target.DueDate = &due
			changes = append(changes, "due "+due.Format("Mon Jan 2"))
		}
	}
	if it.Urgency != "" && it.Urgency != model.PriorityMedium && it.Urgency != target.Priority {
		target.Priority = model.ParsePriority(string(it.Urgency))
		changes = append(changes, "priority "+string(target.Priority))
	}
	if len(changes) == 0 {
		return task.HandleOutput{Intent: it, Message: fmt.Sprintf(msgNothingToEdit, target.Title), Task: &target}, nil
	}

	target = scoring.Apply(target, tc)
	if err := uc.repo.SaveTask(ctx, target); err != nil {
		uc.l.Errorf(ctx, "%s: save task: %v", logPrefixHandle, err)
		return task.HandleOutput{}, fmt.Errorf("save task: %w", err)
	}

	msg := fmt.Sprintf("Updated %q: %s.", target.Title, strings.Join(changes, ", "))
	return task.HandleOutput{Intent: it, Message: msg, Task: &target}, nil
}

func (uc *implUseCase) remove(ctx context.Context, it model.TaskIntent, tc scoring.TimeContext) (task.HandleOutput, error) {
	open, err := uc.openTasks(ctx, tc)
	if err != nil {
		return task.HandleOutput{}, err
	}
	target, ok := resolveTarget(it, open)
	if !ok {
		return task.HandleOutput{Intent: it, Message: msgNoTarget}, nil
	}

	if err := uc.repo.DeleteTask(ctx, target.ID); err != nil {
		uc.l.Errorf(ctx, "%s: delete task: %v", logPrefixHandle, err)
		return task.HandleOutput{}, fmt.Errorf("delete task: %w", err)
	}
	return task.HandleOutput{Intent: it, Message: fmt.Sprintf("Deleted %q.", target.Title), Task: &target}, nil
}

func (uc *implUseCase) listForUtterance(ctx context.Context, it model.TaskIntent, tc scoring.TimeContext) (task.HandleOutput, error) {
	open, err := uc.openTasks(ctx, tc)
	if err != nil {
		return task.HandleOutput{}, err
	}
	if len(open) == 0 {
		return task.HandleOutput{Intent: it, Message: msgNoOpenTasks, Tasks: []task.RankedTask{}}, nil
	}

	ranked := explainAll(open, tc)
	msg := fmt.Sprintf("You have %d open tasks. Start with %q.", len(ranked), ranked[0].Task.Title)
	if len(ranked) > listPreviewSize {
		ranked = ranked[:listPreviewSize]
	}
	return task.HandleOutput{Intent: it, Message: msg, Tasks: ranked}, nil
}

// tryCreateCalendarEvent mirrors a dated task into the calendar. Failure is logged only.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task, timeOfDay string, now time.Time) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	minutes := t.EstimatedMinutes
	if minutes <= 0 {
		minutes = defaultEventLength
	}
	start := uc.eventStart(*t.DueDate, timeOfDay, now)

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Timezone:    uc.dateMath.Location().String(),
	}
	if t.HasTag(tagReminder) {
		req.ReminderMinutes = reminderLeadMinutes
	}

	_, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar event for %q failed (non-fatal): %v", logPrefixHandle, t.Title, err)
	}
}

// eventStart keeps explicit due times. A day-only deadline starts at the hour of
// the spoken time of day, or the next full hour when that has already passed today.
func (uc *implUseCase) eventStart(due time.Time, timeOfDay string, now time.Time) time.Time {
	loc := uc.dateMath.Location()
	due = due.In(loc)
	if !uc.dateMath.IsEndOfDay(due) {
		return due
	}

	hour, ok := eventHours[timeOfDay]
	if !ok {
		hour = defaultEventHour
	}
	start := uc.dateMath.AtHour(due, hour)
	if !start.After(now) {
		next := now.In(loc).Truncate(time.Hour).Add(time.Hour)
		if next.Before(due) {
			start = next
		} else {
			start = due
		}
	}
	return start
}

func (uc *implUseCase) celebrate() string {
	return celebrations[uc.randN(len(celebrations))]
}

func isReminder(it model.TaskIntent) bool {
	return it.Intent == model.IntentReminder || it.Action == actionRemindMe
}

func explainAll(tasks []model.Task, tc scoring.TimeContext) []task.RankedTask {
	out := make([]task.RankedTask, len(tasks))
	for i, t := range tasks {
		out[i] = task.RankedTask{Task: t, Explanation: ranking.Explain(t, tc)}
	}
	return out
}
