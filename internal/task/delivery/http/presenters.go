package http

import (
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task"
)

// --- Request DTOs ---

type utteranceReq struct {
	Utterance   string `json:"utterance"    binding:"max=2000"`
	EnergyLevel int    `json:"energy_level" binding:"omitempty,min=1,max=5"`
}

// Blank utterances are passed through; recognition answers them with the unknown intent.
func (r utteranceReq) validate() error { return nil }

func (r utteranceReq) toInput() task.HandleInput {
	return task.HandleInput{
		Utterance:   r.Utterance,
		EnergyLevel: r.EnergyLevel,
	}
}

// ---

type listReq struct {
	View        string `form:"view"`
	EnergyLevel int    `form:"energy_level" binding:"omitempty,min=1,max=5"`
	MaxMinutes  int    `form:"max_minutes"  binding:"omitempty,min=1"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		View:        task.View(r.View),
		EnergyLevel: r.EnergyLevel,
		MaxMinutes:  r.MaxMinutes,
	}
}

// ---

type updateStatusReq struct {
	ID     string `json:"-"` // populated from URI param
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	return nil
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{
		ID:     r.ID,
		Status: model.Status(r.Status),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	EnergyLevel      int        `json:"energy_level"`
	DopamineScore    float64    `json:"dopamine_score"`
	Tags             []string   `json:"tags"`
	IsRecurring      bool       `json:"is_recurring"`
	RecurrenceType   string     `json:"recurrence_type,omitempty"`
	UrgencyScore     float64    `json:"urgency_score"`
	ImportanceScore  float64    `json:"importance_score"`
	PriorityScore    float64    `json:"priority_score"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Category:         string(t.Category),
		Priority:         string(t.Priority),
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
		DueDate:          t.DueDate,
		CompletedAt:      t.CompletedAt,
		EstimatedMinutes: t.EstimatedMinutes,
		EnergyLevel:      t.EnergyLevel,
		DopamineScore:    t.DopamineScore,
		Tags:             tags,
		IsRecurring:      t.IsRecurring,
		RecurrenceType:   string(t.RecurrenceType),
		UrgencyScore:     t.UrgencyScore,
		ImportanceScore:  t.ImportanceScore,
		PriorityScore:    t.PriorityScore,
	}
}

type rankedTaskResp struct {
	Task        taskResp `json:"task"`
	Explanation string   `json:"explanation"`
}

func newRankedTaskResps(in []task.RankedTask) []rankedTaskResp {
	out := make([]rankedTaskResp, len(in))
	for i, r := range in {
		out[i] = rankedTaskResp{Task: newTaskResp(r.Task), Explanation: r.Explanation}
	}
	return out
}

type intentResp struct {
	Intent          string  `json:"intent"`
	TaskDescription string  `json:"task_description"`
	Confidence      float64 `json:"confidence"`
}

type utteranceResp struct {
	Intent  intentResp       `json:"intent"`
	Message string           `json:"message"`
	Task    *taskResp        `json:"task,omitempty"`
	Tasks   []rankedTaskResp `json:"tasks,omitempty"`
}

func (h *handler) newUtteranceResp(out task.HandleOutput) utteranceResp {
	resp := utteranceResp{
		Intent: intentResp{
			Intent:          string(out.Intent.Intent),
			TaskDescription: out.Intent.TaskDescription,
			Confidence:      out.Intent.Confidence,
		},
		Message: out.Message,
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	if out.Tasks != nil {
		resp.Tasks = newRankedTaskResps(out.Tasks)
	}
	return resp
}

type listResp struct {
	View  string           `json:"view"`
	Tasks []rankedTaskResp `json:"tasks"`
	Total int              `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		View:  string(out.View),
		Tasks: newRankedTaskResps(out.Tasks),
		Total: len(out.Tasks),
	}
}

type detailResp struct {
	Task        taskResp `json:"task"`
	Explanation string   `json:"explanation"`
}

func (h *handler) newDetailResp(out task.RankedTask) detailResp {
	return detailResp{Task: newTaskResp(out.Task), Explanation: out.Explanation}
}

type updateStatusResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateStatusResp(t model.Task) updateStatusResp {
	return updateStatusResp{Task: newTaskResp(t)}
}
