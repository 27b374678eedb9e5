package http

import (
	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/model"
)

type recognizeReq struct {
	Utterance string `json:"utterance" binding:"max=2000"`
}

func (r recognizeReq) validate() error { return nil }

type recognizeResp struct {
	Intent           string   `json:"intent"`
	TaskDescription  string   `json:"task_description"`
	RawTranscript    string   `json:"raw_transcript"`
	Category         string   `json:"category"`
	Urgency          string   `json:"urgency"`
	DueDate          string   `json:"due_date"`
	Context          string   `json:"context"`
	Confidence       float64  `json:"confidence"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Keywords         []string `json:"keywords"`
	Action           string   `json:"action,omitempty"`
	TargetTaskID     string   `json:"target_task_id,omitempty"`
}

func (h *handler) newRecognizeResp(it model.TaskIntent) recognizeResp {
	keywords := it.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return recognizeResp{
		Intent:           string(it.Intent),
		TaskDescription:  it.TaskDescription,
		RawTranscript:    it.RawTranscript,
		Category:         string(it.Category),
		Urgency:          string(it.Urgency),
		DueDate:          it.DueDate,
		Context:          it.Context,
		Confidence:       it.Confidence,
		EstimatedMinutes: it.EstimatedMinutes,
		Keywords:         keywords,
		Action:           it.Action,
		TargetTaskID:     it.TargetTaskID,
	}
}

type cacheStatsResp struct {
	Entries  int    `json:"entries"`
	Capacity int    `json:"capacity"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

func (h *handler) newCacheStatsResp(s cache.Stats) cacheStatsResp {
	return cacheStatsResp{
		Entries:  s.Entries,
		Capacity: s.Capacity,
		Hits:     s.Hits,
		Misses:   s.Misses,
	}
}
