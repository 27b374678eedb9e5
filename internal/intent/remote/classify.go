package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/llmprovider"
)

type wireIntent struct {
	Intent           model.IntentType `json:"intent"`
	TaskDescription  string           `json:"taskDescription"`
	Category         model.Category   `json:"category"`
	Urgency          model.Priority   `json:"urgency"`
	DueDate          string           `json:"dueDate"`
	Context          string           `json:"context"`
	Confidence       float64          `json:"confidence"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Keywords         []string         `json:"keywords"`
	Action           string           `json:"action"`
	TargetTaskID     string           `json:"targetTaskId"`
}

// Classify asks the model for a TaskIntent. Errors wrap intent.ErrRemoteUnavailable,
// intent.ErrRequestFailed or intent.ErrParseFailed.
func (c *Classifier) Classify(ctx context.Context, utterance string) (model.TaskIntent, error) {
	if !c.Available() {
		return model.TaskIntent{}, intent.ErrRemoteUnavailable
	}

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: c.prompt}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: utterance}}},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			return model.TaskIntent{}, fmt.Errorf("%w: %w", intent.ErrRemoteUnavailable, err)
		}
		return model.TaskIntent{}, fmt.Errorf("%s: %w: %w", LogPrefixClassify, intent.ErrRequestFailed, err)
	}

	result, err := parseIntent(resp.Content.Text())
	if err != nil {
		c.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
		return model.TaskIntent{}, err
	}
	result.RawTranscript = utterance

	c.l.Debugf(ctx, "%s: provider=%s intent=%s confidence=%.2f", LogPrefixClassify, resp.ProviderName, result.Intent, result.Confidence)
	return result, nil
}

// parseIntent decodes the model's answer, requiring every schema key.
func parseIntent(text string) (model.TaskIntent, error) {
	text = stripCodeFence(text)
	if text == "" {
		return model.TaskIntent{}, fmt.Errorf("%w: empty response", intent.ErrParseFailed)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return model.TaskIntent{}, fmt.Errorf("%w: %w", intent.ErrParseFailed, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return model.TaskIntent{}, fmt.Errorf("%w: missing key %q", intent.ErrParseFailed, key)
		}
	}

	var w wireIntent
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return model.TaskIntent{}, fmt.Errorf("%w: %w", intent.ErrParseFailed, err)
	}

	confidence := w.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	keywords := w.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return model.TaskIntent{
		Intent:           w.Intent,
		TaskDescription:  strings.TrimSpace(w.TaskDescription),
		Category:         w.Category,
		Urgency:          w.Urgency,
		DueDate:          strings.TrimSpace(w.DueDate),
		Context:          w.Context,
		Confidence:       confidence,
		EstimatedMinutes: w.EstimatedMinutes,
		Keywords:         keywords,
		Action:           w.Action,
		TargetTaskID:     w.TargetTaskID,
	}, nil
}

// stripCodeFence removes a surrounding markdown code block (```json ... ```).
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
