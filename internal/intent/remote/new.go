// Package remote classifies utterances with a hosted language model.
package remote

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/datemath"
	"adhd-task-assistant/pkg/llmprovider"
	"adhd-task-assistant/pkg/log"
)

// Generator is the subset of llmprovider.Manager the classifier needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	Available() bool
}

// Classifier sends utterances to the LLM provider chain.
type Classifier struct {
	llm    Generator
	l      log.Logger
	prompt string
}

var _ intent.FallbackClassifier = (*Classifier)(nil)

// New creates a remote classifier. A nil llm leaves the classifier unavailable.
func New(llm Generator, l log.Logger) *Classifier {
	return &Classifier{
		llm:    llm,
		l:      l,
		prompt: SystemPrompt(),
	}
}

// Available reports whether a provider is configured.
func (c *Classifier) Available() bool {
	return c.llm != nil && c.llm.Available()
}

// SystemPrompt renders the instruction with every closed enumeration.
func SystemPrompt() string {
	intents := make([]string, len(model.IntentTypes))
	for i, it := range model.IntentTypes {
		intents[i] = string(it)
	}
	categories := make([]string, len(model.Categories))
	for i, cat := range model.Categories {
		categories[i] = string(cat)
	}
	urgencies := make([]string, len(model.Priorities))
	for i, p := range model.Priorities {
		urgencies[i] = string(p)
	}
	dueTokens := []string{datemath.TokenToday, datemath.TokenTomorrow, datemath.TokenNextWeek, datemath.TokenThisWeek}

	return fmt.Sprintf(promptSystem, quoteJoin(intents), quoteJoin(categories), quoteJoin(urgencies), quoteJoin(dueTokens))
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
