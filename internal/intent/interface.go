package intent

import (
	"context"

	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/model"
)

// Classifier turns one utterance into a TaskIntent.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (model.TaskIntent, error)
}

// FallbackClassifier is a Classifier that may be switched off, e.g. when no credential is configured.
type FallbackClassifier interface {
	Classifier
	Available() bool
}

// Recognizer is the entry point for intent recognition.
type Recognizer interface {
	Recognize(ctx context.Context, utterance string) model.TaskIntent
	CacheStats() cache.Stats
	ClearCache()
}
