package http

import (
	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	rc intent.Recognizer
}

// New creates a new HTTP handler for intent recognition.
func New(l log.Logger, rc intent.Recognizer) *handler {
	return &handler{
		l:  l,
		rc: rc,
	}
}
