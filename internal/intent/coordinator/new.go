// Package coordinator combines the intent cache, the local classifier and the
// remote fallback into one recognition entry point.
package coordinator

import (
	"golang.org/x/sync/singleflight"

	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/pkg/log"
)

// Coordinator implements intent.Recognizer.
type Coordinator struct {
	cache  *cache.Cache
	local  intent.Classifier
	remote intent.FallbackClassifier
	l      log.Logger

	inflight singleflight.Group
}

var _ intent.Recognizer = (*Coordinator)(nil)

// New creates a Coordinator. remote may be nil.
func New(c *cache.Cache, local intent.Classifier, remote intent.FallbackClassifier, l log.Logger) *Coordinator {
	return &Coordinator{
		cache:  c,
		local:  local,
		remote: remote,
		l:      l,
	}
}
