package coordinator

import (
	"context"
	"strings"

	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/model"
)

// Recognize always returns an intent. Remote failures are logged and absorbed.
func (c *Coordinator) Recognize(ctx context.Context, utterance string) model.TaskIntent {
	if strings.TrimSpace(utterance) == "" {
		return model.TaskIntent{
			Intent:        model.IntentUnknown,
			RawTranscript: utterance,
			Confidence:    0,
			Keywords:      []string{},
		}
	}

	key := cache.Normalize(utterance)
	if cached, ok := c.cache.Lookup(key); ok {
		c.l.Debugf(ctx, "%s: cache hit key=%q", LogPrefixRecognize, key)
		return cached
	}

	localResult, err := c.local.Classify(ctx, utterance)
	if err != nil {
		// Local classification is not expected to fail; treat as unmatched.
		c.l.Errorf(ctx, "%s: local classifier: %v", LogPrefixRecognize, err)
		localResult = model.TaskIntent{
			Intent:        model.IntentCreateTask,
			RawTranscript: utterance,
			Keywords:      []string{},
		}
	}
	if localResult.Confidence >= LocalConfidenceThreshold {
		c.cache.Store(key, localResult)
		return localResult
	}

	if remoteResult, ok := c.tryRemote(ctx, key, utterance); ok {
		c.cache.Store(key, remoteResult)
		return remoteResult
	}

	return localResult
}

// tryRemote runs the fallback classifier, collapsing concurrent calls per key.
func (c *Coordinator) tryRemote(ctx context.Context, key, utterance string) (model.TaskIntent, bool) {
	if c.remote == nil || !c.remote.Available() {
		return model.TaskIntent{}, false
	}

	v, err, shared := c.inflight.Do(key, func() (interface{}, error) {
		return c.remote.Classify(ctx, utterance)
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: remote fallback failed: %v", LogPrefixRecognize, err)
		return model.TaskIntent{}, false
	}

	result := v.(model.TaskIntent)
	if shared {
		result = result.Clone()
	}
	if result.Confidence < RemoteConfidenceThreshold {
		c.l.Debugf(ctx, "%s: remote confidence %.2f below threshold", LogPrefixRecognize, result.Confidence)
		return model.TaskIntent{}, false
	}
	result.RawTranscript = utterance
	return result, true
}

// CacheStats reports intent cache usage.
func (c *Coordinator) CacheStats() cache.Stats {
	return c.cache.Stats()
}

// ClearCache drops every cached intent.
func (c *Coordinator) ClearCache() {
	c.cache.Clear()
	c.l.Infof(context.Background(), "%s: cache cleared", LogPrefixClearCache)
}
