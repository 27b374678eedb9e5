package usecase

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"adhd-task-assistant/internal/model"
)

var leadingArticles = []string{"the ", "my ", "a ", "an ", "that ", "this "}

var trailingConnectors = []string{" to", " for", " on", " by", " task"}

// renameActions are the edit triggers after which "<old> to <new>" means a new title.
var renameActions = map[string]struct{}{
	"rename": {},
	"change": {},
}

type editRequest struct {
	target   string
	newTitle string
}

type titleSource []model.Task

func (s titleSource) String(i int) string { return strings.ToLower(s[i].Title) }
func (s titleSource) Len() int            { return len(s) }

// resolveTarget picks the task an utterance refers to. candidates must already be
// in priority order; ties go to the earlier candidate.
func resolveTarget(it model.TaskIntent, candidates []model.Task) (model.Task, bool) {
	if len(candidates) == 0 {
		return model.Task{}, false
	}

	if it.TargetTaskID != "" {
		for _, c := range candidates {
			if c.ID == it.TargetTaskID {
				return c, true
			}
		}
	}

	if query := targetQuery(it); query != "" {
		if matches := fuzzy.FindFrom(query, titleSource(candidates)); len(matches) > 0 {
			return candidates[matches[0].Index], true
		}
	}

	return bestKeywordOverlap(it, candidates)
}

// targetQuery is the description with the trigger phrase, due token and leading articles removed.
func targetQuery(it model.TaskIntent) string {
	q := strings.ToLower(strings.TrimSpace(it.TaskDescription))
	if it.Action != "" {
		if idx := strings.Index(q, it.Action); idx >= 0 {
			q = q[idx+len(it.Action):]
		}
	}
	if it.DueDate != "" {
		q = strings.Replace(q, it.DueDate, "", 1)
	}
	q = strings.TrimFunc(q, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsPunct(r) })
	for _, c := range trailingConnectors {
		q = strings.TrimSpace(strings.TrimSuffix(q, c))
	}
	for trimmed := true; trimmed; {
		trimmed = false
		for _, a := range leadingArticles {
			if strings.HasPrefix(q, a) {
				q = strings.TrimSpace(q[len(a):])
				trimmed = true
			}
		}
	}
	return q
}

func bestKeywordOverlap(it model.TaskIntent, candidates []model.Task) (model.Task, bool) {
	bestIdx, bestHits := -1, 0
	for i, c := range candidates {
		words := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(c.Title)) {
			words[strings.TrimFunc(w, unicode.IsPunct)] = struct{}{}
		}
		for _, tag := range c.Tags {
			words[strings.ToLower(tag)] = struct{}{}
		}

		hits := 0
		for _, kw := range it.Keywords {
			kw = strings.ToLower(kw)
			if kw == it.Action {
				continue
			}
			if _, ok := words[kw]; ok {
				hits++
			}
		}
		if hits > bestHits {
			bestIdx, bestHits = i, hits
		}
	}
	if bestIdx < 0 {
		return model.Task{}, false
	}
	return candidates[bestIdx], true
}

// parseEdit splits "rename <old> to <new>". A tail that is just the due token is a reschedule.
func parseEdit(it model.TaskIntent) editRequest {
	desc := strings.TrimSpace(it.TaskDescription)
	if _, ok := renameActions[it.Action]; !ok {
		return editRequest{target: desc}
	}

	lower := strings.ToLower(desc)
	idx := strings.LastIndex(lower, editSeparator)
	if idx < 0 {
		return editRequest{target: desc}
	}
	tail := strings.TrimSpace(desc[idx+len(editSeparator):])
	if tail == "" || (it.DueDate != "" && strings.EqualFold(tail, it.DueDate)) {
		return editRequest{target: desc}
	}
	return editRequest{target: desc[:idx], newTitle: capitalize(tail)}
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
