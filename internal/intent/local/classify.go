package local

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"adhd-task-assistant/internal/model"
)

// Classify never fails. Unmatched speech is treated as a low-confidence createTask.
func (c *Classifier) Classify(ctx context.Context, utterance string) (model.TaskIntent, error) {
	lowered := foldQuotes(strings.ToLower(strings.TrimSpace(utterance)))

	result := model.TaskIntent{
		Intent:           model.IntentCreateTask,
		Confidence:       ConfidenceUnmatched,
		RawTranscript:    utterance,
		TaskDescription:  c.cleanDescription(utterance),
		Category:         c.category(lowered),
		Urgency:          c.urgency(lowered),
		DueDate:          c.dueToken(lowered),
		Context:          contextWord(lowered),
		EstimatedMinutes: c.estimateMinutes(lowered),
		Keywords:         extractKeywords(lowered),
	}

	for _, f := range c.families {
		if trigger, ok := firstMatch(f.triggers, lowered); ok {
			result.Intent = f.intent
			result.Confidence = f.confidence
			result.Action = trigger
			break
		}
	}

	c.l.Debugf(ctx, "%s: intent=%s confidence=%.2f category=%s", LogPrefixClassify, result.Intent, result.Confidence, result.Category)
	return result, nil
}

func (c *Classifier) category(lowered string) model.Category {
	for _, cat := range c.categories {
		if _, ok := firstMatch(cat.words, lowered); ok {
			return cat.category
		}
	}
	return model.CategoryPersonal
}

func (c *Classifier) urgency(lowered string) model.Priority {
	if _, ok := firstMatch(c.urgent, lowered); ok {
		return model.PriorityUrgent
	}
	if _, ok := firstMatch(c.important, lowered); ok {
		return model.PriorityHigh
	}
	if _, ok := firstMatch(c.low, lowered); ok {
		return model.PriorityLow
	}
	return model.PriorityMedium
}

func (c *Classifier) dueToken(lowered string) string {
	for _, d := range c.due {
		if _, ok := firstMatch(d.words, lowered); ok {
			return d.token
		}
	}
	return ""
}

func (c *Classifier) estimateMinutes(lowered string) int {
	if _, ok := firstMatch(c.quick, lowered); ok {
		return MinutesQuick
	}
	if _, ok := firstMatch(c.meeting, lowered); ok {
		return MinutesMeeting
	}
	if _, ok := firstMatch(c.project, lowered); ok {
		return MinutesProject
	}
	return MinutesDefault
}

// cleanDescription strips leading filler phrases and capitalizes the rest.
// Utterances made only of filler keep their original text.
func (c *Classifier) cleanDescription(utterance string) string {
	desc := strings.TrimSpace(utterance)
	for {
		loc := c.filler.FindStringIndex(desc)
		if loc == nil || loc[1] == 0 {
			break
		}
		desc = strings.TrimSpace(desc[loc[1]:])
	}
	if desc == "" {
		desc = strings.TrimSpace(utterance)
	}
	return capitalize(desc)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// foldQuotes maps typographic apostrophes to ASCII so "don’t" matches "don't".
func foldQuotes(s string) string {
	return quoteFolder.Replace(s)
}

func contextWord(lowered string) string {
	for _, w := range strings.FieldsFunc(lowered, func(r rune) bool { return !unicode.IsLetter(r) }) {
		for _, tod := range timeOfDay {
			if w == tod.word {
				return tod.context
			}
		}
	}
	return ""
}

// extractKeywords keeps tokens longer than two runes that are not stop words.
// Order is preserved and duplicates are kept.
func extractKeywords(lowered string) []string {
	keywords := []string{}
	for _, field := range strings.Fields(foldQuotes(lowered)) {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
