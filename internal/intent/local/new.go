package local

import (
	"regexp"
	"strings"

	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/log"
)

type phrase struct {
	text    string
	pattern *regexp.Regexp
}

type compiledFamily struct {
	intent     model.IntentType
	confidence float64
	triggers   []phrase
}

type compiledCategory struct {
	category model.Category
	words    []phrase
}

type compiledDue struct {
	token string
	words []phrase
}

// Classifier is the deterministic keyword classifier.
type Classifier struct {
	l log.Logger

	families   []compiledFamily
	categories []compiledCategory
	due        []compiledDue
	urgent     []phrase
	important  []phrase
	low        []phrase
	quick      []phrase
	meeting    []phrase
	project    []phrase
	filler     *regexp.Regexp
}

var _ intent.Classifier = (*Classifier)(nil)

// New compiles the phrase tables into a Classifier.
func New(l log.Logger) *Classifier {
	c := &Classifier{
		l:         l,
		urgent:    compile(urgentWords),
		important: compile(importantWords),
		low:       compile(lowWords),
		quick:     compile(quickWords),
		meeting:   compile(meetingWords),
		project:   compile(projectWords),
	}
	for _, f := range families {
		c.families = append(c.families, compiledFamily{intent: f.intent, confidence: f.confidence, triggers: compile(f.triggers)})
	}
	for _, cat := range categories {
		c.categories = append(c.categories, compiledCategory{category: cat.category, words: compile(cat.words)})
	}
	for _, d := range dueTokens {
		c.due = append(c.due, compiledDue{token: d.token, words: compile(d.words)})
	}

	quoted := make([]string, len(fillerPrefixes))
	for i, p := range fillerPrefixes {
		quoted[i] = regexp.QuoteMeta(p)
	}
	c.filler = regexp.MustCompile(`^(?i)(?:` + strings.Join(quoted, "|") + `)\b[\s,.!]*`)

	return c
}

// compile turns phrases into word-bounded patterns.
func compile(words []string) []phrase {
	out := make([]phrase, len(words))
	for i, w := range words {
		out[i] = phrase{
			text:    w,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`),
		}
	}
	return out
}

// firstMatch returns the first phrase found in lowered text.
func firstMatch(phrases []phrase, lowered string) (string, bool) {
	for _, p := range phrases {
		if p.pattern.MatchString(lowered) {
			return p.text, true
		}
	}
	return "", false
}
