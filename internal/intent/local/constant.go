package local

import (
	"strings"

	"adhd-task-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.local.Classify"
)

// Confidence per intent family. Fixed, never derived from match strength.
const (
	ConfidenceCreateTask   = 0.8
	ConfidenceCompleteTask = 0.9
	ConfidenceEditTask     = 0.85
	ConfidenceDeleteTask   = 0.9
	ConfidenceListTasks    = 0.95
	ConfidenceHelp         = 0.9
	ConfidenceUnmatched    = 0.3
)

// Estimated durations in minutes.
const (
	MinutesQuick   = 5
	MinutesMeeting = 60
	MinutesProject = 120
	MinutesDefault = 30
)

// Relative due-date tokens emitted by the classifier.
const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
	DueNextWeek = "next week"
	DueThisWeek = "this week"
)

type familySpec struct {
	intent     model.IntentType
	confidence float64
	triggers   []string
}

// families are tested in this exact order; the first match wins.
var families = []familySpec{
	{
		intent:     model.IntentCreateTask,
		confidence: ConfidenceCreateTask,
		triggers: []string{
			"add", "create", "new task", "remind me", "i need to", "i have to",
			"i should", "i must", "don't forget", "make a note",
		},
	},
	{
		intent:     model.IntentCompleteTask,
		confidence: ConfidenceCompleteTask,
		triggers: []string{
			"done with", "finished", "completed", "complete", "mark as done",
			"i did", "check off", "tick off",
		},
	},
	{
		intent:     model.IntentEditTask,
		confidence: ConfidenceEditTask,
		triggers:   []string{"change", "edit", "update", "modify", "rename", "reschedule", "move"},
	},
	{
		intent:     model.IntentDeleteTask,
		confidence: ConfidenceDeleteTask,
		triggers:   []string{"delete", "remove", "cancel", "get rid of", "drop"},
	},
	{
		intent:     model.IntentListTasks,
		confidence: ConfidenceListTasks,
		triggers: []string{
			"what's on", "list", "show me", "what do i have", "my tasks",
			"what should i do", "agenda",
		},
	},
	{
		intent:     model.IntentHelp,
		confidence: ConfidenceHelp,
		triggers:   []string{"help", "how do i", "what can you do", "how does this work"},
	},
}

type categorySpec struct {
	category model.Category
	words    []string
}

// categories are tested in this exact order; personal is the default.
var categories = []categorySpec{
	{model.CategoryWork, []string{"work", "meeting", "email", "report", "project", "client", "boss", "office", "presentation", "deadline"}},
	{model.CategoryHealth, []string{"doctor", "gym", "exercise", "workout", "medicine", "medication", "dentist", "run", "walk", "yoga", "therapy", "sleep"}},
	{model.CategoryLearning, []string{"learn", "study", "read", "course", "class", "homework", "practice", "research"}},
	{model.CategorySocial, []string{"friend", "friends", "party", "birthday", "dinner with", "hang out", "visit"}},
	{model.CategoryCreative, []string{"write", "draw", "paint", "music", "guitar", "piano", "art", "craft", "photo"}},
	{model.CategoryUrgent, []string{"urgent", "asap", "immediately", "emergency", "right now", "critical"}},
	{model.CategoryMaintenance, []string{"clean", "laundry", "dishes", "fix", "repair", "groceries", "bills", "trash", "vacuum", "car"}},
}

var (
	urgentWords    = []string{"urgent", "asap", "immediately", "emergency", "right now", "critical"}
	importantWords = []string{"important", "high priority", "crucial", "essential", "must"}
	lowWords       = []string{"whenever", "someday", "eventually", "no rush", "low priority", "sometime", "maybe"}
)

type dueSpec struct {
	token string
	words []string
}

// dueTokens are tested in this exact order.
var dueTokens = []dueSpec{
	{DueToday, []string{"today", "tonight", "this evening", "this morning", "this afternoon"}},
	{DueTomorrow, []string{"tomorrow"}},
	{DueNextWeek, []string{"next week"}},
	{DueThisWeek, []string{"this week"}},
}

var (
	quickWords   = []string{"quick", "call", "text", "email", "reply", "send", "pay", "check"}
	meetingWords = []string{"meeting", "meet", "appointment", "interview", "class"}
	projectWords = []string{"project", "presentation", "report", "research", "essay"}
)

// timeOfDay maps a spoken word to the context it sets.
var timeOfDay = []struct {
	word    string
	context string
}{
	{"morning", "morning"},
	{"afternoon", "afternoon"},
	{"evening", "evening"},
	{"tonight", "night"},
	{"night", "night"},
}

// fillerPrefixes are stripped from the start of the description, longest first.
// A creation verb takes its article with it.
var fillerPrefixes = []string{
	"add a task to", "remind me to", "i need to", "i have to", "i want to",
	"i should", "i must", "can you", "new task", "please",
	"create an", "create a", "create the", "create",
	"okay", "add an", "add a", "add the", "add", "hey", "um", "uh", "so",
}

var quoteFolder = strings.NewReplacer("\u2019", "'", "\u2018", "'")

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "was": {}, "our": {}, "out": {}, "has": {}, "have": {},
	"had": {}, "this": {}, "that": {}, "with": {}, "need": {}, "want": {},
	"should": {}, "must": {}, "will": {}, "would": {}, "could": {}, "from": {},
	"into": {}, "about": {}, "just": {}, "please": {}, "remind": {}, "also": {},
	"then": {}, "some": {}, "its": {}, "it's": {}, "i'm": {}, "don't": {},
	"what": {}, "when": {}, "there": {}, "their": {}, "them": {}, "they": {},
	"get": {}, "got": {}, "let": {}, "any": {}, "too": {}, "now": {},
}
