package remote

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.remote.Classify"
)

// Request tuning
const (
	Temperature = 0.1
	MaxTokens   = 512
)

// requiredKeys must all be present in the model's JSON answer.
var requiredKeys = []string{
	"intent", "taskDescription", "category", "urgency", "dueDate",
	"context", "confidence", "estimatedMinutes", "keywords",
}

// promptSystem is filled with the closed enumerations at construction time.
const promptSystem = `You are an intent classifier for a voice task assistant used by people with ADHD.
Input is one transcribed utterance. It may be disfluent: fillers, restarts, missing punctuation, run-on sentences.

You MUST:
classify the utterance into exactly one intent,
extract the task attributes listed below,
output ONLY one valid JSON object, no markdown, no prose.

Allowed values (use them verbatim):
intent: %s
category: %s
urgency: %s
dueDate: one of %s, an ISO-8601 date (YYYY-MM-DD), or "" when no date is mentioned

When unsure, use urgency "medium" and category "personal".
Never invent a due date that is not spoken.

Output format:
{
  "intent": string,
  "taskDescription": string (cleaned, imperative, first letter capitalized),
  "category": string,
  "urgency": string,
  "dueDate": string,
  "context": string (time of day or place mentioned, else ""),
  "confidence": number between 0 and 1,
  "estimatedMinutes": integer,
  "keywords": array of strings,
  "action": string,
  "targetTaskId": string
}`
