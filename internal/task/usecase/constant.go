package usecase

const (
	logPrefixHandle       = "internal.task.usecase.HandleUtterance"
	logPrefixList         = "internal.task.usecase.List"
	logPrefixDetail       = "internal.task.usecase.Detail"
	logPrefixUpdateStatus = "internal.task.usecase.UpdateStatus"
)

const (
	tagReminder        = "reminder"
	actionRemindMe     = "remind me"
	listPreviewSize    = 5
	defaultEventLength = 30 // minutes

	reminderLeadMinutes = 10
)

// eventHours place day-only deadlines in the calendar by the spoken time of day.
var eventHours = map[string]int{
	"morning":   9,
	"afternoon": 14,
	"evening":   19,
	"night":     21,
}

const defaultEventHour = 9

const (
	msgNotUnderstood = "Sorry, I didn't catch that. Try something like \"remind me to call mom tomorrow\"."
	msgNoTarget      = "I couldn't find a task matching that."
	msgNoOpenTasks   = "You're all clear, no open tasks."
	msgNothingToEdit = "What should I change about %q? Try a new due date, a priority or \"rename ... to ...\"."
	msgHelp          = "You can say things like:\n" +
		"- \"remind me to call mom tomorrow\"\n" +
		"- \"I finished the report\"\n" +
		"- \"move the dentist to next week\"\n" +
		"- \"delete the gym task\"\n" +
		"- \"what should I do now?\""
)

var celebrations = []string{
	"Nice work!",
	"Done and dusted!",
	"Another one down!",
	"You crushed it!",
	"Way to go!",
	"That's progress!",
}

// editSeparator splits "rename <old> to <new>".
const editSeparator = " to "
