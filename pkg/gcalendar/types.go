package gcalendar

import "time"

// ReminderMethod is the notification channel for an event reminder.
const ReminderMethod = "popup"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"

	// ReminderMinutes > 0 replaces the calendar's default reminders with one popup.
	ReminderMinutes int
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
