package datemath

// Relative due-date tokens produced by the intent classifiers.
const (
	TokenToday    = "today"
	TokenTomorrow = "tomorrow"
	TokenNextWeek = "next week"
	TokenThisWeek = "this week"
)

// isoLayouts are the absolute formats accepted by ResolveDue, tried in order.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}
