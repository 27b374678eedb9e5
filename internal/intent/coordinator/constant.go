package coordinator

// Log prefixes
const (
	LogPrefixRecognize  = "internal.intent.coordinator.Recognize"
	LogPrefixClearCache = "internal.intent.coordinator.ClearCache"
)

// Confidence gates
const (
	LocalConfidenceThreshold  = 0.7
	RemoteConfidenceThreshold = 0.6
)
