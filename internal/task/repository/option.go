package repository

import "time"

// Options holds the parameters for opening task storage.
type Options struct {
	Path        string        // Database file path; ":memory:" keeps everything in process
	BusyTimeout time.Duration // How long a writer waits on a locked database (default 5s)
}
