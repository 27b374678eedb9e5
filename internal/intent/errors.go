package intent

import "errors"

var (
	ErrRemoteUnavailable = errors.New("remote classifier unavailable")
	ErrRequestFailed     = errors.New("remote classifier request failed")
	ErrParseFailed       = errors.New("remote classifier response could not be parsed")
)
