package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidView   = errors.New("invalid view")
	ErrInvalidStatus = errors.New("invalid status")
	ErrEmptyID       = errors.New("task id is empty")
)
