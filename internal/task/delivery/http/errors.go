package http

import (
	"errors"
	"net/http"

	"adhd-task-assistant/internal/task"
	"adhd-task-assistant/internal/task/repository"
	"adhd-task-assistant/pkg/response"
)

const msgCouldNotComplete = "Sorry, I couldn't complete that. Please try again."

var errIDRequired = response.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrInvalidView):
		return response.NewHTTPError(http.StatusBadRequest, "view must be one of prioritized, optimal, quick, hyperfocus")
	case errors.Is(err, task.ErrInvalidStatus):
		return response.NewHTTPError(http.StatusBadRequest, "status must be one of pending, inProgress, paused, completed, cancelled")
	case errors.Is(err, task.ErrEmptyID):
		return errIDRequired
	case errors.Is(err, repository.ErrStorageUnavailable):
		return response.NewHTTPError(http.StatusServiceUnavailable, msgCouldNotComplete)
	default:
		return response.NewHTTPError(http.StatusInternalServerError, msgCouldNotComplete)
	}
}
