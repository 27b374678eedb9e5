package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/task/repository"
	"adhd-task-assistant/pkg/datemath"
	"adhd-task-assistant/pkg/gcalendar"
	pkgLog "adhd-task-assistant/pkg/log"
)

// Calendar receives reminder events for tasks with a due date.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	recognizer intent.Recognizer
	repo       repository.Repository
	calendar   Calendar
	calendarID string
	dateMath   *datemath.Parser

	now   func() time.Time
	randN func(n int) int
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	recognizer intent.Recognizer,
	repo repository.Repository,
	calendar Calendar,
	calendarID string,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:          l,
		recognizer: recognizer,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		now:        time.Now,
		randN:      rand.IntN,
	}
}
