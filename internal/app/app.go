// Package app assembles the assistant's components from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"adhd-task-assistant/config"
	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/intent/cache"
	"adhd-task-assistant/internal/intent/coordinator"
	"adhd-task-assistant/internal/intent/local"
	"adhd-task-assistant/internal/intent/remote"
	"adhd-task-assistant/internal/task"
	"adhd-task-assistant/internal/task/repository"
	"adhd-task-assistant/internal/task/repository/sqlite"
	"adhd-task-assistant/internal/task/usecase"
	"adhd-task-assistant/pkg/datemath"
	"adhd-task-assistant/pkg/gcalendar"
	"adhd-task-assistant/pkg/llmprovider"
	"adhd-task-assistant/pkg/log"
)

const logPrefix = "internal.app.New"

// App holds the wired components shared by the server and the CLI.
type App struct {
	Recognizer intent.Recognizer
	Tasks      task.UseCase

	store interface {
		Ping(ctx context.Context) error
		Close() error
	}
}

// New opens storage and builds the intent and task stacks.
// The remote classifier and the calendar sink are optional and are skipped with a warning.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Intent.Timezone)
	if err != nil {
		l.Warnf(ctx, "%s: invalid timezone %q, falling back to UTC: %v", logPrefix, cfg.Intent.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	repo, err := sqlite.New(ctx, repository.Options{Path: cfg.Storage.SQLitePath}, l)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	recognizer := coordinator.New(
		cache.New(cfg.Intent.CacheSize),
		local.New(l),
		remote.New(newGenerator(ctx, cfg, l), l),
		l,
	)

	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			l.Warnf(ctx, "%s: Google Calendar not available (optional): %v", logPrefix, calErr)
		} else {
			calendar = client
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	return &App{
		Recognizer: recognizer,
		Tasks:      usecase.New(l, recognizer, repo, calendar, cfg.GoogleCalendar.CalendarID, dateMath),
		store:      repo,
	}, nil
}

// newGenerator returns nil when no LLM provider is usable.
func newGenerator(ctx context.Context, cfg *config.Config, l log.Logger) remote.Generator {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Info(ctx, "No LLM provider configured, remote classification disabled")
		} else {
			l.Warnf(ctx, "%s: LLM providers unavailable: %v", logPrefix, err)
		}
		return nil
	}
	l.Infof(ctx, "Remote classification enabled with %d provider(s)", len(providers))
	return llmprovider.NewManagerFromConfig(cfg.LLM, providers, l)
}

// Ready reports whether storage is reachable.
func (a *App) Ready(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// Close releases storage.
func (a *App) Close() error {
	return a.store.Close()
}
