// Package sqlite stores tasks in a local SQLite database (pure-Go driver, WAL mode).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"adhd-task-assistant/internal/task/repository"
	pkgLog "adhd-task-assistant/pkg/log"
)

const (
	memoryPath         = ":memory:"
	defaultBusyTimeout = 5 * time.Second
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens (creating if needed) the database at opt.Path and applies migrations.
func New(ctx context.Context, opt repository.Options, l pkgLog.Logger) (*implRepository, error) {
	path := opt.Path
	if path == "" {
		path = memoryPath
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	busy := opt.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, busy.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Single writer; also keeps an in-memory database on one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	r := &implRepository{db: db, l: l}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	l.Infof(ctx, "internal.task.repository.sqlite.New: opened %s", path)
	return r, nil
}

// Close releases the database handle.
func (r *implRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Ping checks database connectivity.
func (r *implRepository) Ping(ctx context.Context) error {
	if r == nil || r.db == nil {
		return repository.ErrStorageUnavailable
	}
	return r.db.PingContext(ctx)
}
