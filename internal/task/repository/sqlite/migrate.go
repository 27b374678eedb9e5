package sqlite

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		category          TEXT NOT NULL,
		priority          TEXT NOT NULL,
		status            TEXT NOT NULL,
		created_at        INTEGER NOT NULL,
		due_date          INTEGER,
		completed_at      INTEGER,
		estimated_minutes INTEGER NOT NULL,
		energy_level      INTEGER NOT NULL,
		dopamine_score    REAL NOT NULL,
		tags              TEXT NOT NULL DEFAULT '[]',
		is_recurring      BOOLEAN NOT NULL DEFAULT 0,
		recurrence_type   TEXT NOT NULL DEFAULT '',
		urgency_score     REAL NOT NULL DEFAULT 0,
		importance_score  REAL NOT NULL DEFAULT 0,
		priority_score    REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at)`,
}

// migrate runs idempotent schema migrations.
func (r *implRepository) migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := r.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
