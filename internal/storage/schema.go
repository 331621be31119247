package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			wake_weekday INTEGER,
			wake_weekend INTEGER,
			sleep_hours_weekday REAL,
			sleep_hours_weekend REAL,
			workout_hours REAL,
			workout_days TEXT,
			screen_limit_hours REAL,
			weight_lbs INTEGER,
			cold_showers INTEGER DEFAULT 0,
			cold_shower_days TEXT,
			activities TEXT,
			major_focus TEXT,
			addiction_days_per_week INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			total_xp INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			last_reset_date TEXT DEFAULT '',
			xp_resilience INTEGER DEFAULT 0,
			xp_fuel INTEGER DEFAULT 0,
			xp_fitness INTEGER DEFAULT 0,
			xp_wisdom INTEGER DEFAULT 0,
			xp_discipline INTEGER DEFAULT 0,
			xp_network INTEGER DEFAULT 0
		);`,
		// The day's generated task set. Rows are replaced wholesale at each
		// midnight reset; only one day is ever resident.
		`CREATE TABLE IF NOT EXISTS day_tasks (
			id TEXT PRIMARY KEY,
			day TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			xp INTEGER NOT NULL,
			expires_hours INTEGER NOT NULL,
			type TEXT NOT NULL,
			skill TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			completed_at DATETIME
		);`,
		// Award audit log; survives resets and powers achievements/history.
		`CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day TEXT NOT NULL,
			task_name TEXT NOT NULL,
			skill TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_day_tasks_day ON day_tasks(day);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_day ON completions(day);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
