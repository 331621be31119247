package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type DayRepo struct {
	db DBTX
}

func NewDayRepo(db DBTX) *DayRepo {
	return &DayRepo{db: db}
}

// ReplaceDay discards every resident task row and inserts the new day's set.
// Prior days are not kept; the completions log is the durable history.
func (r *DayRepo) ReplaceDay(ctx context.Context, day string, tasks []DayTask) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM day_tasks`); err != nil {
		return fmt.Errorf("day clear: %w", err)
	}
	for i, t := range tasks {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO day_tasks (id, day, position, name, description, xp, expires_hours, type, skill, completed, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL)
		`, t.ID, day, i, t.Name, t.Description, t.XP, t.ExpiresHours, t.Type, t.Skill)
		if err != nil {
			return fmt.Errorf("day insert: %w", err)
		}
	}
	return nil
}

func (r *DayRepo) Get(ctx context.Context, id string) (*DayTask, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, day, position, name, description, xp, expires_hours, type, skill, completed, completed_at
		FROM day_tasks
		WHERE id = ?
	`, id)
	return scanDayTask(row)
}

// ListForDay returns the day's tasks in generation order.
func (r *DayRepo) ListForDay(ctx context.Context, day string) ([]DayTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day, position, name, description, xp, expires_hours, type, skill, completed, completed_at
		FROM day_tasks
		WHERE day = ?
		ORDER BY position ASC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("day list: %w", err)
	}
	defer rows.Close()

	var out []DayTask
	for rows.Next() {
		t, err := scanDayTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day list rows: %w", err)
	}
	return out, nil
}

func (r *DayRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE day_tasks SET completed = 1, completed_at = ? WHERE id = ?
	`, completedAt, id)
	if err != nil {
		return fmt.Errorf("day mark completed: %w", err)
	}
	return nil
}

// CountRemaining returns how many of the day's tasks are still assigned.
func (r *DayRepo) CountRemaining(ctx context.Context, day string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM day_tasks WHERE day = ? AND completed = 0
	`, day)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("day count remaining: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDayTask(row scanner) (*DayTask, error) {
	var (
		t           DayTask
		completed   int
		completedAt sql.NullTime
	)
	err := row.Scan(&t.ID, &t.Day, &t.Position, &t.Name, &t.Description,
		&t.XP, &t.ExpiresHours, &t.Type, &t.Skill, &completed, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("day task scan: %w", err)
	}
	t.Completed = completed != 0
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	return &t, nil
}
