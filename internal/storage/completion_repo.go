package storage

import (
	"context"
	"fmt"
	"time"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, day, taskName, skill string, xpAwarded int, completedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO completions (day, task_name, skill, xp_awarded, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, day, taskName, skill, xpAwarded, completedAt)
	if err != nil {
		return 0, fmt.Errorf("completion insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("completion last insert id: %w", err)
	}
	return id, nil
}

func (r *CompletionRepo) CountAll(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

func (r *CompletionRepo) ListForDay(ctx context.Context, day string) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day, task_name, skill, xp_awarded, completed_at
		FROM completions
		WHERE day = ?
		ORDER BY completed_at ASC
	`, day)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.ID, &c.Day, &c.TaskName, &c.Skill, &c.XPAwarded, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("completion scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion rows: %w", err)
	}
	return out, nil
}
