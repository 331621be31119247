package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MainUserKey identifies the single local user's rows.
const MainUserKey = "main_user"

type ProgressRepo struct {
	db DBTX
}

func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*Progress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, total_xp, streak, last_reset_date,
			xp_resilience, xp_fuel, xp_fitness, xp_wisdom, xp_discipline, xp_network
		FROM progress
		WHERE key = ?
	`, key)

	var p Progress
	err := row.Scan(&p.Key, &p.TotalXP, &p.Streak, &p.LastResetDate,
		&p.XPResilience, &p.XPFuel, &p.XPFitness, &p.XPWisdom, &p.XPDiscipline, &p.XPNetwork)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}
	return &p, nil
}

// GetOrCreateMain returns the main user's progress row, creating the
// first-use defaults (zero XP, zero streak, unset reset date) if absent.
func (r *ProgressRepo) GetOrCreateMain(ctx context.Context) (*Progress, error) {
	p, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO progress (key) VALUES (?)`, MainUserKey); err != nil {
		return nil, fmt.Errorf("progress insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *ProgressRepo) Update(ctx context.Context, p *Progress) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE progress
		SET total_xp = ?, streak = ?, last_reset_date = ?,
			xp_resilience = ?, xp_fuel = ?, xp_fitness = ?,
			xp_wisdom = ?, xp_discipline = ?, xp_network = ?
		WHERE key = ?
	`, p.TotalXP, p.Streak, p.LastResetDate,
		p.XPResilience, p.XPFuel, p.XPFitness,
		p.XPWisdom, p.XPDiscipline, p.XPNetwork, p.Key)
	if err != nil {
		return fmt.Errorf("progress update: %w", err)
	}
	return nil
}

// Upsert writes a whole progress snapshot, used by remote sync pulls.
func (r *ProgressRepo) Upsert(ctx context.Context, p *Progress) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress (
			key, total_xp, streak, last_reset_date,
			xp_resilience, xp_fuel, xp_fitness, xp_wisdom, xp_discipline, xp_network
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			total_xp = excluded.total_xp,
			streak = excluded.streak,
			last_reset_date = excluded.last_reset_date,
			xp_resilience = excluded.xp_resilience,
			xp_fuel = excluded.xp_fuel,
			xp_fitness = excluded.xp_fitness,
			xp_wisdom = excluded.xp_wisdom,
			xp_discipline = excluded.xp_discipline,
			xp_network = excluded.xp_network
	`, p.Key, p.TotalXP, p.Streak, p.LastResetDate,
		p.XPResilience, p.XPFuel, p.XPFitness, p.XPWisdom, p.XPDiscipline, p.XPNetwork)
	if err != nil {
		return fmt.Errorf("progress upsert: %w", err)
	}
	return nil
}
