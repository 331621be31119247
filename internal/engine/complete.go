package engine

import (
	"context"
	"database/sql"
	"time"

	"arise/internal/storage"
)

// CompleteResult reports what a completion attempt did. Counted is false for
// unknown or already-completed ids; those are no-ops, never errors.
type CompleteResult struct {
	TaskID     string
	Name       string
	Skill      Skill
	Counted    bool
	XPAwarded  int
	TotalXP    int
	RankBefore Rank
	RankAfter  Rank
	RankUp     bool
	AllDone    bool
	Streak     int
}

// CompleteTask flips one assigned task to completed and applies the award:
// total XP, skill XP, the audit row, and the once-per-day streak increment
// when the last assigned task lands. The whole sequence commits atomically.
func (s *Service) CompleteTask(ctx context.Context, id string, now time.Time) (*CompleteResult, error) {
	pr, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	rankBefore := CurrentRank(pr.TotalXP)

	t, err := s.days.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Completed {
		return &CompleteResult{
			TaskID:     id,
			Counted:    false,
			TotalXP:    pr.TotalXP,
			RankBefore: rankBefore,
			RankAfter:  rankBefore,
			Streak:     pr.Streak,
		}, nil
	}

	allDone := false
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		days := storage.NewDayRepo(tx)
		if err := days.MarkCompleted(ctx, id, now); err != nil {
			return err
		}

		pr.TotalXP += t.XP
		pr.AddSkillXP(t.Skill, t.XP)

		remaining, err := days.CountRemaining(ctx, t.Day)
		if err != nil {
			return err
		}
		if remaining == 0 {
			allDone = true
			pr.Streak++
		}
		if err := storage.NewProgressRepo(tx).Update(ctx, pr); err != nil {
			return err
		}
		_, err = storage.NewCompletionRepo(tx).Insert(ctx, t.Day, t.Name, t.Skill, t.XP, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	rankAfter := CurrentRank(pr.TotalXP)
	return &CompleteResult{
		TaskID:     id,
		Name:       t.Name,
		Skill:      Skill(t.Skill),
		Counted:    true,
		XPAwarded:  t.XP,
		TotalXP:    pr.TotalXP,
		RankBefore: rankBefore,
		RankAfter:  rankAfter,
		RankUp:     rankAfter.ID > rankBefore.ID,
		AllDone:    allDone,
		Streak:     pr.Streak,
	}, nil
}

// ResetStreak is the explicit streak reset action; XP is untouched.
func (s *Service) ResetStreak(ctx context.Context) error {
	pr, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return err
	}
	pr.Streak = 0
	return s.progress.Update(ctx, pr)
}
