package engine

import (
	"context"
	"database/sql"
	"time"

	"arise/internal/storage"
)

// DayLayout is the stored calendar-date format for reset bookkeeping.
const DayLayout = "2006-01-02"

// CheckMidnightReset reports whether the stored reset date is stale for
// today, i.e. whether a day rollover must regenerate the task set. An empty
// lastResetDate (first-ever use) always triggers.
func CheckMidnightReset(today, lastResetDate string) bool {
	return today != lastResetDate
}

// TodayResult is the resident day after an EnsureToday call.
type TodayResult struct {
	Day   string
	Tasks []storage.DayTask
	Reset bool // true when this call performed the midnight reset
}

// EnsureToday runs the midnight check and returns today's task set. On a day
// rollover it discards the previous day's tasks, regenerates from current
// preferences and stamps the reset date; otherwise it is a read-only no-op.
// Call it on every entry into the app, the same way the original re-checks on
// each foreground event.
func (s *Service) EnsureToday(ctx context.Context, now time.Time) (*TodayResult, error) {
	day := now.Format(DayLayout)

	pr, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if !CheckMidnightReset(day, pr.LastResetDate) {
		tasks, err := s.days.ListForDay(ctx, day)
		if err != nil {
			return nil, err
		}
		return &TodayResult{Day: day, Tasks: tasks}, nil
	}

	prefs, err := s.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	generated := GenerateTasks(prefs, now)
	rows := make([]storage.DayTask, 0, len(generated))
	for _, t := range generated {
		rows = append(rows, storage.DayTask{
			ID:           t.ID,
			Day:          day,
			Name:         t.Name,
			Description:  t.Description,
			XP:           t.XP,
			ExpiresHours: t.ExpiresInHours,
			Type:         string(t.Type),
			Skill:        string(t.Skill),
		})
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewDayRepo(tx).ReplaceDay(ctx, day, rows); err != nil {
			return err
		}
		pr.LastResetDate = day
		return storage.NewProgressRepo(tx).Update(ctx, pr)
	})
	if err != nil {
		return nil, err
	}

	tasks, err := s.days.ListForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return &TodayResult{Day: day, Tasks: tasks, Reset: true}, nil
}
