package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPrefsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewPrefsRepo(db)

	// Absent before onboarding.
	got, err := repo.Get(ctx, MainUserKey)
	require.NoError(t, err)
	assert.Nil(t, got)

	wake := 420
	sleep := 8.0
	weight := 150
	focus := "doomscrolling"
	in := &Preferences{
		Key:               MainUserKey,
		WakeWeekday:       &wake,
		SleepHoursWeekday: &sleep,
		WorkoutDays:       []int{1, 3, 5},
		WeightLbs:         &weight,
		TakeColdShowers:   true,
		ColdShowerDays:    []int{2},
		SelectedActivities: map[string][]int{
			"reading": {1, 4},
		},
		MajorFocus: &focus,
	}
	require.NoError(t, repo.Save(ctx, in))

	got, err = repo.Get(ctx, MainUserKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.WakeWeekday, got.WakeWeekday)
	assert.Nil(t, got.WakeWeekend)
	assert.Equal(t, in.SleepHoursWeekday, got.SleepHoursWeekday)
	assert.Equal(t, []int{1, 3, 5}, got.WorkoutDays)
	assert.Equal(t, in.WeightLbs, got.WeightLbs)
	assert.True(t, got.TakeColdShowers)
	assert.Equal(t, []int{2}, got.ColdShowerDays)
	assert.Equal(t, in.SelectedActivities, got.SelectedActivities)
	assert.Equal(t, in.MajorFocus, got.MajorFocus)

	// Upsert replaces fields.
	wake2 := 360
	in.WakeWeekday = &wake2
	in.WorkoutDays = nil
	require.NoError(t, repo.Save(ctx, in))
	got, err = repo.Get(ctx, MainUserKey)
	require.NoError(t, err)
	assert.Equal(t, &wake2, got.WakeWeekday)
	assert.Empty(t, got.WorkoutDays)
}

func TestProgressDefaultsAndUpdate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepo(db)

	p, err := repo.GetOrCreateMain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalXP)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, "", p.LastResetDate)

	p.TotalXP = 140
	p.Streak = 1
	p.LastResetDate = "2026-03-02"
	p.AddSkillXP("Fitness", 50)
	require.NoError(t, repo.Update(ctx, p))

	p, err = repo.GetOrCreateMain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 140, p.TotalXP)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, "2026-03-02", p.LastResetDate)
	assert.Equal(t, 50, p.XPFitness)
	assert.Equal(t, 50, p.SkillXP()["Fitness"])
}

func TestProgressUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepo(db)

	in := &Progress{Key: MainUserKey, TotalXP: 900, Streak: 4, LastResetDate: "2026-03-01", XPWisdom: 120}
	require.NoError(t, repo.Upsert(ctx, in))

	got, err := repo.Get(ctx, MainUserKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 900, got.TotalXP)
	assert.Equal(t, 120, got.XPWisdom)

	in.TotalXP = 950
	require.NoError(t, repo.Upsert(ctx, in))
	got, err = repo.Get(ctx, MainUserKey)
	require.NoError(t, err)
	assert.Equal(t, 950, got.TotalXP)
}

func TestDayReplaceCompleteAndCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewDayRepo(db)

	day := "2026-03-02"
	tasks := []DayTask{
		{ID: "a", Name: "Wake Up", Description: "Wake up at 07:00", XP: 25, ExpiresHours: 6, Type: "daily", Skill: "Discipline"},
		{ID: "b", Name: "Workout", Description: "Work out for 60 minutes", XP: 50, ExpiresHours: 12, Type: "setday", Skill: "Fitness"},
	}
	require.NoError(t, repo.ReplaceDay(ctx, day, tasks))

	list, err := repo.ListForDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Wake Up", list[0].Name)
	assert.Equal(t, "Workout", list[1].Name)
	assert.False(t, list[0].Completed)

	n, err := repo.CountRemaining(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkCompleted(ctx, "a", now))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)

	n, err = repo.CountRemaining(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Replacing with the next day discards everything resident.
	require.NoError(t, repo.ReplaceDay(ctx, "2026-03-03", nil))
	got, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompletionLog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepo(db)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	_, err := repo.Insert(ctx, "2026-03-02", "Wake Up", "Discipline", 25, now)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "2026-03-02", "Workout", "Fitness", 50, now.Add(time.Hour))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "2026-03-03", "Wake Up", "Discipline", 25, now.Add(24*time.Hour))
	require.NoError(t, err)

	n, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := repo.ListForDay(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Wake Up", list[0].TaskName)
	assert.Equal(t, 50, list[1].XPAwarded)
}
