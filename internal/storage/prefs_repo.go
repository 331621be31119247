package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PrefsRepo struct {
	db DBTX
}

func NewPrefsRepo(db DBTX) *PrefsRepo {
	return &PrefsRepo{db: db}
}

// Get returns the stored preferences, or nil before onboarding.
func (r *PrefsRepo) Get(ctx context.Context, key string) (*Preferences, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, wake_weekday, wake_weekend, sleep_hours_weekday, sleep_hours_weekend,
			workout_hours, workout_days, screen_limit_hours, weight_lbs,
			cold_showers, cold_shower_days, activities, major_focus, addiction_days_per_week
		FROM preferences
		WHERE key = ?
	`, key)

	var (
		p               Preferences
		wakeWd, wakeWe  sql.NullInt64
		sleepWd, slpWe  sql.NullFloat64
		workoutHours    sql.NullFloat64
		workoutDaysRaw  sql.NullString
		screenLimit     sql.NullFloat64
		weight          sql.NullInt64
		coldShowers     int
		coldDaysRaw     sql.NullString
		activitiesRaw   sql.NullString
		majorFocus      sql.NullString
		addictionDays   sql.NullInt64
	)
	err := row.Scan(&p.Key, &wakeWd, &wakeWe, &sleepWd, &slpWe,
		&workoutHours, &workoutDaysRaw, &screenLimit, &weight,
		&coldShowers, &coldDaysRaw, &activitiesRaw, &majorFocus, &addictionDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("preferences get: %w", err)
	}

	if wakeWd.Valid {
		v := int(wakeWd.Int64)
		p.WakeWeekday = &v
	}
	if wakeWe.Valid {
		v := int(wakeWe.Int64)
		p.WakeWeekend = &v
	}
	if sleepWd.Valid {
		v := sleepWd.Float64
		p.SleepHoursWeekday = &v
	}
	if slpWe.Valid {
		v := slpWe.Float64
		p.SleepHoursWeekend = &v
	}
	if workoutHours.Valid {
		v := workoutHours.Float64
		p.WorkoutHoursPerDay = &v
	}
	if screenLimit.Valid {
		v := screenLimit.Float64
		p.ScreenLimitHours = &v
	}
	if weight.Valid {
		v := int(weight.Int64)
		p.WeightLbs = &v
	}
	p.TakeColdShowers = coldShowers != 0
	if majorFocus.Valid {
		v := majorFocus.String
		p.MajorFocus = &v
	}
	if addictionDays.Valid {
		v := int(addictionDays.Int64)
		p.AddictionDays = &v
	}

	if p.WorkoutDays, err = decodeDays(workoutDaysRaw); err != nil {
		return nil, fmt.Errorf("preferences workout days: %w", err)
	}
	if p.ColdShowerDays, err = decodeDays(coldDaysRaw); err != nil {
		return nil, fmt.Errorf("preferences cold shower days: %w", err)
	}
	if activitiesRaw.Valid && activitiesRaw.String != "" {
		if err := json.Unmarshal([]byte(activitiesRaw.String), &p.SelectedActivities); err != nil {
			return nil, fmt.Errorf("preferences activities: %w", err)
		}
	}
	return &p, nil
}

// Save upserts the whole preference document for key.
func (r *PrefsRepo) Save(ctx context.Context, p *Preferences) error {
	workoutDays, err := encodeDays(p.WorkoutDays)
	if err != nil {
		return fmt.Errorf("preferences workout days: %w", err)
	}
	coldDays, err := encodeDays(p.ColdShowerDays)
	if err != nil {
		return fmt.Errorf("preferences cold shower days: %w", err)
	}
	var activities *string
	if len(p.SelectedActivities) > 0 {
		data, err := json.Marshal(p.SelectedActivities)
		if err != nil {
			return fmt.Errorf("preferences activities: %w", err)
		}
		s := string(data)
		activities = &s
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO preferences (
			key, wake_weekday, wake_weekend, sleep_hours_weekday, sleep_hours_weekend,
			workout_hours, workout_days, screen_limit_hours, weight_lbs,
			cold_showers, cold_shower_days, activities, major_focus, addiction_days_per_week
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			wake_weekday = excluded.wake_weekday,
			wake_weekend = excluded.wake_weekend,
			sleep_hours_weekday = excluded.sleep_hours_weekday,
			sleep_hours_weekend = excluded.sleep_hours_weekend,
			workout_hours = excluded.workout_hours,
			workout_days = excluded.workout_days,
			screen_limit_hours = excluded.screen_limit_hours,
			weight_lbs = excluded.weight_lbs,
			cold_showers = excluded.cold_showers,
			cold_shower_days = excluded.cold_shower_days,
			activities = excluded.activities,
			major_focus = excluded.major_focus,
			addiction_days_per_week = excluded.addiction_days_per_week
	`, p.Key, p.WakeWeekday, p.WakeWeekend, p.SleepHoursWeekday, p.SleepHoursWeekend,
		p.WorkoutHoursPerDay, workoutDays, p.ScreenLimitHours, p.WeightLbs,
		boolToInt(p.TakeColdShowers), coldDays, activities, p.MajorFocus, p.AddictionDays)
	if err != nil {
		return fmt.Errorf("preferences save: %w", err)
	}
	return nil
}

func encodeDays(days []int) (*string, error) {
	if len(days) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func decodeDays(raw sql.NullString) ([]int, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var days []int
	if err := json.Unmarshal([]byte(raw.String), &days); err != nil {
		return nil, err
	}
	return days, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
