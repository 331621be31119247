package engine

import (
	"context"
	"database/sql"

	"arise/internal/storage"
)

// Service wires the pure rules onto the local store. All mutating paths run
// inside a single transaction so a concurrently refreshing view never sees a
// partial "complete, award, streak" update.
type Service struct {
	db          *sql.DB
	prefs       *storage.PrefsRepo
	progress    *storage.ProgressRepo
	days        *storage.DayRepo
	completions *storage.CompletionRepo
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:          db,
		prefs:       storage.NewPrefsRepo(db),
		progress:    storage.NewProgressRepo(db),
		days:        storage.NewDayRepo(db),
		completions: storage.NewCompletionRepo(db),
	}
}

func (s *Service) PrefsRepo() *storage.PrefsRepo           { return s.prefs }
func (s *Service) ProgressRepo() *storage.ProgressRepo     { return s.progress }
func (s *Service) DayRepo() *storage.DayRepo               { return s.days }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }

// Preferences loads the stored snapshot as engine preferences. Returns the
// zero value before onboarding; generation then simply emits no tasks.
func (s *Service) Preferences(ctx context.Context) (Preferences, error) {
	sp, err := s.prefs.Get(ctx, storage.MainUserKey)
	if err != nil {
		return Preferences{}, err
	}
	if sp == nil {
		return Preferences{}, nil
	}
	return PrefsFromStored(sp), nil
}

// SavePreferences validates and persists a preference snapshot.
func (s *Service) SavePreferences(ctx context.Context, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.prefs.Save(ctx, StoredFromPrefs(p, storage.MainUserKey))
}

// PrefsFromStored maps a stored snapshot into engine preferences.
func PrefsFromStored(sp *storage.Preferences) Preferences {
	p := Preferences{
		WakeWeekday:          sp.WakeWeekday,
		WakeWeekend:          sp.WakeWeekend,
		SleepHoursWeekday:    sp.SleepHoursWeekday,
		SleepHoursWeekend:    sp.SleepHoursWeekend,
		WorkoutHoursPerDay:   sp.WorkoutHoursPerDay,
		WorkoutDays:          toWeekdays(sp.WorkoutDays),
		ScreenLimitHours:     sp.ScreenLimitHours,
		WeightLbs:            sp.WeightLbs,
		TakeColdShowers:      sp.TakeColdShowers,
		ColdShowerDays:       toWeekdays(sp.ColdShowerDays),
		MajorFocus:           sp.MajorFocus,
		AddictionDaysPerWeek: sp.AddictionDays,
	}
	if len(sp.SelectedActivities) > 0 {
		p.SelectedActivities = make(map[string][]Weekday, len(sp.SelectedActivities))
		for name, days := range sp.SelectedActivities {
			p.SelectedActivities[name] = toWeekdays(days)
		}
	}
	return p
}

// StoredFromPrefs maps engine preferences back onto the storage model.
func StoredFromPrefs(p Preferences, key string) *storage.Preferences {
	sp := &storage.Preferences{
		Key:                key,
		WakeWeekday:        p.WakeWeekday,
		WakeWeekend:        p.WakeWeekend,
		SleepHoursWeekday:  p.SleepHoursWeekday,
		SleepHoursWeekend:  p.SleepHoursWeekend,
		WorkoutHoursPerDay: p.WorkoutHoursPerDay,
		WorkoutDays:        fromWeekdays(p.WorkoutDays),
		ScreenLimitHours:   p.ScreenLimitHours,
		WeightLbs:          p.WeightLbs,
		TakeColdShowers:    p.TakeColdShowers,
		ColdShowerDays:     fromWeekdays(p.ColdShowerDays),
		MajorFocus:         p.MajorFocus,
		AddictionDays:      p.AddictionDaysPerWeek,
	}
	if len(p.SelectedActivities) > 0 {
		sp.SelectedActivities = make(map[string][]int, len(p.SelectedActivities))
		for name, days := range p.SelectedActivities {
			sp.SelectedActivities[name] = fromWeekdays(days)
		}
	}
	return sp
}

// SkillXPOf converts a progress row's per-skill XP into engine keys.
func SkillXPOf(p *storage.Progress) map[Skill]int {
	out := make(map[Skill]int, len(AllSkills))
	for name, xp := range p.SkillXP() {
		out[Skill(name)] = xp
	}
	return out
}

func toWeekdays(days []int) []Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, Weekday(d))
	}
	return out
}

func fromWeekdays(days []Weekday) []int {
	if len(days) == 0 {
		return nil
	}
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, int(d))
	}
	return out
}
