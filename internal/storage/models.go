package storage

import "time"

// Preferences is the stored onboarding snapshot. Weekday sets use the
// Monday=1..Sunday=7 convention and persist as JSON arrays.
type Preferences struct {
	Key                string
	WakeWeekday        *int
	WakeWeekend        *int
	SleepHoursWeekday  *float64
	SleepHoursWeekend  *float64
	WorkoutHoursPerDay *float64
	WorkoutDays        []int
	ScreenLimitHours   *float64
	WeightLbs          *int
	TakeColdShowers    bool
	ColdShowerDays     []int
	SelectedActivities map[string][]int
	MajorFocus         *string
	AddictionDays      *int
}

// Progress is the persisted XP/streak snapshot, one row per user.
type Progress struct {
	Key           string
	TotalXP       int
	Streak        int
	LastResetDate string // yyyy-MM-dd, empty before first generation
	XPResilience  int
	XPFuel        int
	XPFitness     int
	XPWisdom      int
	XPDiscipline  int
	XPNetwork     int
}

// SkillXP returns the per-skill XP keyed by skill name.
func (p *Progress) SkillXP() map[string]int {
	return map[string]int{
		"Resilience": p.XPResilience,
		"Fuel":       p.XPFuel,
		"Fitness":    p.XPFitness,
		"Wisdom":     p.XPWisdom,
		"Discipline": p.XPDiscipline,
		"Network":    p.XPNetwork,
	}
}

// AddSkillXP adds xp to the named skill. Unknown names are ignored.
func (p *Progress) AddSkillXP(skill string, xp int) {
	switch skill {
	case "Resilience":
		p.XPResilience += xp
	case "Fuel":
		p.XPFuel += xp
	case "Fitness":
		p.XPFitness += xp
	case "Wisdom":
		p.XPWisdom += xp
	case "Discipline":
		p.XPDiscipline += xp
	case "Network":
		p.XPNetwork += xp
	}
}

// DayTask is one generated task instance for the resident day.
type DayTask struct {
	ID           string
	Day          string
	Position     int
	Name         string
	Description  string
	XP           int
	ExpiresHours int
	Type         string
	Skill        string
	Completed    bool
	CompletedAt  *time.Time
}

// Completion is one audit-log row for an awarded task.
type Completion struct {
	ID          int64
	Day         string
	TaskName    string
	Skill       string
	XPAwarded   int
	CompletedAt time.Time
}
