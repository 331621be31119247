package engine

import (
	"fmt"
	"math"
	"time"
)

// Weekday uses the Monday-first convention: Monday=1 .. Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// WeekdayOf remaps time.Weekday (Sunday=0) onto Monday=1..Sunday=7.
func WeekdayOf(t time.Time) Weekday {
	w := int(t.Weekday())
	if w == 0 {
		return Sunday
	}
	return Weekday(w)
}

func containsDay(days []Weekday, d Weekday) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}

// Preferences is the user's stored lifestyle configuration. The engine only
// reads it; ownership lives with the external store. Optional fields are
// pointers: a nil field omits the corresponding task rather than erroring.
type Preferences struct {
	WakeWeekday *int // minutes since midnight
	WakeWeekend *int

	SleepHoursWeekday *float64
	SleepHoursWeekend *float64

	WorkoutHoursPerDay *float64
	WorkoutDays        []Weekday

	ScreenLimitHours *float64

	WeightLbs *int

	TakeColdShowers bool
	ColdShowerDays  []Weekday

	SelectedActivities map[string][]Weekday

	// Informational only; not consumed by task generation.
	MajorFocus           *string
	AddictionDaysPerWeek *int
}

// WaterOunces derives the daily water target from body weight.
func (p Preferences) WaterOunces() *int {
	if p.WeightLbs == nil {
		return nil
	}
	oz := int(math.Round(float64(*p.WeightLbs) * 2.0 / 3.0))
	return &oz
}

// WakeFor returns the wake time (minutes since midnight) for the given day
// type, or nil if unset.
func (p Preferences) WakeFor(weekend bool) *int {
	if weekend {
		return p.WakeWeekend
	}
	return p.WakeWeekday
}

// SleepHoursFor returns the sleep target for the given day type, or nil.
func (p Preferences) SleepHoursFor(weekend bool) *float64 {
	if weekend {
		return p.SleepHoursWeekend
	}
	return p.SleepHoursWeekday
}

// Validate rejects out-of-range values at the store boundary. Missing fields
// are fine; present fields must be sane.
func (p Preferences) Validate() error {
	checkClock := func(field string, v *int) error {
		if v != nil && (*v < 0 || *v >= 24*60) {
			return ValidationError{Field: field, Reason: "must be minutes in [0, 1440)"}
		}
		return nil
	}
	checkHours := func(field string, v *float64) error {
		if v != nil && (*v < 0 || *v > 24) {
			return ValidationError{Field: field, Reason: "must be hours in [0, 24]"}
		}
		return nil
	}
	checkDays := func(field string, days []Weekday) error {
		for _, d := range days {
			if !d.IsValid() {
				return ValidationError{Field: field, Reason: fmt.Sprintf("weekday %d out of range 1..7", d)}
			}
		}
		return nil
	}

	if err := checkClock("wakeWeekday", p.WakeWeekday); err != nil {
		return err
	}
	if err := checkClock("wakeWeekend", p.WakeWeekend); err != nil {
		return err
	}
	if err := checkHours("sleepHoursWeekday", p.SleepHoursWeekday); err != nil {
		return err
	}
	if err := checkHours("sleepHoursWeekend", p.SleepHoursWeekend); err != nil {
		return err
	}
	if err := checkHours("workoutHoursPerDay", p.WorkoutHoursPerDay); err != nil {
		return err
	}
	if err := checkHours("screenLimitHours", p.ScreenLimitHours); err != nil {
		return err
	}
	if p.WeightLbs != nil && *p.WeightLbs <= 0 {
		return ValidationError{Field: "weightLbs", Reason: "must be positive"}
	}
	if p.AddictionDaysPerWeek != nil && (*p.AddictionDaysPerWeek < 0 || *p.AddictionDaysPerWeek > 7) {
		return ValidationError{Field: "addictionDaysPerWeek", Reason: "must be in 0..7"}
	}
	if err := checkDays("workoutDays", p.WorkoutDays); err != nil {
		return err
	}
	if err := checkDays("coldShowerDays", p.ColdShowerDays); err != nil {
		return err
	}
	for name, days := range p.SelectedActivities {
		if err := checkDays("selectedActivities["+name+"]", days); err != nil {
			return err
		}
	}
	return nil
}

// FormatClock renders minutes-since-midnight as HH:MM.
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
