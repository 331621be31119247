package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// XP rewards and expiry windows per task kind. Frozen at generation time.
const (
	XPWakeUp     = 25
	XPSleep      = 25
	XPWater      = 20
	XPScreenTime = 20
	XPWorkout    = 50
	XPColdShower = 35
	XPActivity   = 30
)

// GenerateTasks derives the day's ordered task list from stored preferences.
// Pure over (prefs, date): the date contributes only the weekday and the
// weekend/weekday branch. Missing preference fields omit their task.
func GenerateTasks(prefs Preferences, date time.Time) []Task {
	day := WeekdayOf(date)
	weekend := day.IsWeekend()

	var out []Task

	// Daily tasks, fixed order.
	wake := prefs.WakeFor(weekend)
	sleep := prefs.SleepHoursFor(weekend)
	if wake != nil && sleep != nil {
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Wake Up",
			Description:    fmt.Sprintf("Wake up at %s", FormatClock(*wake)),
			XP:             XPWakeUp,
			ExpiresInHours: 6,
			Type:           TaskTypeDaily,
			Skill:          SkillDiscipline,
		})
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Sleep",
			Description:    fmt.Sprintf("Be in bed by %s", FormatClock(Bedtime(*wake, *sleep))),
			XP:             XPSleep,
			ExpiresInHours: 12,
			Type:           TaskTypeDaily,
			Skill:          SkillResilience,
		})
	}
	if oz := prefs.WaterOunces(); oz != nil {
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Drink Water",
			Description:    fmt.Sprintf("Drink %d oz of water", *oz),
			XP:             XPWater,
			ExpiresInHours: 10,
			Type:           TaskTypeDaily,
			Skill:          SkillFuel,
		})
	}
	if prefs.ScreenLimitHours != nil {
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Screen Time Limit",
			Description:    fmt.Sprintf("Keep screen time under %s hours", formatHours(*prefs.ScreenLimitHours)),
			XP:             XPScreenTime,
			ExpiresInHours: 10,
			Type:           TaskTypeDaily,
			Skill:          SkillDiscipline,
		})
	}

	// Set-day tasks: workout, cold shower, then activities.
	if prefs.WorkoutHoursPerDay != nil && containsDay(prefs.WorkoutDays, day) {
		minutes := int(math.Round(*prefs.WorkoutHoursPerDay * 60))
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Workout",
			Description:    fmt.Sprintf("Work out for %d minutes", minutes),
			XP:             XPWorkout,
			ExpiresInHours: 12,
			Type:           TaskTypeSetDay,
			Skill:          SkillFitness,
		})
	}
	if prefs.TakeColdShowers && containsDay(prefs.ColdShowerDays, day) {
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           "Cold Shower",
			Description:    "Take a cold shower",
			XP:             XPColdShower,
			ExpiresInHours: 12,
			Type:           TaskTypeSetDay,
			Skill:          SkillResilience,
		})
	}

	// Lexicographic order keeps generation deterministic regardless of map
	// iteration.
	names := make([]string, 0, len(prefs.SelectedActivities))
	for name := range prefs.SelectedActivities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !containsDay(prefs.SelectedActivities[name], day) {
			continue
		}
		title := capitalize(name)
		out = append(out, Task{
			ID:             uuid.NewString(),
			Name:           title,
			Description:    fmt.Sprintf("Spend time on %s", title),
			XP:             XPActivity,
			ExpiresInHours: 12,
			Type:           TaskTypeSetDay,
			Skill:          SkillNetwork,
		})
	}

	return out
}

// Bedtime computes the target bedtime (minutes since midnight) as wake time
// minus the sleep target, rounded to the nearest 15-minute mark. Remainders
// under 8 minutes round down, 8 and over round up.
func Bedtime(wakeMinutes int, sleepHours float64) int {
	raw := wakeMinutes - int(math.Round(sleepHours*60))
	raw = ((raw % 1440) + 1440) % 1440
	rem := raw % 15
	if rem < 8 {
		return raw - rem
	}
	return (raw + 15 - rem) % 1440
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
