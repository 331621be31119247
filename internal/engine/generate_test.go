package engine

import (
	"strings"
	"testing"
	"time"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// 2026-03-02 is a Monday; 2026-03-07 a Saturday.
var (
	monday   = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC)
)

func fullPrefs() Preferences {
	return Preferences{
		WakeWeekday:        intPtr(7 * 60),
		WakeWeekend:        intPtr(9 * 60),
		SleepHoursWeekday:  floatPtr(8),
		SleepHoursWeekend:  floatPtr(9),
		WorkoutHoursPerDay: floatPtr(1),
		WorkoutDays:        []Weekday{Monday},
		ScreenLimitHours:   floatPtr(3),
		WeightLbs:          intPtr(150),
	}
}

func taskNames(tasks []Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}

func TestGenerateMondayScenario(t *testing.T) {
	tasks := GenerateTasks(fullPrefs(), monday)

	want := []string{"Wake Up", "Sleep", "Drink Water", "Screen Time Limit", "Workout"}
	got := taskNames(tasks)
	if len(got) != len(want) {
		t.Fatalf("got %d tasks %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task[%d]=%q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}

	total := 0
	for _, task := range tasks {
		total += task.XP
	}
	if total != 140 {
		t.Fatalf("total XP=%d, want 140", total)
	}

	// weight 150 lbs -> 100 oz water target
	if !strings.Contains(tasks[2].Description, "100 oz") {
		t.Fatalf("water description=%q, want 100 oz", tasks[2].Description)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	prefs := fullPrefs()
	prefs.SelectedActivities = map[string][]Weekday{
		"reading": {Monday},
		"chess":   {Monday},
	}

	a := GenerateTasks(prefs, monday)
	b := GenerateTasks(prefs, monday)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].XP != b[i].XP || a[i].Type != b[i].Type {
			t.Fatalf("task[%d] differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateWeekendBranch(t *testing.T) {
	prefs := fullPrefs()

	weekday := GenerateTasks(prefs, tuesday)
	if !strings.Contains(weekday[0].Description, "07:00") {
		t.Fatalf("weekday wake description=%q, want 07:00", weekday[0].Description)
	}

	weekend := GenerateTasks(prefs, saturday)
	if !strings.Contains(weekend[0].Description, "09:00") {
		t.Fatalf("weekend wake description=%q, want 09:00", weekend[0].Description)
	}
}

func TestGenerateOmitsTasksForMissingFields(t *testing.T) {
	// Workout hours set but today not in workoutDays: no workout task.
	prefs := fullPrefs()
	tasks := GenerateTasks(prefs, tuesday)
	for _, task := range tasks {
		if task.Name == "Workout" {
			t.Fatalf("unexpected Workout on Tuesday: %v", taskNames(tasks))
		}
	}

	// Wake without sleep hours: neither Wake Up nor Sleep.
	prefs = Preferences{WakeWeekday: intPtr(7 * 60)}
	tasks = GenerateTasks(prefs, tuesday)
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %v", taskNames(tasks))
	}

	// Empty preferences: empty set, not an error.
	if tasks := GenerateTasks(Preferences{}, monday); len(tasks) != 0 {
		t.Fatalf("expected no tasks for empty prefs, got %v", taskNames(tasks))
	}
}

func TestGenerateColdShowerRequiresBothFlagAndDay(t *testing.T) {
	prefs := Preferences{
		TakeColdShowers: false,
		ColdShowerDays:  []Weekday{Monday},
	}
	if tasks := GenerateTasks(prefs, monday); len(tasks) != 0 {
		t.Fatalf("cold shower emitted with flag off: %v", taskNames(tasks))
	}

	prefs.TakeColdShowers = true
	tasks := GenerateTasks(prefs, monday)
	if len(tasks) != 1 || tasks[0].Name != "Cold Shower" {
		t.Fatalf("expected single Cold Shower, got %v", taskNames(tasks))
	}
	if tasks[0].XP != XPColdShower {
		t.Fatalf("cold shower xp=%d, want %d", tasks[0].XP, XPColdShower)
	}
}

func TestGenerateActivitiesSortedAndCapitalized(t *testing.T) {
	prefs := Preferences{
		SelectedActivities: map[string][]Weekday{
			"reading":    {Monday},
			"cold calls": {Monday},
			"chess":      {Tuesday},
		},
	}
	tasks := GenerateTasks(prefs, monday)
	got := taskNames(tasks)
	want := []string{"Cold Calls", "Reading"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("activities=%v, want %v", got, want)
	}
	for _, task := range tasks {
		if task.Type != TaskTypeSetDay || task.XP != XPActivity {
			t.Fatalf("activity task wrong shape: %+v", task)
		}
	}
}

func TestBedtimeRounding(t *testing.T) {
	cases := []struct {
		wake  int
		sleep float64
		want  int
	}{
		{7 * 60, 8, 23 * 60},        // 23:00 exactly, no rounding
		{7 * 60, 7.8, 23*60 + 15},   // raw 23:12, remainder 12 rounds up
		{7 * 60, 7.9, 23 * 60},      // raw 23:06, remainder 6 rounds down
		{7*60 + 7, 8, 23 * 60},      // raw 23:07, remainder 7 rounds down
		{7*60 + 8, 8, 23*60 + 15},   // raw 23:08, remainder 8 rounds up
		{0, 8, 16 * 60},             // wraps across midnight
	}
	for _, c := range cases {
		if got := Bedtime(c.wake, c.sleep); got != c.want {
			t.Fatalf("Bedtime(%d, %v)=%d (%s), want %d (%s)",
				c.wake, c.sleep, got, FormatClock(got), c.want, FormatClock(c.want))
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	if d := WeekdayOf(monday); d != Monday {
		t.Fatalf("WeekdayOf(monday)=%d, want %d", d, Monday)
	}
	sunday := time.Date(2026, 3, 8, 8, 0, 0, 0, time.UTC)
	if d := WeekdayOf(sunday); d != Sunday {
		t.Fatalf("WeekdayOf(sunday)=%d, want %d", d, Sunday)
	}
	if !Saturday.IsWeekend() || !Sunday.IsWeekend() || Friday.IsWeekend() {
		t.Fatalf("weekend classification wrong")
	}
}

func TestWaterOunces(t *testing.T) {
	p := Preferences{WeightLbs: intPtr(150)}
	if oz := p.WaterOunces(); oz == nil || *oz != 100 {
		t.Fatalf("WaterOunces(150)=%v, want 100", oz)
	}
	if oz := (Preferences{}).WaterOunces(); oz != nil {
		t.Fatalf("WaterOunces with no weight=%v, want nil", oz)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	bad := Preferences{WakeWeekday: intPtr(-1)}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for negative wake time")
	}

	bad = Preferences{WorkoutDays: []Weekday{8}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for weekday 8")
	}

	if err := fullPrefs().Validate(); err != nil {
		t.Fatalf("valid prefs rejected: %v", err)
	}
}
