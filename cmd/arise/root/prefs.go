package root

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or set lifestyle preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(), newPrefsSetCmd())
	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Preferences(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Preferences"))
			fmt.Fprintln(out, ui.LabelValue("Wake (weekday)", clockOrUnset(p.WakeWeekday)))
			fmt.Fprintln(out, ui.LabelValue("Wake (weekend)", clockOrUnset(p.WakeWeekend)))
			fmt.Fprintln(out, ui.LabelValue("Sleep hours (weekday)", floatOrUnset(p.SleepHoursWeekday)))
			fmt.Fprintln(out, ui.LabelValue("Sleep hours (weekend)", floatOrUnset(p.SleepHoursWeekend)))
			fmt.Fprintln(out, ui.LabelValue("Workout hours/day", floatOrUnset(p.WorkoutHoursPerDay)))
			fmt.Fprintln(out, ui.LabelValue("Workout days", daysOrUnset(p.WorkoutDays)))
			fmt.Fprintln(out, ui.LabelValue("Screen limit hours", floatOrUnset(p.ScreenLimitHours)))
			if p.WeightLbs != nil {
				fmt.Fprintln(out, ui.LabelValue("Weight", fmt.Sprintf("%d lbs (%d oz water/day)", *p.WeightLbs, *p.WaterOunces())))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Weight", ui.Muted.Render("unset")))
			}
			fmt.Fprintln(out, ui.LabelValue("Cold showers", fmt.Sprintf("%v on %s", p.TakeColdShowers, daysOrUnset(p.ColdShowerDays))))

			if len(p.SelectedActivities) > 0 {
				names := make([]string, 0, len(p.SelectedActivities))
				for name := range p.SelectedActivities {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintln(out, ui.LabelValue("Activity "+name, daysOrUnset(p.SelectedActivities[name])))
				}
			}
			if p.MajorFocus != nil {
				days := 0
				if p.AddictionDaysPerWeek != nil {
					days = *p.AddictionDaysPerWeek
				}
				fmt.Fprintln(out, ui.LabelValue("Major focus", fmt.Sprintf("%s (%d days/week)", *p.MajorFocus, days)))
			}
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	var (
		wakeWeekday, wakeWeekend    string
		sleepWeekday, sleepWeekend  float64
		workoutHours, screenLimit   float64
		workoutDays, coldShowerDays string
		weight                      int
		coldShowers                 bool
		activities                  []string
		majorFocus                  string
		addictionDays               int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set preferences (only provided flags change)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Preferences(ctx)
			if err != nil {
				return err
			}

			set := func(name string) bool { return cmd.Flags().Changed(name) }

			if set("wake-weekday") {
				v, err := parseClock(wakeWeekday)
				if err != nil {
					return err
				}
				p.WakeWeekday = &v
			}
			if set("wake-weekend") {
				v, err := parseClock(wakeWeekend)
				if err != nil {
					return err
				}
				p.WakeWeekend = &v
			}
			if set("sleep-weekday") {
				p.SleepHoursWeekday = &sleepWeekday
			}
			if set("sleep-weekend") {
				p.SleepHoursWeekend = &sleepWeekend
			}
			if set("workout-hours") {
				p.WorkoutHoursPerDay = &workoutHours
			}
			if set("workout-days") {
				days, err := parseDays(workoutDays)
				if err != nil {
					return err
				}
				p.WorkoutDays = days
			}
			if set("screen-limit") {
				p.ScreenLimitHours = &screenLimit
			}
			if set("weight") {
				p.WeightLbs = &weight
			}
			if set("cold-showers") {
				p.TakeColdShowers = coldShowers
			}
			if set("cold-shower-days") {
				days, err := parseDays(coldShowerDays)
				if err != nil {
					return err
				}
				p.ColdShowerDays = days
			}
			if set("activity") {
				// At most two extra activities, enforced at entry like the
				// onboarding flow does.
				if len(activities) > 2 {
					return fmt.Errorf("at most 2 activities are supported, got %d", len(activities))
				}
				parsed := make(map[string][]engine.Weekday, len(activities))
				for _, spec := range activities {
					name, days, err := parseActivity(spec)
					if err != nil {
						return err
					}
					parsed[name] = days
				}
				p.SelectedActivities = parsed
			}
			if set("focus") {
				p.MajorFocus = &majorFocus
			}
			if set("addiction-days") {
				p.AddictionDaysPerWeek = &addictionDays
			}

			if err := svc.SavePreferences(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Preferences saved."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Tomorrow's tasks will use them; run `arise today` to see the current set."))
			return nil
		},
	}

	cmd.Flags().StringVar(&wakeWeekday, "wake-weekday", "", "Weekday wake time (HH:MM)")
	cmd.Flags().StringVar(&wakeWeekend, "wake-weekend", "", "Weekend wake time (HH:MM)")
	cmd.Flags().Float64Var(&sleepWeekday, "sleep-weekday", 0, "Weekday sleep target (hours)")
	cmd.Flags().Float64Var(&sleepWeekend, "sleep-weekend", 0, "Weekend sleep target (hours)")
	cmd.Flags().Float64Var(&workoutHours, "workout-hours", 0, "Workout duration (hours)")
	cmd.Flags().StringVar(&workoutDays, "workout-days", "", "Workout days (e.g. mon,wed,fri)")
	cmd.Flags().Float64Var(&screenLimit, "screen-limit", 0, "Daily screen time cap (hours)")
	cmd.Flags().IntVar(&weight, "weight", 0, "Body weight (lbs), drives the water target")
	cmd.Flags().BoolVar(&coldShowers, "cold-showers", false, "Take cold showers")
	cmd.Flags().StringVar(&coldShowerDays, "cold-shower-days", "", "Cold shower days (e.g. mon,thu)")
	cmd.Flags().StringArrayVar(&activities, "activity", nil, "Extra activity as name=days (e.g. reading=mon,thu); repeatable, max 2")
	cmd.Flags().StringVar(&majorFocus, "focus", "", "Habit/addiction to reduce (informational)")
	cmd.Flags().IntVar(&addictionDays, "addiction-days", 0, "Days per week the habit occurs (informational)")

	return cmd
}

var dayNames = map[string]engine.Weekday{
	"mon": engine.Monday, "tue": engine.Tuesday, "wed": engine.Wednesday,
	"thu": engine.Thursday, "fri": engine.Friday, "sat": engine.Saturday,
	"sun": engine.Sunday,
}

var dayShort = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q must be HH:MM", s)
	}
	return h*60 + m, nil
}

func parseDays(s string) ([]engine.Weekday, error) {
	var out []engine.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		d, ok := dayNames[part[:min(3, len(part))]]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		if !containsWeekday(out, d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func parseActivity(spec string) (string, []engine.Weekday, error) {
	name, daysSpec, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("activity %q must be name=days", spec)
	}
	days, err := parseDays(daysSpec)
	if err != nil {
		return "", nil, err
	}
	return name, days, nil
}

func containsWeekday(days []engine.Weekday, d engine.Weekday) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}

func clockOrUnset(v *int) string {
	if v == nil {
		return ui.Muted.Render("unset")
	}
	return engine.FormatClock(*v)
}

func floatOrUnset(v *float64) string {
	if v == nil {
		return ui.Muted.Render("unset")
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func daysOrUnset(days []engine.Weekday) string {
	if len(days) == 0 {
		return ui.Muted.Render("none")
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d.IsValid() {
			names = append(names, dayShort[d])
		}
	}
	return strings.Join(names, ",")
}
