package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's tasks (generating them if the day rolled over)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today, err := svc.EnsureToday(ctx, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSun, "Today — "+today.Day))
			if today.Reset {
				fmt.Fprintln(out, ui.Muted.Render("New day: tasks regenerated."))
			}
			if len(today.Tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks today. Set preferences with `arise prefs set`."))
				return nil
			}

			totalXP := 0
			done := 0
			for i, t := range today.Tasks {
				check := "[ ]"
				if t.Completed {
					check = "[" + ui.IconDone + "]"
					done++
				}
				fmt.Fprintf(out, "%2d. %s %s %s  %s %s\n",
					i+1, check, ui.TaskIcon(t.Name), t.Name,
					ui.Muted.Render(t.Description),
					ui.Gold.Render(fmt.Sprintf("+%d XP", t.XP)))
				totalXP += t.XP
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Done", fmt.Sprintf("%d/%d (%d XP available)", done, len(today.Tasks), totalXP)))
			return nil
		},
	}

	return cmd
}
