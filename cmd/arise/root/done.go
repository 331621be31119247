package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <n>",
		Short: "Complete today's task number n (as listed by `arise today`)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("task number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			today, err := svc.EnsureToday(ctx, now)
			if err != nil {
				return err
			}

			n, _ := strconv.Atoi(args[0])
			if n < 1 || n > len(today.Tasks) {
				return fmt.Errorf("no task %d today (have %d)", n, len(today.Tasks))
			}
			task := today.Tasks[n-1]

			res, err := svc.CompleteTask(ctx, task.ID, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Counted {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s is already done.", task.Name)))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"),
				ui.TaskIcon(res.Name), res.Name,
				ui.Gold.Render(fmt.Sprintf("(+%d XP → %s)", res.XPAwarded, res.Skill)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", res.TotalXP))
			if res.RankUp {
				fmt.Fprintf(out, "%s %s → %s\n", ui.BadgeRankUp, res.RankBefore.Name, res.RankAfter.Name)
			}
			if res.AllDone {
				fmt.Fprintf(out, "%s All tasks done — streak is now %d\n", ui.Warn.Render(ui.IconFlame), res.Streak)
			}
			return nil
		},
	}

	return cmd
}
