package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

func newStreakCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak (or reset it with --reset)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if reset {
				if err := svc.ResetStreak(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Streak reset to 0."))
				return nil
			}

			p, err := svc.ProgressRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFlame, p.Streak)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Reset the streak to 0")

	return cmd
}
