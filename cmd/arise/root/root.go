package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arise/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "arise",
	Short:         "Arise — daily habit tasks with XP, ranks and streaks",
	Long:          "Arise generates a personalized daily task list from your lifestyle preferences and turns completions into XP, skill levels, ranks and streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newTodayCmd(),
		newDoneCmd(),
		newStatusCmd(),
		newPrefsCmd(),
		newStreakCmd(),
		newBoardCmd(),
		newSyncCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
