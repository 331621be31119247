package root

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"arise/internal/engine"
	"arise/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var showAchievements bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show rank, XP, skills, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.ProgressRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rank := engine.CurrentRank(p.TotalXP)
			next := engine.NextRank(p.TotalXP)

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Progression"))
			fmt.Fprintln(out, ui.LabelValue("Rank", rank.Name))
			if next.RequiredXP > rank.RequiredXP {
				toNext := next.RequiredXP - p.TotalXP
				fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next rank %s at %d, %d to go)", p.TotalXP, next.Name, next.RequiredXP, toNext)))
				fmt.Fprintf(out, "%s %s %.0f%%\n", ui.Key.Render("Rank progress:"), ui.ProgressBar(engine.ProgressToNextRank(p.TotalXP), 24), engine.ProgressToNextRank(p.TotalXP)*100)
			} else {
				fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (max rank)", p.TotalXP)))
			}
			fmt.Fprintf(out, "%s %s %.0f%%\n", ui.Key.Render("Journey:"), ui.ProgressBar(engine.JourneyProgress(p.TotalXP), 24), engine.JourneyProgress(p.TotalXP)*100)
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFlame, p.Streak)))
			fmt.Fprintln(out, "")

			skillXP := engine.SkillXPOf(p)
			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Skill", "Level", "XP", "Progress"})
			for _, s := range engine.AllSkills {
				xp := skillXP[s]
				t.AppendRow(table.Row{
					string(s),
					engine.SkillLevelForXP(xp),
					xp,
					fmt.Sprintf("%.0f%%", engine.SkillProgress(xp)*100),
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()

			fmt.Fprintln(out, ui.LabelValue("Best skill", string(engine.BestSkill(skillXP))))
			fmt.Fprintln(out, ui.LabelValue("Needs attention", string(engine.AttentionSkill(skillXP))))
			fmt.Fprintln(out, "")

			achievements, err := engine.GetAchievementsForPlayer(ctx, svc)
			if err != nil {
				return err
			}
			earned := 0
			for _, a := range achievements {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", earned, len(achievements))))
			if showAchievements {
				for _, a := range achievements {
					mark := ui.Muted.Render("·")
					name := ui.Muted.Render(a.Name)
					if a.Earned {
						mark = ui.Good.Render(ui.IconDone)
						name = ui.Good.Render(a.Name)
					}
					fmt.Fprintf(out, "%s %s %s — %s\n", mark, a.Icon, name, ui.Dim.Render(a.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAchievements, "achievements", "a", false, "List every achievement")

	return cmd
}
