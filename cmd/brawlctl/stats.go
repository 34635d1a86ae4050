package main

import (
	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect battle statistics",
	}
	cmd.AddCommand(newStatsShowCmd())
	rootCmd.AddCommand(cmd)
}

func newStatsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <save>",
		Short: "Print the battle-statistics block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			data, cleanup, err := mmfile.Map(args[0])
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := save.ReadStats(data, ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(stats)
			}
			printInfo("ranking points:  %d\n", stats.RankingPoints)
			printInfo("creature points: %d\n", stats.CreaturePoints)
			printInfo("battles:         %d (wins %d, losses %d)\n",
				stats.Battles, stats.Wins, stats.Losses)
			printInfo("sphere attacks:  %d\n", stats.SphereAttacks)
			printInfo("double stands:   %d\n", stats.DoubleStands)
			printInfo("modes:           story %d, arcade %d, survival %d\n",
				stats.ModeStory, stats.ModeArcade, stats.ModeSurvival)
			if stats.OpponentWins != nil {
				printInfo("opponent wins:   %v\n", stats.OpponentWins)
			}
			if stats.AttributeUsage != nil {
				printInfo("attribute usage: %v\n", stats.AttributeUsage)
			}
			return nil
		},
	}
}
