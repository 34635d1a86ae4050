package main

import (
	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <save>",
		Short: "Show the resolved layout for a save file",
		Long: `The info command resolves the platform layout for the chosen slot and
prints every absolute offset the codec will use, along with whether the
file is large enough for them.

Example:
  brawlctl info -p ps2 -s 1 save.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	ctx, err := resolveContext()
	if err != nil {
		return err
	}
	data, cleanup, err := mmfile.Map(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"platform":    ctx.Platform,
			"slot":        ctx.Slot,
			"word_order":  ctx.Order.String(),
			"file_size":   len(data),
			"base":        ctx.Base,
			"card_base":   ctx.CardBase,
			"player_name": ctx.PlayerName,
			"styling":     ctx.Styling,
			"decks":       ctx.Decks,
			"deck_names":  ctx.DeckNames,
			"stats":       ctx.Stats,
		})
	}

	printInfo("Platform:     %s (slot %d, %s-endian words)\n", ctx.Platform, ctx.Slot, ctx.Order)
	printInfo("File size:    %d bytes\n", len(data))
	printInfo("Creatures:    %#x\n", ctx.Base)
	printInfo("Card flags:   %#x (base %d)\n", ctx.CardBase, ctx.CardBase)
	printInfo("Player name:  %#x\n", ctx.PlayerName)
	printInfo("Styling:      %#x\n", ctx.Styling)
	for i, d := range ctx.Decks {
		printInfo("Deck %d:       %#x\n", i, d)
	}
	if ctx.DeckNames != nil {
		for i, d := range ctx.DeckNames {
			printInfo("Deck name %d:  %#x\n", i, d)
		}
	} else {
		printInfo("Deck names:   not supported\n")
	}
	if ctx.Stats != nil {
		printInfo("Stats:        %#x (ranking points)\n", ctx.Stats.RankingPoints)
	} else {
		printInfo("Stats:        not supported\n")
	}
	return nil
}
