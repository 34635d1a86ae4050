package main

import (
	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <save>",
		Short: "Decode a whole save instance to JSON",
		Long: `The export command decodes everything the platform stores for the chosen
slot (name, styling, creature records, unlocked cards, decks, deck names,
stats) and writes it to stdout as JSON. Features the platform does not
support are omitted.

Example:
  brawlctl export -p wii -s 2 save.bin > slot2.json`,
		Args: cobra.ExactArgs(1),
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

			snap, err := save.TakeSnapshot(data, ctx)
			if err != nil {
				return err
			}
			return printJSON(snap)
		},
	}
}
