package main

import (
	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Read or change the player name",
	}
	cmd.AddCommand(newNameGetCmd(), newNameSetCmd())
	rootCmd.AddCommand(cmd)
}

func newNameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <save>",
		Short: "Print the player name",
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

			name, err := save.ReadPlayerName(data, ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]string{"player_name": name})
			}
			printInfo("%s\n", name)
			return nil
		},
	}
}

func newNameSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <save> <name>",
		Short: "Set the player name (8 characters, printable ASCII)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			return mmfile.Update(args[0], func(data []byte) error {
				return save.WritePlayerName(data, ctx, args[1])
			})
		},
	}
}
