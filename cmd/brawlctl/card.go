package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/layout"
	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Read or change card unlock flags",
	}
	cmd.AddCommand(newCardGetCmd(), newCardSetCmd(), newCardUnlockAllCmd())
	rootCmd.AddCommand(cmd)
}

func newCardGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <save> <card-id>",
		Short: "Print whether a card is unlocked",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[1])
			}
			data, cleanup, err := mmfile.Map(args[0])
			if err != nil {
				return err
			}
			defer cleanup()

			unlocked, err := save.ReadCardFlag(data, ctx, id)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]interface{}{"card": id, "unlocked": unlocked})
			}
			if unlocked {
				printInfo("card %d: unlocked\n", id)
			} else {
				printInfo("card %d: locked\n", id)
			}
			return nil
		},
	}
}

func newCardSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <save> <card-id> <locked|unlocked>",
		Short: "Lock or unlock a single card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[1])
			}
			var unlocked bool
			switch args[2] {
			case "unlocked", "1":
				unlocked = true
			case "locked", "0":
				unlocked = false
			default:
				return fmt.Errorf("state must be locked or unlocked, got %q", args[2])
			}
			return mmfile.Update(args[0], func(data []byte) error {
				return save.WriteCardFlag(data, ctx, id, unlocked)
			})
		},
	}
}

func newCardUnlockAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock-all <save>",
		Short: "Unlock every known card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			return mmfile.Update(args[0], func(data []byte) error {
				for id := layout.CardIDBase; id < layout.CardIDBase+layout.CardCount; id++ {
					if err := save.WriteCardFlag(data, ctx, id, true); err != nil {
						return err
					}
				}
				printVerbose("Unlocked %d cards\n", layout.CardCount)
				return nil
			})
		},
	}
}
