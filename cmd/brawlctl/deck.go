package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Inspect or edit battle decks",
	}
	nameCmd := &cobra.Command{
		Use:   "name",
		Short: "Read or change a deck name",
	}
	nameCmd.AddCommand(newDeckNameGetCmd(), newDeckNameSetCmd())
	cmd.AddCommand(newDeckShowCmd(), newDeckSetCreatureCmd(), newDeckClearCmd(), nameCmd)
	rootCmd.AddCommand(cmd)
}

func parseDeckIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid deck index %q", s)
	}
	return idx, nil
}

func newDeckShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <save> <deck-index>",
		Short: "Print the contents of a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			idx, err := parseDeckIndex(args[1])
			if err != nil {
				return err
			}
			data, cleanup, err := mmfile.Map(args[0])
			if err != nil {
				return err
			}
			defer cleanup()

			deck, err := save.ReadDeck(data, ctx, idx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(deck)
			}
			for i, c := range deck.Creatures {
				if c == nil {
					printInfo("creature %d: empty\n", i)
				} else {
					printInfo("creature %d: id %d attribute %d\n", i, c.Creature, c.Attribute)
				}
			}
			printCardGroup("gate", deck.GateCards)
			printCardGroup("ability", deck.AbilityCards)
			return nil
		},
	}
}

func printCardGroup(kind string, cards [3]*int) {
	for i, id := range cards {
		if id == nil {
			printInfo("%s %d: empty\n", kind, i)
		} else {
			printInfo("%s %d: card %d\n", kind, i, *id)
		}
	}
}

func newDeckSetCreatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-creature <save> <deck-index> <slot> <creature-id> <attribute-id>",
		Short: "Put a creature into a deck slot",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			idx, err := parseDeckIndex(args[1])
			if err != nil {
				return err
			}
			nums := make([]int, 3)
			for i, arg := range args[2:] {
				if nums[i], err = strconv.Atoi(arg); err != nil {
					return fmt.Errorf("invalid number %q", arg)
				}
			}
			slotIdx, creature, attribute := nums[0], nums[1], nums[2]
			if slotIdx < 0 || slotIdx > 2 {
				return fmt.Errorf("deck slot must be 0..2, got %d", slotIdx)
			}
			return mmfile.Update(args[0], func(data []byte) error {
				deck, err := save.ReadDeck(data, ctx, idx)
				if err != nil {
					return err
				}
				deck.Creatures[slotIdx] = &save.CreatureRef{Creature: creature, Attribute: attribute}
				return save.WriteDeck(data, ctx, idx, deck)
			})
		},
	}
}

func newDeckClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <save> <deck-index>",
		Short: "Empty every slot of a deck",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			idx, err := parseDeckIndex(args[1])
			if err != nil {
				return err
			}
			return mmfile.Update(args[0], func(data []byte) error {
				return save.WriteDeck(data, ctx, idx, save.Deck{})
			})
		},
	}
}

func newDeckNameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <save> <deck-index>",
		Short: "Print a deck name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			idx, err := parseDeckIndex(args[1])
			if err != nil {
				return err
			}
			data, cleanup, err := mmfile.Map(args[0])
			if err != nil {
				return err
			}
			defer cleanup()

			name, err := save.ReadDeckName(data, ctx, idx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]interface{}{"deck": idx, "name": name})
			}
			printInfo("%s\n", name)
			return nil
		},
	}
}

func newDeckNameSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <save> <deck-index> <name>",
		Short: "Set a deck name (10 characters, printable ASCII)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			idx, err := parseDeckIndex(args[1])
			if err != nil {
				return err
			}
			return mmfile.Update(args[0], func(data []byte) error {
				return save.WriteDeckName(data, ctx, idx, args[2])
			})
		},
	}
}
