package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/mmfile"
	"github.com/brawlkit/brawlkit/pkg/save"
)

func init() {
	cmd := &cobra.Command{
		Use:   "styling",
		Short: "Inspect or edit the avatar styling block",
	}
	cmd.AddCommand(newStylingShowCmd(), newStylingSetCmd())
	rootCmd.AddCommand(cmd)
}

func newStylingShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <save>",
		Short: "Print every styling field",
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

			values, err := save.ReadStyling(data, ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(values)
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				printInfo("%-12s %d\n", k, values[k])
			}
			return nil
		},
	}
}

func newStylingSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <save> <key>=<value> [<key>=<value>...]",
		Short: "Set styling fields; unspecified fields are untouched",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolveContext()
			if err != nil {
				return err
			}
			values := make(map[string]int, len(args)-1)
			for _, pair := range args[1:] {
				key, val, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("expected key=value, got %q", pair)
				}
				n, err := strconv.Atoi(val)
				if err != nil {
					return fmt.Errorf("invalid value in %q", pair)
				}
				values[key] = n
			}
			return mmfile.Update(args[0], func(data []byte) error {
				return save.WriteStyling(data, ctx, values)
			})
		},
	}
}
