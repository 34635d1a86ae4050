package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/brawlkit/brawlkit/internal/layout"
	"github.com/brawlkit/brawlkit/pkg/save"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	platform   string
	slot       int
	layoutFile string
)

var rootCmd = &cobra.Command{
	Use:   "brawlctl",
	Short: "Inspect and edit console game save files",
	Long: `brawlctl is a tool for inspecting and editing the fixed-layout binary
save files of the creature-brawling console game across its PS2, PS3, Wii,
and Xbox 360 builds. It edits saves in place with bounds-checked, bit-exact
reads and writes.

Most commands need --platform; multi-save platforms also take --slot.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVarP(&platform, "platform", "p", "", "Save platform: ps2, ps3, wii, or x360")
	rootCmd.PersistentFlags().IntVarP(&slot, "slot", "s", 0, "Save slot (multi-save platforms)")
	rootCmd.PersistentFlags().
		StringVar(&layoutFile, "layout", "", "YAML layout-override file for corrected offsets")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveContext builds the save context from the platform/slot flags,
// applying the --layout override document when one is given.
func resolveContext() (*save.Context, error) {
	if platform == "" {
		return nil, fmt.Errorf("--platform is required")
	}
	var (
		profiles map[layout.Platform]layout.Profile
		fields   []layout.StylingField
	)
	if layoutFile != "" {
		f, err := os.Open(layoutFile)
		if err != nil {
			return nil, fmt.Errorf("open layout overrides: %w", err)
		}
		defer f.Close()
		o, err := layout.LoadOverrides(f)
		if err != nil {
			return nil, err
		}
		if profiles, err = o.Apply(); err != nil {
			return nil, err
		}
		fields = o.StylingFields()
		printVerbose("Applied layout overrides from %s\n", layoutFile)
	}
	ctx, err := save.ResolveIn(profiles, fields, layout.Platform(platform), slot)
	if err != nil {
		return nil, err
	}
	if ctx.Slot != slot {
		printVerbose("Slot %d clamped to %d for %s\n", slot, ctx.Slot, ctx.Platform)
	}
	return ctx, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
