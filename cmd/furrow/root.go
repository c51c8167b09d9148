package main

import (
	"fmt"
	"os"

	"github.com/aretw0/furrow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "furrow",
	Short: "Furrow plans irrigation and fertilization with heuristic search",
	Long: `Furrow searches for the cheapest sequence of irrigation and fertilization actions
that brings soil moisture and nutrient levels into their optimal ranges.

Scenarios are YAML or JSON files. Without one, the built-in demo scenario is used.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout())
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// scenarioArg returns the optional scenario path argument.
func scenarioArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
