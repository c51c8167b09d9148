package main

import (
	"github.com/aretw0/furrow/internal/cli"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [scenario]",
	Short: "Search for the cheapest plan that reaches the optimal ranges",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		maxExpansions, _ := cmd.Flags().GetInt("max-expansions")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunPlan(ctx, cli.PlanOptions{
			ScenarioPath:  scenarioArg(args),
			JSON:          jsonMode,
			Mermaid:       mermaid,
			MaxExpansions: maxExpansions,
			MaxDepth:      maxDepth,
			Debug:         debug,
			Out:           cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().Bool("mermaid", false, "Print the plan path as a Mermaid graph")
	planCmd.Flags().Int("max-expansions", 0, "Override the scenario's expansion budget")
	planCmd.Flags().Int("max-depth", 0, "Override the scenario's maximum plan length")
}
