package main

import (
	"github.com/aretw0/furrow/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [scenario]",
	Short: "Evaluate the initial state of a scenario",
	Long: `Runs every core operation once on the initial state: heuristic, cost, goal test,
candidate and valid actions, and the expansion of the root node.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		mermaid, _ := cmd.Flags().GetBool("mermaid")

		return cli.RunInspect(cli.InspectOptions{
			ScenarioPath: scenarioArg(args),
			JSON:         jsonMode,
			Mermaid:      mermaid,
			Debug:        debug,
			Out:          cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("json", false, "Print the report as JSON")
	inspectCmd.Flags().Bool("mermaid", false, "Print the root expansion as a Mermaid graph")
}
