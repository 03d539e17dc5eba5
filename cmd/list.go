package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <module.wasm>",
		Short: "List candidate functions and mutation counts",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Estimate(cmd.Context(), scopeArgs(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
