package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default wasmut.yaml configuration file",
		Long: `Create a wasmut.yaml in the current working directory holding the
current defaults (scope prefixes, worker count, mutation timeout, oracle
entry point and logging) so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s; set %s before running \"wasmut run\"\n", targetPath, includeConfigKey)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
