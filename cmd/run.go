package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/wasmut/internal/domain"
	m "gooze.dev/pkg/wasmut/internal/model"
)

// errNoInclude is returned when run is invoked without any include prefix.
var errNoInclude = errors.New("at least one --include prefix is required")

var runParallelFlag int
var runShardFlag string
var runMutationTimeoutFlag time.Duration
var runEntryFlag string
var runWASIFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <module.wasm>",
		Short: "Run mutation testing",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := scopeArgs(args[0])
			if len(scope.Include) == 0 {
				return errNoInclude
			}

			shardIndex, totalShards := parseShardFlag(runShardFlag)

			threads := viper.GetInt(runParallelConfigKey)
			if threads <= 0 {
				threads = runtime.NumCPU()
			}

			return workflow.Test(cmd.Context(), domain.TestArgs{
				EstimateArgs:    scope,
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         threads,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				Harness: m.Harness{
					Entry:   viper.GetString(entryConfigKey),
					WASI:    viper.GetBool(wasiConfigKey),
					Timeout: viper.GetDuration(mutationTimeoutKey),
				},
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of parallel workers for mutation testing (0 uses every CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&runShardFlag, runShardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	cmd.Flags().DurationVar(&runMutationTimeoutFlag, mutationTimeoutFlagName, m.DefaultMutationTimeout, "time limit for a single harness run")
	bindFlagToConfig(cmd.Flags().Lookup(mutationTimeoutFlagName), mutationTimeoutKey)

	cmd.Flags().StringVar(&runEntryFlag, entryFlagName, m.DefaultEntry, "exported function that runs the module's tests")
	bindFlagToConfig(cmd.Flags().Lookup(entryFlagName), entryConfigKey)

	cmd.Flags().BoolVar(&runWASIFlag, wasiFlagName, defaultWASI, "provide WASI preview1 host functions to the module")
	bindFlagToConfig(cmd.Flags().Lookup(wasiFlagName), wasiConfigKey)
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
