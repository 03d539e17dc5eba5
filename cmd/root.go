// Package cmd provides the root command and CLI setup for wasmut.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/wasmut/internal/adapter"
	"gooze.dev/pkg/wasmut/internal/controller"
	"gooze.dev/pkg/wasmut/internal/domain"
	m "gooze.dev/pkg/wasmut/internal/model"
)

var moduleFSAdapter adapter.ModuleFSAdapter
var reportStore adapter.ReportStore
var codec adapter.ModuleCodec
var oracle adapter.Oracle
var selector domain.Selector
var mutagen domain.Mutagen
var orchestrator domain.Orchestrator
var engine domain.Engine
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// includePrefixes and excludePrefixes select the functions to mutate.
var includePrefixes []string
var excludePrefixes []string

var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	moduleFSAdapter = adapter.NewLocalModuleFSAdapter()
	reportStore = adapter.NewReportStore()
	codec = adapter.NewWasmCodecAdapter()
	oracle = adapter.NewWazeroOracle(adapter.OracleOptions{})
	selector = domain.NewSelector(adapter.NewSymbolDemangler())
	mutagen = domain.NewMutagen()
	orchestrator = domain.NewOrchestrator(codec, oracle)
	engine = domain.NewEngine(codec, selector, mutagen, orchestrator)
	workflow = domain.NewWorkflow(
		moduleFSAdapter,
		reportStore,
		ui,
		engine,
	)
}

const scopeHelp = `Functions are selected by name prefix after demangling:
  -i lib::            mutate every function whose name starts with lib::
  -i lib:: -x lib::fmt  ...except those starting with lib::fmt
The module must carry a name section and export its test entry point.`

const rootLongDescription = `Wasmut is a mutation testing tool for WebAssembly modules. It rewrites
single instructions of the selected functions (comparisons, arithmetic,
stores, conditional branches) and re-runs the test harness embedded in the
module to find mutants the harness does not detect.

` + scopeHelp

const runLongDescription = `Run mutation testing for the given module.

` + scopeHelp

const listLongDescription = `List candidate functions and the number of applicable mutations.

` + scopeHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wasmut",
		Short: "WebAssembly mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&includePrefixes, includeFlagName, "i", nil, "mutate functions whose name starts with prefix (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(includeFlagName), includeConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePrefixes, excludeFlagName, "x", nil, "skip functions whose name starts with prefix (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// The first interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func scopeArgs(module string) domain.EstimateArgs {
	return domain.EstimateArgs{
		Module:  m.Path(module),
		Include: viper.GetStringSlice(includeConfigKey),
		Exclude: viper.GetStringSlice(excludeConfigKey),
	}
}
