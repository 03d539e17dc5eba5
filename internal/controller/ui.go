// Package controller provides output adapters for displaying mutation testing results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/wasmut/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeTest
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithTestMode sets the UI to test execution mode.
func WithTestMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeTest
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeTest}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines how workflow progress is presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayEstimation(ctx context.Context, candidates []m.Candidate, mutations []m.Mutation, err error) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int)
	DisplayUpcomingTestsInfo(ctx context.Context, i int)
	DisplayStartingTestInfo(ctx context.Context, currentMutation m.Mutation, threadID int)
	DisplayCompletedTestInfo(ctx context.Context, result m.MutantResult)
	DisplayMutationScore(ctx context.Context, score float64)
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

type functionStat struct {
	name  string
	count int
}

// buildFunctionStats counts mutations per candidate, keeping candidate order.
// Candidates without mutations are listed with zero.
func buildFunctionStats(candidates []m.Candidate, mutations []m.Mutation) []functionStat {
	counts := make(map[int]int, len(candidates))
	for _, mutation := range mutations {
		counts[mutation.FunctionIndex]++
	}

	stats := make([]functionStat, 0, len(candidates))
	for _, candidate := range candidates {
		stats = append(stats, functionStat{name: candidate.Name, count: counts[candidate.Index]})
	}

	return stats
}
