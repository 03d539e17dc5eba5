package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/wasmut/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayEstimation prints the mutations per candidate function, or the error.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, candidates []m.Candidate, mutations []m.Mutation, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("estimation error: %v\n", err)
		return nil
	}

	stats := buildFunctionStats(candidates, mutations)
	s.printf("\n%s", renderEstimationTable(stats, len(mutations)))

	return nil
}

func renderEstimationTable(stats []functionStat, totalMutations int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, stat := range stats {
		table.Append([]string{stat.name, fmt.Sprintf("%d", stat.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Functions %d", len(stats)),
		fmt.Sprintf("%d", totalMutations),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	if threads > 0 {
		s.printf("Running with %d worker(s) (Shard %d/%d)\n", threads, shardIndex, max(shardCount, 1))
		return
	}

	s.printf("Shard %d/%d\n", shardIndex, max(shardCount, 1))
}

// DisplayUpcomingTestsInfo shows the number of upcoming mutations to be tested.
func (s *SimpleUI) DisplayUpcomingTestsInfo(ctx context.Context, i int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Upcoming mutations: %d\n", i)
}

// DisplayStartingTestInfo shows info about the mutation test starting.
func (s *SimpleUI) DisplayStartingTestInfo(ctx context.Context, currentMutation m.Mutation, threadID int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d] Starting mutation %d (%s) %s\n",
		threadID, currentMutation.ID, currentMutation.Mutator.Describe(), location(currentMutation))
}

// DisplayCompletedTestInfo shows the outcome of one mutant. Survivors are
// followed by the diff of the mutated function.
func (s *SimpleUI) DisplayCompletedTestInfo(ctx context.Context, result m.MutantResult) {
	if ctx.Err() != nil {
		return
	}

	mutation := result.Mutation
	s.printf("Completed mutation %d (%s) %s -> %s\n",
		mutation.ID, mutation.Mutator.Describe(), location(mutation), result.Status)

	switch result.Status {
	case m.Survived:
		if result.Diff != "" {
			s.printf("%s\n", strings.TrimRight(result.Diff, "\n"))
		}
	case m.Error:
		s.printf("error: %s\n", result.Error)
	case m.Killed, m.Timeout:
	}
}

// DisplayMutationScore prints the final mutation score.
func (s *SimpleUI) DisplayMutationScore(ctx context.Context, score float64) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Mutation score: %.2f%%\n", score*100)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func location(mutation m.Mutation) string {
	name := mutation.FunctionName
	if name == "" {
		name = fmt.Sprintf("func[%d]", mutation.FunctionIndex)
	}

	return fmt.Sprintf("%s@%d", name, mutation.InstructionIndex)
}
