package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"gooze.dev/pkg/wasmut/internal/adapter"
	"gooze.dev/pkg/wasmut/internal/controller"
	m "gooze.dev/pkg/wasmut/internal/model"
	pkg "gooze.dev/pkg/wasmut/pkg"
)

// ErrShardMismatch is returned when shard reports to merge were produced
// from different modules.
var ErrShardMismatch = errors.New("shard reports do not belong to the same module")

// EstimateArgs selects the module and the functions to mutate.
type EstimateArgs struct {
	Module  m.Path
	Include []string
	Exclude []string
}

// TestArgs contains the arguments for running mutation tests.
type TestArgs struct {
	EstimateArgs
	Reports         m.Path
	Threads         int
	ShardIndex      int
	TotalShardCount int
	Harness         m.Harness
}

// ViewArgs locates a saved report.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs locates the shard reports to combine.
type MergeArgs struct {
	Reports m.Path
}

// Workflow drives the user-facing commands.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Test(ctx context.Context, args TestArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.ModuleFSAdapter
	adapter.ReportStore
	controller.UI
	Engine
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ModuleFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	engine Engine,
) Workflow {
	return &workflow{
		ModuleFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Engine:          engine,
	}
}

// Estimate lists the candidate functions and how many mutants each yields.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.Start(ctx, controller.WithEstimateMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	plan, planErr := w.plan(ctx, args)

	if err := w.DisplayEstimation(ctx, plan.Candidates, plan.Mutations, planErr); err != nil {
		slog.Error("Failed to display estimation", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if planErr != nil {
		return planErr
	}

	w.Wait(ctx)

	return nil
}

// Test runs the mutants of one shard and saves the shard's report.
func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	if err := w.Start(ctx, controller.WithTestMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	data, err := w.ReadModule(ctx, args.Module)
	if err != nil {
		return fmt.Errorf("read module: %w", err)
	}

	plan, err := w.Plan(ctx, data, args.Include, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.CheckBaseline(ctx, data, args.Harness); err != nil {
		return err
	}

	mutations := ShardMutations(plan.Mutations, args.ShardIndex, args.TotalShardCount)

	w.DisplayConcurrencyInfo(ctx, args.Threads, args.ShardIndex, args.TotalShardCount)
	w.DisplayUpcomingTestsInfo(ctx, len(mutations))

	results, score, err := w.evaluate(ctx, data, mutations, args)
	if err != nil {
		return err
	}

	w.DisplayMutationScore(ctx, score)

	if err := w.saveReport(ctx, args, results); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// View displays a saved report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithTestMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayConcurrencyInfo(ctx, 0, report.ShardIndex, report.ShardCount)
	w.DisplayUpcomingTestsInfo(ctx, len(report.Results))

	for _, result := range report.Results {
		w.DisplayCompletedTestInfo(ctx, result)
	}

	w.DisplayMutationScore(ctx, report.Score())
	w.Wait(ctx)

	return nil
}

// Merge combines the shard_<i> reports under args.Reports into one report.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	shards, err := w.LoadShardReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load shard reports: %w", err)
	}

	merged, err := mergeReports(shards)
	if err != nil {
		return err
	}

	if err := w.SaveReport(ctx, args.Reports, merged); err != nil {
		return fmt.Errorf("save merged report: %w", err)
	}

	slog.Info("Merged shard reports", "shards", len(shards), "results", len(merged.Results), "path", args.Reports)

	if err := w.Start(ctx, controller.WithTestMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	w.DisplayMutationScore(ctx, merged.Score())

	return nil
}

func (w *workflow) plan(ctx context.Context, args EstimateArgs) (Plan, error) {
	data, err := w.ReadModule(ctx, args.Module)
	if err != nil {
		return Plan{}, fmt.Errorf("read module: %w", err)
	}

	return w.Plan(ctx, data, args.Include, args.Exclude)
}

func (w *workflow) evaluate(ctx context.Context, data []byte, mutations []m.Mutation, args TestArgs) ([]m.MutantResult, float64, error) {
	spill, err := pkg.NewFileSpill[m.MutantResult]("")
	if err != nil {
		return nil, 0, err
	}

	defer func() {
		if err := spill.Remove(); err != nil {
			slog.Error("Failed to remove result spill", "path", spill.Path(), "error", err)
		}
	}()

	var spillErr error

	// The spill is the only store of results; Evaluate's own slice is dropped.
	_, err = w.Evaluate(ctx, data, mutations, EvaluateOptions{
		Threads: args.Threads,
		Harness: args.Harness,
		OnStart: func(mutation m.Mutation, worker int) {
			w.DisplayStartingTestInfo(ctx, mutation, worker)
		},
		OnResult: func(result m.MutantResult) {
			w.DisplayCompletedTestInfo(ctx, result)

			if err := spill.Append(result); err != nil && spillErr == nil {
				spillErr = err
			}
		},
	})
	if err != nil {
		slog.Error("Mutation testing aborted", "completed", spill.Len(), "total", len(mutations), "error", err)
		return nil, 0, fmt.Errorf("run mutation tests: %w", err)
	}

	if spillErr != nil {
		return nil, 0, fmt.Errorf("spill results: %w", spillErr)
	}

	score, err := mutationScoreFromResults(spill)
	if err != nil {
		return nil, 0, fmt.Errorf("score results: %w", err)
	}

	results, err := resultsFromSpill(spill)
	if err != nil {
		return nil, 0, fmt.Errorf("read spilled results: %w", err)
	}

	return results, score, nil
}

func (w *workflow) saveReport(ctx context.Context, args TestArgs, results []m.MutantResult) error {
	hash, err := w.HashFile(ctx, args.Module)
	if err != nil {
		return fmt.Errorf("hash module: %w", err)
	}

	shardCount := max(args.TotalShardCount, 1)

	report := m.Report{
		RunID:      uuid.NewString(),
		Module:     args.Module,
		ModuleHash: hash,
		Include:    args.Include,
		Exclude:    args.Exclude,
		ShardIndex: args.ShardIndex,
		ShardCount: shardCount,
		CreatedAt:  time.Now().UTC(),
		Results:    results,
	}

	dir := args.Reports
	if shardCount > 1 {
		dir = w.ShardDir(args.Reports, args.ShardIndex)
	}

	if err := w.SaveReport(ctx, dir, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if err := report.Errors(); err != nil {
		slog.Error("Some mutants could not be executed", "error", err)
	}

	slog.Info("Saved report", "path", dir, "results", len(results), "survivors", len(report.Survivors()))

	return nil
}

func mergeReports(shards []m.Report) (m.Report, error) {
	if len(shards) == 0 {
		return m.Report{}, adapter.ErrReportNotFound
	}

	first := shards[0]
	merged := m.Report{
		RunID:      uuid.NewString(),
		Module:     first.Module,
		ModuleHash: first.ModuleHash,
		Include:    first.Include,
		Exclude:    first.Exclude,
		ShardCount: 1,
		CreatedAt:  time.Now().UTC(),
	}

	for _, shard := range shards {
		if shard.ModuleHash != first.ModuleHash {
			return m.Report{}, fmt.Errorf("%w: %s and %s", ErrShardMismatch, first.Module, shard.Module)
		}

		merged.Results = append(merged.Results, shard.Results...)
	}

	sort.SliceStable(merged.Results, func(i, j int) bool {
		return merged.Results[i].Mutation.ID < merged.Results[j].Mutation.ID
	})

	return merged, nil
}
