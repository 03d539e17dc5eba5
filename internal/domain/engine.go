package domain

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/wasmut/internal/adapter"
	m "gooze.dev/pkg/wasmut/internal/model"
)

// Plan is the set of mutations derived from a module before any of them runs.
type Plan struct {
	Module     *m.Module
	Candidates []m.Candidate
	Mutations  []m.Mutation
}

// EvaluateOptions controls a batch evaluation. The hooks are called from
// worker goroutines but never concurrently with each other.
type EvaluateOptions struct {
	// Threads bounds the number of mutants evaluated at once; zero means
	// one per CPU.
	Threads  int
	Harness  m.Harness
	OnStart  func(mutation m.Mutation, worker int)
	OnResult func(result m.MutantResult)
}

// Engine finds the mutants a module's embedded tests fail to detect.
type Engine interface {
	FindSurvivingMutants(ctx context.Context, original []byte, include, exclude []string) (m.SurvivorReport, error)
	Plan(ctx context.Context, original []byte, include, exclude []string) (Plan, error)
	CheckBaseline(ctx context.Context, original []byte, harness m.Harness) error
	Evaluate(ctx context.Context, original []byte, mutations []m.Mutation, opts EvaluateOptions) ([]m.MutantResult, error)
}

type engine struct {
	adapter.ModuleCodec
	Selector
	Mutagen
	Orchestrator
}

// NewEngine wires the pipeline stages into an Engine.
func NewEngine(codec adapter.ModuleCodec, selector Selector, mutagen Mutagen, orchestrator Orchestrator) Engine {
	return &engine{
		ModuleCodec:  codec,
		Selector:     selector,
		Mutagen:      mutagen,
		Orchestrator: orchestrator,
	}
}

// FindSurvivingMutants runs the whole pipeline with the default harness and
// returns the survivors in generation order. Mutants that could not be
// executed are listed separately; they never abort the run.
func (e *engine) FindSurvivingMutants(ctx context.Context, original []byte, include, exclude []string) (m.SurvivorReport, error) {
	plan, err := e.Plan(ctx, original, include, exclude)
	if err != nil {
		return m.SurvivorReport{}, err
	}

	harness := m.Harness{}.Normalized()

	if err := e.CheckBaseline(ctx, original, harness); err != nil {
		return m.SurvivorReport{}, err
	}

	results, err := e.Evaluate(ctx, original, plan.Mutations, EvaluateOptions{Harness: harness})
	if err != nil {
		return m.SurvivorReport{}, err
	}

	report := m.SurvivorReport{}

	for _, result := range results {
		switch result.Status {
		case m.Survived:
			report.Survivors = append(report.Survivors, m.SurvivingMutant{
				Mutator:          result.Mutation.Mutator.Describe(),
				FunctionIndex:    result.Mutation.FunctionIndex,
				InstructionIndex: result.Mutation.InstructionIndex,
			})
		case m.Error:
			report.Errors = append(report.Errors, result)
		case m.Killed, m.Timeout:
		}
	}

	if err := report.Err(); err != nil {
		slog.Error("Some mutants could not be executed", "count", len(report.Errors), "error", err)
	}

	return report, nil
}

// Plan decodes the module, selects candidate functions and enumerates their
// mutations. Decode failures are reported as ErrBaselineInvalid.
func (e *engine) Plan(ctx context.Context, original []byte, include, exclude []string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}

	module, err := e.Decode(original)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrBaselineInvalid, err)
	}

	candidates, err := e.SelectCandidates(module, include, exclude)
	if err != nil {
		return Plan{}, err
	}

	mutations := e.GenerateMutations(module, candidates)

	slog.Info("Planned mutations", "candidates", len(candidates), "mutations", len(mutations))

	return Plan{Module: module, Candidates: candidates, Mutations: mutations}, nil
}

// CheckBaseline requires the unmutated module to pass its harness.
func (e *engine) CheckBaseline(ctx context.Context, original []byte, harness m.Harness) error {
	if err := e.TestBaseline(ctx, original, harness); err != nil {
		slog.Error("Baseline check failed", "error", err)
		return err
	}

	return nil
}

// Evaluate tests every mutation on a bounded worker pool. Results are
// returned in the order of mutations regardless of completion order. The
// first fatal error cancels the remaining work.
func (e *engine) Evaluate(ctx context.Context, original []byte, mutations []m.Mutation, opts EvaluateOptions) ([]m.MutantResult, error) {
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make([]m.MutantResult, len(mutations))

	workers := make(chan int, threads)
	for worker := range threads {
		workers <- worker
	}

	var hooks sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, mutation := range mutations {
		group.Go(func() error {
			worker := <-workers
			defer func() { workers <- worker }()

			if opts.OnStart != nil {
				hooks.Lock()
				opts.OnStart(mutation, worker)
				hooks.Unlock()
			}

			result, err := e.TestMutation(groupCtx, original, mutation, opts.Harness)
			if err != nil {
				return fmt.Errorf("mutation %d: %w", mutation.ID, err)
			}

			results[i] = result

			if opts.OnResult != nil {
				hooks.Lock()
				opts.OnResult(result)
				hooks.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
