package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gooze.dev/pkg/wasmut/internal/adapter"
	"gooze.dev/pkg/wasmut/internal/domain/mutagens"
	m "gooze.dev/pkg/wasmut/internal/model"
)

// Orchestrator applies a single mutation to a fresh copy of the module and
// asks the oracle whether the embedded harness notices it.
type Orchestrator interface {
	TestMutation(ctx context.Context, original []byte, mutation m.Mutation, harness m.Harness) (m.MutantResult, error)
	TestBaseline(ctx context.Context, original []byte, harness m.Harness) error
}

type orchestrator struct {
	adapter.ModuleCodec
	adapter.Oracle
}

// NewOrchestrator constructs an Orchestrator backed by the provided codec
// and execution oracle.
func NewOrchestrator(codec adapter.ModuleCodec, oracle adapter.Oracle) Orchestrator {
	return &orchestrator{
		ModuleCodec: codec,
		Oracle:      oracle,
	}
}

// TestMutation returns an error only for conditions that invalidate the
// whole run: the original no longer decodes, the mutation does not fit the
// body, or ctx was cancelled. Encode and oracle failures become an Error
// result for this mutation alone.
func (o *orchestrator) TestMutation(ctx context.Context, original []byte, mutation m.Mutation, harness m.Harness) (m.MutantResult, error) {
	if err := ctx.Err(); err != nil {
		return m.MutantResult{}, err
	}

	harness = harness.Normalized()
	started := time.Now()

	module, err := o.Decode(original)
	if err != nil {
		return m.MutantResult{}, fmt.Errorf("decode module: %w", err)
	}

	fn, ok := module.Function(mutation.FunctionIndex)
	if !ok {
		return m.MutantResult{}, fmt.Errorf("%w: function %d", mutagens.ErrInstructionIndexOutOfRange, mutation.FunctionIndex)
	}

	before := fn.Body.Clone()

	if err := mutagens.Apply(mutation.Mutator, &fn.Body, mutation.InstructionIndex); err != nil {
		slog.Error("Failed to apply mutation", "mutation", mutation, "error", err)
		return m.MutantResult{}, fmt.Errorf("apply %s: %w", mutation, err)
	}

	result := m.MutantResult{Mutation: mutation}

	mutated, err := o.Encode(module)
	if err != nil {
		slog.Error("Failed to encode mutant", "mutation", mutation, "error", err)

		result.Status = m.Error
		result.Error = fmt.Sprintf("encode: %v", err)
		result.Duration = time.Since(started)

		return result, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, harness.Timeout)
	defer cancel()

	verdict, err := o.Run(runCtx, mutated, harness)
	result.Duration = time.Since(started)

	switch {
	case err != nil && ctx.Err() != nil:
		return m.MutantResult{}, ctx.Err()
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		result.Status = m.Timeout
	case err != nil:
		slog.Error("Oracle failed on mutant", "mutation", mutation, "error", err)

		result.Status = m.Error
		result.Error = err.Error()
	case verdict == m.Passed:
		result.Status = m.Survived

		name := mutation.FunctionName
		if name == "" {
			name = fmt.Sprintf("func[%d]", mutation.FunctionIndex)
		}

		if result.Diff, err = diffBodies(name, before, fn.Body); err != nil {
			slog.Debug("Failed to diff mutant", "mutation", mutation, "error", err)
		}
	default:
		result.Status = m.Killed
	}

	slog.Debug("Tested mutation", "mutation", mutation, "status", result.Status, "duration", result.Duration)

	return result, nil
}

// TestBaseline runs the harness on the unmutated module.
func (o *orchestrator) TestBaseline(ctx context.Context, original []byte, harness m.Harness) error {
	harness = harness.Normalized()

	runCtx, cancel := context.WithTimeout(ctx, harness.Timeout)
	defer cancel()

	verdict, err := o.Run(runCtx, original, harness)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return fmt.Errorf("%w: %w: %w", ErrBaselineInvalid, ErrBaselineFailing, err)
	}

	if verdict != m.Passed {
		return fmt.Errorf("%w: %w", ErrBaselineInvalid, ErrBaselineFailing)
	}

	return nil
}
