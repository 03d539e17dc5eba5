package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	m "gooze.dev/pkg/wasmut/internal/model"
)

var (
	// ErrOracleSetup is returned when a module cannot be compiled or instantiated.
	ErrOracleSetup = errors.New("oracle setup failed")
	// ErrEntryNotFound is returned when the module does not export the entry function.
	ErrEntryNotFound = errors.New("entry function not exported")
)

// Oracle executes a module's embedded test harness and classifies the run.
// A non-nil error means the module could not be executed at all; a deadline
// on ctx is reported as ctx.Err().
type Oracle interface {
	Run(ctx context.Context, wasm []byte, harness m.Harness) (m.Verdict, error)
}

// OracleOptions configures a WazeroOracle.
type OracleOptions struct {
	// Stdout and Stderr receive the module's WASI output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// WazeroOracle runs modules in a fresh wazero runtime per call.
type WazeroOracle struct {
	opts OracleOptions
}

// NewWazeroOracle constructs a WazeroOracle.
func NewWazeroOracle(opts OracleOptions) *WazeroOracle {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}

	return &WazeroOracle{opts: opts}
}

// Run compiles wasm, calls the harness entry export with zero for every
// parameter and returns Passed if it returns normally or exits with code 0.
// The harness timeout is not applied here; callers bound ctx.
func (o *WazeroOracle) Run(ctx context.Context, wasm []byte, harness m.Harness) (m.Verdict, error) {
	harness = harness.Normalized()

	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))

	defer func() {
		if err := runtime.Close(context.WithoutCancel(ctx)); err != nil {
			slog.Debug("Failed to close wazero runtime", "error", err)
		}
	}()

	if harness.WASI {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
			return m.Failed, fmt.Errorf("%w: wasi: %w", ErrOracleSetup, err)
		}
	}

	compiled, err := runtime.CompileModule(ctx, wasm)
	if err != nil {
		return m.Failed, fmt.Errorf("%w: compile: %w", ErrOracleSetup, err)
	}

	config := wazero.NewModuleConfig().
		WithStartFunctions().
		WithStdout(o.opts.Stdout).
		WithStderr(o.opts.Stderr)

	module, err := runtime.InstantiateModule(ctx, compiled, config)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.Failed, ctxErr
		}

		return m.Failed, fmt.Errorf("%w: instantiate: %w", ErrOracleSetup, err)
	}

	entry := module.ExportedFunction(harness.Entry)
	if entry == nil {
		return m.Failed, fmt.Errorf("%w: %q", ErrEntryNotFound, harness.Entry)
	}

	params := make([]uint64, len(entry.Definition().ParamTypes()))

	_, err = entry.Call(ctx, params...)

	return classify(ctx, err)
}

func classify(ctx context.Context, err error) (m.Verdict, error) {
	if err == nil {
		return m.Passed, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return m.Failed, ctxErr
	}

	var exitErr *sys.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() == 0 {
			return m.Passed, nil
		}

		slog.Debug("Harness exited", "code", exitErr.ExitCode())

		return m.Failed, nil
	}

	slog.Debug("Harness trapped", "error", err)

	return m.Failed, nil
}
