package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/wasmut/internal/adapter"
	adaptermocks "gooze.dev/pkg/wasmut/internal/adapter/mocks"
	"gooze.dev/pkg/wasmut/internal/domain"
	"gooze.dev/pkg/wasmut/internal/domain/mutagens"
	m "gooze.dev/pkg/wasmut/internal/model"
	"gooze.dev/pkg/wasmut/internal/wasmtest"
)

var (
	isBigBoundary = m.Mutation{
		ID:               0,
		Mutator:          mutagens.Swap(m.OpI32GeS, m.OpI32GtS),
		FunctionIndex:    0,
		InstructionIndex: 2,
		FunctionName:     "lib::is_big",
	}
	addToSub = m.Mutation{
		ID:               1,
		Mutator:          mutagens.Swap(m.OpI32Add, m.OpI32Sub),
		FunctionIndex:    1,
		InstructionIndex: 2,
		FunctionName:     "lib::add",
	}
)

func newWazeroOrchestrator() domain.Orchestrator {
	codec := adapter.NewWasmCodecAdapter()
	return domain.NewOrchestrator(codec, adapter.NewWazeroOracle(adapter.OracleOptions{}))
}

func TestOrchestrator_TestMutation(t *testing.T) {
	ctx := context.Background()
	orchestrator := newWazeroOrchestrator()

	t.Run("survivor carries a diff", func(t *testing.T) {
		result, err := orchestrator.TestMutation(ctx, wasmtest.Harness(), isBigBoundary, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Survived, result.Status)
		assert.Equal(t, isBigBoundary, result.Mutation)
		assert.Contains(t, result.Diff, "-  i32.ge_s")
		assert.Contains(t, result.Diff, "+  i32.gt_s")
		assert.Contains(t, result.Diff, "lib::is_big (mutated)")
		assert.Empty(t, result.Error)
	})

	t.Run("killed", func(t *testing.T) {
		result, err := orchestrator.TestMutation(ctx, wasmtest.Harness(), addToSub, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Killed, result.Status)
		assert.Empty(t, result.Diff)
	})

	t.Run("runaway mutant times out", func(t *testing.T) {
		mutation := m.Mutation{Mutator: mutagens.ConditionToFalse(), FunctionIndex: 0, InstructionIndex: 4}

		result, err := orchestrator.TestMutation(ctx, wasmtest.Countdown(), mutation, m.Harness{Timeout: 200 * time.Millisecond})
		require.NoError(t, err)

		assert.Equal(t, m.Timeout, result.Status)
	})

	t.Run("mutation that does not fit the body is fatal", func(t *testing.T) {
		mutation := addToSub
		mutation.FunctionIndex = 0

		_, err := orchestrator.TestMutation(ctx, wasmtest.Harness(), mutation, m.Harness{})
		assert.ErrorIs(t, err, mutagens.ErrInstructionMismatch)
	})

	t.Run("function outside the code section is fatal", func(t *testing.T) {
		mutation := addToSub
		mutation.FunctionIndex = 42

		_, err := orchestrator.TestMutation(ctx, wasmtest.Harness(), mutation, m.Harness{})
		assert.ErrorIs(t, err, mutagens.ErrInstructionIndexOutOfRange)
	})

	t.Run("undecodable original is fatal", func(t *testing.T) {
		_, err := orchestrator.TestMutation(ctx, []byte("not wasm"), addToSub, m.Harness{})
		assert.ErrorIs(t, err, adapter.ErrInvalidModule)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := orchestrator.TestMutation(cancelled, wasmtest.Harness(), addToSub, m.Harness{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrchestrator_TestMutation_RecoverableErrors(t *testing.T) {
	ctx := context.Background()
	codec := adapter.NewWasmCodecAdapter()

	t.Run("encode failure", func(t *testing.T) {
		mockCodec := adaptermocks.NewMockModuleCodec(t)
		mockOracle := adaptermocks.NewMockOracle(t)

		module, err := codec.Decode(wasmtest.Harness())
		require.NoError(t, err)

		mockCodec.EXPECT().Decode(mock.Anything).Return(module, nil).Once()
		mockCodec.EXPECT().Encode(module).Return(nil, errors.New("section too large")).Once()

		result, err := domain.NewOrchestrator(mockCodec, mockOracle).TestMutation(ctx, wasmtest.Harness(), addToSub, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Error, result.Status)
		assert.Contains(t, result.Error, "section too large")
		assert.Error(t, result.Err())
	})

	t.Run("oracle failure", func(t *testing.T) {
		mockOracle := adaptermocks.NewMockOracle(t)
		mockOracle.EXPECT().
			Run(mock.Anything, mock.Anything, mock.Anything).
			Return(m.Failed, adapter.ErrOracleSetup).
			Once()

		result, err := domain.NewOrchestrator(codec, mockOracle).TestMutation(ctx, wasmtest.Harness(), addToSub, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Error, result.Status)
		assert.Equal(t, adapter.ErrOracleSetup.Error(), result.Error)
	})

	t.Run("oracle deadline", func(t *testing.T) {
		mockOracle := adaptermocks.NewMockOracle(t)
		mockOracle.EXPECT().
			Run(mock.Anything, mock.Anything, mock.Anything).
			Return(m.Failed, context.DeadlineExceeded).
			Once()

		result, err := domain.NewOrchestrator(codec, mockOracle).TestMutation(ctx, wasmtest.Harness(), addToSub, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Timeout, result.Status)
	})

	t.Run("harness is normalized before reaching the oracle", func(t *testing.T) {
		mockOracle := adaptermocks.NewMockOracle(t)
		mockOracle.EXPECT().
			Run(mock.Anything, mock.Anything, m.Harness{Entry: m.DefaultEntry, Timeout: m.DefaultMutationTimeout}).
			Return(m.Failed, nil).
			Once()

		result, err := domain.NewOrchestrator(codec, mockOracle).TestMutation(ctx, wasmtest.Harness(), addToSub, m.Harness{})
		require.NoError(t, err)

		assert.Equal(t, m.Killed, result.Status)
	})
}

func TestOrchestrator_MutantIsDerivedFromFreshCopy(t *testing.T) {
	ctx := context.Background()
	codec := adapter.NewWasmCodecAdapter()
	original := wasmtest.Countdown()

	var submitted [][]byte

	mockOracle := adaptermocks.NewMockOracle(t)
	mockOracle.EXPECT().
		Run(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, wasm []byte, _ m.Harness) (m.Verdict, error) {
			submitted = append(submitted, wasm)
			return m.Failed, nil
		}).
		Times(2)

	orchestrator := domain.NewOrchestrator(codec, mockOracle)

	store := m.Mutation{Mutator: mutagens.SetCancelling(), FunctionIndex: 0, InstructionIndex: 8}
	branch := m.Mutation{Mutator: mutagens.ConditionToFalse(), FunctionIndex: 0, InstructionIndex: 4}

	for _, mutation := range []m.Mutation{store, branch} {
		_, err := orchestrator.TestMutation(ctx, original, mutation, m.Harness{})
		require.NoError(t, err)
	}

	require.Len(t, submitted, 2)

	second, err := codec.Decode(submitted[1])
	require.NoError(t, err)

	body := second.Functions[0].Body.Instructions
	assert.Equal(t, m.Drop(), body[4])
	assert.Equal(t, m.LocalSet(0), body[8])
}

func TestOrchestrator_TestBaseline(t *testing.T) {
	ctx := context.Background()
	orchestrator := newWazeroOrchestrator()

	require.NoError(t, orchestrator.TestBaseline(ctx, wasmtest.Harness(), m.Harness{}))

	err := orchestrator.TestBaseline(ctx, wasmtest.Failing(), m.Harness{})
	require.ErrorIs(t, err, domain.ErrBaselineInvalid)
	require.ErrorIs(t, err, domain.ErrBaselineFailing)

	err = orchestrator.TestBaseline(ctx, wasmtest.Harness(), m.Harness{Entry: "missing"})
	require.ErrorIs(t, err, domain.ErrBaselineFailing)
	require.ErrorIs(t, err, adapter.ErrEntryNotFound)
}
