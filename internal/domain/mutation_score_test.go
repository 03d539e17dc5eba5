package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/wasmut/internal/model"
	wasmutpkg "gooze.dev/pkg/wasmut/pkg"
)

type errSpill[T any] struct {
	err error
}

func (e errSpill[T]) Len() uint64                                    { return 0 }
func (e errSpill[T]) Path() string                                   { return "" }
func (e errSpill[T]) Append(_ T) error                               { return nil }
func (e errSpill[T]) AppendBatch(_ []T) error                        { return nil }
func (e errSpill[T]) Get(_ uint64) (T, error)                        { var zero T; return zero, errors.New("not implemented") }
func (e errSpill[T]) Range(_ func(index uint64, item T) error) error { return e.err }
func (e errSpill[T]) Collect() ([]T, error)                          { return nil, e.err }
func (e errSpill[T]) Close() error                                   { return nil }
func (e errSpill[T]) Remove() error                                  { return nil }

func newResultSpill(t *testing.T, statuses ...m.TestStatus) wasmutpkg.FileSpill[m.MutantResult] {
	t.Helper()

	spill, err := wasmutpkg.NewFileSpill[m.MutantResult](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = spill.Remove() })

	for i, status := range statuses {
		require.NoError(t, spill.Append(m.MutantResult{Mutation: m.Mutation{ID: uint(i)}, Status: status}))
	}

	return spill
}

func TestMutationScoreFromResults(t *testing.T) {
	spill := newResultSpill(t, m.Killed, m.Survived, m.Error, m.Killed, m.Timeout)

	score, err := mutationScoreFromResults(spill)
	require.NoError(t, err)

	require.Equal(t, 0.75, score)
}

func TestMutationScoreFromResults_EmptySpillIsOne(t *testing.T) {
	score, err := mutationScoreFromResults(newResultSpill(t))
	require.NoError(t, err)

	require.Equal(t, 1.0, score)
}

func TestMutationScoreFromResults_OnlyErrorsIsOne(t *testing.T) {
	score, err := mutationScoreFromResults(newResultSpill(t, m.Error, m.Error))
	require.NoError(t, err)

	require.Equal(t, 1.0, score)
}

func TestMutationScoreFromResults_AllSurvivedIsZero(t *testing.T) {
	score, err := mutationScoreFromResults(newResultSpill(t, m.Survived, m.Survived))
	require.NoError(t, err)

	require.Equal(t, 0.0, score)
}

func TestMutationScoreFromResults_RangeErrorPropagates(t *testing.T) {
	wantErr := errors.New("range failed")

	_, err := mutationScoreFromResults(errSpill[m.MutantResult]{err: wantErr})
	require.ErrorIs(t, err, wantErr)
}

func TestResultsFromSpill_RestoresGenerationOrder(t *testing.T) {
	spill, err := wasmutpkg.NewFileSpill[m.MutantResult](t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = spill.Remove() })

	for _, id := range []uint{2, 0, 3, 1} {
		require.NoError(t, spill.Append(m.MutantResult{Mutation: m.Mutation{ID: id}, Status: m.Killed}))
	}

	results, err := resultsFromSpill(spill)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, result := range results {
		require.Equal(t, uint(i), result.Mutation.ID)
	}
}

func TestResultsFromSpill_RangeErrorPropagates(t *testing.T) {
	wantErr := errors.New("range failed")

	_, err := resultsFromSpill(errSpill[m.MutantResult]{err: wantErr})
	require.ErrorIs(t, err, wantErr)
}
