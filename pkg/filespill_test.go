package pkg

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file under dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Remove()

		require.Contains(t, spill.Path(), dir)
	})

	t.Run("Append and Get", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.NoError(t, spill.Append("first"))
		require.NoError(t, spill.Append("second"))

		val, err := spill.Get(0)
		require.NoError(t, err)
		require.Equal(t, "first", val)

		val, err = spill.Get(1)
		require.NoError(t, err)
		require.Equal(t, "second", val)

		val, err = spill.Get(3)
		require.Error(t, err)
		require.Equal(t, "", val)
	})

	t.Run("Len counts appended items", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.Equal(t, uint64(0), spill.Len())
		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))
		require.Equal(t, uint64(3), spill.Len())
	})

	t.Run("Range iterates in order", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		expected := []int{100, 200, 300}
		require.NoError(t, spill.AppendBatch(expected))

		var collected []int
		err = spill.Range(func(_ uint64, item int) error {
			collected = append(collected, item)
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, expected, collected)
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.NoError(t, spill.AppendBatch([]int{1, 2, 3}))

		count := 0
		rangeErr := spill.Range(func(index uint64, _ int) error {
			count++
			if index == 1 {
				return errors.New("stop at index 1")
			}

			return nil
		})

		require.Error(t, rangeErr)
		require.Equal(t, 2, count)
	})

	t.Run("Collect returns structs after Close", func(t *testing.T) {
		type point struct {
			X, Y int
			Tag  string
		}

		spill, err := NewFileSpill[point](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.NoError(t, spill.Append(point{X: 1, Y: 2, Tag: "a"}))
		require.NoError(t, spill.Append(point{X: 3, Y: 4}))
		require.NoError(t, spill.Close())

		items, err := spill.Collect()
		require.NoError(t, err)
		require.Equal(t, []point{{X: 1, Y: 2, Tag: "a"}, {X: 3, Y: 4}}, items)

		require.Error(t, spill.Append(point{}))
	})

	t.Run("Remove deletes backing file", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		path := spill.Path()
		require.NoError(t, spill.Remove())

		_, statErr := os.Stat(path)
		require.True(t, os.IsNotExist(statErr))
	})
}
