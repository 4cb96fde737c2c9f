package pkg

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type transcriptLine struct {
	Stage string
	Text  string
}

func TestSpill(t *testing.T) {
	t.Run("NewSpill uses the given directory", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewSpill[int](dir)
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), dir)
	})

	t.Run("Append and Range preserve order", func(t *testing.T) {
		spill, err := NewSpill[transcriptLine](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		require.NoError(t, spill.Append(transcriptLine{Stage: "Merge", Text: "first"}))
		require.NoError(t, spill.Append(transcriptLine{Stage: "Merge", Text: "second"}))
		require.NoError(t, spill.Append(transcriptLine{Stage: "Scan", Text: "third"}))
		require.Equal(t, uint64(3), spill.Len())

		var texts []string
		err = spill.Range(func(index uint64, item transcriptLine) error {
			require.Equal(t, uint64(len(texts)), index)
			texts = append(texts, item.Text)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"first", "second", "third"}, texts)
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		spill, err := NewSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		for i := 0; i < 5; i++ {
			require.NoError(t, spill.Append(i))
		}

		stop := errors.New("stop")
		seen := 0
		err = spill.Range(func(_ uint64, item int) error {
			seen++
			if item == 2 {
				return stop
			}
			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, seen)
	})

	t.Run("Range on empty spill", func(t *testing.T) {
		spill, err := NewSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		called := false
		require.NoError(t, spill.Range(func(uint64, int) error {
			called = true
			return nil
		}))
		require.False(t, called)
	})

	t.Run("Close removes the backing file", func(t *testing.T) {
		spill, err := NewSpill[int](t.TempDir())
		require.NoError(t, err)
		require.NoError(t, spill.Append(1))

		require.NoError(t, spill.Close())
		_, statErr := os.Stat(spill.Path())
		require.True(t, os.IsNotExist(statErr))

		require.Error(t, spill.Append(2))
		require.NoError(t, spill.Close())
	})
}
