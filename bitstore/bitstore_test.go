package bitstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	t.Run("MarkAndTest", func(t *testing.T) {
		s := NewPlain(128)
		require.Equal(t, uint64(128), s.Len())
		require.False(t, s.Counting())

		require.False(t, s.Test(7))
		s.Mark(7)
		require.True(t, s.Test(7))
		require.Equal(t, uint8(1), s.Count(7))
		require.Equal(t, uint8(0), s.Count(8))
	})

	t.Run("MarkIsIrreversible", func(t *testing.T) {
		s := NewPlain(128)
		s.Mark(3)
		s.Adjust(3, -1)
		assert.True(t, s.Test(3), "negative adjust must not clear a bit")
	})

	t.Run("SnapshotRoundTrip", func(t *testing.T) {
		s := NewPlain(128)
		s.Mark(0)
		s.Mark(64)
		s.Mark(127)

		raw, err := s.Snapshot()
		require.NoError(t, err)

		restored := NewPlain(128)
		require.NoError(t, restored.Restore(raw))
		assert.True(t, restored.Test(0))
		assert.True(t, restored.Test(64))
		assert.True(t, restored.Test(127))
		assert.False(t, restored.Test(1))
	})

	t.Run("RestoreLengthMismatch", func(t *testing.T) {
		s := NewPlain(128)
		raw, err := s.Snapshot()
		require.NoError(t, err)

		other := NewPlain(256)
		require.ErrorIs(t, other.Restore(raw), ErrSnapshotSize)
	})
}

func TestCounting(t *testing.T) {
	t.Run("AdjustAndCount", func(t *testing.T) {
		s := NewCounting(100)
		require.Equal(t, uint64(100), s.Len())
		require.True(t, s.Counting())

		require.False(t, s.Test(5))
		s.Mark(5)
		require.True(t, s.Test(5))
		require.Equal(t, uint8(1), s.Count(5))

		s.Adjust(5, 3)
		require.Equal(t, uint8(4), s.Count(5))

		s.Adjust(5, -4)
		require.False(t, s.Test(5))
	})

	t.Run("SaturatesAtMaxCount", func(t *testing.T) {
		s := NewCounting(10)
		for i := 0; i < MaxCount+10; i++ {
			s.Mark(0)
		}
		require.Equal(t, uint8(MaxCount), s.Count(0))

		// Saturated increments are silent no-ops, not errors.
		s.Adjust(0, 5)
		assert.Equal(t, uint8(MaxCount), s.Count(0))
	})

	t.Run("ClampsAtZero", func(t *testing.T) {
		s := NewCounting(10)
		s.Adjust(1, -1)
		require.Equal(t, uint8(0), s.Count(1))

		s.Mark(1)
		s.Adjust(1, -5)
		assert.Equal(t, uint8(0), s.Count(1))
	})

	t.Run("AlphabetEncoding", func(t *testing.T) {
		s := NewCounting(3)
		s.Adjust(0, 9)
		s.Adjust(1, 10)
		s.Adjust(2, MaxCount)

		raw, err := s.Snapshot()
		require.NoError(t, err)
		// Symbols are the alphabet bytes themselves: 9 -> '9', 10 -> 'a',
		// 61 -> 'Z'.
		assert.Equal(t, []byte("9aZ"), raw)
	})

	t.Run("SnapshotRoundTrip", func(t *testing.T) {
		s := NewCounting(50)
		s.Mark(2)
		s.Mark(2)
		s.Mark(49)

		raw, err := s.Snapshot()
		require.NoError(t, err)

		restored := NewCounting(50)
		require.NoError(t, restored.Restore(raw))
		assert.Equal(t, uint8(2), restored.Count(2))
		assert.Equal(t, uint8(1), restored.Count(49))
	})

	t.Run("RestoreRejectsBadInput", func(t *testing.T) {
		s := NewCounting(4)

		require.ErrorIs(t, s.Restore([]byte("000")), ErrSnapshotSize)
		require.ErrorIs(t, s.Restore([]byte("00!0")), ErrBadSymbol)

		// A failed restore leaves the store untouched.
		for pos := uint64(0); pos < 4; pos++ {
			assert.False(t, s.Test(pos))
		}
	})
}

func TestNew(t *testing.T) {
	require.IsType(t, &Plain{}, New(100, false))
	require.IsType(t, &Counting{}, New(100, true))
}
