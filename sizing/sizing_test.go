package sizing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalBits(t *testing.T) {
	// Textbook case: n=1000, p=0.01 => m=9586.
	require.Equal(t, uint64(9586), OptimalBits(1000, 0.01))

	// n=100, p=0.001 => m=1438 (library defaults).
	require.Equal(t, uint64(1438), OptimalBits(100, 0.001))

	// Tiny capacities floor at MinBits.
	require.Equal(t, uint64(MinBits), OptimalBits(1, 0.5))
}

func TestOptimalHashes(t *testing.T) {
	// m=9586, n=1000 => k=7.
	require.Equal(t, 7, OptimalHashes(9586, 1000))

	// m=1438, n=100 => k=10.
	require.Equal(t, 10, OptimalHashes(1438, 100))

	// Oversubscribed filters floor at MinHashes.
	require.Equal(t, MinHashes, OptimalHashes(100, 10000))
}
