// Package sizing derives Bloom filter parameters from a target capacity and
// false-positive rate.
//
// The formulas are the standard optimal ones: for n elements and a target
// false-positive probability p, the bit budget minimizing p is
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//
// and the hash-function count matching that budget is
//
//	k = round(m/n * ln(2))
//
// Both results are floored at the package minimums so that degenerate
// configurations (tiny capacities, extreme error rates) still yield a usable
// filter. Callers may bypass either derivation by pinning an explicit value
// at construction, e.g. to match an existing persisted layout.
package sizing

import "math"

const (
	// MinBits is the smallest bit-array length a filter accepts.
	MinBits = 100

	// MinHashes is the smallest usable hash-function count.
	MinHashes = 1
)

// OptimalBits returns the bit-array length for capacity elements at the
// target errorRate, floored at MinBits.
//
// The caller is responsible for ensuring capacity > 0 and errorRate in (0,1);
// configuration validation happens before sizing runs.
func OptimalBits(capacity int, errorRate float64) uint64 {
	m := math.Ceil(-float64(capacity) * math.Log(errorRate) / (math.Ln2 * math.Ln2))
	if m < MinBits {
		return MinBits
	}
	return uint64(m)
}

// OptimalHashes returns the hash-function count for a bit budget of bits and
// capacity elements, floored at MinHashes.
func OptimalHashes(bits uint64, capacity int) int {
	k := math.Round(float64(bits) / float64(capacity) * math.Ln2)
	if k < MinHashes {
		return MinHashes
	}
	return int(k)
}
