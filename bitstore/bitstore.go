// Package bitstore implements the slot-array encodings backing a filter.
//
// A store is allocated zero-filled at a fixed length and mutated in place;
// the length never changes afterwards. Two encodings exist: a plain bit per
// slot (set once, never cleared) and a saturating counter per slot encoded
// as one symbol of a fixed 62-symbol alphabet, which is what makes deletion
// possible. Saturation and underflow clamping are intentional lossy
// behaviors of the counting encoding, not errors.
//
// Stores are not safe for concurrent mutation; exclusive ownership by a
// single filter is assumed.
package bitstore

import "errors"

var (
	// ErrSnapshotSize is returned when restored contents do not match the
	// store's construction length.
	ErrSnapshotSize = errors.New("bitstore: snapshot length mismatch")

	// ErrBadSymbol is returned when restored counting contents hold a byte
	// outside the counter alphabet.
	ErrBadSymbol = errors.New("bitstore: invalid counter symbol")
)

// Store is the mutable slot array owned by a filter.
type Store interface {
	// Mark sets the slot at pos: plain stores flip the bit to 1, counting
	// stores increment by one, saturating.
	Mark(pos uint64)

	// Adjust moves the slot count at pos by delta, clamped to the
	// representable range. Plain stores treat positive deltas as Mark and
	// ignore negative ones (bits are irreversible).
	Adjust(pos uint64, delta int)

	// Test reports whether the slot at pos is set (count > 0).
	Test(pos uint64) bool

	// Count returns the decoded slot value; plain stores report 0 or 1.
	Count(pos uint64) uint8

	// Len returns the slot count fixed at construction.
	Len() uint64

	// Counting reports whether the store supports decrements.
	Counting() bool

	// Snapshot returns the store contents in its persistable form.
	Snapshot() ([]byte, error)

	// Restore replaces the contents from a Snapshot of an equal-length
	// store of the same encoding. It validates fully before mutating.
	Restore(data []byte) error
}

// New returns a zero-filled store of the requested encoding.
func New(size uint64, counting bool) Store {
	if counting {
		return NewCounting(size)
	}
	return NewPlain(size)
}
