package bitstore

import "github.com/bits-and-blooms/bitset"

// Plain is the single-bit-per-slot encoding. Marking is irreversible: there
// is no unset operation, so filters backed by a Plain store cannot support
// deletion.
type Plain struct {
	bits *bitset.BitSet
}

// NewPlain returns a zero-filled plain store of size slots.
func NewPlain(size uint64) *Plain {
	return &Plain{bits: bitset.New(uint(size))}
}

// Mark sets the bit at pos.
func (p *Plain) Mark(pos uint64) {
	p.bits.Set(uint(pos))
}

// Adjust treats positive deltas as Mark; negative deltas are ignored.
func (p *Plain) Adjust(pos uint64, delta int) {
	if delta > 0 {
		p.bits.Set(uint(pos))
	}
}

// Test reports whether the bit at pos is set.
func (p *Plain) Test(pos uint64) bool {
	return p.bits.Test(uint(pos))
}

// Count returns 1 when the bit at pos is set, 0 otherwise.
func (p *Plain) Count(pos uint64) uint8 {
	if p.bits.Test(uint(pos)) {
		return 1
	}
	return 0
}

// Len returns the slot count fixed at construction.
func (p *Plain) Len() uint64 {
	return uint64(p.bits.Len())
}

// Counting reports false; plain slots cannot be decremented.
func (p *Plain) Counting() bool { return false }

// Snapshot returns the bitset in its binary marshaling.
func (p *Plain) Snapshot() ([]byte, error) {
	return p.bits.MarshalBinary()
}

// Restore replaces the contents from a Snapshot of an equal-length store.
func (p *Plain) Restore(data []byte) error {
	restored := &bitset.BitSet{}
	if err := restored.UnmarshalBinary(data); err != nil {
		return err
	}
	if restored.Len() != p.bits.Len() {
		return ErrSnapshotSize
	}
	p.bits = restored
	return nil
}
