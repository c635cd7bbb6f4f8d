package bitstore

// Alphabet is the ordered counter alphabet: the byte at index i encodes
// count i, giving each slot a range of 0..MaxCount. The encoding doubles as
// the persisted form, so the alphabet is fixed for the life of the snapshot
// format.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxCount is the largest value a counting slot can hold before it
// saturates.
const MaxCount = len(Alphabet) - 1

// symbolCount maps an alphabet byte back to its count, -1 for bytes outside
// the alphabet. Direct indexing keeps decode O(1).
var symbolCount [256]int8

func init() {
	for i := range symbolCount {
		symbolCount[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		symbolCount[Alphabet[i]] = int8(i)
	}
}

// Counting is the saturating-counter-per-slot encoding. Counters clamp to
// [0, MaxCount]: incrementing a saturated slot is a no-op and decrementing
// an empty slot stays at zero rather than wrapping, which protects the
// array from corruption when a decrement arrives for a slot that was never
// incremented.
type Counting struct {
	slots []byte
}

// NewCounting returns a counting store of size slots, all at count zero.
func NewCounting(size uint64) *Counting {
	slots := make([]byte, size)
	for i := range slots {
		slots[i] = Alphabet[0]
	}
	return &Counting{slots: slots}
}

// Mark increments the counter at pos, saturating at MaxCount.
func (c *Counting) Mark(pos uint64) {
	c.Adjust(pos, 1)
}

// Adjust moves the counter at pos by delta, clamped to [0, MaxCount].
func (c *Counting) Adjust(pos uint64, delta int) {
	n := int(symbolCount[c.slots[pos]]) + delta
	if n < 0 {
		n = 0
	} else if n > MaxCount {
		n = MaxCount
	}
	c.slots[pos] = Alphabet[n]
}

// Test reports whether the counter at pos is above zero.
func (c *Counting) Test(pos uint64) bool {
	return c.slots[pos] != Alphabet[0]
}

// Count returns the decoded counter value at pos.
func (c *Counting) Count(pos uint64) uint8 {
	return uint8(symbolCount[c.slots[pos]])
}

// Len returns the slot count fixed at construction.
func (c *Counting) Len() uint64 {
	return uint64(len(c.slots))
}

// Counting reports true.
func (c *Counting) Counting() bool { return true }

// Snapshot returns a copy of the symbol array.
func (c *Counting) Snapshot() ([]byte, error) {
	out := make([]byte, len(c.slots))
	copy(out, c.slots)
	return out, nil
}

// Restore replaces the contents from a Snapshot of an equal-length store.
// Every byte is validated against the alphabet before any slot changes.
func (c *Counting) Restore(data []byte) error {
	if len(data) != len(c.slots) {
		return ErrSnapshotSize
	}
	for _, b := range data {
		if symbolCount[b] < 0 {
			return ErrBadSymbol
		}
	}
	copy(c.slots, data)
	return nil
}
