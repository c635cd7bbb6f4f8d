// Package hasher provides the deterministic hash-function family that maps
// filter elements to slot positions.
//
// A filter's correctness argument assumes the family's members are pairwise
// independent for the same input; the family derives one distinct seed per
// member from a fixed base seed, so the same configuration always produces
// the same position set across processes and over time. There is no
// randomized seeding at runtime: reproducibility is load-bearing for
// snapshot round-trips.
package hasher

import (
	"strings"

	"github.com/spaolacci/murmur3"
)

// DefaultSeed anchors the default hash family. Changing it invalidates every
// previously persisted filter, so it is fixed for the lifetime of the
// snapshot format.
const DefaultSeed uint32 = 0x9747b28c

// seedGamma spreads derived seeds across the seed space (golden-ratio
// increment, same trick as splitmix-style generators).
const seedGamma uint32 = 0x9e3779b9

// Hash maps input bytes plus a modulus to a deterministic position in
// [0, modulus). Implementations must be side-effect free: the same data,
// seed and modulus always yield the same position.
type Hash interface {
	Sum(data []byte, modulus uint64) uint64
	Seed() uint32
}

// Murmur3 is a seeded murmur3-backed Hash.
type Murmur3 struct {
	seed uint32
}

// NewMurmur3 returns a Hash seeded with seed.
func NewMurmur3(seed uint32) Murmur3 {
	return Murmur3{seed: seed}
}

// Sum implements Hash.
func (h Murmur3) Sum(data []byte, modulus uint64) uint64 {
	return murmur3.Sum64WithSeed(data, h.seed) % modulus
}

// Seed returns the seed this instance was constructed with.
func (h Murmur3) Seed() uint32 { return h.seed }

// Family is an ordered set of independently seeded hash functions. It is
// immutable after construction and safe for concurrent reads.
type Family struct {
	fns      []Hash
	base     uint32
	caseFold bool
}

// NewFamily derives count murmur3 instances from the base seed. When
// caseFold is enabled, string input is lowercased before hashing so that
// "Foo" and "foo" occupy the same slots.
func NewFamily(count int, base uint32, caseFold bool) *Family {
	fns := make([]Hash, count)
	for i := range fns {
		fns[i] = NewMurmur3(base + uint32(i)*seedGamma)
	}
	return &Family{fns: fns, base: base, caseFold: caseFold}
}

// Size returns the number of hash functions in the family.
func (f *Family) Size() int { return len(f.fns) }

// BaseSeed returns the seed the family was derived from.
func (f *Family) BaseSeed() uint32 { return f.base }

// CaseFold reports whether input is lowercased before hashing.
func (f *Family) CaseFold() bool { return f.caseFold }

// Positions appends one position per family member for elem modulo modulus
// to dst and returns the extended slice. Reusing dst across calls avoids
// per-operation allocation on the hot path.
func (f *Family) Positions(dst []uint64, elem string, modulus uint64) []uint64 {
	if f.caseFold {
		elem = strings.ToLower(elem)
	}
	data := []byte(elem)
	for _, h := range f.fns {
		dst = append(dst, h.Sum(data, modulus))
	}
	return dst
}
