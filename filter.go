package bloomgo

import (
	"time"

	"github.com/hupe1980/bloomgo/bitstore"
	"github.com/hupe1980/bloomgo/codec"
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/persistence"
	"github.com/hupe1980/bloomgo/sizing"
)

// Filter is a Bloom filter: a fixed-size slot array plus a family of
// independent hash functions, answering membership queries with no false
// negatives and a configured false-positive probability. With counting
// enabled the slots are saturating counters and deletion is supported.
//
// A Filter owns its slot array exclusively and provides no internal
// locking: concurrent mutation requires external synchronization. This is a
// documented contract, not an oversight; typical deployments have a single
// writer.
type Filter struct {
	bitSize    uint64
	hashCount  int
	capacity   int
	errorRate  float64
	entryCount uint64
	counting   bool

	store  bitstore.Store
	family *hasher.Family

	logger      *Logger
	metrics     MetricsCollector
	codec       codec.Codec
	compression persistence.CompressionType

	// scratch holds hash positions between operations to avoid a per-call
	// allocation; safe because the Filter is single-owner.
	scratch []uint64
}

// New creates a Filter. With no options it targets DefaultCapacity elements
// at DefaultErrorRate; sizing can be driven by WithCapacity/WithErrorRate or
// pinned explicitly with WithBitSize/WithHashCount. All configuration is
// validated here; operations never fail on configuration.
func New(optFns ...Option) (*Filter, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	bitSize := sizing.OptimalBits(o.capacity, o.errorRate)
	if o.bitSize != nil {
		bitSize = *o.bitSize
	}
	hashCount := sizing.OptimalHashes(bitSize, o.capacity)
	if o.hashCount != nil {
		hashCount = *o.hashCount
	}

	f := &Filter{
		bitSize:     bitSize,
		hashCount:   hashCount,
		capacity:    o.capacity,
		errorRate:   o.errorRate,
		counting:    o.counting,
		store:       bitstore.New(bitSize, o.counting),
		family:      hasher.NewFamily(hashCount, o.seed, o.caseFold),
		logger:      o.logger,
		metrics:     o.metrics,
		codec:       o.codec,
		compression: o.compression,
		scratch:     make([]uint64, 0, hashCount),
	}

	f.logger.Debug("filter created",
		"bit_size", bitSize,
		"hash_count", hashCount,
		"capacity", o.capacity,
		"error_rate", o.errorRate,
		"counting", o.counting,
	)
	return f, nil
}

// BitSize returns the slot-array length fixed at construction.
func (f *Filter) BitSize() uint64 { return f.bitSize }

// HashCount returns the number of hash functions.
func (f *Filter) HashCount() int { return f.hashCount }

// Capacity returns the target capacity the filter was sized for.
func (f *Filter) Capacity() int { return f.capacity }

// ErrorRate returns the configured false-positive probability.
func (f *Filter) ErrorRate() float64 { return f.errorRate }

// Counting reports whether the filter supports deletion.
func (f *Filter) Counting() bool { return f.counting }

// EntryCount returns the number of slot writes performed: it advances by
// HashCount per scalar inserted and retreats by HashCount per successful
// delete. It deliberately counts hash applications, not distinct elements;
// divide by HashCount for an element-level estimate.
func (f *Filter) EntryCount() uint64 { return f.entryCount }

// positions fills the scratch buffer with the hash positions for a scalar.
func (f *Filter) positions(v Value) []uint64 {
	f.scratch = f.family.Positions(f.scratch[:0], v.canonical(), f.bitSize)
	return f.scratch
}

func (f *Filter) testScalar(v Value) bool {
	for _, pos := range f.positions(v) {
		if !f.store.Test(pos) {
			return false
		}
	}
	return true
}

// Insert adds every scalar leaf of v to the filter: each of the HashCount
// positions is marked (plain) or incremented (counting). O(HashCount) per
// scalar.
func (f *Filter) Insert(v Value) error {
	start := time.Now()
	count := 0

	err := visit(v, func(s Value) error {
		for _, pos := range f.positions(s) {
			f.store.Mark(pos)
			f.entryCount++
		}
		count++
		return nil
	})

	f.metrics.RecordInsert(time.Since(start), err)
	f.logger.LogInsert(count, err)
	return err
}

// Query reports membership for every scalar leaf of v, mirroring its shape.
// A false leaf is definite absence; a true leaf is presence up to the
// configured false-positive probability. Evaluation short-circuits on the
// first unset position per scalar.
func (f *Filter) Query(v Value) (Result, error) {
	start := time.Now()

	res, err := mapShape(v, func(s Value) (Result, error) {
		return Result{OK: f.testScalar(s)}, nil
	})

	f.metrics.RecordQuery(time.Since(start), err)
	f.logger.LogQuery(leafCount(res), err)
	return res, err
}

// QueryRatio returns, per scalar leaf of v, the fraction of its positions
// found set, a float in [0,1]. Unlike Query it never short-circuits; the
// ratio is a diagnostic and tuning signal, not a membership decision.
func (f *Filter) QueryRatio(v Value) (Result, error) {
	start := time.Now()

	res, err := mapShape(v, func(s Value) (Result, error) {
		set := 0
		positions := f.positions(s)
		for _, pos := range positions {
			if f.store.Test(pos) {
				set++
			}
		}
		return Result{Ratio: float64(set) / float64(len(positions))}, nil
	})

	f.metrics.RecordQuery(time.Since(start), err)
	f.logger.LogQuery(leafCount(res), err)
	return res, err
}

// Delete removes every scalar leaf of v that the filter currently reports
// present, mirroring v's shape with per-leaf success. On a non-counting
// filter every leaf reports false and nothing mutates: plain bits cannot be
// unset, and that is a failure signal rather than an error.
//
// A leaf reporting absent is skipped without mutation, which protects the
// counters from decrements for elements never inserted. Collisions can
// still make an uninserted element read as present and cause a spurious
// decrement; that is an accepted limitation of counting filters.
func (f *Filter) Delete(v Value) (Result, error) {
	start := time.Now()
	deleted := 0

	res, err := mapShape(v, func(s Value) (Result, error) {
		if !f.counting || !f.testScalar(s) {
			return Result{}, nil
		}
		// testScalar has populated scratch with this scalar's positions.
		for _, pos := range f.scratch {
			f.store.Adjust(pos, -1)
			f.entryCount--
		}
		deleted++
		return Result{OK: true}, nil
	})

	f.metrics.RecordDelete(time.Since(start), err)
	f.logger.LogDelete(leafCount(res), deleted, err)
	return res, err
}

func leafCount(r Result) int {
	count := 0
	stack := []Result{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.collection {
			stack = append(stack, cur.Items...)
			continue
		}
		count++
	}
	return count
}
