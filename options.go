package bloomgo

import (
	"log/slog"

	"github.com/hupe1980/bloomgo/codec"
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/persistence"
	"github.com/hupe1980/bloomgo/sizing"
)

const (
	// DefaultCapacity is the target capacity when none is configured.
	DefaultCapacity = 100

	// DefaultErrorRate is the target false-positive probability when none
	// is configured.
	DefaultErrorRate = 0.001
)

type options struct {
	capacity    int
	errorRate   float64
	bitSize     *uint64
	hashCount   *int
	counting    bool
	caseFold    bool
	seed        uint32
	logger      *Logger
	metrics     MetricsCollector
	codec       codec.Codec
	compression persistence.CompressionType
}

// Option configures filter construction.
type Option func(*options)

// WithCapacity sets the target capacity (number of distinct elements the
// filter is sized for). Must be positive.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithErrorRate sets the target false-positive probability, in (0,1).
func WithErrorRate(p float64) Option {
	return func(o *options) {
		o.errorRate = p
	}
}

// WithBitSize pins the bit-array length instead of deriving it from
// capacity and error rate, e.g. to match an existing persisted layout.
// Must be at least sizing.MinBits.
func WithBitSize(m uint64) Option {
	return func(o *options) {
		o.bitSize = &m
	}
}

// WithHashCount pins the hash-function count instead of deriving it.
// Must be at least 1.
func WithHashCount(k int) Option {
	return func(o *options) {
		o.hashCount = &k
	}
}

// WithCounting backs the filter with saturating counters instead of single
// bits, enabling deletion at roughly 8x the memory cost.
func WithCounting() Option {
	return func(o *options) {
		o.counting = true
	}
}

// WithCaseFold controls whether string input is lowercased before hashing.
// Enabled by default.
func WithCaseFold(enabled bool) Option {
	return func(o *options) {
		o.caseFold = enabled
	}
}

// WithSeed sets the base seed the hash family derives from. The default is
// fixed, so filters with identical configuration hash identically across
// processes; override it only to keep deliberately disjoint filter families.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithCodec configures the codec used for snapshot metadata.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression selects the snapshot payload compression.
func WithCompression(t persistence.CompressionType) Option {
	return func(o *options) {
		o.compression = t
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		capacity:    DefaultCapacity,
		errorRate:   DefaultErrorRate,
		caseFold:    true,
		seed:        hasher.DefaultSeed,
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		codec:       codec.Default,
		compression: persistence.CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.capacity <= 0 {
		return options{}, &ErrInvalidOption{Param: "capacity", Value: o.capacity}
	}
	if o.errorRate <= 0 || o.errorRate >= 1 {
		return options{}, &ErrInvalidOption{Param: "error rate", Value: o.errorRate}
	}
	if o.bitSize != nil && *o.bitSize < sizing.MinBits {
		return options{}, &ErrInvalidOption{Param: "bit size", Value: *o.bitSize}
	}
	if o.hashCount != nil && *o.hashCount < sizing.MinHashes {
		return options{}, &ErrInvalidOption{Param: "hash count", Value: *o.hashCount}
	}
	if t := o.compression; t != persistence.CompressionNone &&
		t != persistence.CompressionLZ4 && t != persistence.CompressionZSTD {
		return options{}, &ErrInvalidOption{Param: "compression", Value: t}
	}
	return o, nil
}
