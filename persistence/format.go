// Package persistence implements the binary snapshot format for filters.
//
// A snapshot is a single self-describing blob:
//
//	[4]  magic "BLF1"
//	[4]  format version (big endian)
//	[1]  codec name length, [n] codec name
//	[1]  compression type
//	[4]  metadata length, [n] codec-encoded Snapshot metadata
//	[8]  payload length, [n] compressed store contents
//	[4]  CRC32 (IEEE) of everything above
//
// The payload is omitted (length 0) when the snapshot's EntryCount is zero,
// since the store is provably all-zero and can be rebuilt from BitSize
// alone. Decoding validates magic, version, codec, checksum and metadata
// before returning anything, so a restore either transfers the full state
// or fails without producing a partial one.
package persistence

import "errors"

const (
	// Magic identifies bloomgo snapshot blobs.
	Magic = "BLF1"

	// Version is the current snapshot format version.
	Version uint32 = 1
)

var (
	ErrBadMagic        = errors.New("persistence: snapshot magic invalid")
	ErrBadVersion      = errors.New("persistence: snapshot version unsupported")
	ErrBadChecksum     = errors.New("persistence: snapshot checksum mismatch")
	ErrUnknownCodec    = errors.New("persistence: snapshot codec unknown")
	ErrTruncated       = errors.New("persistence: snapshot truncated")
	ErrBadMetadata     = errors.New("persistence: snapshot metadata invalid")
	ErrBadCompression  = errors.New("persistence: compression type unknown")
	ErrBlockCorruption = errors.New("persistence: compressed block corrupt")
)

// Snapshot is the scalar state persisted alongside the store contents. The
// layout is codec-encoded, so field names are part of the format.
type Snapshot struct {
	BitSize    uint64  `json:"bit_size"`
	HashCount  int     `json:"hash_count"`
	Capacity   int     `json:"capacity"`
	ErrorRate  float64 `json:"error_rate"`
	EntryCount uint64  `json:"entry_count"`
	Counting   bool    `json:"counting"`
	CaseFold   bool    `json:"case_fold"`
	Seed       uint32  `json:"seed"`
}

func (s Snapshot) validate() error {
	if s.BitSize == 0 || s.HashCount < 1 || s.Capacity < 1 {
		return ErrBadMetadata
	}
	if s.ErrorRate <= 0 || s.ErrorRate >= 1 {
		return ErrBadMetadata
	}
	return nil
}
