package bloomgo

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/hupe1980/bloomgo/bitstore"
	"github.com/hupe1980/bloomgo/blobstore"
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/persistence"
)

// SaveToWriter writes a snapshot of the filter to w: the scalar
// configuration plus the slot-array contents. A filter that has never been
// written to (EntryCount zero) omits the array entirely; see the
// persistence package for the format.
func (f *Filter) SaveToWriter(w io.Writer) error {
	payload, err := f.store.Snapshot()
	if err != nil {
		return err
	}
	return persistence.Write(w, f.snapshotMeta(), payload, f.codec, f.compression)
}

// LoadFromReader reconstructs a filter from a snapshot.
//
// Structural configuration (sizing, counting mode, case folding, seed) comes
// from the snapshot; options passed here configure the ambient pieces only
// (logger, metrics, codec and compression for future saves). Sizing options
// are rejected, since they cannot override persisted state.
func LoadFromReader(r io.Reader, optFns ...Option) (*Filter, error) {
	meta, payload, err := persistence.Read(r)
	if err != nil {
		return nil, err
	}

	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	if o.bitSize != nil || o.hashCount != nil {
		return nil, &ErrInvalidOption{Param: "sizing override on load", Value: nil}
	}

	store := bitstore.New(meta.BitSize, meta.Counting)
	if meta.EntryCount > 0 {
		if err := store.Restore(payload); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		bitSize:     meta.BitSize,
		hashCount:   meta.HashCount,
		capacity:    meta.Capacity,
		errorRate:   meta.ErrorRate,
		entryCount:  meta.EntryCount,
		counting:    meta.Counting,
		store:       store,
		family:      hasher.NewFamily(meta.HashCount, meta.Seed, meta.CaseFold),
		logger:      o.logger,
		metrics:     o.metrics,
		codec:       o.codec,
		compression: o.compression,
		scratch:     make([]uint64, 0, meta.HashCount),
	}
	return f, nil
}

// Save writes a snapshot to the blob store under name. The write is a
// single atomic Put; no partial snapshot becomes visible.
func (f *Filter) Save(ctx context.Context, store blobstore.BlobStore, name string) error {
	start := time.Now()

	var buf bytes.Buffer
	err := f.SaveToWriter(&buf)
	if err == nil {
		err = store.Put(ctx, name, buf.Bytes())
	}

	f.metrics.RecordSnapshot(time.Since(start), err)
	f.logger.LogSnapshot(ctx, name, err)
	return err
}

// Load reads the snapshot stored under name and reconstructs the filter.
// Options follow the LoadFromReader contract.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Filter, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return LoadFromReader(r, optFns...)
}

func (f *Filter) snapshotMeta() persistence.Snapshot {
	return persistence.Snapshot{
		BitSize:    f.bitSize,
		HashCount:  f.hashCount,
		Capacity:   f.capacity,
		ErrorRate:  f.errorRate,
		EntryCount: f.entryCount,
		Counting:   f.counting,
		CaseFold:   f.family.CaseFold(),
		Seed:       f.family.BaseSeed(),
	}
}
