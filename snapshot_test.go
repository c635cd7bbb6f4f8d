package bloomgo

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/bloomgo/blobstore"
	"github.com/hupe1980/bloomgo/codec"
	"github.com/hupe1980/bloomgo/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	t.Run("RoundTripPlain", func(t *testing.T) {
		f, err := New(WithCapacity(1000), WithErrorRate(0.01))
		require.NoError(t, err)
		require.NoError(t, f.Insert(Strings("a", "b", "c")))

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		assert.Equal(t, f.BitSize(), loaded.BitSize())
		assert.Equal(t, f.HashCount(), loaded.HashCount())
		assert.Equal(t, f.EntryCount(), loaded.EntryCount())
		assert.False(t, loaded.Counting())

		for _, s := range []string{"a", "b", "c"} {
			res, err := loaded.Query(String(s))
			require.NoError(t, err)
			assert.True(t, res.OK, s)
		}
		res, err := loaded.Query(String("never-inserted-kq92"))
		require.NoError(t, err)
		assert.False(t, res.OK)
	})

	t.Run("RoundTripCountingByteIdentical", func(t *testing.T) {
		f, err := New(WithCounting(), WithBitSize(1000), WithHashCount(3))
		require.NoError(t, err)
		require.NoError(t, f.Insert(Strings("a", "b", "a")))

		want, err := f.store.Snapshot()
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)
		require.True(t, loaded.Counting())

		got, err := loaded.store.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, want, got, "restored contents must be byte-identical")

		// Deletion keeps working across the round trip.
		res, err := loaded.Delete(String("b"))
		require.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("EmptyFilterOmitsArray", func(t *testing.T) {
		f, err := New(WithCapacity(100_000), WithErrorRate(0.001))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))
		// ~1.4M bits of store, but nothing was inserted: the snapshot
		// carries configuration only.
		assert.Less(t, buf.Len(), 512)

		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, f.BitSize(), loaded.BitSize())
		assert.Equal(t, uint64(0), loaded.EntryCount())

		// The rebuilt store is usable and all-zero.
		res, err := loaded.Query(String("anything"))
		require.NoError(t, err)
		assert.False(t, res.OK)
		require.NoError(t, loaded.Insert(String("anything")))
		res, err = loaded.Query(String("anything"))
		require.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("HashingConsistentAcrossRoundTrip", func(t *testing.T) {
		f, err := New(WithCaseFold(false), WithSeed(7))
		require.NoError(t, err)
		require.NoError(t, f.Insert(String("CaseSensitive")))

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))
		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)

		res, err := loaded.Query(String("CaseSensitive"))
		require.NoError(t, err)
		assert.True(t, res.OK)

		res, err = loaded.Query(String("casesensitive"))
		require.NoError(t, err)
		assert.False(t, res.OK, "case folding must stay disabled after load")
	})

	t.Run("CodecRecordedInSnapshot", func(t *testing.T) {
		f, err := New(WithCodec(codec.JSON{}))
		require.NoError(t, err)
		require.NoError(t, f.Insert(String("x")))

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))

		// The loader picks the codec from the header; no option needed.
		loaded, err := LoadFromReader(&buf)
		require.NoError(t, err)
		res, err := loaded.Query(String("x"))
		require.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("SizingOverridesRejectedOnLoad", func(t *testing.T) {
		f, err := New()
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))

		_, err = LoadFromReader(&buf, WithBitSize(4096))
		var invalid *ErrInvalidOption
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("CorruptSnapshotRejected", func(t *testing.T) {
		f, err := New()
		require.NoError(t, err)
		require.NoError(t, f.Insert(String("x")))

		var buf bytes.Buffer
		require.NoError(t, f.SaveToWriter(&buf))

		raw := buf.Bytes()
		raw[len(raw)/2] ^= 0x01
		_, err = LoadFromReader(bytes.NewReader(raw))
		require.ErrorIs(t, err, persistence.ErrBadChecksum)
	})
}

func TestBlobStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	f, err := New(WithCounting(), WithCapacity(500))
	require.NoError(t, err)
	require.NoError(t, f.Insert(Strings("a", "b")))

	require.NoError(t, f.Save(ctx, store, "filters/test.blf"))

	names, err := store.List(ctx, "filters/")
	require.NoError(t, err)
	require.Equal(t, []string{"filters/test.blf"}, names)

	loaded, err := Load(ctx, store, "filters/test.blf")
	require.NoError(t, err)

	res, err := loaded.Query(Strings("a", "b"))
	require.NoError(t, err)
	assert.True(t, res.AllOK())

	_, err = Load(ctx, store, "filters/missing.blf")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
