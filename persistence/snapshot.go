package persistence

import (
	"encoding/binary"
	"io"

	"github.com/hupe1980/bloomgo/codec"
)

// Write encodes meta plus the raw store payload into w.
//
// The payload is dropped when meta.EntryCount is zero, regardless of what
// the caller passed: an untouched store is all-zero and rebuildable from
// BitSize, so persisting it would only waste space.
func Write(w io.Writer, meta Snapshot, payload []byte, c codec.Codec, compression CompressionType) error {
	if c == nil {
		c = codec.Default
	}
	if !compression.valid() {
		return ErrBadCompression
	}
	if err := meta.validate(); err != nil {
		return err
	}
	name := c.Name()
	if name == "" || len(name) > 255 {
		return ErrUnknownCodec
	}

	metaBytes, err := c.Marshal(meta)
	if err != nil {
		return err
	}

	var block []byte
	if meta.EntryCount > 0 && len(payload) > 0 {
		if block, err = compressBlock(payload, compression); err != nil {
			return err
		}
	}

	cw := NewChecksumWriter(w)

	var u32 [4]byte
	var u64 [8]byte

	if _, err = cw.Write([]byte(Magic)); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(u32[:], Version)
	if _, err = cw.Write(u32[:]); err != nil {
		return err
	}
	if _, err = cw.Write([]byte{byte(len(name))}); err != nil {
		return err
	}
	if _, err = cw.Write([]byte(name)); err != nil {
		return err
	}
	if _, err = cw.Write([]byte{byte(compression)}); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(u32[:], uint32(len(metaBytes)))
	if _, err = cw.Write(u32[:]); err != nil {
		return err
	}
	if _, err = cw.Write(metaBytes); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(u64[:], uint64(len(block)))
	if _, err = cw.Write(u64[:]); err != nil {
		return err
	}
	if _, err = cw.Write(block); err != nil {
		return err
	}

	// Checksum trailer covers everything written above; it is written to
	// the underlying writer directly so it does not checksum itself.
	binary.BigEndian.PutUint32(u32[:], cw.Sum())
	_, err = w.Write(u32[:])
	return err
}

// Read consumes a snapshot from r and returns the metadata plus the raw
// store payload. The payload is nil when the snapshot was written with
// EntryCount zero; callers rebuild a zero-filled store of BitSize slots.
func Read(r io.Reader) (Snapshot, []byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, nil, err
	}
	return Decode(raw)
}

// Decode parses a full snapshot blob. Nothing is returned until magic,
// version, codec, checksum and metadata have all been validated, so a
// corrupt blob cannot produce partial state.
func Decode(raw []byte) (Snapshot, []byte, error) {
	const trailerLen = 4
	if len(raw) < trailerLen {
		return Snapshot{}, nil, ErrTruncated
	}

	body := raw[:len(raw)-trailerLen]
	want := binary.BigEndian.Uint32(raw[len(raw)-trailerLen:])
	if Checksum(body) != want {
		return Snapshot{}, nil, ErrBadChecksum
	}

	cur := cursor{buf: body}

	magic, err := cur.take(len(Magic))
	if err != nil {
		return Snapshot{}, nil, err
	}
	if string(magic) != Magic {
		return Snapshot{}, nil, ErrBadMagic
	}
	version, err := cur.u32()
	if err != nil {
		return Snapshot{}, nil, err
	}
	if version != Version {
		return Snapshot{}, nil, ErrBadVersion
	}

	nameLen, err := cur.u8()
	if err != nil {
		return Snapshot{}, nil, err
	}
	name, err := cur.take(int(nameLen))
	if err != nil {
		return Snapshot{}, nil, err
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return Snapshot{}, nil, ErrUnknownCodec
	}

	compByte, err := cur.u8()
	if err != nil {
		return Snapshot{}, nil, err
	}
	compression := CompressionType(compByte)
	if !compression.valid() {
		return Snapshot{}, nil, ErrBadCompression
	}

	metaLen, err := cur.u32()
	if err != nil {
		return Snapshot{}, nil, err
	}
	metaBytes, err := cur.take(int(metaLen))
	if err != nil {
		return Snapshot{}, nil, err
	}
	var meta Snapshot
	if err := c.Unmarshal(metaBytes, &meta); err != nil {
		return Snapshot{}, nil, ErrBadMetadata
	}
	if err := meta.validate(); err != nil {
		return Snapshot{}, nil, err
	}

	blockLen, err := cur.u64()
	if err != nil {
		return Snapshot{}, nil, err
	}
	block, err := cur.take(int(blockLen))
	if err != nil {
		return Snapshot{}, nil, err
	}

	if meta.EntryCount == 0 {
		return meta, nil, nil
	}
	payload, err := decompressBlock(block, compression)
	if err != nil {
		return Snapshot{}, nil, err
	}
	return meta, payload, nil
}

type cursor struct {
	buf []byte
	off int
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.off+n > len(c.buf) {
		return nil, ErrTruncated
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) u64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}
