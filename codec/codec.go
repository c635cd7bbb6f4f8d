// Package codec centralizes snapshot metadata encoding.
//
// Persisted filter snapshots are self-describing: the snapshot header stores
// the codec name, and the loader selects the matching codec via ByName. This
// makes codec selection a compatibility boundary: bytes written by a codec
// the reading binary does not know cannot be decoded.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
