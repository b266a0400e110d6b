package journal

// Codec defines the serialization contract for exported journals.
// Implementations handle encoding/decoding entry slices to/from bytes.
type Codec interface {
	// Encode serializes entries to bytes.
	Encode(entries []Entry) ([]byte, error)

	// Decode deserializes bytes into entries.
	Decode(data []byte) ([]Entry, error)

	// Name returns the codec identifier (e.g., "json", "msgpack").
	Name() string
}

// CodecName constants for format selection.
const (
	CodecNameJSON    = "json"
	CodecNameMsgpack = "msgpack"
)

// GetCodec returns a codec by name. Defaults to JSON.
func GetCodec(name string) Codec {
	switch name {
	case CodecNameMsgpack:
		return &MsgpackCodec{}
	case CodecNameJSON, "":
		return &JSONCodec{}
	default:
		return &JSONCodec{}
	}
}
