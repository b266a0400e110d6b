package journal

import "encoding/json"

// JSONCodec encodes/decodes journal entries as JSON.
type JSONCodec struct{}

func (c *JSONCodec) Encode(entries []Entry) ([]byte, error) {
	return json.Marshal(entries)
}

func (c *JSONCodec) Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *JSONCodec) Name() string { return CodecNameJSON }
