package journal

import "github.com/vmihailenco/msgpack/v5"

// MsgpackCodec encodes/decodes journal entries as MessagePack.
type MsgpackCodec struct{}

func (c *MsgpackCodec) Encode(entries []Entry) ([]byte, error) {
	return msgpack.Marshal(entries)
}

func (c *MsgpackCodec) Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *MsgpackCodec) Name() string { return CodecNameMsgpack }
