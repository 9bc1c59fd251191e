package rpc

import (
	"connectrpc.com/connect"
	"github.com/goccy/go-json"
)

// Codec replaces connect's protojson codec so plain structs can be sent as
// application/json.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
