package payload

import "encoding/json"

// JSON is a Codec that serializes values with encoding/json. Handy for
// debugging payloads off-chain; prefer CBOR or Msgpack for anything whose
// cell hash matters.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
