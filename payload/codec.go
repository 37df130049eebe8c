package payload

// Codec encodes/decodes values V to []byte for embedding into payload cells.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
