package payload

import "google.golang.org/protobuf/proto"

// Protobuf is a Codec that serializes protobuf messages. Decode needs a
// fresh message to unmarshal into, so the codec carries a constructor for
// the concrete type.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g. func() *pb.Order { return &pb.Order{} })
}

// NewProtobuf constructs a Protobuf codec around ctor.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
