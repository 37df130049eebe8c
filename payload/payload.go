// Package payload bridges between TON payload cells and byte-oriented
// values. Long byte strings are laid out in the standard snake format:
// a chain of cells where each link holds up to 127 bytes of data and a
// single reference to the next link. On top of the raw bridge sit text
// comments (the 0x00000000-tagged convention) and generic value
// (de)serialization through a pluggable Codec.
package payload

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/xssnick/tonutils-go/tvm/cell"
)

var (
	// ErrNotSnake reports a cell chain that is not byte-aligned or forks
	// into more than one forward reference.
	ErrNotSnake = errors.New("payload: not a snake-encoded cell")

	// ErrNotComment reports a payload without the zero comment tag.
	ErrNotComment = errors.New("payload: not a text comment payload")
)

// snakeSegment is the data capacity of one chain link. A cell holds 1023
// bits; 127 bytes keeps every link byte-aligned.
const snakeSegment = 127

// FromBytes packs raw bytes into a snake-encoded payload cell. An empty
// input yields an empty cell.
func FromBytes(data []byte) (*cell.Cell, error) {
	segs := make([][]byte, 0, len(data)/snakeSegment+1)
	for len(data) > snakeSegment {
		segs = append(segs, data[:snakeSegment])
		data = data[snakeSegment:]
	}
	segs = append(segs, data)

	// build tail-first so each link stores at most one forward reference
	var next *cell.Cell
	for i := len(segs) - 1; i >= 0; i-- {
		b := cell.BeginCell()
		if err := b.StoreSlice(segs[i], uint(len(segs[i]))*8); err != nil {
			return nil, fmt.Errorf("payload: store segment: %w", err)
		}
		if next != nil {
			if err := b.StoreRef(next); err != nil {
				return nil, fmt.Errorf("payload: store link: %w", err)
			}
		}
		next = b.EndCell()
	}
	return next, nil
}

// ToBytes flattens a snake-encoded payload cell back into bytes.
func ToBytes(c *cell.Cell) ([]byte, error) {
	var out []byte
	for {
		s := c.BeginParse()
		n := s.BitsLeft()
		if n%8 != 0 {
			return nil, ErrNotSnake
		}
		chunk, err := s.LoadSlice(n)
		if err != nil {
			return nil, fmt.Errorf("payload: load segment: %w", err)
		}
		out = append(out, chunk...)
		if s.RefsNum() == 0 {
			return out, nil
		}
		next, err := s.LoadRefCell()
		if err != nil {
			return nil, fmt.Errorf("payload: load link: %w", err)
		}
		if s.RefsNum() != 0 {
			return nil, ErrNotSnake
		}
		c = next
	}
}

// commentTag prefixes human-readable text payloads.
const commentTag = 0x00000000

// Comment builds the standard text-comment payload: a 32-bit zero tag
// followed by the UTF-8 text in snake layout.
func Comment(text string) (*cell.Cell, error) {
	data := make([]byte, 4+len(text))
	binary.BigEndian.PutUint32(data[:4], commentTag)
	copy(data[4:], text)
	return FromBytes(data)
}

// ParseComment returns the text of a comment payload.
func ParseComment(c *cell.Cell) (string, error) {
	data, err := ToBytes(c)
	if err != nil {
		return "", err
	}
	if len(data) < 4 || binary.BigEndian.Uint32(data[:4]) != commentTag {
		return "", ErrNotComment
	}
	return string(data[4:]), nil
}

// Encode marshals v through codec and packs the result into a payload cell.
func Encode[V any](codec Codec[V], v V) (*cell.Cell, error) {
	raw, err := codec.Encode(v)
	if err != nil {
		return nil, err
	}
	return FromBytes(raw)
}

// Decode flattens a payload cell and unmarshals it through codec.
func Decode[V any](codec Codec[V], c *cell.Cell) (V, error) {
	raw, err := ToBytes(c)
	if err != nil {
		var zero V
		return zero, err
	}
	return codec.Decode(raw)
}
