package tonmsg

import (
	"errors"
	"fmt"
)

var (
	// ErrTrailingData reports bits or references left unread after a
	// structurally complete decode.
	ErrTrailingData = errors.New("tonmsg: trailing data after message body")

	// ErrCapacity reports a write that exceeded the cell's bit or
	// reference capacity.
	ErrCapacity = errors.New("tonmsg: cell capacity exceeded")

	// ErrValueOutOfRange reports a value that cannot be represented in its
	// target encoding (e.g. a coins amount above 2^120-1).
	ErrValueOutOfRange = errors.New("tonmsg: value out of range for encoding")

	// ErrUnknownOpcode reports a cell whose leading opcode has no codec
	// registered.
	ErrUnknownOpcode = errors.New("tonmsg: unknown opcode")
)

// OpcodeMismatchError reports a cell handed to the wrong kind's codec: the
// body decoded structurally, but its leading opcode belongs to a different
// schema.
type OpcodeMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *OpcodeMismatchError) Error() string {
	return fmt.Sprintf("tonmsg: opcode mismatch: expected %08x, got %08x", e.Expected, e.Got)
}

// AsOpcodeMismatch checks whether an error is an opcode mismatch and
// returns it.
func AsOpcodeMismatch(err error) (*OpcodeMismatchError, bool) {
	var e *OpcodeMismatchError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
