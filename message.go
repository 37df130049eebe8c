package tonmsg

import (
	"github.com/xssnick/tonutils-go/tvm/cell"
)

// Message is the contract every message-body codec satisfies. A kind's
// Opcode is a schema constant; QueryID is the caller-assigned correlation
// value every body in a family carries. Build seals the message into its
// canonical cell encoding.
//
// Dispatchers hold decoded messages behind this interface and never need to
// know the concrete kind.
type Message interface {
	Opcode() uint32
	QueryID() uint64
	SetQueryID(uint64)
	Build() (*cell.Cell, error)
}

// VerifyOpcode compares a decoded opcode against m's constant. A mismatch
// means the cell belongs to a different schema, which is a distinct failure
// from a malformed body; it is reported as *OpcodeMismatchError.
func VerifyOpcode(m Message, got uint32) error {
	if exp := m.Opcode(); got != exp {
		return &OpcodeMismatchError{Expected: exp, Got: got}
	}
	return nil
}
