// Package jetton implements the TL-B body codecs for the standard jetton
// message family. Every kind satisfies tonmsg.Message; Register wires the
// whole family into a dispatch registry.
package jetton

import (
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/haouvw/tonmsg"
)

// Opcodes of the jetton family, one 32-bit constant per kind.
const (
	OpTransfer             uint32 = 0x0f8a7ea5
	OpTransferNotification uint32 = 0x7362d09c
	OpBurn                 uint32 = 0x595f07bc
)

// query carries the correlation id every body in this family starts with.
// Embedding it gives each kind the tonmsg.Message accessor pair without
// reimplementing it.
type query struct {
	id uint64
}

// QueryID returns the caller-assigned correlation id.
func (q *query) QueryID() uint64 { return q.id }

// SetQueryID sets the correlation id. The codec enforces no uniqueness;
// that is the caller's business.
func (q *query) SetQueryID(id uint64) { q.id = id }

// Register binds the jetton family's opcodes into r.
func Register(r *tonmsg.Registry) {
	r.Register(OpBurn, func(c *cell.Cell) (tonmsg.Message, error) {
		return ParseBurn(c)
	})
	r.Register(OpTransfer, func(c *cell.Cell) (tonmsg.Message, error) {
		return ParseTransfer(c)
	})
	r.Register(OpTransferNotification, func(c *cell.Cell) (tonmsg.Message, error) {
		return ParseTransferNotification(c)
	})
}
