package jetton

import (
	"fmt"
	"math/big"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/haouvw/tonmsg"
	"github.com/haouvw/tonmsg/tlb"
)

// BurnMessage is the body of a jetton burn request:
//
//	burn#595f07bc query_id:uint64 amount:(VarUInteger 16)
//	              response_destination:MsgAddress custom_payload:(Maybe ^Cell)
//	              = InternalMsgBody;
type BurnMessage struct {
	query
	// Amount of jettons to burn.
	Amount *big.Int
	// Where to send a confirmation of a successful burn and the rest of the
	// incoming message coins. nil means addr_none.
	ResponseDestination *address.Address
	// Optional data used by the sender or receiver jetton wallet for inner
	// logic. nil means absent.
	CustomPayload *cell.Cell
}

var _ tonmsg.Message = (*BurnMessage)(nil)

// NewBurn returns a burn of amount with all optional fields unset.
func NewBurn(amount *big.Int) *BurnMessage {
	if amount == nil {
		amount = new(big.Int)
	}
	return &BurnMessage{Amount: new(big.Int).Set(amount)}
}

func (m *BurnMessage) WithQueryID(id uint64) *BurnMessage {
	m.SetQueryID(id)
	return m
}

func (m *BurnMessage) WithResponseDestination(a *address.Address) *BurnMessage {
	m.ResponseDestination = a
	return m
}

func (m *BurnMessage) WithCustomPayload(payload *cell.Cell) *BurnMessage {
	m.CustomPayload = payload
	return m
}

// Opcode returns burn#595f07bc.
func (m *BurnMessage) Opcode() uint32 { return OpBurn }

// Build seals the message into its canonical cell encoding.
func (m *BurnMessage) Build() (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(uint64(m.Opcode()), 32); err != nil {
		return nil, fmt.Errorf("store opcode: %w", err)
	}
	if err := b.StoreUInt(m.QueryID(), 64); err != nil {
		return nil, fmt.Errorf("store query id: %w", err)
	}
	if err := tlb.StoreCoins(b, m.Amount); err != nil {
		return nil, fmt.Errorf("store amount: %w", err)
	}
	if err := tlb.StoreAddr(b, m.ResponseDestination); err != nil {
		return nil, fmt.Errorf("store response destination: %w", err)
	}
	if err := tlb.StoreMaybeCell(b, m.CustomPayload); err != nil {
		return nil, fmt.Errorf("store custom payload: %w", err)
	}
	return b.EndCell(), nil
}

// ParseBurn decodes a burn body from c. Trailing bits or references are a
// decode error, as is an opcode belonging to another kind.
func ParseBurn(c *cell.Cell) (*BurnMessage, error) {
	s := c.BeginParse()
	op, err := s.LoadUInt(32)
	if err != nil {
		return nil, fmt.Errorf("load opcode: %w", err)
	}
	id, err := s.LoadUInt(64)
	if err != nil {
		return nil, fmt.Errorf("load query id: %w", err)
	}
	amount, err := tlb.LoadCoins(s)
	if err != nil {
		return nil, fmt.Errorf("load amount: %w", err)
	}
	dst, err := tlb.LoadAddr(s)
	if err != nil {
		return nil, fmt.Errorf("load response destination: %w", err)
	}
	custom, err := tlb.LoadMaybeCell(s)
	if err != nil {
		return nil, fmt.Errorf("load custom payload: %w", err)
	}
	if err := tlb.EnsureEmpty(s); err != nil {
		return nil, err
	}

	m := &BurnMessage{
		query:               query{id: id},
		Amount:              amount,
		ResponseDestination: dst,
		CustomPayload:       custom,
	}
	if err := tonmsg.VerifyOpcode(m, uint32(op)); err != nil {
		return nil, err
	}
	return m, nil
}
