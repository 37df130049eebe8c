package jetton

import (
	"fmt"
	"math/big"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/haouvw/tonmsg"
	"github.com/haouvw/tonmsg/tlb"
)

// TransferMessage is the body of a jetton transfer request:
//
//	transfer#0f8a7ea5 query_id:uint64 amount:(VarUInteger 16)
//	                  destination:MsgAddress response_destination:MsgAddress
//	                  custom_payload:(Maybe ^Cell)
//	                  forward_ton_amount:(VarUInteger 16)
//	                  forward_payload:(Either Cell ^Cell)
//	                  = InternalMsgBody;
type TransferMessage struct {
	query
	// Amount of jettons to transfer.
	Amount *big.Int
	// New owner of the jettons.
	Destination *address.Address
	// Where to send a response with confirmation and the rest of the
	// incoming message coins. nil means addr_none.
	ResponseDestination *address.Address
	// Optional data used by the sender or receiver jetton wallet for inner
	// logic. nil means absent.
	CustomPayload *cell.Cell
	// Nanotons forwarded to the destination together with the notification.
	ForwardTONAmount *big.Int
	// Custom data delivered to the destination via the notification. Never
	// nil after parse; an empty cell stands for no payload.
	ForwardPayload *cell.Cell
	// ForwardPayloadLayout selects the write branch for ForwardPayload.
	// Parse always resets it to tlb.EitherNative.
	ForwardPayloadLayout tlb.EitherLayout
}

var _ tonmsg.Message = (*TransferMessage)(nil)

// NewTransfer returns a transfer of amount jettons to destination, with no
// forwarded tons, an empty forward payload and all optional fields unset.
func NewTransfer(destination *address.Address, amount *big.Int) *TransferMessage {
	if amount == nil {
		amount = new(big.Int)
	}
	return &TransferMessage{
		Amount:           new(big.Int).Set(amount),
		Destination:      destination,
		ForwardTONAmount: new(big.Int),
		ForwardPayload:   cell.BeginCell().EndCell(),
	}
}

func (m *TransferMessage) WithQueryID(id uint64) *TransferMessage {
	m.SetQueryID(id)
	return m
}

func (m *TransferMessage) WithResponseDestination(a *address.Address) *TransferMessage {
	m.ResponseDestination = a
	return m
}

func (m *TransferMessage) WithCustomPayload(payload *cell.Cell) *TransferMessage {
	m.CustomPayload = payload
	return m
}

func (m *TransferMessage) WithForwardTONAmount(amount *big.Int) *TransferMessage {
	if amount == nil {
		amount = new(big.Int)
	}
	m.ForwardTONAmount = new(big.Int).Set(amount)
	return m
}

func (m *TransferMessage) WithForwardPayload(payload *cell.Cell) *TransferMessage {
	m.ForwardPayload = payload
	return m
}

func (m *TransferMessage) WithForwardPayloadLayout(layout tlb.EitherLayout) *TransferMessage {
	m.ForwardPayloadLayout = layout
	return m
}

// Opcode returns transfer#0f8a7ea5.
func (m *TransferMessage) Opcode() uint32 { return OpTransfer }

// Build seals the message into its canonical cell encoding.
func (m *TransferMessage) Build() (*cell.Cell, error) {
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
	if err := tlb.StoreAddr(b, m.Destination); err != nil {
		return nil, fmt.Errorf("store destination: %w", err)
	}
	if err := tlb.StoreAddr(b, m.ResponseDestination); err != nil {
		return nil, fmt.Errorf("store response destination: %w", err)
	}
	if err := tlb.StoreMaybeCell(b, m.CustomPayload); err != nil {
		return nil, fmt.Errorf("store custom payload: %w", err)
	}
	if err := tlb.StoreCoins(b, m.ForwardTONAmount); err != nil {
		return nil, fmt.Errorf("store forward ton amount: %w", err)
	}
	if err := tlb.StoreEitherCell(b, m.ForwardPayload, m.ForwardPayloadLayout); err != nil {
		return nil, fmt.Errorf("store forward payload: %w", err)
	}
	return b.EndCell(), nil
}

// ParseTransfer decodes a transfer body from c.
func ParseTransfer(c *cell.Cell) (*TransferMessage, error) {
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
		return nil, fmt.Errorf("load destination: %w", err)
	}
	respDst, err := tlb.LoadAddr(s)
	if err != nil {
		return nil, fmt.Errorf("load response destination: %w", err)
	}
	custom, err := tlb.LoadMaybeCell(s)
	if err != nil {
		return nil, fmt.Errorf("load custom payload: %w", err)
	}
	fwdTON, err := tlb.LoadCoins(s)
	if err != nil {
		return nil, fmt.Errorf("load forward ton amount: %w", err)
	}
	fwdPayload, err := tlb.LoadEitherCell(s)
	if err != nil {
		return nil, fmt.Errorf("load forward payload: %w", err)
	}
	if err := tlb.EnsureEmpty(s); err != nil {
		return nil, err
	}

	m := &TransferMessage{
		query:                query{id: id},
		Amount:               amount,
		Destination:          dst,
		ResponseDestination:  respDst,
		CustomPayload:        custom,
		ForwardTONAmount:     fwdTON,
		ForwardPayload:       fwdPayload,
		ForwardPayloadLayout: tlb.EitherNative,
	}
	if err := tonmsg.VerifyOpcode(m, uint32(op)); err != nil {
		return nil, err
	}
	return m, nil
}
