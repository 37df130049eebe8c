package jetton

import (
	"fmt"
	"math/big"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/haouvw/tonmsg"
	"github.com/haouvw/tonmsg/tlb"
)

// TransferNotificationMessage is the body a receiving jetton wallet sends
// to its owner after an incoming transfer:
//
//	transfer_notification#7362d09c query_id:uint64 amount:(VarUInteger 16)
//	                               sender:MsgAddress forward_payload:(Either Cell ^Cell)
//	                               = InternalMsgBody;
type TransferNotificationMessage struct {
	query
	// Amount of transferred jettons.
	Amount *big.Int
	// Previous owner of the transferred jettons.
	Sender *address.Address
	// Custom data attached by the sender for the destination contract.
	// Never nil after parse; an empty cell stands for no payload.
	ForwardPayload *cell.Cell
	// ForwardPayloadLayout selects the write branch for ForwardPayload.
	// Parse always resets it to tlb.EitherNative.
	ForwardPayloadLayout tlb.EitherLayout
}

var _ tonmsg.Message = (*TransferNotificationMessage)(nil)

// NewTransferNotification returns a notification about amount jettons
// arriving from sender, with an empty forward payload.
func NewTransferNotification(sender *address.Address, amount *big.Int) *TransferNotificationMessage {
	if amount == nil {
		amount = new(big.Int)
	}
	return &TransferNotificationMessage{
		Amount:         new(big.Int).Set(amount),
		Sender:         sender,
		ForwardPayload: cell.BeginCell().EndCell(),
	}
}

func (m *TransferNotificationMessage) WithQueryID(id uint64) *TransferNotificationMessage {
	m.SetQueryID(id)
	return m
}

func (m *TransferNotificationMessage) WithForwardPayload(payload *cell.Cell) *TransferNotificationMessage {
	m.ForwardPayload = payload
	return m
}

func (m *TransferNotificationMessage) WithForwardPayloadLayout(layout tlb.EitherLayout) *TransferNotificationMessage {
	m.ForwardPayloadLayout = layout
	return m
}

// Opcode returns transfer_notification#7362d09c.
func (m *TransferNotificationMessage) Opcode() uint32 { return OpTransferNotification }

// Build seals the message into its canonical cell encoding.
func (m *TransferNotificationMessage) Build() (*cell.Cell, error) {
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
	if err := tlb.StoreAddr(b, m.Sender); err != nil {
		return nil, fmt.Errorf("store sender: %w", err)
	}
	if err := tlb.StoreEitherCell(b, m.ForwardPayload, m.ForwardPayloadLayout); err != nil {
		return nil, fmt.Errorf("store forward payload: %w", err)
	}
	return b.EndCell(), nil
}

// ParseTransferNotification decodes a transfer notification body from c.
func ParseTransferNotification(c *cell.Cell) (*TransferNotificationMessage, error) {
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
	sender, err := tlb.LoadAddr(s)
	if err != nil {
		return nil, fmt.Errorf("load sender: %w", err)
	}
	payload, err := tlb.LoadEitherCell(s)
	if err != nil {
		return nil, fmt.Errorf("load forward payload: %w", err)
	}
	if err := tlb.EnsureEmpty(s); err != nil {
		return nil, err
	}

	m := &TransferNotificationMessage{
		query:                query{id: id},
		Amount:               amount,
		Sender:               sender,
		ForwardPayload:       payload,
		ForwardPayloadLayout: tlb.EitherNative,
	}
	if err := tonmsg.VerifyOpcode(m, uint32(op)); err != nil {
		return nil, err
	}
	return m, nil
}
