package tlb

import (
	"fmt"

	"github.com/xssnick/tonutils-go/tvm/cell"
)

// EitherLayout selects the write branch for Either Cell ^Cell fields. The
// wire flag bit always states which branch was taken; layout only controls
// which branch a writer picks and is never inferred on read. Conventions
// differ between producers in this ecosystem, so the caller must state the
// peer's convention explicitly.
type EitherLayout uint8

const (
	// EitherNative writes the payload inline when its bits and references
	// fit in the remaining space of the current cell, and as a child
	// reference otherwise. This is the layout most wallets and tooling
	// produce.
	EitherNative EitherLayout = iota

	// EitherForceRef always writes a child reference. Some consumers in the
	// wild only accept referenced payloads; use this when the peer is known
	// to be one of them.
	EitherForceRef
)

// StoreEitherCell writes payload inline (flag 0) or as a child reference
// (flag 1) according to layout. A nil payload is treated as an empty cell.
func StoreEitherCell(b *cell.Builder, payload *cell.Cell, layout EitherLayout) error {
	if payload == nil {
		payload = cell.BeginCell().EndCell()
	}

	var inline bool
	switch layout {
	case EitherNative:
		// inline needs room for the payload's bits and all of its child
		// references; by-ref needs a single reference slot
		inline = payload.BitsSize() < b.BitsLeft() && payload.RefsNum() <= b.RefsLeft()
	case EitherForceRef:
		inline = false
	default:
		return fmt.Errorf("tlb: unrecognized either layout %d", layout)
	}

	if !inline {
		if err := b.StoreBoolBit(true); err != nil {
			return capErr(err)
		}
		return capErr(b.StoreRef(payload))
	}
	if err := b.StoreBoolBit(false); err != nil {
		return capErr(err)
	}
	return storeCellInline(b, payload)
}

// LoadEitherCell reads Either Cell ^Cell: flag 0 takes the remainder of s
// as the payload, flag 1 takes the next child reference. The flag bit's
// meaning is schema-fixed, so no layout parameter exists on the read side.
func LoadEitherCell(s *cell.Slice) (*cell.Cell, error) {
	byRef, err := s.LoadBoolBit()
	if err != nil {
		return nil, fmt.Errorf("load either flag: %w", err)
	}
	if byRef {
		payload, err := s.LoadRefCell()
		if err != nil {
			return nil, fmt.Errorf("load either ref: %w", err)
		}
		return payload, nil
	}
	return LoadRemainder(s)
}

// LoadRemainder consumes everything left in s, bits and references alike,
// into a fresh cell.
func LoadRemainder(s *cell.Slice) (*cell.Cell, error) {
	n := s.BitsLeft()
	data, err := s.LoadSlice(n)
	if err != nil {
		return nil, fmt.Errorf("load remainder: %w", err)
	}
	b := cell.BeginCell()
	if err := b.StoreSlice(data, n); err != nil {
		return nil, capErr(err)
	}
	for s.RefsNum() > 0 {
		ref, err := s.LoadRefCell()
		if err != nil {
			return nil, fmt.Errorf("load remainder ref: %w", err)
		}
		if err := b.StoreRef(ref); err != nil {
			return nil, capErr(err)
		}
	}
	return b.EndCell(), nil
}

// storeCellInline copies payload's bits and references into b.
func storeCellInline(b *cell.Builder, payload *cell.Cell) error {
	s := payload.BeginParse()
	data, err := s.LoadSlice(s.BitsLeft())
	if err != nil {
		return fmt.Errorf("read inline payload: %w", err)
	}
	if err := b.StoreSlice(data, payload.BitsSize()); err != nil {
		return capErr(err)
	}
	for s.RefsNum() > 0 {
		ref, err := s.LoadRefCell()
		if err != nil {
			return fmt.Errorf("read inline payload ref: %w", err)
		}
		if err := b.StoreRef(ref); err != nil {
			return capErr(err)
		}
	}
	return nil
}
