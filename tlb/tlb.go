// Package tlb provides generic, schema-agnostic combinators for TL-B
// encoded fields: Maybe (optional with a child-referenced payload), Either
// (inline-or-referenced payload with an explicit write layout), coins and
// address helpers. All of them operate on the cell builder/parser from
// github.com/xssnick/tonutils-go and report failures through the tonmsg
// error kinds.
package tlb

import (
	"fmt"
	"math/big"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/haouvw/tonmsg"
)

// Object is any value with a fixed TL-B bit layout. Store writes the
// value's encoding into b; the matching read side is a LoadFunc.
type Object interface {
	Store(b *cell.Builder) error
}

// LoadFunc decodes one T from s, consuming exactly T's own layout.
type LoadFunc[T any] func(s *cell.Slice) (T, error)

// StoreMaybe writes Maybe ^T: a single 0 bit for absent, or a 1 bit
// followed by a reference to a fresh cell holding v's own encoding.
func StoreMaybe[T Object](b *cell.Builder, v *T) error {
	if v == nil {
		return capErr(b.StoreBoolBit(false))
	}
	if err := b.StoreBoolBit(true); err != nil {
		return capErr(err)
	}
	inner := cell.BeginCell()
	if err := (*v).Store(inner); err != nil {
		return err
	}
	return capErr(b.StoreRef(inner.EndCell()))
}

// LoadMaybe reads Maybe ^T written by StoreMaybe. A 0 flag yields nil with
// nothing else consumed; a 1 flag consumes exactly one child reference,
// which load must consume in full. Leftovers in the child are a decode
// error.
func LoadMaybe[T any](s *cell.Slice, load LoadFunc[T]) (*T, error) {
	has, err := s.LoadBoolBit()
	if err != nil {
		return nil, fmt.Errorf("load maybe flag: %w", err)
	}
	if !has {
		return nil, nil
	}
	ref, err := s.LoadRef()
	if err != nil {
		return nil, fmt.Errorf("load maybe ref: %w", err)
	}
	v, err := load(ref)
	if err != nil {
		return nil, err
	}
	if err := EnsureEmpty(ref); err != nil {
		return nil, err
	}
	return &v, nil
}

// StoreMaybeCell writes Maybe ^Cell. The payload cell is referenced as-is;
// nil means absent.
func StoreMaybeCell(b *cell.Builder, payload *cell.Cell) error {
	if payload == nil {
		return capErr(b.StoreBoolBit(false))
	}
	if err := b.StoreBoolBit(true); err != nil {
		return capErr(err)
	}
	return capErr(b.StoreRef(payload))
}

// LoadMaybeCell reads Maybe ^Cell, returning nil for absent.
func LoadMaybeCell(s *cell.Slice) (*cell.Cell, error) {
	has, err := s.LoadBoolBit()
	if err != nil {
		return nil, fmt.Errorf("load maybe flag: %w", err)
	}
	if !has {
		return nil, nil
	}
	payload, err := s.LoadRefCell()
	if err != nil {
		return nil, fmt.Errorf("load maybe ref: %w", err)
	}
	return payload, nil
}

// maxCoinsBits is the widest magnitude VarUInteger 16 can carry: a 4-bit
// length prefix counting up to 15 bytes.
const maxCoinsBits = 120

// StoreCoins writes v as a minimal-length VarUInteger 16. Negative values
// and values above 2^120-1 are not representable.
func StoreCoins(b *cell.Builder, v *big.Int) error {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.BitLen() > maxCoinsBits {
		return fmt.Errorf("%w: coins value %s", tonmsg.ErrValueOutOfRange, v)
	}
	return capErr(b.StoreBigCoins(v))
}

// LoadCoins reads a VarUInteger 16 magnitude.
func LoadCoins(s *cell.Slice) (*big.Int, error) {
	v, err := s.LoadBigCoins()
	if err != nil {
		return nil, fmt.Errorf("load coins: %w", err)
	}
	return v, nil
}

// StoreAddr writes a, with nil meaning the canonical addr_none form.
func StoreAddr(b *cell.Builder, a *address.Address) error {
	if a == nil {
		a = address.NewAddressNone()
	}
	return capErr(b.StoreAddr(a))
}

// LoadAddr reads an address. Absent destinations come back as the none
// address, never as nil.
func LoadAddr(s *cell.Slice) (*address.Address, error) {
	a, err := s.LoadAddr()
	if err != nil {
		return nil, fmt.Errorf("load address: %w", err)
	}
	return a, nil
}

// EnsureEmpty asserts that s has no unread bits or references left.
func EnsureEmpty(s *cell.Slice) error {
	if s.BitsLeft() != 0 || s.RefsNum() != 0 {
		return tonmsg.ErrTrailingData
	}
	return nil
}

// capErr tags substrate write failures as capacity errors; by the time a
// value reaches the builder its range has been checked, so the builder only
// fails when bit or reference space runs out.
func capErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", tonmsg.ErrCapacity, err)
}
