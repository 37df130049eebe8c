package tlb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/tvm/cell"
)

func smallPayload() *cell.Cell {
	return cell.BeginCell().MustStoreUInt(0xbeef, 16).EndCell()
}

func TestEitherNativeInlinesWhenFitting(t *testing.T) {
	payload := smallPayload()

	b := cell.BeginCell()
	require.NoError(t, StoreEitherCell(b, payload, EitherNative))
	c := b.EndCell()

	// flag 0, payload bits follow in the same cell, no references
	s := c.BeginParse()
	byRef, err := s.LoadBoolBit()
	require.NoError(t, err)
	require.False(t, byRef)
	require.EqualValues(t, 17, c.BitsSize())

	got, err := LoadEitherCell(c.BeginParse())
	require.NoError(t, err)
	require.Equal(t, payload.Hash(), got.Hash())
}

func TestEitherForceRef(t *testing.T) {
	payload := smallPayload()

	b := cell.BeginCell()
	require.NoError(t, StoreEitherCell(b, payload, EitherForceRef))
	c := b.EndCell()

	s := c.BeginParse()
	byRef, err := s.LoadBoolBit()
	require.NoError(t, err)
	require.True(t, byRef)

	got, err := LoadEitherCell(c.BeginParse())
	require.NoError(t, err)
	require.Equal(t, payload.Hash(), got.Hash())
}

func TestEitherLayoutsDiverge(t *testing.T) {
	payload := smallPayload()

	native := cell.BeginCell()
	require.NoError(t, StoreEitherCell(native, payload, EitherNative))
	forced := cell.BeginCell()
	require.NoError(t, StoreEitherCell(forced, payload, EitherForceRef))

	// same value, different bits; the convention is not inferable from the
	// value, which is why the caller has to state it
	require.NotEqual(t, native.EndCell().Hash(), forced.EndCell().Hash())
}

func TestEitherNativeFallsBackToRef(t *testing.T) {
	// leave less room than the payload needs
	b := cell.BeginCell()
	require.NoError(t, b.StoreSlice(make([]byte, 125), 1000))

	payload := cell.BeginCell().MustStoreUInt(0xdeadbeef, 32).EndCell()
	require.NoError(t, StoreEitherCell(b, payload, EitherNative))
	c := b.EndCell()

	s := c.BeginParse()
	_, err := s.LoadSlice(1000)
	require.NoError(t, err)
	got, err := LoadEitherCell(s)
	require.NoError(t, err)
	require.Equal(t, payload.Hash(), got.Hash())
	require.NoError(t, EnsureEmpty(s))
}

func TestEitherNativeFallsBackWhenRefsDontFit(t *testing.T) {
	// bits fit easily, but only one reference slot is left and the payload
	// carries two; by-ref takes the single remaining slot
	b := cell.BeginCell()
	for i := 0; i < 3; i++ {
		require.NoError(t, b.StoreRef(cell.BeginCell().EndCell()))
	}

	pb := cell.BeginCell()
	require.NoError(t, pb.StoreUInt(0xaa, 8))
	require.NoError(t, pb.StoreRef(cell.BeginCell().MustStoreUInt(1, 8).EndCell()))
	require.NoError(t, pb.StoreRef(cell.BeginCell().MustStoreUInt(2, 8).EndCell()))
	payload := pb.EndCell()

	require.NoError(t, StoreEitherCell(b, payload, EitherNative))
	c := b.EndCell()

	s := c.BeginParse()
	for i := 0; i < 3; i++ {
		_, err := s.LoadRefCell()
		require.NoError(t, err)
	}
	got, err := LoadEitherCell(s)
	require.NoError(t, err)
	require.Equal(t, payload.Hash(), got.Hash())
	require.NoError(t, EnsureEmpty(s))
}

func TestEitherInlineCopiesRefs(t *testing.T) {
	child := cell.BeginCell().MustStoreUInt(5, 8).EndCell()
	pb := cell.BeginCell()
	require.NoError(t, pb.StoreUInt(0xaa, 8))
	require.NoError(t, pb.StoreRef(child))
	payload := pb.EndCell()

	b := cell.BeginCell()
	require.NoError(t, StoreEitherCell(b, payload, EitherNative))

	got, err := LoadEitherCell(b.EndCell().BeginParse())
	require.NoError(t, err)
	require.Equal(t, payload.Hash(), got.Hash())
}

func TestEitherNilPayloadIsEmptyCell(t *testing.T) {
	b := cell.BeginCell()
	require.NoError(t, StoreEitherCell(b, nil, EitherNative))
	c := b.EndCell()

	got, err := LoadEitherCell(c.BeginParse())
	require.NoError(t, err)
	require.EqualValues(t, 0, got.BitsSize())
}

func TestEitherRejectsUnknownLayout(t *testing.T) {
	b := cell.BeginCell()
	err := StoreEitherCell(b, smallPayload(), EitherLayout(250))
	require.Error(t, err)
}
