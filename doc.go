// Package tonmsg implements typed codecs for TL-B defined message bodies
// carried in TON cells. Each message kind translates between an in-memory
// struct and its canonical bit-exact cell encoding; decoding verifies the
// leading opcode and rejects trailing data.
//
// Components:
//   - Message: the opcode/query-id capability every kind satisfies, with
//     Build producing the canonical cell encoding.
//   - Registry: opcode-keyed dispatcher decoding unknown cells into the
//     registered kind.
//   - tlb: generic Maybe/Either combinators over the cell builder/parser.
//   - jetton: the jetton body family (burn, transfer, transfer notification).
//   - payload: bridges between payload cells and raw bytes, text comments or
//     arbitrary values via a pluggable byte Codec.
//
// The cell/BoC substrate and the address text codec come from
// github.com/xssnick/tonutils-go; this package only drives them.
//
// Build and Parse are pure functions of their input. Every call operates on
// its own builder/parser, so concurrent use on independent cells needs no
// locking.
package tonmsg
