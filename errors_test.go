package tonmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsOpcodeMismatch(t *testing.T) {
	base := &OpcodeMismatchError{Expected: 0x595f07bc, Got: 0x7362d09c}

	got, ok := AsOpcodeMismatch(base)
	if !ok || got.Expected != 0x595f07bc || got.Got != 0x7362d09c {
		t.Fatalf("direct match failed: %v %v", got, ok)
	}

	wrapped := fmt.Errorf("parse body: %w", base)
	if _, ok := AsOpcodeMismatch(wrapped); !ok {
		t.Fatalf("wrapped match failed")
	}

	if _, ok := AsOpcodeMismatch(errors.New("other")); ok {
		t.Fatalf("matched a non-mismatch error")
	}
	if _, ok := AsOpcodeMismatch(nil); ok {
		t.Fatalf("matched nil")
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrTrailingData, ErrCapacity, ErrValueOutOfRange, ErrUnknownOpcode}
	for i, a := range kinds {
		for j, b := range kinds {
			if (i == j) != errors.Is(a, b) {
				t.Fatalf("sentinel identity broken: %v vs %v", a, b)
			}
		}
	}
}

func TestVerifyOpcode(t *testing.T) {
	m := stubMessage{op: 0x0f8a7ea5}
	if err := VerifyOpcode(m, 0x0f8a7ea5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := VerifyOpcode(m, 0x595f07bc)
	mismatch, ok := AsOpcodeMismatch(err)
	if !ok || mismatch.Expected != 0x0f8a7ea5 || mismatch.Got != 0x595f07bc {
		t.Fatalf("bad mismatch: %v", err)
	}
}

type stubMessage struct {
	Message
	op uint32
}

func (s stubMessage) Opcode() uint32 { return s.op }
