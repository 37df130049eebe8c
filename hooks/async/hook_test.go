package asynchook

import (
	"errors"
	"sync"
	"testing"
)

type recording struct {
	mu      sync.Mutex
	unknown []uint32
	failed  []uint32
}

func (r *recording) UnknownOpcode(op uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unknown = append(r.unknown, op)
}

func (r *recording) ParseFailed(op uint32, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, op)
}

func TestDeliversAfterClose(t *testing.T) {
	inner := &recording{}
	h := New(inner, 2, 16)

	h.UnknownOpcode(0xdeadbeef)
	h.ParseFailed(0x595f07bc, errors.New("boom"))
	h.Close() // drains the queue

	if len(inner.unknown) != 1 || inner.unknown[0] != 0xdeadbeef {
		t.Fatalf("unknown not delivered: %v", inner.unknown)
	}
	if len(inner.failed) != 1 || inner.failed[0] != 0x595f07bc {
		t.Fatalf("failed not delivered: %v", inner.failed)
	}
}

// blocking stalls the single worker so the queue can be driven to overflow.
type blocking struct {
	recording
	gate chan struct{}
}

func (b *blocking) UnknownOpcode(op uint32) {
	<-b.gate
	b.recording.UnknownOpcode(op)
}

func TestDropsWhenQueueFull(t *testing.T) {
	inner := &blocking{gate: make(chan struct{})}
	h := New(inner, 1, 1)

	// the worker holds at most one event; the queue one more; the third
	// must be dropped, never blocked on
	h.UnknownOpcode(1)
	h.UnknownOpcode(2)
	h.UnknownOpcode(3)

	close(inner.gate)
	h.Close()

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if n := len(inner.unknown); n < 1 || n > 2 {
		t.Fatalf("expected 1-2 delivered events, got %d", n)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&recording{}, 1, 1)
	h.Close()
	h.Close()
}
