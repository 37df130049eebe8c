// Package asynchook decouples registry hook callbacks from the parse path:
// events are queued and delivered by worker goroutines, and dropped when
// the queue is full. Use it when the wrapped hooks do anything slower than
// bumping a counter.
//
// usage:
//
//	raw := myMetricsHooks{}
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	reg := tonmsg.NewRegistry(tonmsg.RegistryOptions{Hooks: hooks})
//	jetton.Register(reg)
package asynchook

import (
	"sync"

	"github.com/haouvw/tonmsg"
)

type Hooks struct {
	inner tonmsg.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ tonmsg.Hooks = (*Hooks)(nil)

func New(inner tonmsg.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) UnknownOpcode(op uint32) { h.try(func() { h.inner.UnknownOpcode(op) }) }
func (h *Hooks) ParseFailed(op uint32, err error) {
	h.try(func() { h.inner.ParseFailed(op, err) })
}
