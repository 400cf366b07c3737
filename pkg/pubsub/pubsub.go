// Package pubsub fans frame notifications out to subscribers. A slow
// subscriber misses frames rather than stalling the render loop.
package pubsub

import (
	"sync"

	"github.com/hinshun/termwin/pkg/grid"
)

// Frame describes one flushed frame.
type Frame struct {
	Seq    uint64
	Cols   int
	Lines  int
	Region grid.Rect
	Bytes  int
}

type Pubsub struct {
	mu     sync.RWMutex
	subs   map[string]chan Frame
	closed bool
}

func New() *Pubsub {
	return &Pubsub{
		subs: make(map[string]chan Frame),
	}
}

// Subscribe registers ch under id, replacing and closing any channel
// previously registered under the same id.
func (ps *Pubsub) Subscribe(id string, ch chan Frame) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.closed {
		close(ch)
		return
	}

	if sub, ok := ps.subs[id]; ok {
		close(sub)
	}
	ps.subs[id] = ch
}

func (ps *Pubsub) Unsubscribe(id string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.closed {
		return
	}

	ch, ok := ps.subs[id]
	if ok {
		close(ch)
		delete(ps.subs, id)
	}
}

// Publish delivers f to every subscriber with room in its channel and
// returns how many received it.
func (ps *Pubsub) Publish(f Frame) int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.closed {
		return 0
	}

	delivered := 0
	for _, ch := range ps.subs {
		select {
		case ch <- f:
			delivered++
		default:
		}
	}
	return delivered
}

func (ps *Pubsub) Close() error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if !ps.closed {
		ps.closed = true
		for id, ch := range ps.subs {
			close(ch)
			delete(ps.subs, id)
		}
	}

	return nil
}
