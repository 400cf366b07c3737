package command

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// InterruptHandler cancels a context when the process receives one of its
// signals.
type InterruptHandler struct {
	ch   chan os.Signal
	done chan struct{}
	once sync.Once
}

func NewInterruptHandler(cancel context.CancelFunc, sigs ...os.Signal) *InterruptHandler {
	ih := &InterruptHandler{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(ih.ch, sigs...)

	go func() {
		select {
		case <-ih.ch:
			cancel()
		case <-ih.done:
		}
	}()
	return ih
}

// Close stops signal delivery. It is safe to call more than once.
func (ih *InterruptHandler) Close() error {
	ih.once.Do(func() {
		signal.Stop(ih.ch)
		close(ih.done)
	})
	return nil
}
