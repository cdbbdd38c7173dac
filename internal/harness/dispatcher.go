package harness

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// DefaultQueueSize is the dispatcher queue capacity used by the harness.
const DefaultQueueSize = 64

// Dispatcher is a cooperative single-threaded work queue bound to a window.
// Work is posted from any goroutine and run by PumpUntilIdle on the
// caller's goroutine, interleaved with layout passes.
type Dispatcher struct {
	window *Window
	queue  chan func()
	closed atomic.Bool
	log    *zap.Logger
}

// NewDispatcher creates a dispatcher with room for size pending work items.
func NewDispatcher(w *Window, size int, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		window: w,
		queue:  make(chan func(), size),
		log:    logger,
	}
}

// Post enqueues fn without blocking.
func (d *Dispatcher) Post(fn func()) error {
	if d.closed.Load() {
		return ErrClosed
	}
	select {
	case d.queue <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// PumpUntilIdle runs queued work and layout passes until the queue is empty
// and the window is clean. Work may post more work or dirty the window; the
// pump keeps going until both settle or ctx is done.
func (d *Dispatcher) PumpUntilIdle(ctx context.Context) error {
	ran, passes := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case fn := <-d.queue:
			fn()
			ran++
			continue
		default:
		}
		if d.window.checkAndClearDirty() {
			d.window.RunLayoutPass()
			passes++
			continue
		}
		d.log.Debug("dispatcher idle", zap.Int("work", ran), zap.Int("passes", passes))
		return nil
	}
}

// Close rejects further posts. Pending work is dropped.
func (d *Dispatcher) Close() {
	d.closed.Store(true)
	for {
		select {
		case <-d.queue:
		default:
			return
		}
	}
}
