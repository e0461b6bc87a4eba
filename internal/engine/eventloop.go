// Package engine wires the simulation and the GPU path into per-surface
// instances driven by vsync ticks, and delivers game-over notifications to
// the host's own execution context.
package engine

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrLoopClosed    = errors.New("event loop closed")
	ErrLoopSaturated = errors.New("event loop queue full")
)

// EventLoop is a bounded queue of closures executed by exactly one goroutine.
// It stands for one execution context: the render thread or the host's UI
// thread. Posting never blocks.
type EventLoop struct {
	name  string
	queue chan func()

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewEventLoop(name string, capacity int) *EventLoop {
	if capacity <= 0 {
		capacity = 64
	}
	return &EventLoop{
		name:  name,
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

func (l *EventLoop) Name() string { return l.name }
func (l *EventLoop) Pending() int { return len(l.queue) }

// Post enqueues fn for the loop's goroutine.
func (l *EventLoop) Post(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrLoopClosed
	}
	select {
	case l.queue <- fn:
		return nil
	default:
		return ErrLoopSaturated
	}
}

// Run executes posted closures until ctx is done or the loop is closed.
func (l *EventLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Drain runs whatever is queued right now and returns how many closures ran.
// Closures posted while draining wait for the next call.
func (l *EventLoop) Drain() int {
	n := len(l.queue)
	ran := 0
	for ; ran < n; ran++ {
		select {
		case fn := <-l.queue:
			fn()
		default:
			return ran
		}
	}
	return ran
}

// Close stops accepting work. Queued closures that have not run are dropped.
func (l *EventLoop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.done)
}
