package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var ErrVSyncDestroyed = errors.New("vsync source destroyed")

// FrameCallback runs once per requested tick with the tick's timestamp.
type FrameCallback func(frameTimeNanos int64)

// VSync delivers each requested callback exactly once, asynchronously, no
// sooner than the next display refresh. There is no periodic mode. A source
// that cannot deliver on the requested refresh delivers on a later one.
type VSync interface {
	RequestFrame(cb FrameCallback) error
	Destroy()
}

// VSyncFactory creates the vsync source for one instance.
type VSyncFactory func(name string) (VSync, error)

// TickerVSync emulates a display vsync with one-shot timers phase-locked to
// the refresh period. Callbacks run on the render event loop.
type TickerVSync struct {
	loop   *EventLoop
	period time.Duration
	log    *log.Logger
	wake   func()

	mu        sync.Mutex
	epoch     time.Time
	last      time.Time
	timer     *time.Timer
	destroyed bool
}

func NewTickerVSync(loop *EventLoop, refreshHz int, logger *log.Logger) *TickerVSync {
	if refreshHz <= 0 {
		refreshHz = 60
	}
	return &TickerVSync{
		loop:   loop,
		period: time.Second / time.Duration(refreshHz),
		log:    logger,
		epoch:  time.Now(),
	}
}

func (v *TickerVSync) Period() time.Duration { return v.period }

// SetWake installs fn to be called after each tick is queued, for render
// loops that sleep in a platform event wait. Call before the first request.
func (v *TickerVSync) SetWake(fn func()) { v.wake = fn }

func (v *TickerVSync) RequestFrame(cb FrameCallback) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return ErrVSyncDestroyed
	}

	now := time.Now()
	due := v.epoch.Add((now.Sub(v.epoch)/v.period + 1) * v.period)
	if !due.After(v.last) {
		due = v.last.Add(v.period)
	}
	v.last = due
	v.timer = time.AfterFunc(due.Sub(now), func() { v.deliver(cb, due) })
	return nil
}

func (v *TickerVSync) deliver(cb FrameCallback, due time.Time) {
	err := v.loop.Post(func() {
		if v.isDestroyed() {
			return
		}
		cb(due.UnixNano())
	})
	switch {
	case err == nil:
		if v.wake != nil {
			v.wake()
		}
	case errors.Is(err, ErrLoopSaturated):
		v.postpone(cb, due)
	case !v.isDestroyed():
		v.log.Warn("vsync tick dropped", "loop", v.loop.Name(), "error", err)
	}
}

// postpone moves a tick the loop had no room for to the next refresh boundary.
// The requester still gets exactly one callback.
func (v *TickerVSync) postpone(cb FrameCallback, due time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	next := due.Add(v.period)
	if next.After(v.last) {
		v.last = next
	}
	v.log.Debug("vsync tick deferred, loop saturated", "loop", v.loop.Name())
	v.timer = time.AfterFunc(time.Until(next), func() { v.deliver(cb, next) })
}

func (v *TickerVSync) isDestroyed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destroyed
}

// Destroy cancels the pending tick. Ticks already queued on the loop no-op.
func (v *TickerVSync) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
