package engine

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

type LoopState int

const (
	StateUninitialized LoopState = iota
	StateAwaitingFirstSync
	StateRunning
	StateStopped
	StateDestroyed
)

func (s LoopState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAwaitingFirstSync:
		return "awaiting-first-sync"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// SetupFunc brings up graphics on the vsync thread.
type SetupFunc func() error

// FrameFunc executes one frame and reports whether the round has ended.
type FrameFunc func() (ended bool, err error)

// Loop is the frame state machine. Every tick re-arms the next one until the
// frame reports the round ended. Exported methods expect the caller to hold
// guard; vsync callbacks take it themselves.
type Loop struct {
	guard sync.Locker
	vsync VSync
	log   *log.Logger

	setup SetupFunc
	frame FrameFunc

	state  LoopState
	armed  bool // a frame tick is requested and not yet delivered
	frames int
}

func NewLoop(guard sync.Locker, vsync VSync, setup SetupFunc, frame FrameFunc, logger *log.Logger) *Loop {
	return &Loop{
		guard: guard,
		vsync: vsync,
		log:   logger,
		setup: setup,
		frame: frame,
	}
}

func (l *Loop) State() LoopState { return l.state }

// Start requests the one-shot setup tick.
func (l *Loop) Start() error {
	if l.state != StateUninitialized {
		return fmt.Errorf("start loop in state %s", l.state)
	}
	if err := l.vsync.RequestFrame(l.onSetup); err != nil {
		return fmt.Errorf("request setup tick: %w", err)
	}
	l.state = StateAwaitingFirstSync
	return nil
}

// Restart resumes the tick chain of a stopped loop. A running loop keeps its
// existing chain and is only re-armed when it has lost its tick; other states
// are left alone.
func (l *Loop) Restart() {
	switch {
	case l.state == StateStopped:
		l.state = StateRunning
		l.request()
	case l.state == StateRunning && !l.armed:
		l.log.Warn("running loop had no tick pending, re-arming")
		l.request()
	}
}

// Destroy releases the vsync source. Callbacks still in flight see
// StateDestroyed and return.
func (l *Loop) Destroy() {
	if l.state == StateDestroyed {
		return
	}
	l.state = StateDestroyed
	l.vsync.Destroy()
}

func (l *Loop) onSetup(int64) {
	l.guard.Lock()
	defer l.guard.Unlock()
	if l.state != StateAwaitingFirstSync {
		return
	}
	if err := l.setup(); err != nil {
		l.log.Error("graphics setup failed", "error", err)
		l.state = StateUninitialized
		return
	}
	l.state = StateRunning
	l.runFrame()
}

func (l *Loop) onFrame(int64) {
	l.guard.Lock()
	defer l.guard.Unlock()
	l.armed = false
	if l.state != StateRunning {
		return
	}
	l.runFrame()
}

func (l *Loop) runFrame() {
	l.frames++
	ended, err := l.frame()
	if err != nil {
		l.log.Error("frame failed, stopping", "frame", l.frames, "error", err)
		l.state = StateStopped
		return
	}
	if ended {
		l.log.Info("round over, loop stopped", "frames", l.frames)
		l.state = StateStopped
		return
	}
	l.request()
}

func (l *Loop) request() {
	if err := l.vsync.RequestFrame(l.onFrame); err != nil {
		l.log.Error("request tick", "error", err)
		l.state = StateStopped
		return
	}
	l.armed = true
}
