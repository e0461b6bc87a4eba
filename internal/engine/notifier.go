package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

var ErrNotificationDropped = errors.New("game-over notification dropped")

// Listener receives the final score of a finished round.
type Listener func(score int)

// Notifier holds at most one listener and hands notifications to the
// listener's event loop without waiting for them to run.
type Notifier struct {
	log *log.Logger

	mu       sync.Mutex
	loop     *EventLoop
	listener Listener
	gen      uint64
	released bool
}

func NewNotifier(logger *log.Logger) *Notifier {
	return &Notifier{log: logger}
}

// Register installs fn to run on loop, replacing any earlier listener.
// A notification already queued for the old listener will not reach it.
func (n *Notifier) Register(loop *EventLoop, fn Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	n.loop = loop
	n.listener = fn
	n.released = false
}

// Notify queues score for the current listener. It never blocks and never
// retries: without a live registration or with a full queue the
// notification is dropped and logged.
func (n *Notifier) Notify(score int) error {
	n.mu.Lock()
	loop, fn, gen := n.loop, n.listener, n.gen
	released := n.released
	n.mu.Unlock()

	if released || loop == nil || fn == nil {
		n.log.Warn("no game-over listener, dropping", "score", score)
		return ErrNotificationDropped
	}

	err := loop.Post(func() {
		if n.current(gen) {
			fn(score)
		}
	})
	if err != nil {
		n.log.Warn("game-over notification dropped", "score", score, "loop", loop.Name(), "error", err)
		return fmt.Errorf("%w: %w", ErrNotificationDropped, err)
	}
	return nil
}

func (n *Notifier) current(gen uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.released && n.gen == gen
}

// Release drops the registration. Notifications still queued become no-ops.
func (n *Notifier) Release() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	n.loop = nil
	n.listener = nil
	n.released = true
}
