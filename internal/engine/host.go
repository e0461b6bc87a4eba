package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"dodge/internal/game"
	"dodge/internal/gfx"
)

// DefaultSurfaceID is the id single-surface hosts use for their one surface.
const DefaultSurfaceID = "A"

var ErrInvalidHandle = errors.New("no engine instance for surface")

// Host routes windowing lifecycle events and control operations to the
// instance registered for each surface id.
type Host struct {
	opts     Options
	consumer *EventLoop
	log      *log.Logger
	registry *Registry
}

// NewHost builds a host whose game-over listeners run on consumer.
func NewHost(opts Options, consumer *EventLoop) *Host {
	h := &Host{
		opts:     opts,
		consumer: consumer,
		log:      opts.Logger,
	}
	h.registry = NewRegistry(func(id string) *Instance {
		return NewInstance(id, h.opts)
	})
	return h
}

func (h *Host) Registry() *Registry { return h.registry }

func (h *Host) OnSurfaceCreated(id string, win gfx.NativeWindow, width, height int) error {
	inst, created := h.registry.GetOrCreate(id)
	if created {
		h.log.Debug("instance created", "surface", id)
	}
	return inst.OnSurfaceCreated(win, width, height)
}

func (h *Host) OnSurfaceChanged(id string, win gfx.NativeWindow, width, height int) error {
	inst, err := h.lookup(id, "surface changed")
	if err != nil {
		return err
	}
	inst.OnSurfaceChanged(win, width, height)
	return nil
}

// OnSurfaceDestroyed tears the instance down and drops it from the registry.
func (h *Host) OnSurfaceDestroyed(id string, win gfx.NativeWindow) error {
	inst, err := h.lookup(id, "surface destroyed")
	if err != nil {
		return err
	}
	inst.OnSurfaceDestroyed()
	h.registry.Remove(id)
	return nil
}

func (h *Host) MoveLeft(id string) error  { return h.move(id, game.Left) }
func (h *Host) MoveRight(id string) error { return h.move(id, game.Right) }

func (h *Host) move(id string, dir game.Direction) error {
	inst, err := h.lookup(id, "move "+dir.String())
	if err != nil {
		return err
	}
	inst.Move(dir)
	return nil
}

func (h *Host) RestartGame(id string) error {
	inst, err := h.lookup(id, "restart")
	if err != nil {
		return err
	}
	inst.Restart()
	return nil
}

// SetGameOverCallback registers fn as the only game-over listener for id.
// The instance is created if the surface has not appeared yet, so a listener
// can be installed before the window exists.
func (h *Host) SetGameOverCallback(id string, fn Listener) {
	inst, _ := h.registry.GetOrCreate(id)
	inst.SetListener(h.consumer, fn)
}

func (h *Host) State(id string) (LoopState, error) {
	inst, ok := h.registry.Lookup(id)
	if !ok {
		return StateUninitialized, fmt.Errorf("%w %q", ErrInvalidHandle, id)
	}
	return inst.State(), nil
}

func (h *Host) Snapshot(id string) (game.Snapshot, error) {
	inst, ok := h.registry.Lookup(id)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w %q", ErrInvalidHandle, id)
	}
	return inst.Snapshot(), nil
}

// Close destroys every instance still registered.
func (h *Host) Close() {
	for _, id := range h.registry.IDs() {
		if inst, ok := h.registry.Lookup(id); ok {
			inst.OnSurfaceDestroyed()
			h.registry.Remove(id)
		}
	}
}

func (h *Host) lookup(id, op string) (*Instance, error) {
	inst, ok := h.registry.Lookup(id)
	if !ok {
		h.log.Warn("operation on unknown surface ignored", "op", op, "surface", id)
		return nil, fmt.Errorf("%s: %w %q", op, ErrInvalidHandle, id)
	}
	return inst, nil
}
