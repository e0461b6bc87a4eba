package engine

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"dodge/internal/game"
	"dodge/internal/gfx"
)

// Options carries what every instance is built from.
type Options struct {
	Config  game.Config
	Seed    uint64 // 0 means entropy seeding
	Backend gfx.Backend
	GL      gfx.GL
	VSync   VSyncFactory
	Logger  *log.Logger
}

// Instance is the engine behind one surface: a simulation, its graphics
// resources, the frame loop and the game-over notifier. mu serializes frames
// against control operations.
type Instance struct {
	id   string
	opts Options
	log  *log.Logger

	mu       sync.Mutex
	sim      *game.Simulation
	surface  *gfx.SurfaceContext
	programs *gfx.ProgramCache
	renderer *gfx.Renderer
	loop     *Loop
	notifier *Notifier
	snap     game.Snapshot

	window        gfx.NativeWindow
	width, height int
}

func NewInstance(id string, opts Options) *Instance {
	logger := opts.Logger.With("surface", id)
	sim := game.NewSimulation(opts.Config)
	if opts.Seed != 0 {
		sim.SetSeed(opts.Seed)
	}
	programs := gfx.NewProgramCache(opts.GL, logger)
	inst := &Instance{
		id:       id,
		opts:     opts,
		log:      logger,
		sim:      sim,
		surface:  gfx.NewSurfaceContext(opts.Backend, logger),
		programs: programs,
		renderer: gfx.NewRenderer(opts.GL, programs),
		notifier: NewNotifier(logger),
	}

	sim.Events.Subscribe(game.EventGameOver, func(e game.Event) {
		inst.log.Info("game over", "score", e.Score)
		// Delivery errors are logged by the notifier and never reach the frame.
		_ = inst.notifier.Notify(e.Score)
	})
	sim.Events.Subscribe(game.EventObstacleCleared, func(e game.Event) {
		inst.log.Debug("obstacle cleared", "slot", e.Slot, "score", e.Score)
	})
	sim.Events.Subscribe(game.EventObstacleSpawned, func(e game.Event) {
		inst.log.Debug("obstacle spawned", "slot", e.Slot)
	})
	return inst
}

func (i *Instance) ID() string { return i.id }

// OnSurfaceCreated starts the loop for win. Graphics bring-up waits for the
// first vsync tick and runs on the thread that delivers it. A live loop from
// an earlier surface is torn down first.
func (i *Instance) OnSurfaceCreated(win gfx.NativeWindow, width, height int) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.loop != nil {
		i.teardown()
	}
	i.window = win
	i.width, i.height = width, height

	vsync, err := i.opts.VSync(i.id)
	if err != nil {
		i.log.Error("create vsync source", "error", err)
		return fmt.Errorf("create vsync source: %w", err)
	}
	i.loop = NewLoop(&i.mu, vsync, i.setup, i.frame, i.log)
	if err := i.loop.Start(); err != nil {
		vsync.Destroy()
		i.loop = nil
		i.log.Error("start loop", "error", err)
		return err
	}
	i.log.Info("surface created", "width", width, "height", height)
	return nil
}

// OnSurfaceChanged records the new size; the viewport follows on the next frame.
func (i *Instance) OnSurfaceChanged(win gfx.NativeWindow, width, height int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.width, i.height = width, height
	i.surface.Resize(width, height)
}

// OnSurfaceDestroyed stops the loop and releases everything the instance
// owns. It must run on the thread that owns the graphics context.
func (i *Instance) OnSurfaceDestroyed() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.teardown()
	i.notifier.Release()
	i.log.Info("surface destroyed")
}

// teardown destroys the vsync source before the graphics it drives. The
// destroyed loop stays in place so State reports it.
func (i *Instance) teardown() {
	if i.loop != nil {
		i.loop.Destroy()
	}
	i.programs.Release()
	i.surface.Destroy()
	i.window = nil
}

func (i *Instance) setup() error {
	if err := i.surface.Create(i.window, i.width, i.height); err != nil {
		return err
	}
	if loader, ok := i.opts.GL.(gfx.Loader); ok {
		if err := loader.Init(); err != nil {
			i.surface.Destroy()
			return fmt.Errorf("load gl: %w", err)
		}
	}
	if _, err := i.programs.Build(); err != nil {
		i.surface.Destroy()
		return err
	}
	i.sim.Initialize()
	return nil
}

func (i *Instance) frame() (bool, error) {
	// Ticks are not guaranteed to arrive on the thread that ran setup.
	if err := i.surface.MakeCurrent(); err != nil {
		return false, fmt.Errorf("make current: %w", err)
	}
	i.sim.Step()
	i.sim.SnapshotInto(&i.snap)
	if err := i.renderer.Render(&i.snap, i.surface); err != nil {
		return false, fmt.Errorf("render: %w", err)
	}
	return i.sim.GameOver(), nil
}

func (i *Instance) Move(dir game.Direction) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sim.MovePlayer(dir)
}

// Restart resets the round and resumes a stopped loop.
func (i *Instance) Restart() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sim.Initialize()
	if i.loop != nil {
		i.loop.Restart()
	}
	i.log.Info("round restarted")
}

// SetListener registers fn to receive game-over scores on consumer.
func (i *Instance) SetListener(consumer *EventLoop, fn Listener) {
	i.notifier.Register(consumer, fn)
}

func (i *Instance) State() LoopState {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.loop == nil {
		return StateUninitialized
	}
	return i.loop.State()
}

// Snapshot copies the current simulation state.
func (i *Instance) Snapshot() game.Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	var s game.Snapshot
	i.sim.SnapshotInto(&s)
	return s
}
