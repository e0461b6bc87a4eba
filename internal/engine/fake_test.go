package engine

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"dodge/internal/game"
	"dodge/internal/gfx"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// manualVSync queues callbacks until the test fires them.
type manualVSync struct {
	mu        sync.Mutex
	pending   []FrameCallback
	stale     []FrameCallback
	destroyed bool
	now       int64
}

func (v *manualVSync) RequestFrame(cb FrameCallback) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return ErrVSyncDestroyed
	}
	v.pending = append(v.pending, cb)
	return nil
}

func (v *manualVSync) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	v.stale = append(v.stale, v.pending...)
	v.pending = nil
}

func (v *manualVSync) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// fire delivers the callbacks queued so far, as one display refresh would.
func (v *manualVSync) fire() int {
	v.mu.Lock()
	cbs := v.pending
	v.pending = nil
	v.now += 16_666_667
	now := v.now
	v.mu.Unlock()
	for _, cb := range cbs {
		cb(now)
	}
	return len(cbs)
}

// lose discards the queued callbacks, as a source that dropped a tick would.
func (v *manualVSync) lose() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = nil
}

// fireStale delivers callbacks that were in flight when Destroy ran.
func (v *manualVSync) fireStale() {
	v.mu.Lock()
	cbs := v.stale
	v.stale = nil
	v.mu.Unlock()
	for _, cb := range cbs {
		cb(v.now)
	}
}

type vsyncs struct {
	mu  sync.Mutex
	all map[string]*manualVSync
}

func newVSyncs() *vsyncs {
	return &vsyncs{all: map[string]*manualVSync{}}
}

func (s *vsyncs) factory(name string) (VSync, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &manualVSync{}
	s.all[name] = v
	return v, nil
}

func (s *vsyncs) get(name string) *manualVSync {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.all[name]
}

// stubGL accepts everything; compile failure can be switched on.
type stubGL struct {
	next        uint32
	failCompile bool
	draws       int
	programs    int
}

func (g *stubGL) CreateShader(gfx.Enum) gfx.Shader {
	g.next++
	return gfx.Shader(g.next)
}

func (g *stubGL) ShaderSource(gfx.Shader, string) {}
func (g *stubGL) CompileShader(gfx.Shader)        {}

func (g *stubGL) GetShaderi(_ gfx.Shader, pname gfx.Enum) int {
	if pname == gfx.CompileStatus && g.failCompile {
		return 0
	}
	return 1
}

func (g *stubGL) GetShaderInfoLog(gfx.Shader) string { return "error" }
func (g *stubGL) DeleteShader(gfx.Shader)            {}

func (g *stubGL) CreateProgram() gfx.Program {
	g.next++
	g.programs++
	return gfx.Program(g.next)
}

func (g *stubGL) AttachShader(gfx.Program, gfx.Shader)                    {}
func (g *stubGL) BindAttribLocation(gfx.Program, uint32, string)          {}
func (g *stubGL) LinkProgram(gfx.Program)                                 {}
func (g *stubGL) GetProgrami(gfx.Program, gfx.Enum) int                   { return 1 }
func (g *stubGL) GetProgramInfoLog(gfx.Program) string                    { return "" }
func (g *stubGL) DeleteProgram(gfx.Program)                               { g.programs-- }
func (g *stubGL) UseProgram(gfx.Program)                                  {}
func (g *stubGL) Viewport(x, y, w, h int)                                 {}
func (g *stubGL) ClearColor(r, gr, b, a float32)                          {}
func (g *stubGL) Clear(gfx.Enum)                                          {}
func (g *stubGL) VertexAttribPointer(index uint32, size int, d []float32) {}
func (g *stubGL) EnableVertexAttribArray(uint32)                          {}
func (g *stubGL) DisableVertexAttribArray(uint32)                         {}
func (g *stubGL) DrawArrays(mode gfx.Enum, first, count int)              { g.draws++ }
func (g *stubGL) Flush()                                                  {}
func (g *stubGL) Finish()                                                 {}

// stubBackend hands out handles and counts swaps and context binds.
type stubBackend struct {
	next     uintptr
	failSurf bool
	swaps    int
	binds    int
	surfaces int
	contexts int
}

func (b *stubBackend) id() uintptr {
	b.next++
	return b.next
}

func (b *stubBackend) GetDisplay() (gfx.Display, error)         { return gfx.Display(b.id()), nil }
func (b *stubBackend) Initialize(gfx.Display) (int, int, error) { return 1, 4, nil }
func (b *stubBackend) SupportsSRGB(gfx.Display) bool            { return false }

func (b *stubBackend) MakeCurrent(gfx.Display, gfx.Surface, gfx.Context) error {
	b.binds++
	return nil
}

func (b *stubBackend) ChooseConfig(gfx.Display, gfx.ConfigAttribs) (gfx.Config, error) {
	return gfx.Config(b.id()), nil
}

func (b *stubBackend) CreateWindowSurface(gfx.Display, gfx.Config, gfx.NativeWindow, gfx.SurfaceAttribs) (gfx.Surface, error) {
	if b.failSurf {
		return gfx.NoSurface, errors.New("EGL_BAD_NATIVE_WINDOW")
	}
	b.surfaces++
	return gfx.Surface(b.id()), nil
}

func (b *stubBackend) CreateContext(gfx.Display, gfx.Config, gfx.Context, gfx.ContextAttribs) (gfx.Context, error) {
	b.contexts++
	return gfx.Context(b.id()), nil
}

func (b *stubBackend) SwapBuffers(gfx.Display, gfx.Surface) error {
	b.swaps++
	return nil
}

func (b *stubBackend) DestroyContext(gfx.Display, gfx.Context) error {
	b.contexts--
	return nil
}

func (b *stubBackend) DestroySurface(gfx.Display, gfx.Surface) error {
	b.surfaces--
	return nil
}

type harness struct {
	host     *Host
	consumer *EventLoop
	vsyncs   *vsyncs
	gl       *stubGL
	backend  *stubBackend
}

func newHarness() *harness {
	h := &harness{
		consumer: NewEventLoop("consumer", 8),
		vsyncs:   newVSyncs(),
		gl:       &stubGL{},
		backend:  &stubBackend{},
	}
	h.host = NewHost(Options{
		Config:  game.DefaultConfig(),
		Seed:    4242,
		Backend: h.backend,
		GL:      h.gl,
		VSync:   h.vsyncs.factory,
		Logger:  quietLogger(),
	}, h.consumer)
	return h
}

// running brings surface id up to the Running state.
func (h *harness) running(id string) *manualVSync {
	if err := h.host.OnSurfaceCreated(id, "window", 480, 800); err != nil {
		panic(err)
	}
	v := h.vsyncs.get(id)
	v.fire()
	return v
}

func (h *harness) instance(id string) *Instance {
	inst, ok := h.host.Registry().Lookup(id)
	if !ok {
		panic("no instance " + id)
	}
	return inst
}
