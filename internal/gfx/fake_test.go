package gfx

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// fakeGL records calls and hands out sequential handles.
type fakeGL struct {
	next uint32

	failCompile map[Enum]bool
	failLink    bool

	kinds   map[Shader]Enum
	live    map[uint32]bool
	calls   []string
	draws   int
	enabled map[uint32]bool
	attribs map[uint32][]float32
	drawn   [][]float32 // position arrays seen at draw time
	colors  [][]float32
	used    Program
	view    [4]int
	cleared int
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		failCompile: map[Enum]bool{},
		kinds:       map[Shader]Enum{},
		live:        map[uint32]bool{},
		enabled:     map[uint32]bool{},
		attribs:     map[uint32][]float32{},
	}
}

func (f *fakeGL) alloc() uint32 {
	f.next++
	f.live[f.next] = true
	return f.next
}

func (f *fakeGL) record(s string) { f.calls = append(f.calls, s) }

func (f *fakeGL) CreateShader(kind Enum) Shader {
	sh := Shader(f.alloc())
	f.kinds[sh] = kind
	return sh
}

func (f *fakeGL) ShaderSource(Shader, string) {}
func (f *fakeGL) CompileShader(Shader)        {}

func (f *fakeGL) GetShaderi(s Shader, pname Enum) int {
	if pname == CompileStatus && f.failCompile[f.kinds[s]] {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(Shader) string { return "ERROR: 0:1: syntax error" }

func (f *fakeGL) DeleteShader(s Shader) {
	f.record("DeleteShader")
	delete(f.live, uint32(s))
}

func (f *fakeGL) CreateProgram() Program                     { return Program(f.alloc()) }
func (f *fakeGL) AttachShader(Program, Shader)               {}
func (f *fakeGL) BindAttribLocation(Program, uint32, string) {}
func (f *fakeGL) LinkProgram(Program)                        {}

func (f *fakeGL) GetProgrami(p Program, pname Enum) int {
	if pname == LinkStatus && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeGL) GetProgramInfoLog(Program) string { return "link: unresolved varying" }

func (f *fakeGL) DeleteProgram(p Program) {
	f.record("DeleteProgram")
	delete(f.live, uint32(p))
}

func (f *fakeGL) UseProgram(p Program) {
	f.record("UseProgram")
	f.used = p
}

func (f *fakeGL) Viewport(x, y, w, h int) {
	f.record("Viewport")
	f.view = [4]int{x, y, w, h}
}

func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor") }

func (f *fakeGL) Clear(Enum) {
	f.record("Clear")
	f.cleared++
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int, data []float32) {
	f.attribs[index] = data
}

func (f *fakeGL) EnableVertexAttribArray(index uint32)  { f.enabled[index] = true }
func (f *fakeGL) DisableVertexAttribArray(index uint32) { f.enabled[index] = false }

func (f *fakeGL) DrawArrays(mode Enum, first, count int) {
	f.record("DrawArrays")
	f.draws++
	if !f.enabled[AttribPosition] || !f.enabled[AttribColor] {
		f.record("DrawArrays:attrib-disabled")
	}
	f.drawn = append(f.drawn, append([]float32(nil), f.attribs[AttribPosition]...))
	f.colors = append(f.colors, append([]float32(nil), f.attribs[AttribColor]...))
}

func (f *fakeGL) Flush()  { f.record("Flush") }
func (f *fakeGL) Finish() { f.record("Finish") }

// fakeBackend succeeds unless told to fail a stage.
type fakeBackend struct {
	failAt  Stage
	failErr error
	fail    bool
	srgb    bool

	next      uintptr
	surfaces  map[Surface]bool
	contexts  map[Context]bool
	order     []string
	swaps     int
	surfAttrs SurfaceAttribs
	ctxAttrs  ContextAttribs
	cfgAttrs  ConfigAttribs
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		surfaces: map[Surface]bool{},
		contexts: map[Context]bool{},
	}
}

func (b *fakeBackend) failing(s Stage) bool { return b.fail && b.failAt == s }

func (b *fakeBackend) id() uintptr {
	b.next++
	return b.next
}

func (b *fakeBackend) GetDisplay() (Display, error) {
	if b.failing(StageDisplay) {
		return NoDisplay, nil
	}
	return Display(b.id()), nil
}

func (b *fakeBackend) Initialize(Display) (int, int, error) {
	if b.failing(StageInitialize) {
		return 0, 0, b.failErr
	}
	return 1, 5, nil
}

func (b *fakeBackend) ChooseConfig(d Display, attribs ConfigAttribs) (Config, error) {
	b.cfgAttrs = attribs
	if b.failing(StageConfig) {
		return NoConfig, b.failErr
	}
	return Config(b.id()), nil
}

func (b *fakeBackend) SupportsSRGB(Display) bool { return b.srgb }

func (b *fakeBackend) CreateWindowSurface(d Display, c Config, win NativeWindow, attribs SurfaceAttribs) (Surface, error) {
	b.surfAttrs = attribs
	if b.failing(StageSurface) {
		return NoSurface, nil
	}
	s := Surface(b.id())
	b.surfaces[s] = true
	return s, nil
}

func (b *fakeBackend) CreateContext(d Display, c Config, share Context, attribs ContextAttribs) (Context, error) {
	b.ctxAttrs = attribs
	if b.failing(StageContext) {
		return NoContext, b.failErr
	}
	ctx := Context(b.id())
	b.contexts[ctx] = true
	return ctx, nil
}

func (b *fakeBackend) MakeCurrent(Display, Surface, Context) error {
	if b.failing(StageMakeCurrent) {
		return errors.New("EGL_BAD_MATCH")
	}
	return nil
}

func (b *fakeBackend) SwapBuffers(Display, Surface) error {
	b.swaps++
	return nil
}

func (b *fakeBackend) DestroyContext(d Display, ctx Context) error {
	b.order = append(b.order, "context")
	delete(b.contexts, ctx)
	return nil
}

func (b *fakeBackend) DestroySurface(d Display, s Surface) error {
	b.order = append(b.order, "surface")
	delete(b.surfaces, s)
	return nil
}
