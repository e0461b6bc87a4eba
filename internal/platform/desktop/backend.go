//go:build !android

// Package desktop hosts the engine in a glfw window: the window is the
// native surface, glfw's EGL context is the rendering context, and keys map
// onto the control operations.
package desktop

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"dodge/internal/gfx"
)

var errNotGLFWWindow = errors.New("native window is not a *glfw.Window")

// Backend implements gfx.Backend on top of glfw. glfw creates the window and
// its context together, so surface and context creation look the window up
// and check that it matches what was asked for.
type Backend struct {
	hints    gfx.ConfigAttribs
	srgb     bool
	next     uintptr
	pending  *glfw.Window
	surfaces map[gfx.Surface]*glfw.Window
	contexts map[gfx.Context]*glfw.Window
}

// NewBackend returns a backend for windows opened with OpenWindow(hints, ...).
func NewBackend(hints gfx.ConfigAttribs, srgb bool) *Backend {
	return &Backend{
		hints:    hints,
		srgb:     srgb,
		surfaces: make(map[gfx.Surface]*glfw.Window),
		contexts: make(map[gfx.Context]*glfw.Window),
	}
}

func (b *Backend) handle() uintptr {
	b.next++
	return b.next
}

// GetDisplay returns the single glfw "display". glfw must be initialized.
func (b *Backend) GetDisplay() (gfx.Display, error) {
	if glfw.GetPrimaryMonitor() == nil {
		return gfx.NoDisplay, errors.New("no monitor connected")
	}
	return gfx.Display(1), nil
}

func (b *Backend) Initialize(gfx.Display) (int, int, error) {
	major, minor, _ := glfw.GetVersion()
	return major, minor, nil
}

// ChooseConfig accepts attribs the window hints can satisfy.
func (b *Backend) ChooseConfig(_ gfx.Display, attribs gfx.ConfigAttribs) (gfx.Config, error) {
	if !attribs.ES2Renderable || !attribs.WindowSurface {
		return gfx.NoConfig, errors.New("only window-backed ES2 configs are available")
	}
	if attribs.RedSize > b.hints.RedSize || attribs.GreenSize > b.hints.GreenSize ||
		attribs.BlueSize > b.hints.BlueSize || attribs.AlphaSize > b.hints.AlphaSize {
		return gfx.NoConfig, fmt.Errorf("no config with %d-%d-%d-%d colour",
			attribs.RedSize, attribs.GreenSize, attribs.BlueSize, attribs.AlphaSize)
	}
	return gfx.Config(b.handle()), nil
}

func (b *Backend) SupportsSRGB(gfx.Display) bool { return b.srgb }

func (b *Backend) CreateWindowSurface(_ gfx.Display, _ gfx.Config, win gfx.NativeWindow, _ gfx.SurfaceAttribs) (gfx.Surface, error) {
	w, ok := win.(*glfw.Window)
	if !ok || w == nil {
		return gfx.NoSurface, errNotGLFWWindow
	}
	s := gfx.Surface(b.handle())
	b.surfaces[s] = w
	b.pending = w
	return s, nil
}

// CreateContext adopts the context glfw created with the most recent surface.
func (b *Backend) CreateContext(_ gfx.Display, _ gfx.Config, _ gfx.Context, attribs gfx.ContextAttribs) (gfx.Context, error) {
	w := b.pending
	b.pending = nil
	if w == nil {
		return gfx.NoContext, errors.New("no window surface to take a context from")
	}
	if api := w.GetAttrib(glfw.ClientAPI); api != glfw.OpenGLESAPI {
		return gfx.NoContext, fmt.Errorf("window context api %#x is not OpenGL ES", api)
	}
	if major := w.GetAttrib(glfw.ContextVersionMajor); major < attribs.ClientVersion {
		return gfx.NoContext, fmt.Errorf("window context is ES %d, need %d", major, attribs.ClientVersion)
	}
	c := gfx.Context(b.handle())
	b.contexts[c] = w
	return c, nil
}

func (b *Backend) MakeCurrent(_ gfx.Display, s gfx.Surface, c gfx.Context) error {
	w, ok := b.contexts[c]
	if !ok || b.surfaces[s] != w {
		return errors.New("surface and context belong to different windows")
	}
	if glfw.GetCurrentContext() != w {
		w.MakeContextCurrent()
		glfw.SwapInterval(1)
	}
	return nil
}

func (b *Backend) SwapBuffers(_ gfx.Display, s gfx.Surface) error {
	w, ok := b.surfaces[s]
	if !ok {
		return fmt.Errorf("unknown surface %d", s)
	}
	w.SwapBuffers()
	return nil
}

func (b *Backend) DestroyContext(_ gfx.Display, c gfx.Context) error {
	if _, ok := b.contexts[c]; !ok {
		return fmt.Errorf("unknown context %d", c)
	}
	delete(b.contexts, c)
	glfw.DetachCurrentContext()
	return nil
}

// DestroySurface forgets the surface; the window itself belongs to the App.
func (b *Backend) DestroySurface(_ gfx.Display, s gfx.Surface) error {
	if _, ok := b.surfaces[s]; !ok {
		return fmt.Errorf("unknown surface %d", s)
	}
	delete(b.surfaces, s)
	return nil
}
