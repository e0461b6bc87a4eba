package gfx

import (
	"github.com/charmbracelet/log"
)

// SurfaceContext owns the display connection, config, window surface and
// rendering context of one engine instance.
type SurfaceContext struct {
	backend Backend
	log     *log.Logger

	window  NativeWindow
	display Display
	config  Config
	surface Surface
	context Context

	width, height int
	major, minor  int
}

func NewSurfaceContext(backend Backend, logger *log.Logger) *SurfaceContext {
	return &SurfaceContext{backend: backend, log: logger}
}

// Create brings the context up in order and makes it current on the calling
// thread. On failure everything created so far is released and the error is a
// *ResourceError naming the stage.
func (sc *SurfaceContext) Create(win NativeWindow, width, height int) error {
	if sc.Ready() {
		sc.Destroy()
	}
	sc.window = win
	sc.width, sc.height = width, height

	d, err := sc.backend.GetDisplay()
	if err != nil || d == NoDisplay {
		return sc.fail(StageDisplay, err)
	}
	sc.display = d

	major, minor, err := sc.backend.Initialize(d)
	if err != nil {
		return sc.fail(StageInitialize, err)
	}
	sc.major, sc.minor = major, minor

	cfg, err := sc.backend.ChooseConfig(d, DefaultConfigAttribs)
	if err != nil || cfg == NoConfig {
		return sc.fail(StageConfig, err)
	}
	sc.config = cfg

	attribs := SurfaceAttribs{SRGB: sc.backend.SupportsSRGB(d)}
	surf, err := sc.backend.CreateWindowSurface(d, cfg, win, attribs)
	if err != nil || surf == NoSurface {
		return sc.fail(StageSurface, err)
	}
	sc.surface = surf

	ctx, err := sc.backend.CreateContext(d, cfg, NoContext, DefaultContextAttribs)
	if err != nil || ctx == NoContext {
		return sc.fail(StageContext, err)
	}
	sc.context = ctx

	if err := sc.backend.MakeCurrent(d, surf, ctx); err != nil {
		return sc.fail(StageMakeCurrent, err)
	}

	sc.log.Info("surface context ready",
		"version", [2]int{major, minor}, "srgb", attribs.SRGB, "width", width, "height", height)
	return nil
}

func (sc *SurfaceContext) fail(stage Stage, err error) error {
	rerr := &ResourceError{Stage: stage, Err: err}
	sc.log.Error("surface bring-up failed", "stage", stage.String(), "error", err)
	sc.Destroy()
	return rerr
}

// Resize only records the new size; the surface tracks the window itself.
func (sc *SurfaceContext) Resize(width, height int) {
	sc.width, sc.height = width, height
}

func (sc *SurfaceContext) Size() (int, int) { return sc.width, sc.height }

// Ready reports whether a context and surface are live.
func (sc *SurfaceContext) Ready() bool {
	return sc.context != NoContext && sc.surface != NoSurface
}

// MakeCurrent rebinds the context to the calling thread.
func (sc *SurfaceContext) MakeCurrent() error {
	if !sc.Ready() {
		return ErrNotReady
	}
	return sc.backend.MakeCurrent(sc.display, sc.surface, sc.context)
}

// Present swaps the surface buffers.
func (sc *SurfaceContext) Present() error {
	if !sc.Ready() {
		return ErrNotReady
	}
	return sc.backend.SwapBuffers(sc.display, sc.surface)
}

// Destroy releases the context, then the surface. Safe to call repeatedly.
// The display connection itself belongs to the platform.
func (sc *SurfaceContext) Destroy() {
	if sc.context != NoContext {
		if err := sc.backend.DestroyContext(sc.display, sc.context); err != nil {
			sc.log.Warn("destroy context", "error", err)
		}
		sc.context = NoContext
	}
	if sc.surface != NoSurface {
		if err := sc.backend.DestroySurface(sc.display, sc.surface); err != nil {
			sc.log.Warn("destroy surface", "error", err)
		}
		sc.surface = NoSurface
	}
	sc.config = NoConfig
	sc.display = NoDisplay
	sc.window = nil
}
