package gfx

// Opaque platform handles. The zero value of each is the "none" sentinel.
type (
	Display uintptr
	Config  uintptr
	Surface uintptr
	Context uintptr
)

const (
	NoDisplay Display = 0
	NoConfig  Config  = 0
	NoSurface Surface = 0
	NoContext Context = 0
)

// NativeWindow is whatever the windowing layer hands over for a surface
// (an ANativeWindow pointer, a *glfw.Window, ...). Backends type-assert it.
type NativeWindow any

type ConfigAttribs struct {
	RedSize, GreenSize, BlueSize, AlphaSize int
	WindowSurface                           bool
	ES2Renderable                           bool
}

type SurfaceAttribs struct {
	SRGB bool
}

type ContextAttribs struct {
	ClientVersion int
}

// DefaultConfigAttribs requests an RGBA8888 window-capable ES2 config.
var DefaultConfigAttribs = ConfigAttribs{
	RedSize:       8,
	GreenSize:     8,
	BlueSize:      8,
	AlphaSize:     8,
	WindowSurface: true,
	ES2Renderable: true,
}

// DefaultContextAttribs requests an ES2 feature level.
var DefaultContextAttribs = ContextAttribs{ClientVersion: 2}

// Backend is the EGL-shaped platform layer under SurfaceContext.
// A call that returns a "none" handle with a nil error still counts as a failure.
type Backend interface {
	GetDisplay() (Display, error)
	Initialize(d Display) (major, minor int, err error)
	ChooseConfig(d Display, attribs ConfigAttribs) (Config, error)
	SupportsSRGB(d Display) bool
	CreateWindowSurface(d Display, c Config, win NativeWindow, attribs SurfaceAttribs) (Surface, error)
	CreateContext(d Display, c Config, share Context, attribs ContextAttribs) (Context, error)
	MakeCurrent(d Display, s Surface, ctx Context) error
	SwapBuffers(d Display, s Surface) error
	DestroyContext(d Display, ctx Context) error
	DestroySurface(d Display, s Surface) error
}
