// Package gfx holds the GPU side of the engine: the surface/context lifecycle,
// the flat-colour shader program and the per-frame rectangle renderer.
// All GL access goes through the GL interface so the render path can be driven
// without a display.
package gfx

type (
	Enum    uint32
	Shader  uint32
	Program uint32
)

// GLES2 enum values used by the engine.
const (
	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
	ColorBufferBit Enum = 0x4000
	TriangleStrip  Enum = 0x0005
)

// GL is the subset of OpenGL ES 2.0 the engine issues. Calls must happen on
// the goroutine that made the context current.
type GL interface {
	CreateShader(kind Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, index uint32, name string)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	// VertexAttribPointer points attribute index at a client-side float array.
	// data must stay untouched until the next DrawArrays returns.
	VertexAttribPointer(index uint32, size int, data []float32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	DrawArrays(mode Enum, first, count int)

	Flush()
	Finish()
}

// Loader is implemented by GL bindings that resolve entry points after a
// context is current.
type Loader interface {
	Init() error
}
