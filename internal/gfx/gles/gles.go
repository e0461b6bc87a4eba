// Package gles implements gfx.GL over go-gl's OpenGL ES bindings.
package gles

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.1/gles2"

	"dodge/internal/gfx"
)

// GL issues real GLES calls. It is bound to the thread holding the context.
type GL struct {
	// Client-side attribute arrays stay pinned until the draw that reads them.
	pinner runtime.Pinner
}

func New() *GL { return &GL{} }

// Init resolves the GLES entry points. Call once the context is current.
func (g *GL) Init() error {
	if err := gles2.Init(); err != nil {
		return fmt.Errorf("gles init: %w", err)
	}
	return nil
}

func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (g *GL) CreateShader(kind gfx.Enum) gfx.Shader {
	return gfx.Shader(gles2.CreateShader(uint32(kind)))
}

func (g *GL) ShaderSource(s gfx.Shader, src string) {
	csources, free := gles2.Strs(cstr(src))
	gles2.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (g *GL) CompileShader(s gfx.Shader) { gles2.CompileShader(uint32(s)) }

func (g *GL) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	var v int32
	gles2.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (g *GL) GetShaderInfoLog(s gfx.Shader) string {
	var logLen int32
	gles2.GetShaderiv(uint32(s), gles2.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen+1))
	gles2.GetShaderInfoLog(uint32(s), logLen, nil, gles2.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (g *GL) DeleteShader(s gfx.Shader) { gles2.DeleteShader(uint32(s)) }

func (g *GL) CreateProgram() gfx.Program { return gfx.Program(gles2.CreateProgram()) }

func (g *GL) AttachShader(p gfx.Program, s gfx.Shader) {
	gles2.AttachShader(uint32(p), uint32(s))
}

func (g *GL) BindAttribLocation(p gfx.Program, index uint32, name string) {
	gles2.BindAttribLocation(uint32(p), index, gles2.Str(cstr(name)))
}

func (g *GL) LinkProgram(p gfx.Program) { gles2.LinkProgram(uint32(p)) }

func (g *GL) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	var v int32
	gles2.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (g *GL) GetProgramInfoLog(p gfx.Program) string {
	var logLen int32
	gles2.GetProgramiv(uint32(p), gles2.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}
	buf := strings.Repeat("\x00", int(logLen+1))
	gles2.GetProgramInfoLog(uint32(p), logLen, nil, gles2.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (g *GL) DeleteProgram(p gfx.Program) { gles2.DeleteProgram(uint32(p)) }
func (g *GL) UseProgram(p gfx.Program)    { gles2.UseProgram(uint32(p)) }

func (g *GL) Viewport(x, y, width, height int) {
	gles2.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (g *GL) ClearColor(r, gg, b, a float32) { gles2.ClearColor(r, gg, b, a) }
func (g *GL) Clear(mask gfx.Enum)            { gles2.Clear(uint32(mask)) }

func (g *GL) VertexAttribPointer(index uint32, size int, data []float32) {
	if len(data) == 0 {
		return
	}
	g.pinner.Pin(&data[0])
	gles2.VertexAttribPointer(index, int32(size), gles2.FLOAT, false, 0, unsafe.Pointer(&data[0]))
}

func (g *GL) EnableVertexAttribArray(index uint32)  { gles2.EnableVertexAttribArray(index) }
func (g *GL) DisableVertexAttribArray(index uint32) { gles2.DisableVertexAttribArray(index) }

func (g *GL) DrawArrays(mode gfx.Enum, first, count int) {
	gles2.DrawArrays(uint32(mode), int32(first), int32(count))
	g.pinner.Unpin()
}

func (g *GL) Flush()  { gles2.Flush() }
func (g *GL) Finish() { gles2.Finish() }

var (
	_ gfx.GL     = (*GL)(nil)
	_ gfx.Loader = (*GL)(nil)
)
