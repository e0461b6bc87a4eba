package gfx

import (
	"github.com/charmbracelet/log"
)

// Attribute slots shared by the shaders and the renderer.
const (
	AttribPosition uint32 = 0
	AttribColor    uint32 = 1
)

// Flat colour vertex shader: NDC position passthrough, per-vertex colour.
const FlatVertexSrc = `#version 100
attribute vec4 a_position;
attribute vec4 a_color;
varying vec4 v_color;

void main() {
    gl_Position = a_position;
    v_color = a_color;
}
`

const FlatFragmentSrc = `#version 100
precision mediump float;
varying vec4 v_color;

void main() {
    gl_FragColor = v_color;
}
`

// ProgramCache compiles the flat colour program once per graphics context
// and owns the resulting handle.
type ProgramCache struct {
	gl      GL
	log     *log.Logger
	program Program
}

func NewProgramCache(gl GL, logger *log.Logger) *ProgramCache {
	return &ProgramCache{gl: gl, log: logger}
}

// Build returns the cached flat program, compiling it on first use.
func (c *ProgramCache) Build() (Program, error) {
	if c.program != 0 {
		return c.program, nil
	}
	p, err := c.CompileAndLink(FlatVertexSrc, FlatFragmentSrc)
	if err != nil {
		return 0, err
	}
	c.program = p
	return p, nil
}

// CompileAndLink builds a program from the two sources. Intermediate shader
// objects are always released; on failure the program is released too and
// the returned handle is 0.
func (c *ProgramCache) CompileAndLink(vertSrc, fragSrc string) (Program, error) {
	vs, err := c.compile(VertexShader, vertSrc)
	if err != nil {
		return 0, err
	}
	fs, err := c.compile(FragmentShader, fragSrc)
	if err != nil {
		c.gl.DeleteShader(vs)
		return 0, err
	}

	prog := c.gl.CreateProgram()
	if prog == 0 {
		c.gl.DeleteShader(vs)
		c.gl.DeleteShader(fs)
		return 0, &ShaderError{Log: "glCreateProgram returned 0"}
	}
	c.gl.AttachShader(prog, vs)
	c.gl.AttachShader(prog, fs)
	c.gl.BindAttribLocation(prog, AttribPosition, "a_position")
	c.gl.BindAttribLocation(prog, AttribColor, "a_color")
	c.gl.LinkProgram(prog)

	if c.gl.GetProgrami(prog, LinkStatus) == 0 {
		infoLog := c.gl.GetProgramInfoLog(prog)
		c.log.Error("program link error", "log", infoLog)
		c.gl.DeleteShader(vs)
		c.gl.DeleteShader(fs)
		c.gl.DeleteProgram(prog)
		return 0, &ShaderError{Log: infoLog}
	}

	c.gl.DeleteShader(vs)
	c.gl.DeleteShader(fs)
	return prog, nil
}

func (c *ProgramCache) compile(kind Enum, src string) (Shader, error) {
	sh := c.gl.CreateShader(kind)
	if sh == 0 {
		return 0, &ShaderError{Kind: kind, Log: "glCreateShader returned 0"}
	}
	c.gl.ShaderSource(sh, src)
	c.gl.CompileShader(sh)
	if c.gl.GetShaderi(sh, CompileStatus) == 0 {
		infoLog := c.gl.GetShaderInfoLog(sh)
		c.log.Error("shader compile error", "kind", kindName(kind), "log", infoLog)
		c.gl.DeleteShader(sh)
		return 0, &ShaderError{Kind: kind, Log: infoLog}
	}
	return sh, nil
}

func kindName(kind Enum) string {
	if kind == VertexShader {
		return "vertex"
	}
	return "fragment"
}

func (c *ProgramCache) Program() Program { return c.program }

// Use binds the cached program.
func (c *ProgramCache) Use() {
	c.gl.UseProgram(c.program)
}

// Release deletes the program. The owning context must still be current.
func (c *ProgramCache) Release() {
	if c.program == 0 {
		return
	}
	c.gl.DeleteProgram(c.program)
	c.program = 0
}
