package gfx

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileAndLink(t *testing.T) {
	gl := newFakeGL()
	c := NewProgramCache(gl, quietLogger())

	p, err := c.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p == 0 || c.Program() != p {
		t.Fatalf("program = %d, cached = %d", p, c.Program())
	}
	// Only the program survives; both stages were released.
	if len(gl.live) != 1 || !gl.live[uint32(p)] {
		t.Errorf("live objects = %v, expected only program %d", gl.live, p)
	}

	again, err := c.Build()
	if err != nil || again != p {
		t.Errorf("second build = %d, %v; expected cached %d", again, err, p)
	}
}

func TestCompileFailure(t *testing.T) {
	tests := []struct {
		name string
		kind Enum
	}{
		{"vertex", VertexShader},
		{"fragment", FragmentShader},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gl := newFakeGL()
			gl.failCompile[tc.kind] = true
			c := NewProgramCache(gl, quietLogger())

			p, err := c.Build()
			if p != 0 {
				t.Errorf("program = %d, expected 0", p)
			}
			if !errors.Is(err, ErrShaderCompile) {
				t.Fatalf("err = %v, expected ErrShaderCompile", err)
			}
			var serr *ShaderError
			if !errors.As(err, &serr) || serr.Kind != tc.kind || !strings.Contains(serr.Log, "syntax error") {
				t.Errorf("shader error = %+v", serr)
			}
			if len(gl.live) != 0 {
				t.Errorf("leaked objects: %v", gl.live)
			}
		})
	}
}

func TestLinkFailureReleasesEverything(t *testing.T) {
	gl := newFakeGL()
	gl.failLink = true
	c := NewProgramCache(gl, quietLogger())

	p, err := c.Build()
	if p != 0 || !errors.Is(err, ErrProgramLink) {
		t.Fatalf("build = %d, %v; expected 0, ErrProgramLink", p, err)
	}
	if len(gl.live) != 0 {
		t.Errorf("leaked objects: %v", gl.live)
	}
	if c.Program() != 0 {
		t.Error("failed program was cached")
	}
}

func TestReleaseProgram(t *testing.T) {
	gl := newFakeGL()
	c := NewProgramCache(gl, quietLogger())
	if _, err := c.Build(); err != nil {
		t.Fatal(err)
	}
	c.Release()
	c.Release()

	if c.Program() != 0 || len(gl.live) != 0 {
		t.Errorf("program=%d live=%v after release", c.Program(), gl.live)
	}
}
