package gfx

import (
	"dodge/internal/game"
)

// Target is where a finished frame goes.
type Target interface {
	Size() (width, height int)
	Present() error
}

// Renderer draws a simulation snapshot as flat rectangles.
type Renderer struct {
	gl       GL
	programs *ProgramCache

	verts  [8]float32
	colors [16]float32
}

func NewRenderer(gl GL, programs *ProgramCache) *Renderer {
	return &Renderer{gl: gl, programs: programs}
}

// Render draws one frame and presents it.
func (r *Renderer) Render(snap *game.Snapshot, target Target) error {
	w, h := target.Size()
	r.gl.Viewport(0, 0, w, h)
	bg := Palette.Background
	r.gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	r.gl.Clear(ColorBufferBit)
	r.programs.Use()

	if snap.Player.Active {
		r.drawBody(snap.Player, Palette.Player)
	}
	for i := range snap.Obstacles {
		if snap.Obstacles[i].Active {
			r.drawBody(snap.Obstacles[i], Palette.Obstacle)
		}
	}

	r.gl.Flush()
	r.gl.Finish()
	return target.Present()
}

// drawBody draws b centred on its position as a four-vertex triangle strip.
func (r *Renderer) drawBody(b game.Body, c RGBA) {
	x, y := float32(b.X), float32(b.Y)
	hw, hh := float32(b.Width)/2, float32(b.Height)/2
	r.verts = [8]float32{
		x - hw, y - hh,
		x + hw, y - hh,
		x - hw, y + hh,
		x + hw, y + hh,
	}
	for i := 0; i < 4; i++ {
		r.colors[i*4+0] = c.R
		r.colors[i*4+1] = c.G
		r.colors[i*4+2] = c.B
		r.colors[i*4+3] = c.A
	}

	r.gl.VertexAttribPointer(AttribPosition, 2, r.verts[:])
	r.gl.EnableVertexAttribArray(AttribPosition)
	r.gl.VertexAttribPointer(AttribColor, 4, r.colors[:])
	r.gl.EnableVertexAttribArray(AttribColor)

	r.gl.DrawArrays(TriangleStrip, 0, 4)

	r.gl.DisableVertexAttribArray(AttribPosition)
	r.gl.DisableVertexAttribArray(AttribColor)
}
