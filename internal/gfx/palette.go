package gfx

// RGBA is a linear float colour.
type RGBA struct {
	R, G, B, A float32
}

var Palette = struct {
	Background RGBA
	Player     RGBA
	Obstacle   RGBA
}{
	Background: RGBA{0.04, 0.04, 0.1, 1},
	Player:     RGBA{0, 1, 1, 1},
	Obstacle:   RGBA{1, 0.2, 0.2, 1},
}
