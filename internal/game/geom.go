package game

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether a and b share interior area.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
