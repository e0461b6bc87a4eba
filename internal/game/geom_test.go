package game

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 0.5, Y: 0.5, W: 1, H: 1},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 1.5, Y: 0, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 0, Y: -1.5, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "edge adjacent horizontal",
			a:        Rect{X: 0, Y: 0, W: 0.5, H: 1},
			b:        Rect{X: 0.5, Y: 0, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "edge adjacent vertical",
			a:        Rect{X: 0, Y: 0, W: 1, H: 0.25},
			b:        Rect{X: 0, Y: 0.25, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "corner touching",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 1, Y: 1, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "contained",
			a:        Rect{X: -1, Y: -1, W: 2, H: 2},
			b:        Rect{X: -0.1, Y: -0.1, W: 0.2, H: 0.2},
			expected: true,
		},
		{
			name:     "identical",
			a:        Rect{X: 0, Y: -0.8, W: 0.15, H: 0.15},
			b:        Rect{X: 0, Y: -0.8, W: 0.15, H: 0.15},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}
