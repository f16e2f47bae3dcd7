package core

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching bottom edge",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching corner",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "just past the edge",
			a:        CornerBox(0, 0, 10, 10),
			b:        CornerBox(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        CornerBox(0, 0, 20, 20),
			b:        CornerBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "centred against corner anchored",
			a:        CenteredBox(100, 240, 40, 40), // spans 80..120, 220..260
			b:        CornerBox(120, 220, 30, 40),
			expected: true,
		},
		{
			name:     "centred clear of corner anchored",
			a:        CenteredBox(100, 180, 40, 40), // bottom at 200
			b:        CornerBox(110, 201, 30, 59),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAnchors(t *testing.T) {
	c := CenteredBox(50, 50, 20, 10)
	if c.Left != 40 || c.Right != 60 || c.Top != 45 || c.Bottom != 55 {
		t.Errorf("CenteredBox edges = %+v", c)
	}
	if c.Width() != 20 || c.Height() != 10 {
		t.Errorf("CenteredBox size = %vx%v, expected 20x10", c.Width(), c.Height())
	}

	k := CornerBox(50, 50, 20, 10)
	if k.Left != 50 || k.Right != 70 || k.Top != 50 || k.Bottom != 60 {
		t.Errorf("CornerBox edges = %+v", k)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}
