package runner

import "github.com/vovakirdan/neon-runner/internal/core"

// Obstacle is a ground block the player must jump over.
// Its position is the top-left corner of its hitbox.
type Obstacle struct {
	X, Y      float64
	Width     float64
	Height    float64
	ColorSeed int // Renderer-only, opaque to the simulation
}

// Advance moves the obstacle left by speed (field units per tick).
func (o *Obstacle) Advance(speed float64) {
	o.X -= speed
}

// IsOffscreen reports whether the obstacle's right edge has passed the
// left edge of the field.
func (o Obstacle) IsOffscreen() bool {
	return o.X+o.Width < 0
}

// BoundingBox returns the obstacle's hitbox, anchored at its top-left corner.
func (o Obstacle) BoundingBox() core.Box {
	return core.CornerBox(o.X, o.Y, o.Width, o.Height)
}
