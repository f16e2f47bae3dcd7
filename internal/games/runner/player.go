package runner

import (
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// MaxJumps is the number of jumps allowed before landing (one double jump).
const MaxJumps = 2

// Player is the runner's character. Its position is the centre of its
// hitbox; y grows downward. The player never moves horizontally.
type Player struct {
	X, Y   float64 // Centre position
	VX, VY float64 // Velocity per tick
	AX, AY float64 // Acceleration for the current tick only

	Width  float64
	Height float64

	Grounded  bool
	JumpsUsed int // 0 on the ground, 1 after a jump, 2 after the double jump

	groundY float64
	physics config.PhysicsConfig
}

// NewPlayer creates a player standing on the ground at its start column.
func NewPlayer(pc config.PlayerConfig, physics config.PhysicsConfig, groundY float64) *Player {
	p := &Player{
		Width:   pc.Width,
		Height:  pc.Height,
		groundY: groundY,
		physics: physics,
	}
	p.Reset(p.StartPosition(pc.X))
	return p
}

// StartPosition returns the centre of a player standing on the ground at x.
func (p *Player) StartPosition(x float64) (float64, float64) {
	return x, p.groundY - p.Height/2
}

// Reset places the player at (x, y) at rest on the ground.
func (p *Player) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.AX, p.AY = 0, 0
	p.Grounded = true
	p.JumpsUsed = 0
}

// ApplyGravity adds the gravity increment to this tick's acceleration.
func (p *Player) ApplyGravity() {
	p.AY += p.physics.Gravity
}

// Jump launches the player from the ground, or performs the double jump
// while airborne. Further presses before landing are ignored.
func (p *Player) Jump() {
	switch {
	case p.Grounded:
		p.VY = p.physics.JumpForce
		p.Grounded = false
		p.JumpsUsed = 1
	case p.JumpsUsed < MaxJumps:
		p.VY = p.physics.DoubleJumpForce
		p.JumpsUsed = MaxJumps
	}
}

// Integrate applies acceleration to velocity and velocity to position,
// then clears acceleration. A player that sank through the ground is put
// back on it.
func (p *Player) Integrate() {
	p.VY += p.AY
	p.VX += p.AX
	p.X += p.VX
	p.Y += p.VY
	p.AX, p.AY = 0, 0

	if p.Bottom() > p.groundY {
		p.land(p.groundY)
	}
}

// CheckGroundCollision lands the player when its lower edge reaches groundY
// while falling or at rest. Above the ground the grounded flag is left as is;
// only Jump clears it.
func (p *Player) CheckGroundCollision(groundY float64) {
	if p.Bottom() >= groundY && p.VY >= 0 {
		p.land(groundY)
	}
}

func (p *Player) land(groundY float64) {
	p.Y = groundY - p.Height/2
	p.VY = 0
	p.Grounded = true
	p.JumpsUsed = 0
}

// Bottom returns the y of the player's lower edge.
func (p *Player) Bottom() float64 {
	return p.Y + p.Height/2
}

// BoundingBox returns the player's hitbox, centred on its position.
func (p *Player) BoundingBox() core.Box {
	return core.CenteredBox(p.X, p.Y, p.Width, p.Height)
}
