package flappy

import "github.com/vovakirdan/flappy-snickers/internal/config"

// Avatar is the player-controlled body. X never changes during a session.
type Avatar struct {
	X           float64 // Center, fixed
	Y           float64 // Center
	VY          float64 // Vertical velocity, positive = down
	Size        float64 // Visual diameter
	HitboxRatio float64
}

// NewAvatar places an avatar at rest at the given height.
func NewAvatar(cfg config.FlappyAvatar, y float64) Avatar {
	return Avatar{
		X:           cfg.X,
		Y:           y,
		Size:        cfg.Size,
		HitboxRatio: cfg.HitboxRatio,
	}
}

// Radius returns the collision radius, smaller than the sprite.
func (a Avatar) Radius() float64 {
	return a.Size / 2 * a.HitboxRatio
}

// ApplyGravity integrates one frame: velocity first, then position.
func (a *Avatar) ApplyGravity(gravity float64) {
	a.VY += gravity
	a.Y += a.VY
}

// Flap replaces the current velocity with the impulse.
func (a *Avatar) Flap(impulse float64) {
	a.VY = impulse
}

// OutOfBounds reports whether the collision circle crosses the ground line
// or the top of the field.
func (a Avatar) OutOfBounds(groundY, topY float64) bool {
	r := a.Radius()
	return a.Y+r > groundY || a.Y-r < topY
}
