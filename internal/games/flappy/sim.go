package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-snickers/internal/config"
)

// Outcome reports what happened during one simulated frame.
type Outcome struct {
	Passed   bool // An obstacle left the field and scored
	Terminal bool // Collision or out-of-bounds ended the session
}

// Simulation is the per-session world: avatar, obstacles, score and the
// cosmetic scroll offsets. It is advanced one frame at a time by Step.
type Simulation struct {
	cfg       config.FlappyConfig
	avatar    Avatar
	obstacles *ObstacleManager
	score     int
	highScore int
	frame     int

	cloudOffset  float64
	groundOffset float64
}

// NewSimulation creates a simulation. Call Reset before stepping.
func NewSimulation(cfg config.FlappyConfig, rng *rand.Rand) *Simulation {
	return &Simulation{
		cfg:       cfg,
		obstacles: NewObstacleManager(cfg.Field, cfg.Obstacles, rng),
	}
}

// Reset starts a new session: avatar at rest mid-field, score and frame
// counter at zero, and a single obstacle at the right edge.
// The high score survives.
func (s *Simulation) Reset() {
	s.avatar = NewAvatar(s.cfg.Avatar, s.cfg.Field.Height/2)
	s.score = 0
	s.frame = 0
	s.cloudOffset = 0
	s.groundOffset = 0
	s.obstacles.Reset()
	s.obstacles.Spawn()
}

// Flap forwards an activation to the avatar.
func (s *Simulation) Flap() {
	s.avatar.Flap(s.cfg.Physics.FlapImpulse)
}

// Step advances one frame: scenery, gravity, bounds, obstacles, scoring,
// then collision. An out-of-bounds avatar ends the frame immediately.
func (s *Simulation) Step() Outcome {
	s.frame++

	s.scroll()

	s.avatar.ApplyGravity(s.cfg.Physics.Gravity)
	if s.avatar.OutOfBounds(s.cfg.Field.GroundY(), 0) {
		return Outcome{Terminal: true}
	}

	if s.frame%s.cfg.Obstacles.SpawnInterval == 0 {
		s.obstacles.Spawn()
	}
	s.obstacles.Advance(s.cfg.Obstacles.Speed)

	var out Outcome
	if s.obstacles.Recycle() {
		s.score++
		if s.score > s.highScore {
			s.highScore = s.score
		}
		out.Passed = true
	}

	if s.obstacles.CollidesWith(s.avatar.X, s.avatar.Y, s.avatar.Radius()) {
		out.Terminal = true
	}
	return out
}

// scroll advances the background offsets. They wrap independently of
// gameplay and never affect collisions.
func (s *Simulation) scroll() {
	sc := s.cfg.Scenery

	s.cloudOffset += sc.CloudSpeed
	if s.cloudOffset > s.cfg.Field.Width+sc.CloudWrapPad {
		s.cloudOffset = 0
	}

	s.groundOffset += sc.GroundSpeed
	if s.groundOffset > sc.GroundWrapAt() {
		s.groundOffset = 0
	}
}

// Score returns the current session score.
func (s *Simulation) Score() int {
	return s.score
}

// HighScore returns the best score since the simulation was created.
func (s *Simulation) HighScore() int {
	return s.highScore
}

// Frame returns the number of frames simulated this session.
func (s *Simulation) Frame() int {
	return s.frame
}

// Avatar returns a copy of the avatar.
func (s *Simulation) Avatar() Avatar {
	return s.avatar
}

// Obstacles returns the live obstacles, front first.
func (s *Simulation) Obstacles() []Obstacle {
	return s.obstacles.Obstacles()
}
