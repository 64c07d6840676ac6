package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flappy-snickers/internal/config"
	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// Obstacle is a column with a passable gap. GapY is fixed at spawn.
type Obstacle struct {
	X    float64 // Left edge
	GapY float64 // Y position where the gap starts (top of gap)
}

// TopRect returns the solid region above the gap.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.GapY)
}

// BottomRect returns the solid region between the gap and the ground line.
func (o Obstacle) BottomRect(width, gap, groundY float64) core.Rect {
	bottomY := o.GapY + gap
	return core.NewRect(o.X, bottomY, width, groundY-bottomY)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// The sequence is kept in spawn order, which is also left-to-right order
// because every obstacle moves at the same speed.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	field     config.FlappyField
	cfg       config.FlappyObstacles
}

// NewObstacleManager creates an empty obstacle manager drawing gap
// positions from rng.
func NewObstacleManager(field config.FlappyField, cfg config.FlappyObstacles, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		field:     field,
		cfg:       cfg,
	}
}

// Reset clears all obstacles.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// Spawn appends an obstacle at the right edge of the field with a gap start
// drawn uniformly from [margin, height - ground - gap - margin].
func (om *ObstacleManager) Spawn() {
	minGapY := om.cfg.MinMargin
	maxGapY := om.field.Height - om.field.GroundHeight - om.cfg.Gap - om.cfg.MinMargin

	gapY := minGapY
	if span := int(math.Floor(maxGapY - minGapY)); span > 0 {
		gapY = minGapY + float64(om.rng.Intn(span+1))
	}

	om.obstacles = append(om.obstacles, Obstacle{
		X:    om.field.Width,
		GapY: gapY,
	})
}

// Advance moves every obstacle left by speed.
func (om *ObstacleManager) Advance(speed float64) {
	for i := range om.obstacles {
		om.obstacles[i].X -= speed
	}
}

// Recycle removes the front obstacle once its trailing edge has left the
// field and reports whether it did. At most one obstacle goes per call.
func (om *ObstacleManager) Recycle() bool {
	if len(om.obstacles) == 0 {
		return false
	}
	if om.obstacles[0].X+om.cfg.Width >= 0 {
		return false
	}
	om.obstacles = append(om.obstacles[:0], om.obstacles[1:]...)
	return true
}

// CollidesWith tests a circle against both solid regions of every obstacle.
func (om *ObstacleManager) CollidesWith(cx, cy, radius float64) bool {
	groundY := om.field.GroundY()
	for _, o := range om.obstacles {
		if o.TopRect(om.cfg.Width).IntersectsCircle(cx, cy, radius) {
			return true
		}
		if o.BottomRect(om.cfg.Width, om.cfg.Gap, groundY).IntersectsCircle(cx, cy, radius) {
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacles, front first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
