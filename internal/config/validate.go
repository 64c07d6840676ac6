package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// SpawnRange returns the inclusive range the gap-start offset is drawn from.
func (c FlappyConfig) SpawnRange() (minGapY, maxGapY float64) {
	minGapY = c.Obstacles.MinMargin
	maxGapY = c.Field.Height - c.Field.GroundHeight - c.Obstacles.Gap - c.Obstacles.MinMargin
	return minGapY, maxGapY
}

// GroundWrapAt returns the offset at which the ground scroll wraps to zero.
func (s FlappyScenery) GroundWrapAt() float64 {
	if s.GroundWrap > 0 {
		return s.GroundWrap
	}
	return s.GroundTileWidth
}

// Validate reports every degenerate setting at once. A configuration that
// fails here cannot be simulated and must be rejected at startup.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Field.GroundHeight >= 0 && c.Field.GroundHeight < c.Field.Height,
		"field.ground_height must be in [0, height), got %v", c.Field.GroundHeight)

	check(c.Avatar.Size > 0, "avatar.size must be positive, got %v", c.Avatar.Size)
	check(c.Avatar.HitboxRatio > 0 && c.Avatar.HitboxRatio <= 1,
		"avatar.hitbox_ratio must be in (0, 1], got %v", c.Avatar.HitboxRatio)
	check(c.Avatar.X >= 0 && c.Avatar.X <= c.Field.Width,
		"avatar.x must be inside the field, got %v", c.Avatar.X)
	check(2*c.Avatar.Radius() < c.Field.GroundY(),
		"avatar hitbox (%v) does not fit above the ground line (%v)", 2*c.Avatar.Radius(), c.Field.GroundY())

	check(c.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Gap > 0, "obstacles.gap must be positive, got %v", c.Obstacles.Gap)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval)
	check(c.Obstacles.MinMargin >= 0, "obstacles.min_margin must not be negative, got %v", c.Obstacles.MinMargin)
	check(c.Obstacles.TileHeight > 0, "obstacles.tile_height must be positive, got %v", c.Obstacles.TileHeight)

	if minGapY, maxGapY := c.SpawnRange(); maxGapY < minGapY {
		errs = append(errs, fmt.Errorf("%w: no valid gap position: range [%v, %v] is empty", ErrInvalidConfig, minGapY, maxGapY))
	}

	check(c.Scenery.GroundTileWidth > 0, "scenery.ground_tile_width must be positive, got %v", c.Scenery.GroundTileWidth)
	check(c.Scenery.CloudWrapPad >= 0, "scenery.cloud_wrap_pad must not be negative, got %v", c.Scenery.CloudWrapPad)

	check(c.Leaderboard.Timeout >= 0, "leaderboard.timeout must not be negative, got %v", c.Leaderboard.Timeout)
	check(c.Leaderboard.DisplayLimit >= 0, "leaderboard.display_limit must not be negative, got %d", c.Leaderboard.DisplayLimit)

	return errors.Join(errs...)
}
