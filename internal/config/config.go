// Package config provides YAML-based game configuration loading and
// validation. Every physical constant of the game is tunable here without
// touching the simulation code.
package config

import "time"

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Field       FlappyField       `yaml:"field"`
	Avatar      FlappyAvatar      `yaml:"avatar"`
	Physics     FlappyPhysics     `yaml:"physics"`
	Obstacles   FlappyObstacles   `yaml:"obstacles"`
	Scenery     FlappyScenery     `yaml:"scenery"`
	Assets      FlappyAssets      `yaml:"assets"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// FlappyField defines the logical play field.
type FlappyField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y-coordinate of the ground line.
func (f FlappyField) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// FlappyAvatar defines the player avatar.
type FlappyAvatar struct {
	X           float64 `yaml:"x"`
	Size        float64 `yaml:"size"`         // Visual diameter
	HitboxRatio float64 `yaml:"hitbox_ratio"` // Collision radius = size/2 * ratio
}

// Radius returns the collision radius.
func (a FlappyAvatar) Radius() float64 {
	return a.Size / 2 * a.HitboxRatio
}

// FlappyPhysics defines per-frame physics parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"` // Negative = up
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	MinMargin     float64 `yaml:"min_margin"`     // Keeps the gap away from top and ground
	TileHeight    float64 `yaml:"tile_height"`    // Sprite tile height when drawing columns
}

// FlappyScenery defines the cosmetic scrolling background.
type FlappyScenery struct {
	CloudSpeed      float64 `yaml:"cloud_speed"`
	CloudWrapPad    float64 `yaml:"cloud_wrap_pad"` // Clouds wrap at field width + pad
	GroundSpeed     float64 `yaml:"ground_speed"`
	GroundTileWidth float64 `yaml:"ground_tile_width"`
	GroundWrap      float64 `yaml:"ground_wrap"` // 0 means wrap at the tile width
}

// FlappyAssets lists sprite image files. Empty paths use fallback shapes.
type FlappyAssets struct {
	Avatar   string `yaml:"avatar"`
	Obstacle string `yaml:"obstacle"`
}

// LeaderboardConfig configures the remote score endpoint.
type LeaderboardConfig struct {
	URL          string        `yaml:"url"`           // Empty uses the local scores database
	Timeout      time.Duration `yaml:"timeout"`       // Per-request timeout
	DisplayLimit int           `yaml:"display_limit"` // Rows shown on the game over screen
	PlayerName   string        `yaml:"player_name"`   // Skips the initials prompt when set
}
