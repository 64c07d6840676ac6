package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:        400,
			Height:       600,
			GroundHeight: 80,
		},
		Avatar: FlappyAvatar{
			X:           80,
			Size:        80,
			HitboxRatio: 0.6,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -8,
		},
		Obstacles: FlappyObstacles{
			Width:         100,
			Gap:           160,
			Speed:         2.5,
			SpawnInterval: 90,
			MinMargin:     60,
			TileHeight:    230,
		},
		Scenery: FlappyScenery{
			CloudSpeed:      0.3,
			CloudWrapPad:    120,
			GroundSpeed:     2.5,
			GroundTileWidth: 40,
		},
		Leaderboard: LeaderboardConfig{
			Timeout:      5 * time.Second,
			DisplayLimit: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
