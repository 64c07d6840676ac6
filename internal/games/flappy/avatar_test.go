package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-snickers/internal/config"
)

func TestAvatarGravityAndFlap(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig().Avatar, 300)

	a.ApplyGravity(0.5)
	if a.VY != 0.5 || a.Y != 300.5 {
		t.Errorf("after one frame: vy=%v y=%v, expected vy=0.5 y=300.5", a.VY, a.Y)
	}

	a.VY = 12
	a.Flap(-8)
	if a.VY != -8 {
		t.Errorf("Flap should replace velocity, got vy=%v", a.VY)
	}
}

func TestAvatarRadius(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig().Avatar, 300)
	if r := a.Radius(); r != 24 {
		t.Errorf("Radius() = %v, expected 24", r)
	}
}

func TestAvatarOutOfBounds(t *testing.T) {
	base := NewAvatar(config.DefaultFlappyConfig().Avatar, 0)

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"middle", 300, false},
		{"resting on ground line", 496, false},
		{"past ground line", 496.5, true},
		{"touching top", 24, false},
		{"past top", 23.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := base
			a.Y = tc.y
			if got := a.OutOfBounds(520, 0); got != tc.expected {
				t.Errorf("OutOfBounds at y=%v = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}
