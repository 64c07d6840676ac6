package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-snickers/internal/config"
)

func newTestManager(seed int64) *ObstacleManager {
	cfg := config.DefaultFlappyConfig()
	return NewObstacleManager(cfg.Field, cfg.Obstacles, rand.New(rand.NewSource(seed)))
}

func TestSpawnGapRange(t *testing.T) {
	om := newTestManager(1)
	seenMin, seenMax := false, false

	for i := 0; i < 5000; i++ {
		om.Reset()
		om.Spawn()
		o := om.Obstacles()[0]

		if o.X != 400 {
			t.Fatalf("spawned at x=%v, expected 400", o.X)
		}
		if o.GapY < 60 || o.GapY > 300 {
			t.Fatalf("gapY %v outside [60, 300]", o.GapY)
		}
		if o.GapY != float64(int(o.GapY)) {
			t.Fatalf("gapY %v should be a whole number", o.GapY)
		}
		seenMin = seenMin || o.GapY == 60
		seenMax = seenMax || o.GapY == 300
	}

	if !seenMin || !seenMax {
		t.Errorf("both range endpoints should be reachable, min=%v max=%v", seenMin, seenMax)
	}
}

func TestSpawnDegenerateRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.MinMargin = 150
	om := NewObstacleManager(cfg.Field, cfg.Obstacles, rand.New(rand.NewSource(1)))

	// 600 - 80 - 160 - 150 = 210 > 150, still valid
	om.Spawn()
	if g := om.Obstacles()[0].GapY; g < 150 || g > 210 {
		t.Errorf("gapY %v outside [150, 210]", g)
	}

	cfg.Obstacles.MinMargin = 180
	om = NewObstacleManager(cfg.Field, cfg.Obstacles, rand.New(rand.NewSource(1)))
	om.Spawn()
	if g := om.Obstacles()[0].GapY; g != 180 {
		t.Errorf("single-point range should place gap at 180, got %v", g)
	}
}

func TestAdvancePreservesOrder(t *testing.T) {
	om := newTestManager(3)
	om.Spawn()
	for i := 0; i < 30; i++ {
		om.Advance(2.5)
	}
	om.Spawn()
	om.Advance(2.5)

	obs := om.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obs))
	}
	if obs[0].X != 400-31*2.5 {
		t.Errorf("front x = %v, expected %v", obs[0].X, 400-31*2.5)
	}
	if obs[1].X != 397.5 {
		t.Errorf("back x = %v, expected 397.5", obs[1].X)
	}
	if obs[0].X >= obs[1].X {
		t.Error("obstacles should stay ordered left to right")
	}
}

func TestRecycleTiming(t *testing.T) {
	om := newTestManager(1)
	om.obstacles = append(om.obstacles, Obstacle{X: 0, GapY: 100}, Obstacle{X: 300, GapY: 100})

	for i := 0; i < 40; i++ {
		om.Advance(2.5)
		if om.Recycle() {
			t.Fatalf("recycled after %d frames, trailing edge at %v", i+1, om.Obstacles()[0].X+100)
		}
	}
	if edge := om.Obstacles()[0].X + 100; edge != 0 {
		t.Fatalf("trailing edge after 40 frames = %v, expected 0", edge)
	}

	om.Advance(2.5)
	if !om.Recycle() {
		t.Fatal("obstacle past the left edge should be recycled")
	}
	if om.Len() != 1 || om.Obstacles()[0].X != 300-41*2.5 {
		t.Errorf("only the front obstacle should be removed, left %+v", om.Obstacles())
	}
	if om.Recycle() {
		t.Error("second Recycle in the same frame should not remove anything")
	}
}

func TestRecycleEmpty(t *testing.T) {
	om := newTestManager(1)
	if om.Recycle() {
		t.Error("Recycle on empty manager should report no pass")
	}
}

func TestCollidesWith(t *testing.T) {
	om := newTestManager(1)
	om.obstacles = append(om.obstacles, Obstacle{X: 50, GapY: 60})

	tests := []struct {
		name     string
		cx, cy   float64
		expected bool
	}{
		{"inside top column", 80, 40, true},
		{"centered in gap", 100, 140, false},
		{"grazing gap top", 100, 84, true},
		{"clear of gap top", 100, 84.5, false},
		{"inside bottom column", 100, 300, true},
		{"left of column", 20, 140, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := om.CollidesWith(tc.cx, tc.cy, 24); got != tc.expected {
				t.Errorf("CollidesWith(%v, %v) = %v, expected %v", tc.cx, tc.cy, got, tc.expected)
			}
		})
	}
}

func TestObstacleRects(t *testing.T) {
	o := Obstacle{X: 200, GapY: 100}

	top := o.TopRect(100)
	if top.X != 200 || top.Y != 0 || top.W != 100 || top.H != 100 {
		t.Errorf("TopRect = %+v", top)
	}

	bottom := o.BottomRect(100, 160, 520)
	if bottom.Y != 260 || bottom.H != 260 {
		t.Errorf("BottomRect = %+v, expected y=260 h=260", bottom)
	}
}
