package flappy

import (
	"image"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-snickers/internal/assets"
	"github.com/vovakirdan/flappy-snickers/internal/config"
	"github.com/vovakirdan/flappy-snickers/internal/core"
)

type drawCall struct {
	kind  string
	x, y  float64
	w, h  float64
	color core.Color
	text  string
	flip  bool
}

// recordingCanvas captures draw commands for inspection.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, col core.Color) {
	c.calls = append(c.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	c.calls = append(c.calls, drawCall{kind: "circle", x: cx, y: cy, w: r, color: col})
}

func (c *recordingCanvas) Blit(img image.Image, x, y, w, h float64, flipV bool) {
	c.calls = append(c.calls, drawCall{kind: "blit", x: x, y: y, w: w, h: h, flip: flipV})
}

func (c *recordingCanvas) Text(x, y float64, s string, col core.Color, align core.Align) {
	c.calls = append(c.calls, drawCall{kind: "text", x: x, y: y, text: s, color: col})
}

func (c *recordingCanvas) SetAlpha(a float64) {}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.kind == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

func (c *recordingCanvas) count(kind string, col core.Color) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind && call.color == col {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) hasText(sub string) bool {
	for _, s := range c.texts() {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestRenderStartScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	c := &recordingCanvas{}
	g.Render(c)

	if len(c.calls) == 0 || c.calls[0].kind != "rect" || c.calls[0].color != core.ColorSky {
		t.Fatal("the sky should be drawn first")
	}
	if !c.hasText("Flappy Snickers") || !c.hasText("to Start") {
		t.Errorf("start screen texts = %q", c.texts())
	}
	if c.count("circle", core.ColorAvatar) != 0 {
		t.Error("avatar should not be drawn before the first session")
	}
	if c.count("rect", core.ColorGround) != 12 {
		t.Errorf("expected 12 ground tiles, got %d", c.count("rect", core.ColorGround))
	}
	if c.count("rect", core.ColorCloud) != 3 {
		t.Errorf("expected 3 clouds, got %d", c.count("rect", core.ColorCloud))
	}
}

func TestRenderPlayingFallbackShapes(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	g.Step(flapFrame())
	c := &recordingCanvas{}
	g.Render(c)

	if c.count("circle", core.ColorAvatar) != 1 {
		t.Error("missing avatar sprite should fall back to a circle")
	}
	if c.count("rect", core.ColorObstacle) != 2 {
		t.Errorf("one obstacle should draw two columns, got %d", c.count("rect", core.ColorObstacle))
	}
	if !c.hasText("0") {
		t.Error("score should be drawn")
	}
	if c.hasText("to Start") {
		t.Error("start overlay should be gone while playing")
	}
}

func TestRenderSprites(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	g.SetAssets(assets.Set{
		Avatar:   assets.FromImage("avatar", img),
		Obstacle: assets.FromImage("obstacle", img),
	})
	g.Step(flapFrame())
	c := &recordingCanvas{}
	g.Render(c)

	flipped, upright := 0, 0
	for _, call := range c.calls {
		if call.kind != "blit" || call.w != 100 {
			continue
		}
		if call.flip {
			flipped++
		} else {
			upright++
		}
	}
	if flipped == 0 || upright == 0 {
		t.Errorf("obstacle should draw flipped and upright tiles, got %d and %d", flipped, upright)
	}
	if c.count("rect", core.ColorObstacle) != 0 {
		t.Error("fallback rects should not be drawn when the sprite is ready")
	}
}

func TestRenderGameOver(t *testing.T) {
	board := &fakeBoard{rows: []core.ScoreEntry{
		{Name: "AAA", Score: 9}, {Name: "BBB", Score: 7},
	}}
	g := New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	g.SetLeaderboard(board)
	g.Step(flapFrame())
	crash(t, g)
	g.Step(core.NewInputFrame())

	c := &recordingCanvas{}
	g.Render(c)

	if !c.hasText(g.Caption()) || !c.hasText("to Restart") {
		t.Errorf("game over texts = %q", c.texts())
	}
	if !c.hasText("High Scores:") || !c.hasText("1. AAA - 9") || !c.hasText("2. BBB - 7") {
		t.Errorf("leaderboard rows missing, texts = %q", c.texts())
	}
}

func TestRenderInitialsPrompt(t *testing.T) {
	g := New(wideGapConfig(), rand.New(rand.NewSource(3)))
	g.SetLeaderboard(&fakeBoard{})
	g.Step(flapFrame())
	scoreOne(t, g)
	crash(t, g)
	g.SetInitialsDraft("k")

	c := &recordingCanvas{}
	g.Render(c)

	if !c.hasText("Enter your initials") || !c.hasText("K_") {
		t.Errorf("initials prompt missing, texts = %q", c.texts())
	}
}
