package window

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-snickers/internal/config"
	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/games/flappy"
)

// scriptedInput replays one frame of input per Update.
type scriptedInput struct {
	activated, enter, escape, backspace bool
	chars                               []rune
}

func (s *scriptedInput) Activated() bool { return s.activated }
func (s *scriptedInput) Enter() bool     { return s.enter }
func (s *scriptedInput) Escape() bool    { return s.escape }
func (s *scriptedInput) Backspace() bool { return s.backspace }
func (s *scriptedInput) Chars() []rune   { return s.chars }

func (s *scriptedInput) reset() {
	*s = scriptedInput{}
}

type namesBoard struct {
	names []string
}

func (b *namesBoard) Submit(name string, score int) { b.names = append(b.names, name) }

func (b *namesBoard) FetchTop(limit int) <-chan []core.ScoreEntry {
	ch := make(chan []core.ScoreEntry)
	close(ch)
	return ch
}

func TestAppActivationStartsGame(t *testing.T) {
	game := flappy.New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	in := &scriptedInput{activated: true}
	app := NewApp(game, in)

	if err := app.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v, expected playing", game.Phase())
	}
}

func TestAppEscapeTerminates(t *testing.T) {
	game := flappy.New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	app := NewApp(game, &scriptedInput{escape: true})

	if err := app.Update(); err != ebiten.Termination {
		t.Errorf("Update() = %v, expected ebiten.Termination", err)
	}
}

func TestAppLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantW, wantH  int
	}{
		{"default field", 400, 600, 400, 600},
		{"tall field", 400, 800, 400, 800},
		{"fractional field", 480.5, 640, 481, 640},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Field.Width = tc.width
			cfg.Field.Height = tc.height
			app := NewApp(flappy.New(cfg, rand.New(rand.NewSource(1))), &scriptedInput{})

			w, h := app.Layout(1920, 1080)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("Layout() = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestAppInitials(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.Gap = 400
	cfg.Obstacles.MinMargin = 30

	game := flappy.New(cfg, rand.New(rand.NewSource(1)))
	board := &namesBoard{}
	game.SetLeaderboard(board)
	in := &scriptedInput{}
	app := NewApp(game, in)

	in.activated = true
	app.Update()
	in.reset()
	for i := 0; i < 201; i++ {
		app.Update()
	}
	for i := 0; i < 100 && game.Phase() == flappy.PhasePlaying; i++ {
		in.activated = true
		app.Update()
	}
	in.reset()
	if !game.NeedsInitials() {
		t.Fatalf("expected the initials prompt, phase = %v score = %d", game.Phase(), game.State().Score)
	}

	in.chars = []rune("x-y")
	app.Update()
	in.reset()
	in.backspace = true
	app.Update()
	in.reset()
	in.chars = []rune("zw9")
	app.Update()
	in.reset()

	if got := string(app.initials); got != "xzw" {
		t.Errorf("initials = %q, expected xzw", got)
	}

	in.escape = true
	in.enter = true
	app.Update()
	if game.NeedsInitials() {
		t.Fatal("enter should close the prompt")
	}
	if len(board.names) != 1 || board.names[0] != "XZW" {
		t.Errorf("submitted %v, expected [XZW]", board.names)
	}
}

func TestTextOrigin(t *testing.T) {
	tests := []struct {
		align core.Align
		wantX  float64
	}{
		{core.AlignLeft, 100},
		{core.AlignCenter, 88},
		{core.AlignRight, 76},
	}

	for _, tc := range tests {
		x, y := textOrigin(100, 50, "abcd", tc.align)
		if x != tc.wantX || y != 42 {
			t.Errorf("textOrigin(align=%d) = (%v, %v), expected (%v, 42)", tc.align, x, y, tc.wantX)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := rgba(core.ColorObstacle, 1)
	if c.R != 0xff || c.G != 0x69 || c.B != 0xb4 || c.A != 0xff {
		t.Errorf("rgba(obstacle, 1) = %+v", c)
	}

	half := rgba(core.ColorDefault, 0.5)
	if half.A != 127 || half.R != 127 {
		t.Errorf("rgba(default, 0.5) = %+v, expected premultiplied 127", half)
	}

	if z := rgba(core.ColorText, -1); z.A != 0 {
		t.Errorf("negative alpha should clamp to 0, got %+v", z)
	}
}
