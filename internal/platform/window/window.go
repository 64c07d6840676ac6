// Package window hosts the game in a desktop window through Ebitengine.
// The logical play field is the layout size; ebiten scales it to the
// window.
package window

import (
	"errors"
	"math"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-snickers/internal/core"
	"github.com/vovakirdan/flappy-snickers/internal/games/flappy"
)

// Options configures the window.
type Options struct {
	TickRate int
	Scale    float64 // Initial window size relative to the play field
}

// App adapts a game to ebiten.Game.
type App struct {
	game     *flappy.Game
	input    Input
	canvas   *ImageCanvas
	frame    core.InputFrame
	initials []rune
}

// NewApp creates an app reading from in. A nil in uses the keyboard,
// mouse and touch state of the running window.
func NewApp(game *flappy.Game, in Input) *App {
	if in == nil {
		in = &ebitenInput{}
	}
	return &App{
		game:   game,
		input:  in,
		canvas: NewImageCanvas(),
		frame:  core.NewInputFrame(),
	}
}

// Update polls input and advances one frame. Escape outside the initials
// prompt ends the program.
func (a *App) Update() error {
	if a.game.NeedsInitials() {
		a.updateInitials()
	} else {
		if a.input.Escape() {
			return ebiten.Termination
		}
		if a.input.Activated() {
			a.frame.Set(core.ActionFlap)
		}
	}

	a.game.Step(a.frame)
	a.frame.Clear()
	return nil
}

func (a *App) updateInitials() {
	switch {
	case a.input.Enter():
		a.game.SubmitInitials(string(a.initials))
		a.initials = a.initials[:0]
		return
	case a.input.Escape():
		a.game.SkipInitials()
		a.initials = a.initials[:0]
		return
	case a.input.Backspace() && len(a.initials) > 0:
		a.initials = a.initials[:len(a.initials)-1]
	}

	for _, r := range a.input.Chars() {
		if len(a.initials) >= core.MaxNameLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			a.initials = append(a.initials, r)
		}
	}
	a.game.SetInitialsDraft(string(a.initials))
}

// Draw renders the game.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Begin(screen)
	a.game.Render(a.canvas)
}

// Layout fixes the logical screen size to the play field.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.game.FieldSize()
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	w, h := game.FieldSize()
	ebiten.SetWindowSize(int(w*opts.Scale), int(h*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	err := ebiten.RunGame(NewApp(game, nil))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
