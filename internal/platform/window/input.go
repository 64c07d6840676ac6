package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input snapshot the window reads.
type Input interface {
	// Activated reports a fresh press of Space, Enter, a mouse button or a
	// touch since the previous frame.
	Activated() bool
	// Enter and Escape report fresh presses of those keys.
	Enter() bool
	Escape() bool
	// Backspace reports a fresh press of backspace.
	Backspace() bool
	// Chars returns the characters typed since the previous frame.
	Chars() []rune
}

// ebitenInput reads input from ebiten's global state.
type ebitenInput struct {
	chars   []rune
	touches []ebiten.TouchID
}

func (in *ebitenInput) Activated() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || in.Enter() {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	return len(in.touches) > 0
}

func (in *ebitenInput) Enter() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func (in *ebitenInput) Escape() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (in *ebitenInput) Backspace() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

func (in *ebitenInput) Chars() []rune {
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	return in.chars
}
