package window

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// Debug font metrics.
const (
	glyphW = 6
	glyphH = 16
)

// ImageCanvas draws canvas commands onto an ebiten image in logical units.
type ImageCanvas struct {
	dst     *ebiten.Image
	alpha   float64
	sprites map[image.Image]*ebiten.Image
	textBuf *ebiten.Image
}

// NewImageCanvas creates a canvas. Call Begin with the frame's target
// before drawing.
func NewImageCanvas() *ImageCanvas {
	return &ImageCanvas{
		alpha:   1,
		sprites: make(map[image.Image]*ebiten.Image),
	}
}

// Begin targets dst for the next frame.
func (c *ImageCanvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.alpha = 1
}

// FillRect fills an axis-aligned rectangle.
func (c *ImageCanvas) FillRect(x, y, w, h float64, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), rgba(col, c.alpha), false)
}

// FillCircle fills a circle.
func (c *ImageCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), rgba(col, c.alpha), true)
}

// Blit draws img stretched into the rectangle, optionally flipped.
func (c *ImageCanvas) Blit(img image.Image, x, y, w, h float64, flipV bool) {
	if img == nil {
		return
	}
	sprite, ok := c.sprites[img]
	if !ok {
		sprite = ebiten.NewImageFromImage(img)
		c.sprites[img] = sprite
	}

	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if flipV {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, h)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	c.dst.DrawImage(sprite, op)
}

// Text draws a line with the debug font and a one pixel shadow.
func (c *ImageCanvas) Text(x, y float64, s string, col core.Color, align core.Align) {
	if s == "" {
		return
	}
	tx, ty := textOrigin(x, y, s, align)

	w := utf8.RuneCountInString(s) * glyphW
	if c.textBuf == nil || c.textBuf.Bounds().Dx() < w {
		c.textBuf = ebiten.NewImage(w, glyphH)
	}
	c.textBuf.Clear()
	ebitenutil.DebugPrintAt(c.textBuf, s, 0, 0)

	shadow := &ebiten.DrawImageOptions{}
	shadow.GeoM.Translate(tx+1, ty+1)
	shadow.ColorScale.Scale(0, 0, 0, float32(c.alpha))
	c.dst.DrawImage(c.textBuf, shadow)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(tx, ty)
	op.ColorScale.ScaleWithColor(rgba(col, c.alpha))
	c.dst.DrawImage(c.textBuf, op)
}

// SetAlpha sets the opacity of later commands.
func (c *ImageCanvas) SetAlpha(a float64) {
	c.alpha = core.ClampF(a, 0, 1)
}

// textOrigin returns the top-left corner for a line whose vertical center
// sits on y.
func textOrigin(x, y float64, s string, align core.Align) (float64, float64) {
	w := float64(utf8.RuneCountInString(s) * glyphW)
	switch align {
	case core.AlignCenter:
		x -= w / 2
	case core.AlignRight:
		x -= w
	}
	return x, y - glyphH/2
}

// rgba converts a palette color with opacity to a premultiplied color.
func rgba(col core.Color, alpha float64) color.RGBA {
	r, g, b := col.RGB()
	a := core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

var _ core.Canvas = (*ImageCanvas)(nil)
