package tui

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// CellCanvas rasterizes canvas commands onto a character Screen. The
// logical field is scaled into the largest centered viewport that keeps
// its aspect ratio.
type CellCanvas struct {
	screen         *core.Screen
	fieldW, fieldH float64
	alpha          float64
	textRows       map[int]bool

	// viewport, recomputed from the screen size on every command
	cols, rows int
	offX, offY int
	sx, sy     float64 // logical units per column / row
}

// NewCellCanvas creates a canvas drawing a fieldW×fieldH logical field
// into screen.
func NewCellCanvas(screen *core.Screen, fieldW, fieldH float64) *CellCanvas {
	return &CellCanvas{
		screen:   screen,
		fieldW:   fieldW,
		fieldH:   fieldH,
		alpha:    1,
		textRows: make(map[int]bool),
	}
}

// Begin starts a new frame: the screen is cleared and text rows are freed.
func (c *CellCanvas) Begin() {
	c.screen.Clear()
	c.alpha = 1
	clear(c.textRows)
}

func (c *CellCanvas) layout() {
	w, h := c.screen.Width(), c.screen.Height()
	rows := h
	cols := int(float64(rows) * c.fieldW / c.fieldH * cellAspect)
	if cols > w {
		cols = w
		rows = int(float64(cols) * c.fieldH / c.fieldW / cellAspect)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	c.cols, c.rows = cols, rows
	c.offX = (w - cols) / 2
	c.offY = (h - rows) / 2
	c.sx = c.fieldW / float64(cols)
	c.sy = c.fieldH / float64(rows)
}

// Viewport returns the drawing area in screen cells.
func (c *CellCanvas) Viewport() (x, y, cols, rows int) {
	c.layout()
	return c.offX, c.offY, c.cols, c.rows
}

// span converts a logical interval to the half-open range of cells whose
// centers fall inside it, clipped to the viewport.
func span(from, size, scale float64, limit int) (int, int) {
	lo := int(math.Ceil(from/scale - 0.5))
	hi := int(math.Ceil((from+size)/scale - 0.5))
	return core.Clamp(lo, 0, limit), core.Clamp(hi, 0, limit)
}

func (c *CellCanvas) visible() bool {
	return c.alpha >= 0.5
}

// FillRect paints the cells covered by the rectangle.
func (c *CellCanvas) FillRect(x, y, w, h float64, col core.Color) {
	if !c.visible() || w <= 0 || h <= 0 {
		return
	}
	c.layout()
	x0, x1 := span(x, w, c.sx, c.cols)
	y0, y1 := span(y, h, c.sy, c.rows)
	for row := y0; row < y1; row++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.Paint(c.offX+cx, c.offY+row, col)
		}
	}
}

// FillCircle paints the cells whose centers lie inside the circle.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	if !c.visible() || r <= 0 {
		return
	}
	c.layout()
	x0, x1 := span(cx-r, 2*r, c.sx, c.cols)
	y0, y1 := span(cy-r, 2*r, c.sy, c.rows)
	for row := y0; row < y1; row++ {
		py := (float64(row) + 0.5) * c.sy
		for col0 := x0; col0 < x1; col0++ {
			px := (float64(col0) + 0.5) * c.sx
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				c.screen.Paint(c.offX+col0, c.offY+row, col)
			}
		}
	}
}

// Blit samples the image once per cell and paints the nearest palette
// color. Transparent samples leave the cell untouched.
func (c *CellCanvas) Blit(img image.Image, x, y, w, h float64, flipV bool) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	c.layout()
	b := img.Bounds()
	x0, x1 := span(x, w, c.sx, c.cols)
	y0, y1 := span(y, h, c.sy, c.rows)

	for row := y0; row < y1; row++ {
		v := ((float64(row)+0.5)*c.sy - y) / h
		if flipV {
			v = 1 - v
		}
		iy := b.Min.Y + core.Clamp(int(v*float64(b.Dy())), 0, b.Dy()-1)
		for col := x0; col < x1; col++ {
			u := ((float64(col)+0.5)*c.sx - x) / w
			ix := b.Min.X + core.Clamp(int(u*float64(b.Dx())), 0, b.Dx()-1)

			r, g, bl, a := img.At(ix, iy).RGBA()
			if a < 0x8000 {
				continue
			}
			c.screen.Paint(c.offX+col, c.offY+row, nearestColor(uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
		}
	}
}

// Text writes a line of text unscaled, anchored at the row containing y.
// Lines that land on a row already holding text this frame move down.
func (c *CellCanvas) Text(x, y float64, s string, col core.Color, align core.Align) {
	c.layout()
	cx := int(x / c.sx)
	row := int(y / c.sy)
	for c.textRows[row] {
		row++
	}
	c.textRows[row] = true
	n := utf8.RuneCountInString(s)

	switch align {
	case core.AlignCenter:
		cx -= n / 2
	case core.AlignRight:
		cx -= n
	}
	if row < 0 || row >= c.rows {
		return
	}
	c.screen.DrawText(c.offX+cx, c.offY+row, s, col)
}

// SetAlpha sets the opacity of later fills. Cells have no blending: fills
// below one half are skipped, others are opaque.
func (c *CellCanvas) SetAlpha(a float64) {
	c.alpha = a
}

// nearestColor maps an RGB value to the closest palette entry.
func nearestColor(r, g, b uint8) core.Color {
	best := core.ColorDefault
	bestDist := math.MaxInt
	for col := core.ColorSky; col <= core.ColorHighlight; col++ {
		pr, pg, pb := col.RGB()
		dr, dg, db := int(r)-int(pr), int(g)-int(pg), int(b)-int(pb)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = col, d
		}
	}
	return best
}

var _ core.Canvas = (*CellCanvas)(nil)
