package core

import "strconv"

// Color is a palette entry used by draw commands and screen cells.
// Frontends translate it to terminal styles or RGBA pixels.
type Color uint8

// Palette entries for the game scene.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorGround
	ColorGrass
	ColorDirt
	ColorObstacle
	ColorAvatar
	ColorAvatarOutline
	ColorText
	ColorShadow
	ColorOverlay
	ColorHighlight
)

// palette holds the sRGB value of every Color, as "#rrggbb".
var palette = [...]string{
	ColorDefault:       "#ffffff",
	ColorSky:           "#6ec6f7",
	ColorCloud:         "#ffffff",
	ColorGround:        "#b97a56",
	ColorGrass:         "#6ab150",
	ColorDirt:          "#8d5a36",
	ColorObstacle:      "#ff69b4",
	ColorAvatar:        "#ffeb3b",
	ColorAvatarOutline: "#bfa600",
	ColorText:          "#ffffff",
	ColorShadow:        "#000000",
	ColorOverlay:       "#222222",
	ColorHighlight:     "#ffd54f",
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// RGB returns the 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	h := c.Hex()
	return hexByte(h[1:3]), hexByte(h[3:5]), hexByte(h[5:7])
}

func hexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}
