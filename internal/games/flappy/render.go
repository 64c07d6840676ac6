package flappy

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/flappy-snickers/internal/assets"
	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// cloud is one scrolling background cloud.
type cloud struct {
	w, h, y float64
}

var clouds = []cloud{
	{w: 60, h: 20, y: 80},
	{w: 40, h: 16, y: 50},
	{w: 60, h: 20, y: 120},
}

// Layout of the ground band, in canvas units from the ground line.
const (
	grassHeight = 8
	dirtOffset  = 16
	dirtHeight  = 8
)

// Render draws the current state. It only reads game state.
func (g *Game) Render(c core.Canvas) {
	g.drawBackground(c)
	if g.phase != PhaseStart {
		g.drawAvatar(c)
	}
	g.drawScore(c)
	if g.phase != PhaseStart {
		g.drawObstacles(c)
	}

	switch g.phase {
	case PhaseStart:
		g.drawMessage(c, g.Title(), "Press Space, Enter, or Tap to Start")
	case PhaseGameOver:
		g.drawGameOver(c)
	}
}

func (g *Game) drawBackground(c core.Canvas) {
	field := g.cfg.Field
	sc := g.cfg.Scenery

	c.FillRect(0, 0, field.Width, field.Height, core.ColorSky)

	// Scrolling clouds
	c.SetAlpha(0.7)
	span := field.Width + sc.CloudWrapPad
	for i, cl := range clouds {
		x := math.Mod(60+float64(i)*120-g.sim.cloudOffset, span)
		if x < -cl.w {
			x += span
		}
		c.FillRect(x, cl.y, cl.w, cl.h, core.ColorCloud)
	}
	c.SetAlpha(1)

	// Scrolling ground tiles
	tileW := sc.GroundTileWidth
	groundY := field.GroundY()
	tiles := int(math.Ceil(field.Width/tileW)) + 2
	for i := 0; i < tiles; i++ {
		x := math.Mod(float64(i)*tileW-g.sim.groundOffset, field.Width+tileW)
		if x < -tileW {
			x += field.Width + tileW
		}
		c.FillRect(x, groundY, tileW, field.GroundHeight, core.ColorGround)
		c.FillRect(x, groundY, tileW, grassHeight, core.ColorGrass)
		c.FillRect(x, groundY+dirtOffset, tileW, dirtHeight, core.ColorDirt)
	}
}

func (g *Game) drawAvatar(c core.Canvas) {
	a := g.sim.avatar
	if img := g.assets.Avatar.Image(); img != nil {
		c.Blit(img, a.X-a.Size/2, a.Y-a.Size/2, a.Size, a.Size, false)
		return
	}
	c.FillCircle(a.X, a.Y, a.Size/2, core.ColorAvatarOutline)
	c.FillCircle(a.X, a.Y, a.Size/2-3, core.ColorAvatar)
}

func (g *Game) drawScore(c core.Canvas) {
	c.Text(g.cfg.Field.Width/2, 80, strconv.Itoa(g.sim.score), core.ColorText, core.AlignCenter)
}

func (g *Game) drawObstacles(c core.Canvas) {
	ob := g.cfg.Obstacles
	groundY := g.cfg.Field.GroundY()
	sprite := g.assets.Obstacle

	for _, o := range g.sim.Obstacles() {
		if sprite.State() != assets.Ready {
			top := o.TopRect(ob.Width)
			bottom := o.BottomRect(ob.Width, ob.Gap, groundY)
			c.FillRect(top.X, top.Y, top.W, top.H, core.ColorObstacle)
			c.FillRect(bottom.X, bottom.Y, bottom.W, bottom.H, core.ColorObstacle)
			continue
		}

		img := sprite.Image()
		tile := ob.TileHeight
		// Top column: flipped tiles stacked upward from the gap
		for y := o.GapY - tile; y >= -tile; y -= tile {
			c.Blit(img, o.X, y, ob.Width, tile, true)
		}
		// Bottom column: tiles stacked downward to the ground line
		for y := o.GapY + ob.Gap; y <= groundY; y += tile {
			c.Blit(img, o.X, y, ob.Width, tile, false)
		}
	}
}

// drawMessage draws a dimmed panel with a title and a hint line.
func (g *Game) drawMessage(c core.Canvas, title, hint string) {
	field := g.cfg.Field
	cx := field.Width / 2

	c.SetAlpha(0.6)
	c.FillRect(20, 180, field.Width-40, 120, core.ColorOverlay)
	c.SetAlpha(1)

	c.Text(cx, 215, title, core.ColorHighlight, core.AlignCenter)
	c.Text(cx, 260, hint, core.ColorText, core.AlignCenter)
}

func (g *Game) drawGameOver(c core.Canvas) {
	field := g.cfg.Field
	cx := field.Width / 2

	g.drawMessage(c, g.caption, "Press Space, Enter, or Tap to Restart")
	c.Text(cx, 320, fmt.Sprintf("Best: %d", g.sim.highScore), core.ColorText, core.AlignCenter)

	if g.needsInitials {
		c.Text(cx, 350, "Game Over! Enter your initials (3 letters):", core.ColorText, core.AlignCenter)
		c.Text(cx, 375, g.initialsDraft+"_", core.ColorHighlight, core.AlignCenter)
		return
	}

	rows := g.topScores
	if limit := g.cfg.Leaderboard.DisplayLimit; len(rows) > limit {
		rows = rows[:limit]
	}
	if len(rows) == 0 {
		return
	}

	y := 360.0
	c.Text(cx, y, "High Scores:", core.ColorHighlight, core.AlignCenter)
	for i, row := range rows {
		y += 20
		c.Text(cx, y, fmt.Sprintf("%d. %s - %d", i+1, row.Name, row.Score), core.ColorText, core.AlignCenter)
	}
}
