package cookierun

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/cookie-run/internal/core"
	"github.com/vovakirdan/cookie-run/internal/runner"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	DirtChar   = '▒'
	SpikeChar  = '▲'
	EnemyChar  = '&'
	CrumbChar  = '·'
	HeartChar  = '♥'
)

// obstacleUnits is the drawn width of an obstacle in playfield units.
const obstacleUnits = 30

// layout maps playfield units to screen cells for one frame.
type layout struct {
	w, h      int
	groundRow int
	skyTop    int
	xScale    float64 // cells per horizontal unit
	yTop      float64 // offset drawn at skyTop
}

func (g *Game) layout(dst *core.Screen) layout {
	h := dst.Height()
	l := layout{
		w:         dst.Width(),
		h:         h,
		groundRow: core.Max(h-3, 3),
		skyTop:    2,
		xScale:    float64(dst.Width()) / g.cfg.Playfield.Width,
		yTop:      g.cfg.Physics.JumpHeight + g.cfg.Collision.PickupOffset,
	}
	return l
}

func (l layout) col(x float64) int {
	return int(x * l.xScale)
}

// row converts a vertical offset to the screen row standing on it.
func (l layout) row(y float64) int {
	span := l.groundRow - 1 - l.skyTop
	if span <= 0 {
		return l.groundRow - 1
	}
	r := l.groundRow - 1 - int(y/l.yTop*float64(span)+0.5)
	return core.Clamp(r, l.skyTop, l.groundRow-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	l := g.layout(dst)
	st := g.session.Snapshot()

	g.drawGround(dst, l, st)
	for _, o := range st.Obstacles {
		if o.Kind == runner.KindSpike {
			g.drawSpike(dst, l, o)
		}
	}
	for _, c := range st.Collectibles {
		dst.SetColor(l.col(c.X), l.row(c.Y), g.variant.Collectible, g.variant.ItemColor)
	}
	if g.cfg.Pursuit.Enabled {
		ex := core.Clamp(l.col(g.cfg.Playfield.PlayerX+st.Distance), 0, l.w-1)
		dst.SetColor(ex, l.groundRow-1, EnemyChar, core.ColorRed)
	}
	g.drawPlayer(dst, l, st)
	g.drawHUD(dst, st)

	switch {
	case st.Status == runner.StatusIdle:
		g.drawCenteredMessage(dst, "READY TO RUN?", "Press Enter to start, Space to jump")
	case st.Status == runner.StatusWin:
		g.drawCenteredMessage(dst, "CAUGHT THE THIEF!", g.resultLine(st))
	case st.Status == runner.StatusLose:
		g.drawCenteredMessage(dst, "GAME OVER", g.resultLine(st))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawGround draws the floor line and the dirt below it. Gaps cut through both.
func (g *Game) drawGround(dst *core.Screen, l layout, st runner.State) {
	dst.DrawHLine(0, l.groundRow, l.w, GroundChar, core.ColorBrown)
	for y := l.groundRow + 1; y < l.h; y++ {
		dst.DrawHLine(0, y, l.w, DirtChar, core.ColorBrown)
	}

	width := core.Max(1, int(obstacleUnits*l.xScale))
	for _, o := range st.Obstacles {
		if o.Kind != runner.KindGap {
			continue
		}
		x := l.col(o.X)
		for y := l.groundRow; y < l.h; y++ {
			dst.DrawHLine(x, y, width, ' ', core.ColorDefault)
		}
	}
}

func (g *Game) drawSpike(dst *core.Screen, l layout, o runner.Obstacle) {
	width := core.Max(1, int(obstacleUnits*l.xScale))
	dst.DrawHLine(l.col(o.X), l.groundRow-1, width, SpikeChar, core.ColorRed)
}

// drawPlayer renders the selected character, with a crumb trail while boosted.
func (g *Game) drawPlayer(dst *core.Screen, l layout, st runner.State) {
	x := l.col(g.cfg.Playfield.PlayerX)
	y := l.row(st.PlayerY)
	if st.BoostTicks > 0 {
		for i := 1; i <= 3; i++ {
			if (g.frame+i)%2 == 0 {
				dst.SetColor(x-i, y, CrumbChar, core.ColorOrange)
			}
		}
	}
	dst.SetColor(x, y, g.character.Glyph, g.character.Color)
}

func (g *Game) drawHUD(dst *core.Screen, st runner.State) {
	hud := fmt.Sprintf(" Score: %d  %s: %d ", st.Score, g.variant.Currency, st.Currency)
	if g.cfg.Pursuit.Enabled {
		hud += fmt.Sprintf(" Gap: %d ", int(st.Distance))
	} else {
		hud += fmt.Sprintf(" Distance: %dm ", int(st.Distance))
	}
	dst.DrawTextColor(1, 0, hud, core.ColorOrange)

	x := 1 + utf8.RuneCountInString(hud)
	if g.cfg.Lives.Enabled {
		hearts := strings.Repeat(string(HeartChar), st.Lives) +
			strings.Repeat(string(CrumbChar), core.Max(g.cfg.Lives.Initial-st.Lives, 0))
		dst.DrawTextColor(x+1, 0, hearts, core.ColorRed)
		x += 2 + utf8.RuneCountInString(hearts)
	}
	if st.BoostTicks > 0 {
		dst.DrawTextColor(x+1, 0, fmt.Sprintf("BOOST %d", st.BoostTicks), core.ColorYellow)
	}

	name := g.character.Name + " "
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(name)-1, 0, name, g.character.Color)
}

func (g *Game) resultLine(st runner.State) string {
	return fmt.Sprintf("Score: %d  %s: %d  |  Press R to restart", st.Score, g.variant.Currency, st.Currency)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorPink)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
