package game

import (
	"fmt"
	"math"

	"github.com/pkazanov/flapgate/internal/core"
)

// Visual characters for rendering
const (
	bodyChar      = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Idle hover parameters. The hover exists only in this projection: it is
// computed from idleTicks at draw time and never written back into
// bodyY or bodyVelocity, so the simulated state stays deterministic.
const (
	hoverAmplitude = 1.2
	hoverRate      = 0.08
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundRow := int(g.groundY())
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar)

	for _, o := range g.obstacles {
		g.drawObstacle(dst, o, groundRow)
	}

	bodyY := g.bodyY
	if g.phase != PhaseRunning {
		bodyY += hoverAmplitude * math.Sin(float64(g.idleTicks)*hoverRate)
	}
	dst.SetColored(int(g.cfg.Body.X), int(bodyY), bodyChar, core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawTextColored(dst.Width()-14, 0, fmt.Sprintf(" Best: %d ", g.best), core.ColorGray)

	switch {
	case g.phase == PhaseReady:
		g.drawCenteredMessage(dst, "FLAPGATE", "Press Space to start")
	case g.phase == PhaseOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Space to retry", g.score, g.best))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawObstacle renders one obstacle as two pipe columns around its gap.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle, groundRow int) {
	left := int(o.X)
	width := int(g.cfg.Obstacles.Width)
	gapTop := int(o.GapCenterY - o.GapH/2)
	gapBottom := int(o.GapCenterY + o.GapH/2)

	for x := left; x < left+width; x++ {
		dst.DrawVLine(x, 0, gapTop, pipeChar, core.ColorGreen)
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, pipeCapTop, core.ColorGreen)
		}

		dst.DrawVLine(x, gapBottom, groundRow-gapBottom, pipeChar, core.ColorGreen)
		if gapBottom < groundRow {
			dst.SetColored(x, gapBottom, pipeCapBottom, core.ColorGreen)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
