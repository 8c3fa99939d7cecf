package orbit

import (
	"fmt"

	"github.com/avoronov/tui-orbit/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	PlanetChar     = '█'
	RingChar       = 'o'
	BonusRingChar  = '*'
	AimChar        = '·'
	PowerBarFilled = '#'
	PowerBarEmpty  = '-'
)

func planetColor(t PlanetType) core.Color {
	switch t {
	case PlanetDense:
		return core.ColorOrange
	case PlanetVoid:
		return core.ColorMagenta
	default:
		return core.ColorBlue
	}
}

// Render draws the current game state to the screen.
// The camera is centered on the player and clamped to the world edges.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		return
	}

	camX, camY := g.camera(dst.Width(), dst.Height())

	g.drawPlanets(dst, camX, camY)
	g.drawRings(dst, camX, camY)
	g.drawPlayer(dst, camX, camY)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "LOST IN SPACE",
			fmt.Sprintf("Score: %d  Best combo: x%d  |  Press R to restart", g.score, g.combo.Best))
	}
}

// camera returns the world coordinates of the screen's top-left corner.
func (g *Game) camera(screenW, screenH int) (float64, float64) {
	camX := g.player.Pos.X - float64(screenW)/2
	camY := g.player.Pos.Y - float64(screenH)/2

	maxX := g.world.Width - float64(screenW)
	maxY := g.world.Height - float64(screenH)
	if maxX > 0 {
		camX = core.ClampF(camX, 0, maxX)
	} else {
		camX = (g.world.Width - float64(screenW)) / 2
	}
	if maxY > 0 {
		camY = core.ClampF(camY, 0, maxY)
	} else {
		camY = (g.world.Height - float64(screenH)) / 2
	}
	return camX, camY
}

func (g *Game) drawPlanets(dst *core.Screen, camX, camY float64) {
	for _, p := range g.world.Planets {
		color := planetColor(p.Type)
		minX := int(p.Pos.X - p.Radius - camX)
		maxX := int(p.Pos.X + p.Radius - camX)
		minY := int(p.Pos.Y - p.Radius - camY)
		maxY := int(p.Pos.Y + p.Radius - camY)

		for sy := minY; sy <= maxY; sy++ {
			for sx := minX; sx <= maxX; sx++ {
				wx := float64(sx) + camX
				wy := float64(sy) + camY
				dx := wx - p.Pos.X
				dy := wy - p.Pos.Y
				if dx*dx+dy*dy <= p.Radius*p.Radius {
					dst.SetCell(sx, sy, PlanetChar, color)
				}
			}
		}
	}
}

func (g *Game) drawRings(dst *core.Screen, camX, camY float64) {
	for _, r := range g.world.Rings {
		if r.Collected {
			continue
		}
		char := RingChar
		color := core.ColorYellow
		if r.Type == RingBonus {
			char = BonusRingChar
			color = core.ColorBrightYellow
		}

		minX := int(r.Pos.X - r.Outer - camX)
		maxX := int(r.Pos.X + r.Outer - camX)
		minY := int(r.Pos.Y - r.Outer - camY)
		maxY := int(r.Pos.Y + r.Outer - camY)

		for sy := minY; sy <= maxY; sy++ {
			for sx := minX; sx <= maxX; sx++ {
				wx := float64(sx) + camX
				wy := float64(sy) + camY
				dx := wx - r.Pos.X
				dy := wy - r.Pos.Y
				distSq := dx*dx + dy*dy
				if distSq <= r.Outer*r.Outer && distSq >= r.Inner*r.Inner {
					dst.SetCell(sx, sy, char, color)
				}
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, camX, camY float64) {
	color := core.ColorBrightWhite
	if g.player.DashActive {
		color = core.ColorBrightCyan
	}

	// Aim trace: a dotted line along the launch direction while landed.
	if g.player.Landed() {
		dir := core.FromAngle(g.player.SurfaceAngle)
		for i := 2; i <= 5; i++ {
			spot := g.player.Pos.Add(dir.Scale(float64(i)))
			dst.SetCell(int(spot.X-camX), int(spot.Y-camY), AimChar, core.ColorGray)
		}
	}

	dst.SetCell(int(g.player.Pos.X-camX), int(g.player.Pos.Y-camY), PlayerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	boost := SpeedBoost(g.combo.Count, g.cfg.Combo.SpeedBoostFraction, 1.0)
	status := fmt.Sprintf(" Score: %d  Combo: x%d  Boost: %.2fx  Wave: %d  Rings: %d ",
		g.score, g.combo.Count, boost, g.wave, g.rings)
	dst.DrawText(1, 0, status)

	if g.player.DashCooldown == 0 && !g.player.Landed() {
		dst.DrawTextColored(1, 1, " DASH READY (F) ", core.ColorBrightCyan)
	}

	if g.player.Landed() {
		g.drawPowerBar(dst)
	}
}

// drawPowerBar shows the selected launch power on the bottom row.
func (g *Game) drawPowerBar(dst *core.Screen) {
	phys := g.cfg.Physics
	span := phys.MaxLaunchPower - phys.MinLaunchPower
	frac := 0.0
	if span > 0 {
		frac = (g.player.Power - phys.MinLaunchPower) / span
	}

	const barWidth = 20
	filled := int(frac*barWidth + 0.5)
	y := dst.Height() - 1

	dst.DrawText(1, y, " Power [")
	for i := 0; i < barWidth; i++ {
		char := PowerBarEmpty
		color := core.ColorGray
		if i < filled {
			char = PowerBarFilled
			color = core.ColorBrightGreen
		}
		dst.SetCell(9+i, y, char, color)
	}
	dst.DrawText(9+barWidth, y, fmt.Sprintf("] %0.f  W/S: power  A/D: walk  Space: launch ", g.player.Power))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
