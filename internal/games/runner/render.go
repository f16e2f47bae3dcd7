package runner

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Sprite runes.
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	BurstChar    = '*'
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// viewport maps field pixels onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	fw, fh := float64(snap.Field.Width), float64(snap.Field.Height)
	if fw <= 0 || fh <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(dst.Width()) / fw,
		sy: float64(dst.Height()-hudRows) / fh,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor(y*v.sy))
}

// rect converts a field-space box into the cells it covers. Every visible
// box covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.Left), v.row(b.Top)
	x1 := int(math.Ceil(b.Right * v.sx))
	y1 := hudRows + int(math.Ceil(b.Bottom*v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// RenderSnapshot draws a snapshot into a character screen: HUD on the top
// row, the scaled field below it.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	vp := newViewport(dst, snap)
	theme := ThemeFor(snap.EnvironmentIndex)
	groundRow := vp.row(float64(snap.Field.GroundY))

	drawBackground(dst, vp, snap, theme, groundRow)
	dst.DrawHLine(0, groundRow, dst.Width(), theme.GroundRune, theme.GroundColor)

	for _, o := range snap.Obstacles {
		dst.FillRect(vp.rect(o.BoundingBox()), ObstacleChar, core.SeedColor(o.ColorSeed))
	}

	drawPlayer(dst, vp, snap.Player)
	drawEffects(dst, vp, snap, theme)
	drawHUD(dst, snap, theme)

	switch snap.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, "NEON RUNNER", "Press SPACE to run", core.ColorCyan)
	case PhaseGameOver:
		title := "GAME OVER"
		if snap.NewBest {
			title = "NEW HIGH SCORE!"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", snap.Score, snap.HighScore),
			core.ColorRed)
	}
}

// drawBackground draws the two parallax layers. The far layer scrolls at
// SkyParallax and the skyline at SkylineParallax of the travelled distance.
func drawBackground(dst *core.Screen, vp viewport, snap Snapshot, theme Theme, groundRow int) {
	if vp.sx == 0 {
		return
	}

	// Far layer: sparse dots every 7 cells, two rows.
	skyShift := int(snap.Distance * SkyParallax * vp.sx)
	for x := 0; x < dst.Width(); x++ {
		world := x + skyShift
		if world%7 == 0 {
			dst.SetColored(x, hudRows+1+(world/7)%2, theme.SkyRune, theme.SkyColor)
		}
	}

	// Skyline: 4-cell wide blocks of varying height standing on the ground.
	maxHeight := core.Max(1, (groundRow-hudRows)/3)
	lineShift := int(snap.Distance * SkylineParallax * vp.sx)
	for x := 0; x < dst.Width(); x++ {
		segment := (x + lineShift) / 4
		h := int(SkylineHeight(segment) * float64(maxHeight))
		for dy := 1; dy <= h; dy++ {
			dst.SetColored(x, groundRow-dy, theme.SkylineRune, theme.SkylineColor)
		}
	}
}

func drawPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	color := core.ColorGreen
	if p.JumpsUsed >= MaxJumps {
		color = core.ColorCyan
	}
	box := core.CenteredBox(p.X, p.Y, p.Width, p.Height)
	dst.FillRect(vp.rect(box), PlayerChar, color)
}

func drawEffects(dst *core.Screen, vp viewport, snap Snapshot, theme Theme) {
	fx := snap.Effects
	if fx.BurstActive && fx.BurstRadius > 0 {
		const points = 12
		for i := 0; i < points; i++ {
			angle := 2 * math.Pi * float64(i) / points
			x := fx.BurstX + math.Cos(angle)*fx.BurstRadius
			y := fx.BurstY + math.Sin(angle)*fx.BurstRadius
			dst.SetColored(vp.col(x), vp.row(y), BurstChar, core.ColorYellow)
		}
	}

	if fx.Flash > 0 {
		label := fmt.Sprintf(" ~ %s ~ ", theme.Name)
		color := core.ColorWhite
		if fx.Flash < 0.5 {
			color = theme.GroundColor
		}
		dst.DrawTextCentered(hudRows+dst.Height()/4, label, color)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot, theme Theme) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" %s  Spd: %.1f ", theme.Name, snap.ObstacleSpeed)
	x := dst.Width() - utf8.RuneCountInString(right) - 1
	if x > utf8.RuneCountInString(left)+1 {
		dst.DrawTextColored(x, 0, right, theme.GroundColor)
	}
}

// drawCenteredMessage draws a bordered message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w, h := dst.Width(), dst.Height()
	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := core.Min(w, core.Max(titleLen, subLen)+4)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, c)
	dst.DrawTextColored(box.X+(boxW-subLen)/2, box.Y+3, subtitle, core.ColorWhite)
}
