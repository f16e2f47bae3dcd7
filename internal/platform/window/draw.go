package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/games/runner"
)

// debugCharW is the advance of ebitenutil's debug font.
const debugCharW = 6

func drawSnapshot(screen *ebiten.Image, snap runner.Snapshot, paused bool) {
	theme := runner.ThemeFor(snap.EnvironmentIndex)
	w, h := float32(snap.Field.Width), float32(snap.Field.Height)
	groundY := float32(snap.Field.GroundY)

	screen.Fill(rgb(theme.Background))
	drawStars(screen, snap, theme, groundY)
	drawSkyline(screen, snap, theme, groundY)

	vector.FillRect(screen, 0, groundY, w, h-groundY, fade(rgb(theme.Ground), 0.25), false)
	vector.StrokeLine(screen, 0, groundY, w, groundY, 2, rgb(theme.Ground), false)

	for _, o := range snap.Obstacles {
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.Width), float32(o.Height),
			RGBA(core.SeedColor(o.ColorSeed)), false)
	}

	p := snap.Player
	playerColor := RGBA(core.ColorGreen)
	if p.JumpsUsed >= runner.MaxJumps {
		playerColor = RGBA(core.ColorCyan)
	}
	box := core.CenteredBox(p.X, p.Y, p.Width, p.Height)
	vector.FillRect(screen, float32(box.Left), float32(box.Top), float32(box.Width()), float32(box.Height()), playerColor, false)

	fx := snap.Effects
	if fx.BurstActive && fx.BurstRadius > 0 {
		vector.StrokeCircle(screen, float32(fx.BurstX), float32(fx.BurstY), float32(fx.BurstRadius), 3,
			fade(RGBA(core.ColorYellow), fx.BurstFade), true)
	}
	if fx.Flash > 0 {
		vector.FillRect(screen, 0, 0, w, h, fade(color.RGBA{255, 255, 255, 255}, fx.Flash*0.35), false)
		printCentered(screen, "~ "+theme.Name+" ~", int(h)/4)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   BEST %d", snap.Score, snap.HighScore), 8, 6)
	right := fmt.Sprintf("%s  SPD %.1f", theme.Name, snap.ObstacleSpeed)
	ebitenutil.DebugPrintAt(screen, right, int(w)-len(right)*debugCharW-8, 6)

	switch {
	case paused:
		drawBanner(screen, "PAUSED", "Press P to resume")
	case snap.Phase == runner.PhaseStart:
		drawBanner(screen, "NEON RUNNER", "Press SPACE to run")
	case snap.Phase == runner.PhaseGameOver:
		title := "GAME OVER"
		if snap.NewBest {
			title = "NEW HIGH SCORE!"
		}
		drawBanner(screen, title, fmt.Sprintf("Score %d  -  Press R to restart", snap.Score))
	}
}

func drawStars(screen *ebiten.Image, snap runner.Snapshot, theme runner.Theme, groundY float32) {
	const spacing = 37.0
	shift := math.Mod(snap.Distance*runner.SkyParallax, spacing)
	c := RGBA(theme.SkyColor)
	for i := 0; float64(i)*spacing-shift < snap.Field.Width+spacing; i++ {
		x := float64(i)*spacing - shift
		seg := i + int(snap.Distance*runner.SkyParallax/spacing)
		y := runner.SkylineHeight(seg*7+3) * float64(groundY) * 0.5
		vector.FillRect(screen, float32(x), float32(y), 2, 2, c, false)
	}
}

func drawSkyline(screen *ebiten.Image, snap runner.Snapshot, theme runner.Theme, groundY float32) {
	const segW = 40.0
	scroll := snap.Distance * runner.SkylineParallax
	shift := math.Mod(scroll, segW)
	first := int(scroll / segW)
	c := rgb(theme.Skyline)
	maxH := float64(groundY) * 0.45
	for i := 0; float64(i)*segW-shift < snap.Field.Width; i++ {
		bh := runner.SkylineHeight(first+i) * maxH
		x := float64(i)*segW - shift
		vector.FillRect(screen, float32(x), groundY-float32(bh), segW-4, float32(bh), c, false)
	}
}

func drawBanner(screen *ebiten.Image, title, subtitle string) {
	bw, bh := screen.Bounds().Dx(), screen.Bounds().Dy()
	boxW := float32(core.Max(len(title), len(subtitle))*debugCharW + 40)
	boxH := float32(60)
	x := (float32(bw) - boxW) / 2
	y := (float32(bh) - boxH) / 2

	vector.FillRect(screen, x, y, boxW, boxH, color.RGBA{0, 0, 0, 200}, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 2, RGBA(core.ColorMagenta), false)
	printCentered(screen, title, int(y)+14)
	printCentered(screen, subtitle, int(y)+34)
}

func printCentered(screen *ebiten.Image, s string, y int) {
	x := (screen.Bounds().Dx() - len(s)*debugCharW) / 2
	ebitenutil.DebugPrintAt(screen, s, x, y)
}
