package window

import (
	"image/color"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// palette maps terminal colours onto window colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {230, 230, 230, 255},
	core.ColorRed:     {255, 70, 90, 255},
	core.ColorGreen:   {60, 255, 140, 255},
	core.ColorYellow:  {255, 230, 80, 255},
	core.ColorBlue:    {70, 140, 255, 255},
	core.ColorMagenta: {255, 60, 220, 255},
	core.ColorCyan:    {60, 240, 255, 255},
	core.ColorWhite:   {250, 250, 250, 255},
	core.ColorOrange:  {255, 150, 50, 255},
	core.ColorPink:    {255, 130, 200, 255},
	core.ColorPurple:  {170, 90, 255, 255},
	core.ColorGray:    {150, 150, 150, 255},
	core.ColorDimGray: {80, 80, 80, 255},
}

// RGBA returns the window colour for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], 255}
}

// fade scales a colour's alpha by f in [0, 1], premultiplied.
func fade(c color.RGBA, f float64) color.RGBA {
	f = core.ClampF(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
