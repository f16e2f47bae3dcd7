package runner

import "github.com/vovakirdan/neon-runner/internal/core"

// Theme is the look of one environment. Environments cycle through the
// theme list as milestones are reached.
type Theme struct {
	Name string

	SkyRune  rune // Far parallax layer
	SkyColor core.Color

	SkylineRune  rune // Near parallax layer
	SkylineColor core.Color

	GroundRune  rune
	GroundColor core.Color

	// RGB colours for the window renderer.
	Background [3]uint8
	Skyline    [3]uint8
	Ground     [3]uint8
}

var themes = []Theme{
	{
		Name:    "Neon City",
		SkyRune: '·', SkyColor: core.ColorPurple,
		SkylineRune: '▒', SkylineColor: core.ColorBlue,
		GroundRune: '═', GroundColor: core.ColorCyan,
		Background: [3]uint8{18, 10, 40},
		Skyline:    [3]uint8{40, 30, 90},
		Ground:     [3]uint8{0, 220, 255},
	},
	{
		Name:    "Desert Dusk",
		SkyRune: '˙', SkyColor: core.ColorOrange,
		SkylineRune: '▲', SkylineColor: core.ColorYellow,
		GroundRune: '▁', GroundColor: core.ColorOrange,
		Background: [3]uint8{70, 30, 40},
		Skyline:    [3]uint8{150, 80, 50},
		Ground:     [3]uint8{240, 170, 60},
	},
	{
		Name:    "Deep Space",
		SkyRune: '*', SkyColor: core.ColorWhite,
		SkylineRune: '░', SkylineColor: core.ColorDimGray,
		GroundRune: '━', GroundColor: core.ColorMagenta,
		Background: [3]uint8{5, 5, 15},
		Skyline:    [3]uint8{30, 30, 50},
		Ground:     [3]uint8{220, 60, 220},
	},
	{
		Name:    "Glacier",
		SkyRune: '❄', SkyColor: core.ColorCyan,
		SkylineRune: '▓', SkylineColor: core.ColorWhite,
		GroundRune: '─', GroundColor: core.ColorBlue,
		Background: [3]uint8{20, 40, 70},
		Skyline:    [3]uint8{120, 160, 200},
		Ground:     [3]uint8{180, 230, 255},
	},
}

// ThemeFor returns the theme of an environment index. Indices beyond the
// theme list wrap around.
func ThemeFor(environment int) Theme {
	if environment < 0 {
		environment = 0
	}
	return themes[environment%len(themes)]
}

// Parallax factors of the background layers relative to obstacle speed.
const (
	SkyParallax     = 0.2
	SkylineParallax = 0.5
)

// SkylineHeight returns a stable pseudo-random building height in [0, 1)
// for the skyline segment at index i.
func SkylineHeight(i int) float64 {
	h := uint32(i)*2654435761 + 0x9e3779b9
	h ^= h >> 15
	h *= 2246822519
	h ^= h >> 13
	return float64(h%1000) / 1000
}
