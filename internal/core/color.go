package core

// Color is a terminal foreground colour for a screen cell.
// Values map onto ANSI 256-colour codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorPurple
	ColorGray
	ColorDimGray
)

// obstaclePalette is cycled by obstacle colour seeds.
var obstaclePalette = []Color{
	ColorRed,
	ColorOrange,
	ColorPink,
	ColorMagenta,
	ColorYellow,
	ColorPurple,
}

// SeedColor maps an opaque colour seed onto the obstacle palette.
func SeedColor(seed int) Color {
	if seed < 0 {
		seed = -seed
	}
	return obstaclePalette[seed%len(obstaclePalette)]
}

// PaletteSize returns how many distinct obstacle colours exist.
func PaletteSize() int {
	return len(obstaclePalette)
}
