// pkg/palette/palette.go
package palette

import (
	"image/color"

	"rotating-f/internal/config"
)

// Palette holds every color and stroke width the frame renderer needs.
// The package has no ebiten dependency so the values can be checked headless.
type Palette struct {
	Background color.RGBA
	Path       color.RGBA
	Marker     color.RGBA
	Glyph      color.RGBA
	PathWidth  float32
}

// Default собирает палитру из констант конфигурации.
func Default() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Path:       config.PathColor,
		Marker:     config.MarkerColor,
		Glyph:      Darker(config.GlyphBaseColor, config.DarkerFactor),
		PathWidth:  float32(config.PathStrokeWidth),
	}
}

// Darker reduces the brightness of a color by factor, keeping alpha. Channels
// are truncated, so blue 255 at 0.7 becomes 178.
func Darker(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
