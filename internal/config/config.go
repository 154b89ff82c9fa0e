// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 700
	ScreenHeight = 600
	WindowTitle  = "Rotating F tracing a bigger F"

	TickInterval   = 40 * time.Millisecond
	TicksPerSecond = int(time.Second / TickInterval) // 25
	AngleStep      = 6.0                             // градусов за тик

	PathStrokeWidth = 3.0
	MarkerRadius    = 3.0
	AntiAlias       = true // сглаживание линий, маркера и глифа

	GlyphText     = "F"
	GlyphFontSize = 80
	GlyphDPI      = 72

	LogPrefix = "rotatef: "
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PathColor       = color.RGBA{200, 200, 200, 255}
	MarkerColor     = color.RGBA{128, 128, 128, 255}
	GlyphBaseColor  = color.RGBA{0, 0, 255, 255} // рисуется затемнённым, см. palette.Darker
	DarkerFactor    = 0.7
)
