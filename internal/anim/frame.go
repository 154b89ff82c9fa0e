// internal/anim/frame.go
package anim

import (
	"rotating-f/internal/config"
	"rotating-f/pkg/geom"
	"rotating-f/pkg/path"
)

// Viewport - размер области отрисовки.
type Viewport struct {
	Width, Height int
}

// Drawable reports whether anything can be painted into the viewport. A
// zero-sized viewport still composes a frame but is never painted.
func (v Viewport) Drawable() bool {
	return v.Width > 0 && v.Height > 0
}

// Center returns the geometric center of the viewport.
func (v Viewport) Center() geom.Point {
	return geom.Pt(float64(v.Width)/2, float64(v.Height)/2)
}

// GlyphMetrics holds the measured size of the glyph string in pixels.
// Descent is a positive distance below the baseline.
type GlyphMetrics struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// Line is one reference segment in screen space.
type Line struct {
	From, To geom.Point
}

// Circle is the position marker in screen space.
type Circle struct {
	Center geom.Point
	Radius float64
}

// GlyphPlacement describes where and how the rotating glyph is drawn.
// Transform maps glyph-local coordinates to the screen. Offset is the baseline
// origin in glyph-local coordinates that centers the text on (0,0).
type GlyphPlacement struct {
	Text      string
	Local     geom.Matrix
	Transform geom.Matrix
	Offset    geom.Point
}

// Frame - геометрия одного кадра в экранных координатах.
type Frame struct {
	Origin geom.Matrix
	Lines  []Line
	Marker Circle
	Glyph  GlyphPlacement
	Empty  bool
}

// Compose строит кадр из состояния, пути и размеров области. Функция чистая:
// преобразования собираются заново на каждый вызов, поэтому поворот глифа не
// может попасть в следующий кадр.
func Compose(st State, p path.Path, vp Viewport, gm GlyphMetrics) Frame {
	c := vp.Center()
	origin := geom.Translate(c.X, c.Y)

	f := Frame{Origin: origin}
	if p.Len() == 0 {
		f.Empty = true
		return f
	}

	f.Lines = make([]Line, 0, p.Len()-1)
	p.Segments(func(a, b geom.Point) {
		f.Lines = append(f.Lines, Line{
			From: origin.TransformPoint(a),
			To:   origin.TransformPoint(b),
		})
	})

	pos := p.At(st.PathIndex)
	f.Marker = Circle{
		Center: origin.TransformPoint(pos),
		Radius: config.MarkerRadius,
	}

	local := GlyphTransform(pos, st.Angle)
	f.Glyph = GlyphPlacement{
		Text:      config.GlyphText,
		Local:     local,
		Transform: origin.Multiply(local),
		Offset:    GlyphOffset(gm),
	}
	return f
}

// GlyphTransform is translate(pos) ∘ rotate(angle), angle in degrees.
func GlyphTransform(pos geom.Point, angle float64) geom.Matrix {
	return geom.Translate(pos.X, pos.Y).Multiply(geom.Rotate(geom.Radians(angle)))
}

// GlyphOffset centers the text horizontally by its advance and vertically by
// ascent minus descent.
func GlyphOffset(gm GlyphMetrics) geom.Point {
	return geom.Pt(-gm.Advance/2, (gm.Ascent-gm.Descent)/2)
}
