package render

import (
	"image/color"

	"rotating-f/internal/anim"
	"rotating-f/internal/config"
	"rotating-f/pkg/geom"
	"rotating-f/pkg/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FrameRenderer рисует anim.Frame на экран ebiten.
type FrameRenderer struct {
	palette   palette.Palette
	face      font.Face
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16

	pathImage  *ebiten.Image // предрендеренный контур большой "F"
	pathOrigin geom.Matrix
	pathW      int
	pathH      int
}

func NewFrameRenderer(pal palette.Palette, face font.Face) *FrameRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &FrameRenderer{
		palette:   pal,
		face:      face,
		strokeImg: strokeImg,
	}
}

// Draw рисует один кадр: фон, контур пути, маркер и повёрнутый глиф.
func (r *FrameRenderer) Draw(screen *ebiten.Image, f anim.Frame) {
	screen.Fill(r.palette.Background)
	if f.Empty {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if !(anim.Viewport{Width: w, Height: h}).Drawable() {
		return
	}
	if r.pathImage == nil || r.pathW != w || r.pathH != h || r.pathOrigin != f.Origin {
		r.renderPathImage(w, h, f)
	}
	screen.DrawImage(r.pathImage, nil)

	vector.DrawFilledCircle(screen,
		float32(f.Marker.Center.X), float32(f.Marker.Center.Y),
		float32(f.Marker.Radius), r.palette.Marker, config.AntiAlias)

	r.drawGlyph(screen, f.Glyph)
}

// renderPathImage перерисовывает статичный контур; нужен только при смене
// размеров окна.
func (r *FrameRenderer) renderPathImage(w, h int, f anim.Frame) {
	if r.pathImage != nil {
		r.pathImage.Deallocate()
	}
	r.pathImage = ebiten.NewImage(w, h)
	r.pathW, r.pathH, r.pathOrigin = w, h, f.Origin

	if len(f.Lines) == 0 {
		return
	}
	var p vector.Path
	p.MoveTo(float32(f.Lines[0].From.X), float32(f.Lines[0].From.Y))
	for _, l := range f.Lines {
		p.LineTo(float32(l.To.X), float32(l.To.Y))
	}

	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.palette.PathWidth,
		LineJoin: vector.LineJoinRound,
	})
	c := r.palette.Path
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	r.pathImage.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: config.AntiAlias,
	})
}

func (r *FrameRenderer) drawGlyph(screen *ebiten.Image, g anim.GlyphPlacement) {
	m := g.Transform.Multiply(geom.Translate(g.Offset.X, g.Offset.Y))

	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(m)
	op.ColorScale.ScaleWithColor(r.palette.Glyph)
	if config.AntiAlias {
		op.Filter = ebiten.FilterLinear
	}
	text.DrawWithOptions(screen, g.Text, r.face, op)
}

// GeoM converts an affine matrix into ebiten's representation.
func GeoM(m geom.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			g.SetElement(i, j, m.Element(i, j))
		}
	}
	return g
}

// Deallocate releases GPU images held by the renderer.
func (r *FrameRenderer) Deallocate() {
	if r.pathImage != nil {
		r.pathImage.Deallocate()
		r.pathImage = nil
	}
	r.strokeImg.Deallocate()
}
