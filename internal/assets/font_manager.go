package assets

import (
	"fmt"
	"log"

	"rotating-f/internal/anim"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontManager загружает и кэширует начертания жирного шрифта по размеру.
type FontManager struct {
	ttf   []byte
	dpi   float64
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager создает менеджер для встроенного шрифта Go Bold.
func NewFontManager(dpi float64) *FontManager {
	return NewFontManagerFromTTF(gobold.TTF, dpi)
}

// NewFontManagerFromTTF создает менеджер для произвольного TTF/OTF.
func NewFontManagerFromTTF(ttf []byte, dpi float64) *FontManager {
	return &FontManager{
		ttf:   ttf,
		dpi:   dpi,
		faces: make(map[float64]font.Face),
	}
}

func (m *FontManager) parse() (*opentype.Font, error) {
	if m.font != nil {
		return m.font, nil
	}
	tt, err := opentype.Parse(m.ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse glyph font: %w", err)
	}
	m.font = tt
	return tt, nil
}

// Face возвращает начертание заданного размера, создавая его при первом запросе.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	tt, err := m.parse()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     m.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %v: %w", size, err)
	}
	m.faces[size] = face
	log.Printf("loaded glyph face size=%v dpi=%v", size, m.dpi)
	return face, nil
}

// Cleanup закрывает все созданные начертания.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: failed to close face size=%v: %v", size, err)
		}
		delete(m.faces, size)
	}
}

// Measure возвращает ширину строки и метрики начертания в пикселях.
func Measure(face font.Face, s string) anim.GlyphMetrics {
	fm := face.Metrics()
	return anim.GlyphMetrics{
		Advance: toFloat(font.MeasureString(face, s)),
		Ascent:  toFloat(fm.Ascent),
		Descent: toFloat(fm.Descent),
	}
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
