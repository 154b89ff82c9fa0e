// pkg/path/path.go
package path

import (
	"rotating-f/internal/utils"
	"rotating-f/pkg/geom"
)

// Path - упорядоченная последовательность точек. Порядок задаёт и обход, и
// порядок отрисовки отрезков.
type Path []geom.Point

// Segment описывает прямой участок пути и число шагов интерполяции.
type Segment struct {
	Start geom.Point
	End   geom.Point
	Steps int
}

// BigF - участки большой буквы "F" в координатах с центром в (0,0).
// Второй участок возвращается по первому в обратную сторону, поэтому точка
// (180,-120) встречается дважды подряд и маркер на ней задерживается на тик.
var BigF = []Segment{
	{Start: geom.Pt(-180, -120), End: geom.Pt(180, -120), Steps: 80},  // верхняя перекладина
	{Start: geom.Pt(180, -120), End: geom.Pt(-180, -120), Steps: 80},  // обратный проход
	{Start: geom.Pt(-180, -120), End: geom.Pt(-180, 120), Steps: 100}, // вертикаль
	{Start: geom.Pt(-180, 0), End: geom.Pt(60, 0), Steps: 70},         // средняя перекладина
}

// AddSegment дописывает в dst steps+1 точек, равномерно распределённых
// от start до end включительно (t = i/steps).
func AddSegment(dst []geom.Point, start, end geom.Point, steps int) []geom.Point {
	if steps <= 0 {
		return append(dst, start)
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dst = append(dst, geom.Point{
			X: utils.Lerp(start.X, end.X, t),
			Y: utils.Lerp(start.Y, end.Y, t),
		})
	}
	return dst
}

// PointCount returns how many points Concat will produce for segs.
func PointCount(segs []Segment) int {
	n := 0
	for _, s := range segs {
		if s.Steps <= 0 {
			n++
			continue
		}
		n += s.Steps + 1
	}
	return n
}

// Concat interpolates every segment in order into one flat path.
// Shared endpoints are not deduplicated.
func Concat(segs []Segment) Path {
	pts := make([]geom.Point, 0, PointCount(segs))
	for _, s := range segs {
		pts = AddSegment(pts, s.Start, s.End, s.Steps)
	}
	return Path(pts)
}

// Build строит путь большой "F". Вызывается один раз при старте.
func Build() Path {
	return Concat(BigF)
}

// Len returns the number of points.
func (p Path) Len() int {
	return len(p)
}

// At returns the point at i wrapped into [0, len). An empty path yields the
// zero point.
func (p Path) At(i int) geom.Point {
	if len(p) == 0 {
		return geom.Point{}
	}
	return p[utils.WrapIndex(i, len(p))]
}

// Segments calls fn for every consecutive pair of points.
func (p Path) Segments(fn func(a, b geom.Point)) {
	for i := 0; i+1 < len(p); i++ {
		fn(p[i], p[i+1])
	}
}
