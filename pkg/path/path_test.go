package path

import (
	"math"
	"testing"

	"rotating-f/pkg/geom"
)

const eps = 1e-9

func TestBuildLength(t *testing.T) {
	p := Build()
	if got, want := p.Len(), 81+81+101+71; got != want {
		t.Fatalf("Build() has %d points, want %d", got, want)
	}
	if got := PointCount(BigF); got != 334 {
		t.Errorf("PointCount(BigF) = %d, want 334", got)
	}
}

func TestBuildEndpoints(t *testing.T) {
	p := Build()
	if first := p[0]; !first.ApproxEqual(geom.Pt(-180, -120), eps) {
		t.Errorf("first point = %v, want (-180,-120)", first)
	}
	if last := p[len(p)-1]; !last.ApproxEqual(geom.Pt(60, 0), eps) {
		t.Errorf("last point = %v, want (60,0)", last)
	}
}

func TestBuildKeepsDuplicateTurnaround(t *testing.T) {
	p := Build()
	// конец первого участка и начало второго совпадают
	if p[80] != p[81] {
		t.Errorf("p[80] = %v, p[81] = %v, want equal", p[80], p[81])
	}
	if !p[80].ApproxEqual(geom.Pt(180, -120), eps) {
		t.Errorf("p[80] = %v, want (180,-120)", p[80])
	}
}

func TestSegmentsAreLinear(t *testing.T) {
	p := Build()
	offset := 0
	for si, seg := range BigF {
		for i := 0; i <= seg.Steps; i++ {
			tt := float64(i) / float64(seg.Steps)
			want := geom.Pt(
				seg.Start.X+tt*(seg.End.X-seg.Start.X),
				seg.Start.Y+tt*(seg.End.Y-seg.Start.Y),
			)
			got := p[offset+i]
			if !got.ApproxEqual(want, eps) {
				t.Fatalf("segment %d point %d = %v, want %v", si, i, got, want)
			}
			// точка лежит на прямой start-end: векторное произведение равно нулю
			d := seg.End.Sub(seg.Start)
			v := got.Sub(seg.Start)
			if cross := d.X*v.Y - d.Y*v.X; math.Abs(cross) > 1e-6 {
				t.Fatalf("segment %d point %d off the line, cross = %v", si, i, cross)
			}
		}
		offset += seg.Steps + 1
	}
}

func TestAddSegment(t *testing.T) {
	tests := []struct {
		name  string
		start geom.Point
		end   geom.Point
		steps int
		want  []geom.Point
	}{
		{"zero steps", geom.Pt(1, 2), geom.Pt(5, 6), 0, []geom.Point{geom.Pt(1, 2)}},
		{"one step", geom.Pt(0, 0), geom.Pt(10, -10), 1, []geom.Point{geom.Pt(0, 0), geom.Pt(10, -10)}},
		{"four steps", geom.Pt(0, 0), geom.Pt(8, 0), 4, []geom.Point{
			geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(4, 0), geom.Pt(6, 0), geom.Pt(8, 0),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddSegment(nil, tt.start, tt.end, tt.steps)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d points, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].ApproxEqual(tt.want[i], eps) {
					t.Errorf("point %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAddSegmentAppends(t *testing.T) {
	dst := []geom.Point{geom.Pt(9, 9)}
	dst = AddSegment(dst, geom.Pt(0, 0), geom.Pt(1, 1), 2)
	if len(dst) != 4 || dst[0] != geom.Pt(9, 9) {
		t.Errorf("AddSegment did not append to dst: %v", dst)
	}
}

func TestAtWraps(t *testing.T) {
	p := Build()
	if p.At(334) != p[0] {
		t.Errorf("At(334) = %v, want %v", p.At(334), p[0])
	}
	if p.At(-1) != p[333] {
		t.Errorf("At(-1) = %v, want %v", p.At(-1), p[333])
	}
	if got := Path(nil).At(3); got != (geom.Point{}) {
		t.Errorf("empty At = %v, want zero point", got)
	}
}

func TestSegmentsCount(t *testing.T) {
	n := 0
	Build().Segments(func(a, b geom.Point) { n++ })
	if n != 333 {
		t.Errorf("Segments visited %d pairs, want 333", n)
	}
	n = 0
	Path{geom.Pt(1, 1)}.Segments(func(a, b geom.Point) { n++ })
	if n != 0 {
		t.Errorf("single-point path visited %d pairs, want 0", n)
	}
}
