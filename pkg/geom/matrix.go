// pkg/geom/matrix.go
package geom

import "math"

// Matrix is a 2D affine transform stored as a 2x3 row-major matrix:
//
//	| a  b  c |
//	| d  e  f |
//
// x' = a*x + b*y + c
// y' = d*x + e*y + f
//
// Matrix is a value; Multiply never mutates its operands.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Rotate returns a rotation by angle radians. With the y axis pointing down
// (screen space) a positive angle turns clockwise.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Element returns the coefficient at row i, column j of the 2x3 matrix,
// using the same indexing as ebiten.GeoM.SetElement.
func (m Matrix) Element(i, j int) float64 {
	switch {
	case i == 0 && j == 0:
		return m.A
	case i == 0 && j == 1:
		return m.B
	case i == 0 && j == 2:
		return m.C
	case i == 1 && j == 0:
		return m.D
	case i == 1 && j == 1:
		return m.E
	case i == 1 && j == 2:
		return m.F
	}
	return 0
}

// TransformPoint applies the transform to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Translation returns the translation component.
func (m Matrix) Translation() Point {
	return Point{X: m.C, Y: m.F}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ApproxEqual compares all six coefficients with tolerance eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps && math.Abs(m.B-o.B) <= eps &&
		math.Abs(m.C-o.C) <= eps && math.Abs(m.D-o.D) <= eps &&
		math.Abs(m.E-o.E) <= eps && math.Abs(m.F-o.F) <= eps
}
