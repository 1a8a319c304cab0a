package alder

import "math"

// Matrix is a 2D affine transform.
//
//	Layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The chainable methods (Trans, RotDeg, Scale, FlipH, FlipV) compose their
// operation in the local space established by the receiver:
// t.Trans(x, y).RotDeg(deg) first rotates a point, then translates it, then
// applies t. This matches how a parent transform is refined step by step
// while descending a sprite tree.
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Mul returns m * o, the transform that applies o to a point first and then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Trans composes a translation by (x, y).
func (m Matrix) Trans(x, y float64) Matrix {
	return Matrix{
		m[0], m[1], m[2], m[3],
		m[0]*x + m[2]*y + m[4],
		m[1]*x + m[3]*y + m[5],
	}
}

// RotDeg composes a rotation by deg degrees about the local origin.
// With the top-left, Y-down coordinate system a positive angle turns
// clockwise on screen.
func (m Matrix) RotDeg(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{
		m[0]*cos + m[2]*sin,
		m[1]*cos + m[3]*sin,
		m[2]*cos - m[0]*sin,
		m[3]*cos - m[1]*sin,
		m[4], m[5],
	}
}

// Scale composes a scale by (sx, sy) about the local origin.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Matrix{
		m[0] * sx, m[1] * sx,
		m[2] * sy, m[3] * sy,
		m[4], m[5],
	}
}

// FlipH composes a horizontal mirror (negates local X).
func (m Matrix) FlipH() Matrix {
	return m.Scale(-1, 1)
}

// FlipV composes a vertical mirror (negates local Y).
func (m Matrix) FlipV() Matrix {
	return m.Scale(1, -1)
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Invert returns the inverse transform.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}
