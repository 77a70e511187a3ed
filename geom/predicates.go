package geom

import "gonum.org/v1/gonum/mat"

// CCW reports whether (a, b, c) is a strictly counter-clockwise triple.
// Collinear triples return false.
//
// Mirrors the reference implementation's `np.linalg.det([[a.x,a.y,1], ...])
// > 0` test: the determinant of the 3x3 matrix of homogeneous coordinates
// is positive iff the triple winds counter-clockwise.
//
// Complexity: O(1).
func CCW(a, b, c Site) bool {
	m := mat.NewDense(3, 3, []float64{
		a.X, a.Y, 1,
		b.X, b.Y, 1,
		c.X, c.Y, 1,
	})

	return mat.Det(m) > 0
}

// InCircle reports whether d lies strictly inside the circle through
// a, b, c, assuming (a, b, c) is already ccw. If (a, b, c) is cw the sign
// of the result inverts; callers are responsible for orientation.
//
// Mirrors the reference implementation's lifted-paraboloid 4x4 determinant
// test via np.linalg.det.
//
// Complexity: O(1).
func InCircle(a, b, c, d Site) bool {
	m := mat.NewDense(4, 4, []float64{
		a.X, a.Y, a.X*a.X + a.Y*a.Y, 1,
		b.X, b.Y, b.X*b.X + b.Y*b.Y, 1,
		c.X, c.Y, c.X*c.X + c.Y*c.Y, 1,
		d.X, d.Y, d.X*d.X + d.Y*d.Y, 1,
	})

	return mat.Det(m) > 0
}
