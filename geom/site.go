package geom

import "math"

// Site is an immutable planar point. Equality is coordinate equality; sites
// are plain comparable values, so they can be used directly as map keys.
type Site struct {
	X, Y float64
}

// NewSite validates x and y and returns a Site, or ErrNonFinite if either
// coordinate is NaN or infinite.
//
// Complexity: O(1).
func NewSite(x, y float64) (Site, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Site{}, ErrNonFinite
	}

	return Site{X: x, Y: y}, nil
}

// Less orders sites lexicographically by (X, Y) — the sort order the
// Delaunay builder requires before recursing.
func (s Site) Less(o Site) bool {
	if s.X != o.X {
		return s.X < o.X
	}

	return s.Y < o.Y
}

// Equal reports whether s and o share the same coordinates exactly (no
// epsilon — identity is exact per the data model).
func (s Site) Equal(o Site) bool {
	return s.X == o.X && s.Y == o.Y
}
