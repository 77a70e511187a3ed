package delaunay

import (
	"math"
	"sort"

	"github.com/katalvlaran/tessellate/geom"
	"github.com/katalvlaran/tessellate/quadedge"
)

// Triangulation is the read-only facade over one completed Delaunay build:
// the sorted site list plus the quad-edge subdivision's entry points. After
// Build returns, the subdivision is treated as immutable.
type Triangulation struct {
	sites   []geom.Site
	sub     *quadedge.Subdivision
	left    quadedge.QuarterEdge
	right   quadedge.QuarterEdge
	epsilon float64
}

// Build sorts sites lexicographically by (X, Y) and constructs their
// Delaunay triangulation. It returns ErrTooFewSites if len(sites) < 2,
// ErrNonFinite if any coordinate is NaN or infinite, and ErrDuplicateSite if
// two sites share exact coordinates.
//
// Complexity: O(n log n).
func Build(sites []geom.Site, opts ...BuildOption) (*Triangulation, error) {
	if len(sites) < 2 {
		return nil, ErrTooFewSites
	}

	for _, s := range sites {
		if math.IsNaN(s.X) || math.IsInf(s.X, 0) || math.IsNaN(s.Y) || math.IsInf(s.Y, 0) {
			return nil, ErrNonFinite
		}
	}

	cfg := newBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sorted := make([]geom.Site, len(sites))
	copy(sorted, sites)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Equal(sorted[i-1]) {
			return nil, ErrDuplicateSite
		}
	}

	sub := quadedge.NewSubdivision()
	left, right := triangulate(sub, sorted)

	return &Triangulation{
		sites:   sorted,
		sub:     sub,
		left:    left,
		right:   right,
		epsilon: cfg.epsilon,
	}, nil
}

// Sites returns the original site list in sorted (build) order. The
// returned slice is a copy; mutating it does not affect the triangulation.
func (t *Triangulation) Sites() []geom.Site {
	out := make([]geom.Site, len(t.sites))
	copy(out, t.sites)
	return out
}

// Edges returns every Delaunay edge as an unordered site pair, deduplicated,
// in a stable sorted order.
func (t *Triangulation) Edges() []Edge {
	return delaunayEdges(t.sub)
}

// Triangles returns every bounded Delaunay triangle, canonicalized and
// deduplicated, in a stable sorted order.
func (t *Triangulation) Triangles() []Triangle {
	return findTriangles(t.sub)
}

// ConvexHull returns the convex hull of the input sites in ccw order.
func (t *Triangulation) ConvexHull() []geom.Site {
	return convexHull(t.sub, t.sites)
}

// Voronoi returns the circumcenter of every bounded triangle and the
// bounded Voronoi edges between circumcenters of triangles that share an
// interior Delaunay edge. It returns geom.ErrDegenerate if a triangle turns out
// collinear under the configured epsilon — this should not occur on a
// valid Delaunay build and indicates a defect rather than a normal input
// condition.
func (t *Triangulation) Voronoi() ([]geom.Site, []VoronoiEdge, error) {
	return voronoiDiagram(t.Triangles(), t.epsilon)
}

// Bounds returns the axis-aligned bounding box (min, max corners) of the
// input sites. Useful to a rendering consumer picking a plot viewport; it
// is pure derived geometry, not build state.
func (t *Triangulation) Bounds() (min, max geom.Site) {
	min, max = t.sites[0], t.sites[0]
	for _, s := range t.sites[1:] {
		if s.X < min.X {
			min.X = s.X
		}
		if s.Y < min.Y {
			min.Y = s.Y
		}
		if s.X > max.X {
			max.X = s.X
		}
		if s.Y > max.Y {
			max.Y = s.Y
		}
	}

	return min, max
}

// Left returns the quad-edge entry point at the leftmost site, immediately
// ccw of the hull's lowest tangent — exposed for tests and advanced
// consumers that need to walk the subdivision directly.
func (t *Triangulation) Left() quadedge.QuarterEdge {
	return t.left
}

// Right returns the quad-edge entry point at the rightmost site.
func (t *Triangulation) Right() quadedge.QuarterEdge {
	return t.right
}
