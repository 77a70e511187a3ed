package delaunay

import (
	"sort"

	"github.com/katalvlaran/tessellate/geom"
	"github.com/katalvlaran/tessellate/quadedge"
)

// Triangle is a canonicalized, unordered triple of sites: its three sites
// are always stored sorted lexicographically by (X, Y), so two Triangle
// values compare equal (and hash equal as a map key) iff they describe the
// same triangle regardless of discovery order.
type Triangle [3]geom.Site

func newTriangle(a, b, c geom.Site) Triangle {
	pts := [3]geom.Site{a, b, c}
	sort.Slice(pts[:], func(i, j int) bool { return pts[i].Less(pts[j]) })

	return Triangle(pts)
}

// Sites returns the triangle's three vertices in canonical order.
func (t Triangle) Sites() [3]geom.Site {
	return [3]geom.Site(t)
}

func lessTriangle(a, b Triangle) bool {
	for i := 0; i < 3; i++ {
		if a[i].Equal(b[i]) {
			continue
		}

		return a[i].Less(b[i])
	}

	return false
}

// Edge is an unordered pair of sites, canonicalized so A is lexicographically
// no greater than B.
type Edge struct {
	A, B geom.Site
}

func newEdge(a, b geom.Site) Edge {
	if b.Less(a) {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

func lessEdge(a, b Edge) bool {
	if !a.A.Equal(b.A) {
		return a.A.Less(b.A)
	}

	return a.B.Less(b.B)
}

// VoronoiEdge is an unordered pair of circumcenter points — the dual of one
// interior Delaunay edge.
type VoronoiEdge struct {
	A, B geom.Site
}

func newVoronoiEdge(a, b geom.Site) VoronoiEdge {
	if b.Less(a) {
		a, b = b, a
	}

	return VoronoiEdge{A: a, B: b}
}

// delaunayEdges walks every primal quarter-edge with defined endpoints and
// returns the set of undirected Delaunay edges, in a stable, sorted order.
//
// Complexity: O(n) in the number of quarter-edges.
func delaunayEdges(sub *quadedge.Subdivision) []Edge {
	seen := make(map[Edge]struct{})
	for _, e := range sub.AllPrimal() {
		origin, _ := e.Origin()
		dest, _ := e.Dest()
		seen[newEdge(origin, dest)] = struct{}{}
	}

	out := make([]Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return lessEdge(out[i], out[j]) })

	return out
}

// findTriangles enumerates every bounded Delaunay triangle in sub, per
// spec: for each primal quarter-edge e with defined endpoints, a closed
// 3-cycle via Lnext (resp. Rnext) records a triangle. A closed Lnext
// 3-cycle is recorded only when it winds ccw, which skips the outer
// (unbounded) face even when the convex hull is itself a triangle.
//
// Complexity: O(n) in the number of quarter-edges.
func findTriangles(sub *quadedge.Subdivision) []Triangle {
	seen := make(map[Triangle]struct{})
	for _, e := range sub.AllPrimal() {
		origin, _ := e.Origin()

		if dest, _ := e.Lnext().Lnext().Dest(); dest.Equal(origin) {
			o1, _ := e.Lnext().Origin()
			o2, _ := e.Lnext().Lnext().Origin()
			if geom.CCW(origin, o1, o2) {
				seen[newTriangle(origin, o1, o2)] = struct{}{}
			}
		}

		if dest, _ := e.Rnext().Rnext().Dest(); dest.Equal(origin) {
			o1, _ := e.Rnext().Origin()
			o2, _ := e.Rnext().Rnext().Origin()
			seen[newTriangle(origin, o1, o2)] = struct{}{}
		}
	}

	out := make([]Triangle, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return lessTriangle(out[i], out[j]) })

	return out
}

// voronoiDiagram computes the circumcenter of every triangle and, for every
// Delaunay edge shared by exactly two triangles, the Voronoi edge between
// those circumcenters. Hull edges (one incident triangle) emit no bounded
// Voronoi edge — unbounded rays are out of scope.
//
// Complexity: O(t) in the number of triangles.
func voronoiDiagram(triangles []Triangle, eps float64) ([]geom.Site, []VoronoiEdge, error) {
	centerOf := make(map[Triangle]geom.Site, len(triangles))
	centers := make([]geom.Site, 0, len(triangles))
	for _, t := range triangles {
		c, err := geom.Circumcenter(t[0], t[1], t[2], eps)
		if err != nil {
			return nil, nil, err
		}
		centerOf[t] = c
		centers = append(centers, c)
	}

	edgeToTriangles := make(map[Edge][]Triangle)
	for _, t := range triangles {
		pts := t.Sites()
		edgeToTriangles[newEdge(pts[0], pts[1])] = append(edgeToTriangles[newEdge(pts[0], pts[1])], t)
		edgeToTriangles[newEdge(pts[1], pts[2])] = append(edgeToTriangles[newEdge(pts[1], pts[2])], t)
		edgeToTriangles[newEdge(pts[0], pts[2])] = append(edgeToTriangles[newEdge(pts[0], pts[2])], t)
	}

	var edges []VoronoiEdge
	for _, adjacent := range edgeToTriangles {
		if len(adjacent) != 2 {
			continue
		}

		edges = append(edges, newVoronoiEdge(centerOf[adjacent[0]], centerOf[adjacent[1]]))
	}
	sort.Slice(edges, func(i, j int) bool {
		if !edges[i].A.Equal(edges[j].A) {
			return edges[i].A.Less(edges[j].A)
		}

		return edges[i].B.Less(edges[j].B)
	})

	return centers, edges, nil
}

// convexHull walks the boundary of the unbounded outer face and returns the
// convex hull of sorted in ccw order. A face counts as a bounded triangle
// when its Lnext ring closes in three steps and winds ccw (the unbounded
// face winds cw, even when the hull itself is a triangle). A directed
// primal edge e is a hull edge precisely when its left face is a bounded
// triangle while its right face is not — the right face is then the
// unbounded exterior,
// and e.Origin()->e.Dest() is already the correct ccw hull direction (the
// same direction in which its one incident triangle is wound).
//
// When the input has no bounded triangle at all (e.g. every site is
// collinear, or there are only two sites), there is no interior to derive
// a cycle from; the sorted input sites are returned as a degenerate open
// chain instead.
//
// Complexity: O(n) in the number of quarter-edges.
func convexHull(sub *quadedge.Subdivision, sorted []geom.Site) []geom.Site {
	next := make(map[geom.Site]geom.Site)
	for _, e := range sub.AllPrimal() {
		origin, _ := e.Origin()
		dest, _ := e.Dest()

		// The right face of e is the left face of e.Sym().
		leftIsTriangle := false
		if apex, _ := e.Lnext().Dest(); e.Lnext().Lnext().Lnext().Equal(e) && geom.CCW(origin, dest, apex) {
			leftIsTriangle = true
		}
		rightIsTriangle := false
		if apex, _ := e.Sym().Lnext().Dest(); e.Sym().Lnext().Lnext().Lnext().Equal(e.Sym()) && geom.CCW(dest, origin, apex) {
			rightIsTriangle = true
		}

		if leftIsTriangle && !rightIsTriangle {
			next[origin] = dest
		}
	}

	if len(next) == 0 {
		out := make([]geom.Site, len(sorted))
		copy(out, sorted)
		return out
	}

	start := sorted[0]
	hull := make([]geom.Site, 0, len(next))
	cur := start
	for i := 0; i <= len(next); i++ {
		hull = append(hull, cur)
		nxt, ok := next[cur]
		if !ok || nxt.Equal(start) {
			break
		}
		cur = nxt
	}

	return hull
}
