package delaunay_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tessellate/delaunay"
	"github.com/katalvlaran/tessellate/geom"
	"github.com/stretchr/testify/require"
)

func sites(coords ...[2]float64) []geom.Site {
	out := make([]geom.Site, len(coords))
	for i, c := range coords {
		out[i] = geom.Site{X: c[0], Y: c[1]}
	}

	return out
}

func TestBuild_TooFewSites(t *testing.T) {
	_, err := delaunay.Build(sites([2]float64{0, 0}))
	require.ErrorIs(t, err, delaunay.ErrTooFewSites)

	_, err = delaunay.Build(nil)
	require.ErrorIs(t, err, delaunay.ErrTooFewSites)
}

func TestBuild_DuplicateSite(t *testing.T) {
	_, err := delaunay.Build(sites([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{0, 0}))
	require.ErrorIs(t, err, delaunay.ErrDuplicateSite)
}

func TestWithEpsilon_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { delaunay.WithEpsilon(0) })
	require.Panics(t, func() { delaunay.WithEpsilon(-1) })
}

func TestBuild_NonFiniteCoordinate(t *testing.T) {
	_, err := delaunay.Build(sites([2]float64{0, 0}, [2]float64{math.NaN(), 1}))
	require.ErrorIs(t, err, delaunay.ErrNonFinite)

	_, err = delaunay.Build(sites([2]float64{0, 0}, [2]float64{1, math.Inf(1)}))
	require.ErrorIs(t, err, delaunay.ErrNonFinite)

	_, err = delaunay.Build(sites([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{math.Inf(-1), 2}))
	require.ErrorIs(t, err, delaunay.ErrNonFinite)
}

// Scenario 1 (spec.md §8): two sites.
func TestScenario_TwoSites(t *testing.T) {
	tri, err := delaunay.Build(sites([2]float64{0, 0}, [2]float64{0, 1}))
	require.NoError(t, err)

	edges := tri.Edges()
	require.Len(t, edges, 1)
	require.Empty(t, tri.Triangles())

	centers, vedges, err := tri.Voronoi()
	require.NoError(t, err)
	require.Empty(t, centers)
	require.Empty(t, vedges)
}

// Scenario 2 (spec.md §8): right triangle.
func TestScenario_RightTriangle(t *testing.T) {
	tri, err := delaunay.Build(sites([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 0}))
	require.NoError(t, err)

	triangles := tri.Triangles()
	require.Len(t, triangles, 1)

	centers, vedges, err := tri.Voronoi()
	require.NoError(t, err)
	require.Len(t, centers, 1)
	require.InDelta(t, 0.5, centers[0].X, 1e-9)
	require.InDelta(t, 0.5, centers[0].Y, 1e-9)
	require.Empty(t, vedges)
}

// Scenario 5 (spec.md §8): collinear triple.
func TestScenario_CollinearTriple(t *testing.T) {
	tri, err := delaunay.Build(sites([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}))
	require.NoError(t, err)

	require.Empty(t, tri.Triangles())
	require.Len(t, tri.Edges(), 2)

	centers, vedges, err := tri.Voronoi()
	require.NoError(t, err)
	require.Empty(t, centers)
	require.Empty(t, vedges)
}

// Scenario 3 (spec.md §8): unit square — two triangles, one shared diagonal.
func TestScenario_UnitSquare(t *testing.T) {
	tri, err := delaunay.Build(sites(
		[2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 0}, [2]float64{1, 1},
	))
	require.NoError(t, err)

	require.Len(t, tri.Triangles(), 2)

	centers, vedges, err := tri.Voronoi()
	require.NoError(t, err)
	require.Len(t, centers, 2)
	require.Len(t, vedges, 1)
}

// Scenario 4 (spec.md §8): square with centroid — four triangles fan out
// from the center point.
func TestScenario_SquareWithCentroid(t *testing.T) {
	tri, err := delaunay.Build(sites(
		[2]float64{0, 0}, [2]float64{0, 1}, [2]float64{0.5, 0.5}, [2]float64{1, 0}, [2]float64{1, 1},
	))
	require.NoError(t, err)

	require.Len(t, tri.Triangles(), 4)

	centers, vedges, err := tri.Voronoi()
	require.NoError(t, err)
	require.Len(t, centers, 4)
	require.Len(t, vedges, 4)
}

// TestProperty_EmptyCircumcircle checks P3: for every bounded triangle and
// every other input site, InCircle is false (no site lies inside a
// triangle's circumcircle).
func TestProperty_EmptyCircumcircle(t *testing.T) {
	for _, n := range []int{10, 50, 200} {
		n := n
		t.Run(sizeName(n), func(t *testing.T) {
			pts := randomUnitSquareSites(t, n, 42)

			tri, err := delaunay.Build(pts)
			require.NoError(t, err)

			for _, tg := range tri.Triangles() {
				verts := tg.Sites()
				a, b, c := verts[0], verts[1], verts[2]
				ccwVerts := orientCCW(a, b, c)

				for _, d := range pts {
					if d.Equal(a) || d.Equal(b) || d.Equal(c) {
						continue
					}
					require.False(t, geom.InCircle(ccwVerts[0], ccwVerts[1], ccwVerts[2], d),
						"site %+v inside circumcircle of triangle %+v", d, verts)
				}
			}
		})
	}
}

// TestProperty_EulerRelation checks P4: T = 2n - h - 2 and E = 3n - h - 3,
// where h is the hull size, for sites in general position.
func TestProperty_EulerRelation(t *testing.T) {
	for _, n := range []int{10, 50, 200} {
		n := n
		t.Run(sizeName(n), func(t *testing.T) {
			pts := randomUnitSquareSites(t, n, 7)

			tri, err := delaunay.Build(pts)
			require.NoError(t, err)

			h := len(tri.ConvexHull())
			wantT := 2*n - h - 2
			wantE := 3*n - h - 3

			require.Equal(t, wantT, len(tri.Triangles()))
			require.Equal(t, wantE, len(tri.Edges()))
		})
	}
}

func sizeName(n int) string {
	switch n {
	case 10:
		return "N=10"
	case 50:
		return "N=50"
	case 200:
		return "N=200"
	default:
		return "N"
	}
}

// randomUnitSquareSites draws n distinct sites uniformly from the unit
// square using a fixed seed, for reproducible property tests.
func randomUnitSquareSites(t *testing.T, n int, seed int64) []geom.Site {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	seen := make(map[geom.Site]bool, n)
	out := make([]geom.Site, 0, n)
	for len(out) < n {
		s := geom.Site{X: r.Float64(), Y: r.Float64()}
		if seen[s] {
			continue // astronomically unlikely, but keep Build's no-duplicate contract
		}
		seen[s] = true
		out = append(out, s)
	}

	return out
}

// orientCCW returns a, b, c reordered so that (a, b, c) is ccw — InCircle's
// sign convention assumes its first three arguments already wind ccw.
func orientCCW(a, b, c geom.Site) [3]geom.Site {
	if geom.CCW(a, b, c) {
		return [3]geom.Site{a, b, c}
	}

	return [3]geom.Site{a, c, b}
}
