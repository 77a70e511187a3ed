package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tessellate/geom"
	"github.com/stretchr/testify/require"
)

func TestNewSite_RejectsNonFinite(t *testing.T) {
	_, err := geom.NewSite(math.NaN(), 0)
	require.ErrorIs(t, err, geom.ErrNonFinite)

	_, err = geom.NewSite(0, math.Inf(1))
	require.ErrorIs(t, err, geom.ErrNonFinite)

	s, err := geom.NewSite(1, 2)
	require.NoError(t, err)
	require.Equal(t, geom.Site{X: 1, Y: 2}, s)
}

func TestCCW(t *testing.T) {
	a := geom.Site{X: 0, Y: 0}
	b := geom.Site{X: 1, Y: 0}
	c := geom.Site{X: 0, Y: 1}

	require.True(t, geom.CCW(a, b, c))
	require.False(t, geom.CCW(a, c, b))

	collinear := geom.Site{X: 2, Y: 0}
	require.False(t, geom.CCW(a, b, collinear))
}

func TestInCircle(t *testing.T) {
	a := geom.Site{X: 0, Y: 0}
	b := geom.Site{X: 1, Y: 0}
	c := geom.Site{X: 0, Y: 1}

	inside := geom.Site{X: 0.25, Y: 0.25}
	outside := geom.Site{X: 10, Y: 10}

	require.True(t, geom.InCircle(a, b, c, inside))
	require.False(t, geom.InCircle(a, b, c, outside))
}

func TestCircumcenter(t *testing.T) {
	a := geom.Site{X: 0, Y: 0}
	b := geom.Site{X: 1, Y: 0}
	c := geom.Site{X: 0, Y: 1}

	center, err := geom.Circumcenter(a, b, c, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, center.X, 1e-9)
	require.InDelta(t, 0.5, center.Y, 1e-9)
}

func TestCircumcenter_Collinear(t *testing.T) {
	a := geom.Site{X: 0, Y: 0}
	b := geom.Site{X: 1, Y: 0}
	c := geom.Site{X: 2, Y: 0}

	_, err := geom.Circumcenter(a, b, c, 0)
	require.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestSite_LessAndEqual(t *testing.T) {
	a := geom.Site{X: 0, Y: 1}
	b := geom.Site{X: 1, Y: 0}

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Equal(geom.Site{X: 0, Y: 1}))
	require.False(t, a.Equal(b))
}
