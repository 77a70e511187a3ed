// SPDX-License-Identifier: MIT
// Package: tessellate/render
//
// plot.go — PNG export of a triangulation via gonum.org/v1/plot.
//
// Contract (matches the teacher's builder-package convention):
//   - Options are functional: type Option func(*plotConfig).
//   - Option constructors validate and PANIC on meaningless values; PlotPNG
//     itself never panics on caller data.
package render

import (
	"image/color"

	"github.com/katalvlaran/tessellate/delaunay"
	"github.com/katalvlaran/tessellate/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 6 * vg.Inch
	defaultTitle  = "Delaunay / Voronoi"
)

// plotConfig holds the resolved configuration for one PlotPNG call.
type plotConfig struct {
	width, height vg.Length
	title         string
	showVoronoi   bool
}

func newPlotConfig() *plotConfig {
	return &plotConfig{
		width:       defaultWidth,
		height:      defaultHeight,
		title:       defaultTitle,
		showVoronoi: true,
	}
}

// Option customizes a PlotPNG call.
type Option func(*plotConfig)

// WithSize overrides the output canvas dimensions. Panics if either
// dimension is non-positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize(non-positive dimension)")
	}

	return func(c *plotConfig) {
		c.width = width
		c.height = height
	}
}

// WithTitle overrides the plot title.
func WithTitle(title string) Option {
	return func(c *plotConfig) {
		c.title = title
	}
}

// WithoutVoronoi suppresses the dual Voronoi diagram overlay, drawing only
// the Delaunay triangulation and its sites.
func WithoutVoronoi() Option {
	return func(c *plotConfig) {
		c.showVoronoi = false
	}
}

// segments is a plot.Plotter/plot.Thumbnailer drawing a set of disjoint line
// segments. plotter.Line connects consecutive points into one polyline,
// which is wrong for an edge set where segment B does not continue from
// segment A; segments draws each pair independently instead.
type segments struct {
	pairs  [][2]plotter.XY
	color  color.Color
	width  vg.Length
	dashes []vg.Length
}

func (s *segments) Plot(c draw.Canvas, pl *plot.Plot) {
	trX, trY := pl.Transforms(&c)

	style := draw.LineStyle{Color: s.color, Width: s.width, Dashes: s.dashes}
	for _, pair := range s.pairs {
		p0 := vg.Point{X: trX(pair[0].X), Y: trY(pair[0].Y)}
		p1 := vg.Point{X: trX(pair[1].X), Y: trY(pair[1].Y)}
		c.StrokeLine2(style, p0.X, p0.Y, p1.X, p1.Y)
	}
}

// Thumbnail draws this plotter's legend glyph as a short horizontal stroke.
func (s *segments) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(draw.LineStyle{Color: s.color, Width: s.width, Dashes: s.dashes}, c.Min.X, y, c.Max.X, y)
}

// PlotPNG rasterizes t's Delaunay edges, sites, and (unless suppressed)
// bounded Voronoi edges to a PNG at path. It only reads t through its
// exported facade; the triangulation itself is never mutated.
func PlotPNG(t *delaunay.Triangulation, path string, opts ...Option) error {
	cfg := newPlotConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	delaunaySegs := &segments{
		pairs: edgePairs(t.Edges()),
		color: color.RGBA{B: 200, A: 255},
		width: vg.Points(1),
	}
	p.Add(delaunaySegs)
	p.Legend.Add("delaunay", delaunaySegs)

	if cfg.showVoronoi {
		_, vedges, err := t.Voronoi()
		if err != nil {
			return err
		}

		if len(vedges) > 0 {
			voronoiSegs := &segments{
				pairs:  voronoiPairs(vedges),
				color:  color.RGBA{R: 200, A: 255},
				width:  vg.Points(1),
				dashes: []vg.Length{vg.Points(4), vg.Points(2)},
			}
			p.Add(voronoiSegs)
			p.Legend.Add("voronoi", voronoiSegs)
		}
	}

	scatter, err := plotter.NewScatter(sitePoints(t.Sites()))
	if err != nil {
		return err
	}
	p.Add(scatter)
	p.Legend.Add("sites", scatter)

	return p.Save(cfg.width, cfg.height, path)
}

func edgePairs(edges []delaunay.Edge) [][2]plotter.XY {
	pairs := make([][2]plotter.XY, len(edges))
	for i, e := range edges {
		pairs[i] = [2]plotter.XY{{X: e.A.X, Y: e.A.Y}, {X: e.B.X, Y: e.B.Y}}
	}

	return pairs
}

func voronoiPairs(edges []delaunay.VoronoiEdge) [][2]plotter.XY {
	pairs := make([][2]plotter.XY, len(edges))
	for i, e := range edges {
		pairs[i] = [2]plotter.XY{{X: e.A.X, Y: e.A.Y}, {X: e.B.X, Y: e.B.Y}}
	}

	return pairs
}

func sitePoints(sites []geom.Site) plotter.XYs {
	pts := make(plotter.XYs, len(sites))
	for i, s := range sites {
		pts[i] = plotter.XY{X: s.X, Y: s.Y}
	}

	return pts
}
