// Package geom provides the planar geometric primitives the Delaunay/Voronoi
// engine builds on: sites (points), the orientation and in-circle predicates,
// and circumcenter computation.
//
// Predicates are evaluated in IEEE-754 double precision via determinants
// (gonum.org/v1/gonum/mat); no exact-arithmetic guarantees are made for
// adversarial input, only for typical, well-conditioned site sets.
package geom
