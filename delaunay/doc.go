// Package delaunay builds a 2-D Delaunay triangulation (and its dual
// Voronoi diagram) from a finite set of planar sites, using Guibas and
// Stolfi's divide-and-conquer algorithm over the quad-edge representation
// (see github.com/katalvlaran/tessellate/quadedge).
//
// Build sorts and triangulates the input; the returned *Triangulation
// exposes Delaunay edges, triangles, the convex hull, and the Voronoi
// diagram. Construction is synchronous, single-threaded, and does no I/O.
package delaunay
