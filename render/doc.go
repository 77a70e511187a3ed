// Package render rasterizes a triangulation to a static PNG. It is an
// optional, non-core collaborator: it only reads a *delaunay.Triangulation
// through its exported facade and never participates in the build itself.
package render
