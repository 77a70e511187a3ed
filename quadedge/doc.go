// Package quadedge implements the Guibas-Stolfi quad-edge data structure:
// the topological substrate of a planar subdivision.
//
// Every undirected edge is represented by four quarter-edges linked by a
// rotation (Rot); Splice is the sole primitive that mutates topology, and
// Connect/Delete are defined in terms of it. All quarter-edges of one
// Subdivision are allocated from a single owning arena keyed by stable
// integer indices rather than pointers, per the arena-of-indices scheme:
// a QuarterEdge handle is cheap to copy, trivially comparable, and safe to
// hand around without aliasing concerns across Subdivision instances
// (aliasing a QuarterEdge across two different Subdivisions is a misuse the
// API does not guard against, by design — see the Subdivision doc comment).
package quadedge
