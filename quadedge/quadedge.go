package quadedge

import "github.com/katalvlaran/tessellate/geom"

// noOrigin marks an arena index with no assigned origin (dual quarter-edges,
// or a freed slot awaiting reuse).
const noOrigin = -1

// record is one quarter-edge's mutable state. rot is never stored: since a
// MakeEdge call always allocates its four quarter-edges contiguously, rot
// is recovered from the index alone (see QuarterEdge.Rot). Only onext needs
// a per-quarter-edge slot because Splice rewires it independently of index
// arithmetic.
type record struct {
	origin Site
	onext  int
	alive  bool // false for an unallocated or freed slot
}

// Site aliases geom.Site so callers of this package do not need a second
// import for the origin type.
type Site = geom.Site

// QuarterEdge is a handle into a Subdivision's arena: one of the four
// quarter-edges making up an undirected edge. The zero value is not a valid
// handle; obtain one from Subdivision.MakeEdge or a navigator method.
type QuarterEdge struct {
	sub *Subdivision
	id  int
}

// groupBase returns the arena index of this quarter-edge's local index 0
// (the quarter-edges of one MakeEdge call are always contiguous).
func (e QuarterEdge) groupBase() int {
	return e.id - e.id%4
}

// local returns this quarter-edge's position (0..3) within its group.
func (e QuarterEdge) local() int {
	return e.id % 4
}

// Rot returns the dual of this quarter-edge: the next quarter-edge in the
// rotation ring (period 4).
func (e QuarterEdge) Rot() QuarterEdge {
	return QuarterEdge{sub: e.sub, id: e.groupBase() + (e.local()+1)%4}
}

// InvRot returns rot^3 — the inverse rotation.
func (e QuarterEdge) InvRot() QuarterEdge {
	return QuarterEdge{sub: e.sub, id: e.groupBase() + (e.local()+3)%4}
}

// Sym returns rot^2 — the reverse-directed primal edge.
func (e QuarterEdge) Sym() QuarterEdge {
	return QuarterEdge{sub: e.sub, id: e.groupBase() + (e.local()+2)%4}
}

// Onext returns the next edge around the origin vertex (or face) in
// counter-clockwise order.
func (e QuarterEdge) Onext() QuarterEdge {
	return QuarterEdge{sub: e.sub, id: e.sub.arena[e.id].onext}
}

// Oprev returns the previous edge around the origin: rot -> onext -> rot.
func (e QuarterEdge) Oprev() QuarterEdge {
	return e.Rot().Onext().Rot()
}

// Lnext returns the next edge around the left face: invRot -> onext -> rot.
func (e QuarterEdge) Lnext() QuarterEdge {
	return e.InvRot().Onext().Rot()
}

// Lprev returns the previous edge around the left face: onext -> sym.
func (e QuarterEdge) Lprev() QuarterEdge {
	return e.Onext().Sym()
}

// Rnext returns the next edge around the right face: rot -> onext -> invRot.
func (e QuarterEdge) Rnext() QuarterEdge {
	return e.Rot().Onext().InvRot()
}

// Rprev returns the previous edge around the right face: sym -> onext.
func (e QuarterEdge) Rprev() QuarterEdge {
	return e.Sym().Onext()
}

// Dnext returns the next edge around the destination vertex: sym -> onext -> sym.
func (e QuarterEdge) Dnext() QuarterEdge {
	return e.Sym().Onext().Sym()
}

// Dprev returns the previous edge around the destination vertex:
// invRot -> onext -> invRot.
func (e QuarterEdge) Dprev() QuarterEdge {
	return e.InvRot().Onext().InvRot()
}

// Origin returns this quarter-edge's origin site and whether one is set.
// Dual quarter-edges never have an origin — reading one when ok is false is
// a bug in the caller, per the data model (dual origins are unspecified).
func (e QuarterEdge) Origin() (Site, bool) {
	r := e.sub.arena[e.id]
	if !r.alive || e.local()%2 != 0 {
		return Site{}, false
	}

	return r.origin, true
}

// Dest returns sym.origin.
func (e QuarterEdge) Dest() (Site, bool) {
	return e.Sym().Origin()
}

// HasEndpoints reports whether both Origin and Dest are defined, i.e. e is a
// primal quarter-edge. Dual quarter-edges always report false.
func (e QuarterEdge) HasEndpoints() bool {
	_, ok := e.Origin()
	return ok
}

// IsPrimal reports whether e is a primal (even local index) quarter-edge.
func (e QuarterEdge) IsPrimal() bool {
	return e.local()%2 == 0
}

// Equal reports whether e and o are the same quarter-edge of the same
// Subdivision.
func (e QuarterEdge) Equal(o QuarterEdge) bool {
	return e.sub == o.sub && e.id == o.id
}
