package quadedge

// Subdivision owns every quarter-edge of one build. Quarter-edges allocated
// by MakeEdge exist until explicitly released by Delete; a Subdivision is
// not safe for concurrent mutation, and QuarterEdge handles from one
// Subdivision must never be passed to another's methods.
type Subdivision struct {
	arena []record
	free  []int // group-base indices ready for reuse
}

// NewSubdivision returns an empty, ready-to-use Subdivision.
func NewSubdivision() *Subdivision {
	return &Subdivision{}
}

// allocGroup returns the base index of four contiguous, zeroed records,
// either recycled from the free list or freshly appended.
func (s *Subdivision) allocGroup() int {
	if n := len(s.free); n > 0 {
		base := s.free[n-1]
		s.free = s.free[:n-1]
		return base
	}

	base := len(s.arena)
	s.arena = append(s.arena, record{}, record{}, record{}, record{})
	return base
}

// MakeEdge allocates four fresh quarter-edges wired as one isolated edge
// from a to b and returns the primal a->b quarter-edge.
//
// Complexity: O(1) amortized.
func (s *Subdivision) MakeEdge(a, b Site) QuarterEdge {
	base := s.allocGroup()

	// e1: primal a->b, self-looped (isolated vertex ring).
	s.arena[base+0] = record{origin: a, onext: base + 0, alive: true}
	// e2: dual, cross-linked with e4.
	s.arena[base+1] = record{onext: base + 3, alive: true}
	// e3: primal b->a (sym of e1), self-looped.
	s.arena[base+2] = record{origin: b, onext: base + 2, alive: true}
	// e4: dual, cross-linked with e2.
	s.arena[base+3] = record{onext: base + 1, alive: true}

	return QuarterEdge{sub: s, id: base}
}

// Splice is the Guibas-Stolfi splice: if a and b share an origin ring they
// are separated; if they do not, they are merged. It is the sole primitive
// that mutates topology.
//
// Complexity: O(1).
func (s *Subdivision) Splice(a, b QuarterEdge) {
	alpha := a.Onext().Rot()
	beta := b.Onext().Rot()

	t1 := b.Onext()
	t2 := a.Onext()
	t3 := beta.Onext()
	t4 := alpha.Onext()

	s.arena[a.id].onext = t1.id
	s.arena[b.id].onext = t2.id
	s.arena[alpha.id].onext = t3.id
	s.arena[beta.id].onext = t4.id

	debugAssert(a.checkRotCycle() && a.checkSymInvolution(), "splice broke I1/I2 on a")
	debugAssert(b.checkRotCycle() && b.checkSymInvolution(), "splice broke I1/I2 on b")
}

// Connect adds a new primal edge from a.Dest() to b.Origin(), lying in the
// face left of both a and b, and returns it.
//
// Complexity: O(1).
func (s *Subdivision) Connect(a, b QuarterEdge) QuarterEdge {
	aDest, _ := a.Dest()
	bOrigin, _ := b.Origin()

	e := s.MakeEdge(aDest, bOrigin)
	s.Splice(e, a.Lnext())
	s.Splice(e.Sym(), b)

	return e
}

// Delete removes a primal edge from the subdivision and releases the
// storage of all four of its quarter-edges. Callers must not retain
// references to e or its rot/sym siblings afterward.
//
// Complexity: O(1).
func (s *Subdivision) Delete(e QuarterEdge) {
	s.Splice(e, e.Oprev())
	s.Splice(e.Sym(), e.Sym().Oprev())

	base := e.groupBase()
	s.arena[base+0] = record{}
	s.arena[base+1] = record{}
	s.arena[base+2] = record{}
	s.arena[base+3] = record{}
	s.free = append(s.free, base)
}

// AllPrimal returns every primal quarter-edge with defined endpoints
// currently live in the arena, two per group (local indices 0 and 2 — both
// directions of the same undirected edge are visited, extraction code
// dedups by endpoint pair as needed). Freed slots are skipped.
//
// Complexity: O(n) in the arena size.
func (s *Subdivision) AllPrimal() []QuarterEdge {
	out := make([]QuarterEdge, 0, len(s.arena)/2)
	for id := range s.arena {
		if id%2 != 0 {
			continue // dual quarter-edge
		}

		e := QuarterEdge{sub: s, id: id}
		if e.HasEndpoints() {
			out = append(out, e)
		}
	}

	return out
}
