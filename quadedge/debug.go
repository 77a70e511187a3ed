package quadedge

import "os"

// debugEnabled gates the invariant assertions below. Set QUADEDGE_DEBUG to
// any non-empty value to enable them; they are a developer aid for changes
// to Splice/Connect/Delete, never part of the normal build or release path.
var debugEnabled = os.Getenv("QUADEDGE_DEBUG") != ""

// debugAssert panics if cond is false and assertions are enabled. It must
// never fire on user input — only on a defect in this package's own
// topology surgery (invariants I1/I2 of the quad-edge data model).
func debugAssert(cond bool, msg string) {
	if debugEnabled && !cond {
		panic("quadedge: invariant violated: " + msg)
	}
}

// checkRotCycle reports whether I1 holds for e: rot forms a length-4 cycle.
func (e QuarterEdge) checkRotCycle() bool {
	return e.Rot().Rot().Rot().Rot().Equal(e)
}

// checkSymInvolution reports whether I2 holds for e: sym is an involution.
func (e QuarterEdge) checkSymInvolution() bool {
	return e.Sym().Sym().Equal(e)
}
