package delaunay

import (
	"github.com/katalvlaran/tessellate/geom"
	"github.com/katalvlaran/tessellate/quadedge"
)

// leftOf reports whether p lies strictly left of e's directed line
// (origin -> dest).
func leftOf(p geom.Site, e quadedge.QuarterEdge) bool {
	origin, _ := e.Origin()
	dest, _ := e.Dest()

	return geom.CCW(p, origin, dest)
}

// rightOf reports whether p lies strictly right of e's directed line.
func rightOf(p geom.Site, e quadedge.QuarterEdge) bool {
	origin, _ := e.Origin()
	dest, _ := e.Dest()

	return geom.CCW(p, dest, origin)
}

// triangulate is the divide-and-conquer Delaunay construction of Guibas and
// Stolfi. sites must already be sorted lexicographically by (x, y) and free
// of duplicates. It returns (ldo, rdo): ldo.Origin() is the leftmost site,
// rdo.Origin() is the rightmost, both lying on the convex hull.
func triangulate(sub *quadedge.Subdivision, sites []geom.Site) (quadedge.QuarterEdge, quadedge.QuarterEdge) {
	n := len(sites)

	switch n {
	case 2:
		e := sub.MakeEdge(sites[0], sites[1])
		return e, e.Sym()
	case 3:
		p0, p1, p2 := sites[0], sites[1], sites[2]
		a := sub.MakeEdge(p0, p1)
		b := sub.MakeEdge(p1, p2)
		sub.Splice(a.Sym(), b)

		switch {
		case geom.CCW(p0, p1, p2):
			sub.Connect(b, a)
			return a, b.Sym()
		case geom.CCW(p0, p2, p1):
			c := sub.Connect(b, a)
			return c.Sym(), c
		default:
			// Collinear: open chain, no enclosing edge.
			return a, b.Sym()
		}
	}

	mid := n / 2
	ldo, ldi := triangulate(sub, sites[:mid])
	rdi, rdo := triangulate(sub, sites[mid:])

	// Lower common tangent: advance until neither side can improve.
	for {
		rdiOrigin, _ := rdi.Origin()
		if leftOf(rdiOrigin, ldi) {
			ldi = ldi.Lnext()
			continue
		}

		ldiOrigin, _ := ldi.Origin()
		if rightOf(ldiOrigin, rdi) {
			rdi = rdi.Rprev()
			continue
		}

		break
	}

	base := sub.Connect(rdi.Sym(), ldi)

	ldiOrigin, _ := ldi.Origin()
	ldoOrigin, _ := ldo.Origin()
	if ldiOrigin.Equal(ldoOrigin) {
		ldo = base.Sym()
	}

	rdiOrigin, _ := rdi.Origin()
	rdoOrigin, _ := rdo.Origin()
	if rdiOrigin.Equal(rdoOrigin) {
		rdo = base
	}

	valid := func(e quadedge.QuarterEdge) bool {
		dest, _ := e.Dest()
		return rightOf(dest, base)
	}

	for {
		lcand := base.Sym().Onext()
		if valid(lcand) {
			for inCircleNext(base, lcand) {
				t := lcand.Onext()
				sub.Delete(lcand)
				lcand = t
			}
		}

		rcand := base.Oprev()
		if valid(rcand) {
			for inCirclePrev(base, rcand) {
				t := rcand.Oprev()
				sub.Delete(rcand)
				rcand = t
			}
		}

		if !valid(lcand) && !valid(rcand) {
			break
		}

		lcandDest, _ := lcand.Dest()
		lcandOrigin, _ := lcand.Origin()
		rcandOrigin, _ := rcand.Origin()
		rcandDest, _ := rcand.Dest()

		// Canonical Guibas-Stolfi tie-break (spec step 5d): if lcand is
		// invalid, or rcand is valid and the in-circle test on
		// (lcand.Dest, lcand.Origin, rcand.Origin, rcand.Dest) holds,
		// connect the right candidate; otherwise connect the left one.
		if !valid(lcand) || (valid(rcand) && geom.InCircle(lcandDest, lcandOrigin, rcandOrigin, rcandDest)) {
			base = sub.Connect(rcand, base.Sym())
		} else {
			base = sub.Connect(base.Sym(), lcand.Sym())
		}
	}

	return ldo, rdo
}

// inCircleNext evaluates the left-candidate deletion guard:
// InCircle(base.Dest, base.Origin, lcand.Dest, lcand.Onext.Dest).
func inCircleNext(base, lcand quadedge.QuarterEdge) bool {
	baseDest, _ := base.Dest()
	baseOrigin, _ := base.Origin()
	lcandDest, _ := lcand.Dest()
	nextDest, _ := lcand.Onext().Dest()

	return geom.InCircle(baseDest, baseOrigin, lcandDest, nextDest)
}

// inCirclePrev evaluates the right-candidate deletion guard:
// InCircle(base.Dest, base.Origin, rcand.Dest, rcand.Oprev.Dest).
func inCirclePrev(base, rcand quadedge.QuarterEdge) bool {
	baseDest, _ := base.Dest()
	baseOrigin, _ := base.Origin()
	rcandDest, _ := rcand.Dest()
	prevDest, _ := rcand.Oprev().Dest()

	return geom.InCircle(baseDest, baseOrigin, rcandDest, prevDest)
}
