package tess

import "github.com/skyregion/octpoly/internal/xerrors"

// Run tessellates loops under rule and reports the result through cb
// according to mode. The arena's scratch buffers are reset on return
// (including on an early return, were one ever added) so the caller can
// keep reusing the same Arena across many calls without it accumulating
// state from one call to the next.
func Run(arena *Arena, contours []Contour, rule WindingRule, mode Mode, cb Callbacks) {
	defer arena.reset()

	original := make(map[string]bool)
	for i, c := range contours {
		xerrors.Assertf(len(c.Ring) >= 3, "tess: contour %d has %d vertices, need >= 3 for a valid planar arrangement", i, len(c.Ring))
		for _, v := range c.Ring {
			original[keyOf(v.Point)] = true
		}
	}
	resolved := run(contours, rule, arena)

	cookies := make(map[string]Cookie)
	cookieFor := func(v Vertex) Cookie {
		k := keyOf(v.Point)
		if original[k] {
			return nil
		}
		if c, ok := cookies[k]; ok {
			return c
		}
		c := cb.Combine(v.Point, v.EdgeFlag)
		cookies[k] = c
		return c
	}

	emit := func(vs []Vertex) {
		cb.Begin()
		haveFlag := false
		lastFlag := false
		for _, v := range vs {
			if !haveFlag || v.EdgeFlag != lastFlag {
				cb.EdgeFlag(v.EdgeFlag)
				lastFlag = v.EdgeFlag
				haveFlag = true
			}
			cb.Vertex(v, cookieFor(v))
		}
		cb.End()
	}

	switch mode {
	case Outline:
		for _, l := range resolved {
			emit([]Vertex(l))
		}
	case Triangles:
		groups := groupHoles(resolved)
		for i, l := range resolved {
			if signedArea(l) <= 0 {
				continue // consumed as a hole of some outer loop, or unattached debris
			}
			merged := mergeHoles(l, groups[i])
			for _, t := range triangulate(merged) {
				emit(t[:])
			}
		}
	}
}
