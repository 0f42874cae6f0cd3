package octpoly

import (
	"github.com/golang/geo/s2"
)

// computeBoundingCap derives a spherical cap guaranteed to contain every
// vertex in outline: its center is the normalised sum of the vertices
// (the same cheap centroid the original implementation uses rather than
// a true minimal enclosing cap) and its radius is the angular distance
// to the farthest vertex, inflated by a small relative margin so that
// floating point error in the vertices themselves can never put a
// vertex outside its own cap.
func computeBoundingCap(outline []Vec3) s2.Cap {
	if len(outline) == 0 {
		return s2.EmptyCap()
	}
	var sum Vec3
	for _, v := range outline {
		sum = sum.Add(v)
	}
	center := sum.Normalize()

	minDot := 1.0
	for _, v := range outline {
		if d := center.Dot(v); d < minDot {
			minDot = d
		}
	}
	if minDot > 0 {
		minDot *= 0.9999999
	} else {
		minDot *= 1.0000001
	}
	return s2.CapFromCenterHeight(s2.Point{Vector: center}, 1-minDot)
}

// capContainsPoint, capContains and capIntersects delegate to s2.Cap
// directly (REDESIGN #1): the original's hand-rolled cap containment
// helper compares the wrong operand to itself in one branch (a
// transcription bug, confirmed against the recovered source), so rather
// than port the bug this module leans on golang/geo's own cap algebra.
func capContainsPoint(c s2.Cap, p Vec3) bool {
	return c.ContainsPoint(s2.Point{Vector: p})
}

func capContains(outer, inner s2.Cap) bool {
	return outer.Contains(inner)
}

func capIntersects(a, b s2.Cap) bool {
	return a.Intersects(b)
}
