package tess

import (
	"fmt"
	"math"
	"sort"
)

// flatEdge is a single directed piece of boundary after splitting: a
// straight run between two points that no other input edge crosses.
type flatEdge struct {
	From, To Point
	Real     bool // true if this piece subdivides a true boundary edge
	Loop     int
}

// keyOf identifies a point for chaining edges. Coordinates are rounded
// to a 1e-10 grid, so points that differ only by floating-point noise
// (as a plane split's synthetic vertex and an input vertex lying on
// that plane do) normally share a key.
func keyOf(p Point) string {
	return fmt.Sprintf("%d,%d", int64(math.Round(p.X*1e10)), int64(math.Round(p.Y*1e10)))
}

// splitAll repeatedly scans the edge list for a pair that crosses in
// their interiors and divides both at the crossing, until a full pass
// finds none left. O(n^3) worst case; fine at the contour sizes this
// module is built for (single octahedron faces, not whole-sphere
// meshes).
func splitAll(edges []flatEdge) []flatEdge {
	for {
		found := false
		for i := 0; i < len(edges) && !found; i++ {
			for j := i + 1; j < len(edges); j++ {
				if edges[i].Loop == edges[j].Loop && abutting(edges[i], edges[j]) {
					continue
				}
				pt, ok := intersect(edges[i].From, edges[i].To, edges[j].From, edges[j].To)
				if !ok {
					continue
				}
				a, b := edges[i], edges[j]
				edges[i] = flatEdge{From: a.From, To: pt, Real: a.Real, Loop: a.Loop}
				edges = append(edges, flatEdge{From: pt, To: a.To, Real: a.Real, Loop: a.Loop})
				edges[j] = flatEdge{From: b.From, To: pt, Real: b.Real, Loop: b.Loop}
				edges = append(edges, flatEdge{From: pt, To: b.To, Real: b.Real, Loop: b.Loop})
				found = true
				break
			}
		}
		if !found {
			return edges
		}
	}
}

func abutting(a, b flatEdge) bool {
	return a.From == b.From || a.From == b.To || a.To == b.From || a.To == b.To
}

func insideByRule(rule WindingRule, sum int) bool {
	if rule == AbsGeqTwo {
		if sum < 0 {
			sum = -sum
		}
		return sum >= 2
	}
	return sum > 0
}

// classify keeps the edges whose two sides disagree on interior-ness
// under rule, orienting each so the interior lies to its left. The
// winding sum at a probe point is the sum of every loop's Sign over
// every loop whose shape (tested by plain geometric containment,
// independent of that loop's own stored traversal direction) covers
// it; both sides of each candidate edge are measured directly rather
// than assumed, so which geometric side turns out to be a given loop's
// own interior never has to be decided up front.
func classify(edges []flatEdge, contours []Contour, rule WindingRule) []flatEdge {
	raw := make([][]Point, len(contours))
	for i, c := range contours {
		pts := make([]Point, len(c.Ring))
		for j, v := range c.Ring {
			pts[j] = v.Point
		}
		raw[i] = pts
	}
	windingAt := func(p Point) int {
		sum := 0
		for i, pts := range raw {
			if crossingNumberContains(pts, p) {
				sum += contours[i].Sign
			}
		}
		return sum
	}

	var kept []flatEdge
	for _, e := range edges {
		leftIn := insideByRule(rule, windingAt(leftProbe(e.From, e.To)))
		rightIn := insideByRule(rule, windingAt(leftProbe(e.To, e.From)))
		switch {
		case leftIn && !rightIn:
			kept = append(kept, e)
		case rightIn && !leftIn:
			kept = append(kept, flatEdge{From: e.To, To: e.From, Real: e.Real, Loop: e.Loop})
		}
	}
	return kept
}

// chain links kept edges head to tail into closed loops. Where more
// than one unused edge starts at a vertex (contours touching at a
// point), the edge making the sharpest right turn from the incoming
// edge is preferred, which keeps each traced loop simple.
func chain(edges []flatEdge) []Loop {
	byStart := map[string][]int{}
	used := make([]bool, len(edges))
	for i, e := range edges {
		byStart[keyOf(e.From)] = append(byStart[keyOf(e.From)], i)
	}

	var loops []Loop
	for start := range edges {
		if used[start] {
			continue
		}
		var loop Loop
		cur := start
		for {
			used[cur] = true
			e := edges[cur]
			loop = append(loop, Vertex{Point: e.From, EdgeFlag: e.Real})
			candidates := byStart[keyOf(e.To)]
			next := -1
			for _, c := range candidates {
				if used[c] {
					continue
				}
				if next == -1 || isLeft(e.From, e.To, edges[c].To) < isLeft(e.From, e.To, edges[next].To) {
					next = c
				}
			}
			if next == -1 {
				break
			}
			if keyOf(edges[next].To) == keyOf(edges[start].From) {
				used[next] = true
				loop = append(loop, Vertex{Point: edges[next].From, EdgeFlag: edges[next].Real})
				break
			}
			cur = next
		}
		if len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	// Deterministic order: callers (and tests) shouldn't see traversal
	// order depend on map iteration.
	sort.Slice(loops, func(i, j int) bool {
		return keyOf(loops[i][0].Point) < keyOf(loops[j][0].Point)
	})
	return loops
}

// run is the shared core behind Run: it produces the resolved boundary
// loops of the region rule selects across contours, without yet
// invoking any callback. It builds its initial edge list on top of
// arena's reusable backing array, so repeated tessellation of
// similarly-sized input (the common case: the same octahedron face,
// operation after operation) doesn't churn the allocator.
func run(contours []Contour, rule WindingRule, arena *Arena) []Loop {
	edges := arena.edges[:0]
	for i, c := range contours {
		n := len(c.Ring)
		for j := 0; j < n; j++ {
			a, b := c.Ring[j], c.Ring[(j+1)%n]
			edges = append(edges, flatEdge{From: a.Point, To: b.Point, Real: a.EdgeFlag, Loop: i})
		}
	}
	arena.edges = edges
	edges = splitAll(edges)
	kept := classify(edges, contours, rule)
	return chain(kept)
}
