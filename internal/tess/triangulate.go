package tess

// triangle is three vertices in CCW order; EdgeFlag on each names the
// boundary-ness of the edge leaving it within the triangle.
type triangle [3]Vertex

// triangulate ear-clips a simple CCW polygon loop. Each clip introduces
// one new chord; that chord is an artificial edge (EdgeFlag false) on
// both triangles it borders unless the polygon already had exactly
// three vertices, in which case all three edges are the loop's own and
// keep whatever flag they already carry.
func triangulate(loop Loop) []triangle {
	n := len(loop)
	if n < 3 {
		return nil
	}
	points := make([]Point, n)
	real := make([]bool, n) // real[i]: edge i -> next[i]
	next := make([]int, n)
	prev := make([]int, n)
	for i, v := range loop {
		points[i] = v.Point
		real[i] = v.EdgeFlag
		next[i] = (i + 1) % n
		prev[i] = (i - 1 + n) % n
	}

	remaining := n
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	var tris []triangle
	// Guard against a malformed polygon (collinear/degenerate input)
	// looping forever: at most n-2 ears exist in a valid simple polygon.
	guard := 0
	for remaining > 3 && guard < n*n {
		guard++
		for b := 0; b < n; b++ {
			if !alive[b] {
				continue
			}
			a, c := prev[b], next[b]
			if isLeft(points[a], points[b], points[c]) <= 0 {
				continue
			}
			if anyVertexInside(points, alive, a, b, c) {
				continue
			}

			closing := real[c] && next[c] == a
			tris = append(tris, triangle{
				{Point: points[a], EdgeFlag: real[a]},
				{Point: points[b], EdgeFlag: real[b]},
				{Point: points[c], EdgeFlag: closing},
			})

			alive[b] = false
			next[a] = c
			prev[c] = a
			real[a] = false
			remaining--
			break
		}
	}
	if remaining == 3 {
		var rest []int
		for i := 0; i < n; i++ {
			if alive[i] {
				rest = append(rest, i)
			}
		}
		if len(rest) == 3 {
			a, b, c := rest[0], rest[1], rest[2]
			tris = append(tris, triangle{
				{Point: points[a], EdgeFlag: real[a]},
				{Point: points[b], EdgeFlag: real[b]},
				{Point: points[c], EdgeFlag: real[c]},
			})
		}
	}
	return tris
}

// signedArea is twice the usual shoelace area (the factor doesn't
// matter, only its sign): positive for a CCW loop, negative for CW.
func signedArea(l Loop) float64 {
	n := len(l)
	a := 0.0
	for i := 0; i < n; i++ {
		p, q := l[i].Point, l[(i+1)%n].Point
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// groupHoles partitions resolved loops into CCW "outer" loops and CW
// "hole" loops, and assigns each hole to the smallest-area outer loop
// that contains it. A winding-rule resolution step can legitimately
// produce holes (Subtract always can), and the tessellator's
// classify/chain stages have no notion of nesting, so this grouping is
// what stands in for it before triangulation.
func groupHoles(loops []Loop) map[int][]Loop {
	type outerInfo struct {
		idx  int
		area float64
	}
	var outers []outerInfo
	for i, l := range loops {
		if signedArea(l) > 0 {
			outers = append(outers, outerInfo{idx: i, area: signedArea(l)})
		}
	}
	groups := make(map[int][]Loop)
	for _, l := range loops {
		if signedArea(l) > 0 {
			continue
		}
		if len(l) == 0 {
			continue
		}
		best := -1
		bestArea := 0.0
		probe := l[0].Point
		for _, o := range outers {
			pts := make([]Point, len(loops[o.idx]))
			for j, v := range loops[o.idx] {
				pts[j] = v.Point
			}
			if !crossingNumberContains(pts, probe) {
				continue
			}
			if best == -1 || o.area < bestArea {
				best = o.idx
				bestArea = o.area
			}
		}
		if best == -1 {
			continue // a hole with nothing to cut from: drop it
		}
		groups[best] = append(groups[best], l)
	}
	return groups
}

// mergeHoles splices each hole into outer by bridging at the closest
// pair of vertices, turning a polygon-with-holes into a single simple
// ring an ordinary ear-clipper can consume. The bridge duplicates one
// outer vertex and one hole vertex; the duplicated edges have zero
// width and are always marked artificial.
func mergeHoles(outer Loop, holes []Loop) Loop {
	ring := append(Loop(nil), outer...)
	for _, hole := range holes {
		if len(hole) == 0 {
			continue
		}
		bi, hj, bestD := 0, 0, -1.0
		for i, ov := range ring {
			for j, hv := range hole {
				dx, dy := ov.X-hv.X, ov.Y-hv.Y
				d := dx*dx + dy*dy
				if bestD < 0 || d < bestD {
					bestD = d
					bi, hj = i, j
				}
			}
		}
		rotated := make(Loop, len(hole))
		for k := range hole {
			rotated[k] = hole[(hj+k)%len(hole)]
		}
		var next Loop
		next = append(next, ring[:bi]...)
		next = append(next, Vertex{Point: ring[bi].Point, EdgeFlag: false})
		next = append(next, rotated...)
		next = append(next, Vertex{Point: rotated[0].Point, EdgeFlag: false})
		next = append(next, Vertex{Point: ring[bi].Point, EdgeFlag: ring[bi].EdgeFlag})
		next = append(next, ring[bi+1:]...)
		ring = next
	}
	return ring
}

func anyVertexInside(points []Point, alive []bool, a, b, c int) bool {
	tri := []Point{points[a], points[b], points[c]}
	for i, p := range points {
		if !alive[i] || i == a || i == b || i == c {
			continue
		}
		if crossingNumberContains(tri, p) {
			return true
		}
	}
	return false
}
