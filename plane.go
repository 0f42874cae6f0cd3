package octpoly

// axis identifies one of the three coordinate planes used to carve the
// sphere into octants: 0 is the plane x=0, 1 is y=0, 2 is z=0.
type axis int

const (
	axisX axis = 0
	axisY axis = 1
	axisZ axis = 2
)

func planeNormal(a axis) Vec3 {
	switch a {
	case axisX:
		return Vec3{X: 1}
	case axisY:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

func component(v Vec3, a axis) float64 {
	switch a {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

// side classifies a vertex as lying on side 0 (component >= 0) or side 1
// (component < 0) of the chosen plane.
func side(v Vec3, a axis) int {
	if component(v, a) >= 0 {
		return 0
	}
	return 1
}

// splitByPlane walks in once and distributes it across the two sides of
// the plane perpendicular to a, synthesising non-edge transition vertices
// wherever the ring crosses. The ring is processed with a rotation: the
// leading run of same-side vertices (before the first crossing) is held
// aside and prepended onto the sub-contour completed last, so a ring that
// never actually straddles the plane is returned whole, not artificially
// cut. If the great-circle/plane intersection for a crossing is
// ill-conditioned, no synthetic vertex is inserted: the current
// sub-contour is closed on the previous vertex with its last edge marked
// artificial, and a new one begins on the current vertex.
func splitByPlane(a axis, in SubContour) (sides [2][]SubContour) {
	if len(in) == 0 {
		return
	}
	plane := planeNormal(a)

	leading := SubContour{in[0]}
	leadingSide := side(in[0].Vertex, a)
	i := 1
	for ; i < len(in); i++ {
		if side(in[i].Vertex, a) == leadingSide {
			leading = append(leading, in[i])
			continue
		}
		break
	}

	if i == len(in) {
		// The whole ring lies on one side; never crossed the plane.
		sides[leadingSide] = append(sides[leadingSide], leading)
		return
	}

	// The ring does straddle the plane. Split the first crossing off the
	// leading run, then walk the remainder, finally wrapping the tail
	// back onto the leading run (which becomes the last sub-contour on
	// whichever side the ring ends on).
	previous := in[i-1]
	previousSide := leadingSide
	var current SubContour
	if v, ok := greatCircleIntersection(previous.Vertex, in[i].Vertex, plane); ok {
		leading = append(leading, EdgeVertex{Vertex: v, EdgeFlag: false})
		current = SubContour{{Vertex: v, EdgeFlag: false}}
	} else {
		leading[len(leading)-1].EdgeFlag = false
	}
	currentSide := side(in[i].Vertex, a)
	current = append(current, in[i])
	previous = in[i]
	previousSide = currentSide

	for i++; i < len(in); i++ {
		cur := in[i]
		curSide := side(cur.Vertex, a)
		if curSide == previousSide {
			current = append(current, cur)
			previous = cur
			continue
		}
		if v, ok := greatCircleIntersection(previous.Vertex, cur.Vertex, plane); ok {
			current = append(current, EdgeVertex{Vertex: v, EdgeFlag: false})
			sides[previousSide] = append(sides[previousSide], current)
			current = SubContour{{Vertex: v, EdgeFlag: false}, cur}
		} else {
			current[len(current)-1].EdgeFlag = false
			sides[previousSide] = append(sides[previousSide], current)
			current = SubContour{cur}
		}
		previousSide = curSide
		previous = cur
	}

	// Close the ring: the edge from the last vertex back to in[0].
	finalSide := side(in[0].Vertex, a)
	if finalSide == previousSide {
		current = append(current, leading...)
		sides[finalSide] = append(sides[finalSide], current)
		return
	}
	if v, ok := greatCircleIntersection(previous.Vertex, in[0].Vertex, plane); ok {
		current = append(current, EdgeVertex{Vertex: v, EdgeFlag: false})
		sides[previousSide] = append(sides[previousSide], current)
		current = SubContour{{Vertex: v, EdgeFlag: false}}
	} else {
		current[len(current)-1].EdgeFlag = false
		sides[previousSide] = append(sides[previousSide], current)
		current = nil
	}
	current = append(current, leading...)
	sides[finalSide] = append(sides[finalSide], current)
	return
}

// attachPoleIfOpen is run between the Y and Z splits. A sub-contour whose
// last edge-flag is false was left open by the X/Y splitting because the
// original ring crossed from one longitude quadrant to another through
// the pole region; this attaches an explicit pole vertex, choosing north
// or south by the sign of the z-component of (first x last), so the
// contour closes on the pole it actually wrapped around.
func attachPoleIfOpen(cs []SubContour) {
	for i, c := range cs {
		if len(c) == 0 || c[len(c)-1].EdgeFlag {
			continue
		}
		cross := c[0].Vertex.Cross(c[len(c)-1].Vertex)
		switch {
		case cross.Z > 1e-8:
			cs[i] = append(c, EdgeVertex{Vertex: Vec3{Z: -1}, EdgeFlag: false})
		case cross.Z < -1e-8:
			cs[i] = append(c, EdgeVertex{Vertex: Vec3{Z: 1}, EdgeFlag: false})
		}
		// Otherwise the contour ends on the same longitude line it
		// started on; no pole crossing occurred.
	}
}
