package tess

import "math"

// isLeft returns the cross product (b-a) x (c-a): positive when c lies
// to the left of the directed line through a and b, negative when it
// lies to the right, zero when it is on the line.
// Grounded on the same predicate _examples/tinkerator-polygon/polygon.go
// builds its segment-intersection and combine logic on.
func isLeft(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// intersect returns the point where segment p0-p1 crosses segment
// q0-q1, if the two segments actually cross in their interiors (shared
// endpoints don't count). Grounded on the line-intersection test in
// _examples/tinkerator-polygon/polygon.go's intersect, rewritten in
// parametric form.
func intersect(p0, p1, q0, q1 Point) (pt Point, ok bool) {
	rX, rY := p1.X-p0.X, p1.Y-p0.Y
	sX, sY := q1.X-q0.X, q1.Y-q0.Y
	denom := rX*sY - rY*sX
	if math.Abs(denom) < 1e-15 {
		return Point{}, false
	}
	qpX, qpY := q0.X-p0.X, q0.Y-p0.Y
	t := (qpX*sY - qpY*sX) / denom
	u := (qpX*rY - qpY*rX) / denom
	const eps = 1e-12
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return Point{}, false
	}
	return Point{X: p0.X + t*rX, Y: p0.Y + t*rY}, true
}

// crossingNumberContains reports whether p lies inside the simple
// closed polygon loop by the standard even-odd ray-casting test: count
// how many edges a horizontal ray from p crosses.
func crossingNumberContains(loop []Point, p Point) bool {
	n := len(loop)
	inside := false
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		t := (p.Y - a.Y) / (b.Y - a.Y)
		xCross := a.X + t*(b.X-a.X)
		if xCross > p.X {
			inside = !inside
		}
	}
	return inside
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// leftProbe returns a point just to the left of the directed edge a->b,
// used to sample how many loops cover the interior side of that edge.
func leftProbe(a, b Point) Point {
	mx, my := midpoint(a, b).X, midpoint(a, b).Y
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-15 {
		return Point{X: mx, Y: my}
	}
	const eps = 1e-9
	// Left normal of (dx,dy) is (-dy,dx).
	return Point{X: mx - dy/length*eps, Y: my + dx/length*eps}
}
