package octpoly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EdgeVertex is a vertex of a SubContour paired with a flag describing the
// edge leaving it. EdgeFlag=true means the edge toward the next vertex in
// sequence is part of the true polygon boundary; false means it is an
// artificial seam introduced by octahedral splitting or tessellation and
// must not appear in outline output.
type EdgeVertex struct {
	Vertex   Vec3
	EdgeFlag bool
}

// SubContour is an ordered, non-empty sequence of EdgeVertex forming a
// single closed ring; the last vertex implicitly connects to the first.
type SubContour []EdgeVertex

// NewSubContour builds a ring from a list of vertices. If closed is true
// every edge is real (edgeFlag=true everywhere). If closed is false the
// contour is treated as an open arc stitched into a ring by the caller:
// the edge from the last vertex back to the first, and the edge leaving
// the first vertex, are both marked artificial.
func NewSubContour(vertices []Vec3, closed bool) SubContour {
	c := make(SubContour, len(vertices))
	for i, v := range vertices {
		c[i] = EdgeVertex{Vertex: unitOrSelf(v), EdgeFlag: true}
	}
	if !closed && len(c) > 0 {
		c[0].EdgeFlag = false
		c[len(c)-1].EdgeFlag = false
	}
	return c
}

// unitOrSelf normalises v, tolerating already-unit input without extra
// work and leaving a zero vector untouched (callers never feed one in
// practice, but Normalize of the zero vector is itself the zero vector).
func unitOrSelf(v Vec3) Vec3 {
	n2 := v.Dot(v)
	if math.Abs(n2-1) < 1e-12 {
		return v
	}
	return v.Normalize()
}

// Reverse returns a SubContour with the same vertices in reverse order.
// An edge-flag denotes the edge *leaving* its vertex, so simply reversing
// vertex order without touching flags would attach each flag to the wrong
// edge. Reversing the ring [v0(f0) v1(f1) ... vn-1(fn-1)], where edge i is
// vi->v(i+1 mod n) carrying flag fi, must yield a ring whose edge from
// v(i+1) to vi still carries fi. Position i of the reversed ring holds
// v(n-1-i); the edge leaving it goes to v(n-2-i), which in the original
// ring is the *incoming* edge of v(n-1-i), i.e. flag f(n-2-i mod n).
func (c SubContour) Reverse() SubContour {
	n := len(c)
	if n == 0 {
		return nil
	}
	r := make(SubContour, n)
	for i := 0; i < n; i++ {
		src := c[(2*n-2-i)%n]
		r[i] = EdgeVertex{Vertex: c[n-1-i].Vertex, EdgeFlag: src.EdgeFlag}
	}
	return r
}

// Serialise emits the debug triple format described by the JSON debug
// format: one "[ra_deg,dec_deg,edgeFlag]" entry per vertex, comma
// separated and wrapped in brackets, RA/Dec given to 12 significant
// digits. This is for diagnostics only.
func (c SubContour) Serialise() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, ev := range c {
		ra, dec := rectToSphere(ev.Vertex)
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "[%s,%s,%t]",
			strconv.FormatFloat(ra*180/math.Pi, 'g', 12, 64),
			strconv.FormatFloat(dec*180/math.Pi, 'g', 12, 64),
			ev.EdgeFlag)
	}
	b.WriteByte(']')
	return b.String()
}

// PointFromRADec builds a unit vector from a right ascension/declination
// pair given in degrees, the inverse of rectToSphere.
func PointFromRADec(raDeg, decDeg float64) Vec3 {
	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	cosDec := math.Cos(dec)
	return Vec3{X: cosDec * math.Cos(ra), Y: cosDec * math.Sin(ra), Z: math.Sin(dec)}
}

// rectToSphere converts a cartesian unit vector to (ra, dec) in radians.
func rectToSphere(v Vec3) (ra, dec float64) {
	ra = math.Atan2(v.Y, v.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec = math.Asin(clamp(v.Z, -1, 1))
	return ra, dec
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
