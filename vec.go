// Package octpoly represents arbitrary regions on the unit sphere as
// polygons and computes their union, intersection, subtraction,
// containment, point-membership and area.
//
// The representation is an octahedral projection: the sphere is
// partitioned into the eight faces of the regularly-inscribed octahedron,
// and each face holds a flat 2D polygon (a list of sub-contours) which is
// the radial projection of the spherical region restricted to that face.
package octpoly

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a point or direction in 3-space. The sphere's geometry is
// expressed entirely in terms of the operations golang/geo's r3.Vector
// already provides.
type Vec3 = r3.Vector

// sideDirections is the fixed octant numbering: the 8 sign triples of
// (x,y,z), indexed 0..7. Faces with even index lie on the z >= 0 side of
// the sphere, odd faces on the z < 0 side.
var sideDirections = [8]Vec3{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: -1},
}

// girardExcess returns the spherical excess of the triangle (a,b,c) by
// Girard's theorem: the triangle's edge normals are n1=a x b, n2=b x c,
// n3=c x a, and the area is 2*pi minus the sum of the angles between
// consecutive normals.
func girardExcess(a, b, c Vec3) float64 {
	n1 := a.Cross(b)
	n2 := b.Cross(c)
	n3 := c.Cross(a)
	return 2*math.Pi - float64(n1.Angle(n2)) - float64(n2.Angle(n3)) - float64(n3.Angle(n1))
}

// greatCircleIntersection returns the unit vector where the great circle
// through a and b crosses the great circle defined by the plane with
// normal planeNormal, choosing the intersection point lying on the (a,b)
// side of the sphere. ok is false when the configuration is numerically
// ill-conditioned (a and b nearly colinear with the plane normal, or
// nearly antipodal), in which case the caller must not trust v.
func greatCircleIntersection(a, b, planeNormal Vec3) (v Vec3, ok bool) {
	cross := a.Cross(b)
	n := cross.Cross(planeNormal)
	norm := n.Norm()
	if norm < 1e-12 {
		return Vec3{}, false
	}
	n = n.Mul(1 / norm)
	// Two antipodal candidates lie on this great circle; pick the one on
	// the same side as the average of a and b.
	if n.Dot(a.Add(b)) < 0 {
		n = n.Mul(-1)
	}
	return n, true
}

// triangleIsPositivelyOriented reports whether (a,b,c) winds
// counter-clockwise as seen from outside the sphere, i.e. its edge
// normals sum to a vector pointing away from the sphere's center
// rather than toward it. Unlike girardExcess, whose per-edge angle
// terms are unsigned, this is sign-sensitive and so is what the cache
// rebuild uses to discard a degenerate, wrongly-wound triangle.
func triangleIsPositivelyOriented(a, b, c Vec3) bool {
	sum := a.Cross(b).Add(b.Cross(c)).Add(c.Cross(a))
	return sum.Dot(a.Add(b).Add(c)) > 0
}

// sideHalfSpaceContains reports whether p lies on the same side as the
// triangle interior of the great circle through a and b, i.e. whether
// (a x b) . p >= 0. Triangles are stored CCW as seen from outside the
// sphere, so this test is unambiguous.
func sideHalfSpaceContains(a, b, p Vec3) bool {
	return a.Cross(b).Dot(p) >= 0
}
