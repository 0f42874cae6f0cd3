// Package tess is a small planar polygon tessellator. It takes a set of
// closed, possibly overlapping 2D contours plus a winding rule and
// produces either the triangulated fill or the boundary loops of the
// region the rule selects, reporting results through a GLU-style
// callback interface (Begin/Vertex/Combine/EdgeFlag/End) rather than by
// returning a value, so a caller can stream results straight into its
// own vertex-array cache without an intermediate copy.
package tess

// Point is a coordinate in the 2D chart a caller projected its spherical
// geometry onto.
type Point struct {
	X, Y float64
}

// Vertex is a Point paired with a flag describing whether the edge
// leaving it, in the contour it came from, is a true polygon boundary
// edge (true) or an artificial seam introduced by the caller's own
// projection step (false). The tessellator never invents a new "true"
// edge: edges it introduces by splitting at an intersection inherit the
// flag of the edge they subdivide, and edges it introduces by chaining
// loops together at a Combine callback are always artificial.
type Vertex struct {
	Point
	EdgeFlag bool
}

// Loop is a closed ring: the last Vertex connects back to the first.
type Loop []Vertex

// Contour is one input ring plus its winding sign: +1 for a normally
// oriented (CCW) ring, -1 for a reversed one. Subtraction is expressed
// by feeding the subtrahend in with Sign -1 under the Positive rule, so
// the signed winding sum is negative wherever only the subtrahend
// covers a point and therefore excluded; intersection is expressed by
// giving every operand Sign +1 and using the AbsGeqTwo rule instead.
type Contour struct {
	Ring Loop
	Sign int
}

// WindingRule selects which regions of the arrangement formed by the
// input loops count as interior, mirroring the two rules the original
// GLU-style tesselator exposed that this engine actually needs.
type WindingRule int

const (
	// Positive treats a point as interior if it is covered by a net
	// positive number of input loops. With same-oriented (CCW) input
	// this is ordinary union: covered by one or more loops.
	Positive WindingRule = iota
	// AbsGeqTwo treats a point as interior only where at least two
	// loops cover it, which is how this module expresses intersection:
	// feed it the two operand's fill loops and it keeps only the
	// overlap.
	AbsGeqTwo
)

// Mode selects what Run reports through the Callbacks.
type Mode int

const (
	// Triangles reports the interior region fully triangulated, CCW,
	// via Begin/Vertex.../End triples (always 3 vertices per Begin).
	Triangles Mode = iota
	// Outline reports the interior region's boundary as one or more
	// closed loops via Begin/Vertex.../End, each vertex carrying its
	// EdgeFlag.
	Outline
)

// Cookie is an opaque value a Callbacks implementation can stash on a
// Vertex it receives from Combine and later recover; the engine never
// inspects it.
type Cookie any

// Callbacks receives the tessellation result. Its shape mirrors the
// classic GLU tesselator contract: Begin starts a new primitive (a
// triangle or an outline loop, per Mode), Vertex supplies one vertex of
// the primitive in order, End closes it. Combine is called when the
// algorithm must synthesise a vertex that did not exist in any input
// loop (an intersection point); the returned Cookie, if non-nil, is
// attached to that vertex and handed back by any later Vertex call that
// uses it. EdgeFlag is called before a run of Vertex calls whose
// trailing edge's boundary-ness differs from the previous run's.
type Callbacks interface {
	Begin()
	Vertex(v Vertex, cookie Cookie)
	Combine(at Point, flag bool) Cookie
	EdgeFlag(real bool)
	End()
}
