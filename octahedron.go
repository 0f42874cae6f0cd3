package octpoly

import (
	"sync"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"

	"github.com/skyregion/octpoly/internal/tess"
)

// OctahedronPolygon is an arbitrary region of the unit sphere,
// represented by projecting its boundary onto the eight faces of the
// octahedron inscribed in the sphere. Each face holds the sub-contours
// (plus a winding sign) that fall on it; the region's fill or outline
// on a face is only resolved, by the planar tessellator, when it is
// actually needed.
type OctahedronPolygon struct {
	sides [8][]signedContour
	rule  windingRule

	mu           sync.Mutex
	cacheValid   bool
	fillCache    []faceTriangle
	outlineCache []SubContour
	capValid     bool
	capCache     s2.Cap
}

// faceTriangle is a triangulated fill triangle together with the
// octahedron face it was produced on, so a later point-containment
// query only has to test triangles that share the query point's face.
type faceTriangle struct {
	tri  [3]Vec3
	side int
}

type signedContour struct {
	contour SubContour
	sign    int
}

// New returns an empty polygon, the identity element for Union.
func New() *OctahedronPolygon {
	return &OctahedronPolygon{}
}

// FromRing builds a polygon from a single spherical ring, given as an
// ordered list of unit vectors. Which side of the ring is interior is
// decided face by face: on each octahedron face the interior is the
// area enclosed by the ring's pieces there, whichever way the ring
// runs. The ring's direction matters only where attachPoleIfOpen
// closes a piece through a pole, since it picks the pole from that
// direction.
func FromRing(vertices []Vec3) *OctahedronPolygon {
	p := New()
	p.appendContour(NewSubContour(vertices, true), 1)
	return p
}

// allSkyOnce guards the lazily-built all-sky singleton: the octahedron
// itself has no boundary ring to split, so it is built directly as
// eight filled faces rather than by projecting a contour.
var (
	allSkyOnce sync.Once
	allSky     *OctahedronPolygon
)

// AllSky returns a polygon covering the entire sphere. The original
// implementation leaves this case unimplemented (it asserts and
// aborts); this module fills it in directly, since "the whole sky" is
// a legitimate and useful region, not a degenerate input.
func AllSky() *OctahedronPolygon {
	allSkyOnce.Do(func() {
		p := New()
		for side := 0; side < 8; side++ {
			square := squareFace(side)
			p.sides[side] = []signedContour{{contour: square, sign: 1}}
		}
		allSky = p
	})
	return allSky.Clone()
}

// squareFace returns the single contour that fills an octahedron face
// edge-to-edge: the three face corners plus their pairwise midpoints
// are not needed, the three corners (radially projected to the sphere)
// already trace the face's boundary faithfully since great-circle arcs
// between them coincide with the face's edges under the gnomonic
// projection this module uses.
func squareFace(side int) SubContour {
	d := sideDirections[side]
	corners := []Vec3{
		Vec3{X: d.X, Y: 0, Z: 0}.Normalize(),
		Vec3{X: 0, Y: d.Y, Z: 0}.Normalize(),
		Vec3{X: 0, Y: 0, Z: d.Z}.Normalize(),
	}
	if side%2 == 0 {
		corners[1], corners[2] = corners[2], corners[1]
	}
	c := NewSubContour(corners, true)
	// The whole sky has no boundary: every face edge is an artificial seam.
	for i := range c {
		c[i].EdgeFlag = false
	}
	return c
}

// Clone returns a copy with its own per-face contour lists and the same
// winding rule, so appending to one polygon never affects the other.
// The SubContour values themselves are shared; no operation modifies a
// stored contour in place.
func (p *OctahedronPolygon) Clone() *OctahedronPolygon {
	q := New()
	q.rule = p.rule
	for s := 0; s < 8; s++ {
		q.sides[s] = append([]signedContour(nil), p.sides[s]...)
	}
	return q
}

// appendContour splits a single spherical ring across the eight
// octahedron faces and files each resulting piece under its face,
// grounded on the original's appendSubContour: split by Y, then X (now
// four quadrants), attach a pole vertex to any quadrant piece left open
// by that split, then split each quadrant by Z into the final octant.
func (p *OctahedronPolygon) appendContour(c SubContour, sign int) {
	if len(c) == 0 {
		return
	}
	bySideY := splitByPlane(axisY, c)
	for ySide, ys := range bySideY {
		for _, yc := range ys {
			quadrants := splitByPlane(axisX, yc)
			attachPoleIfOpen(quadrants[0])
			attachPoleIfOpen(quadrants[1])
			for xSide, xs := range quadrants {
				for _, xc := range xs {
					bySideZ := splitByPlane(axisZ, xc)
					for zSide, zs := range bySideZ {
						octant := ySide*4 + xSide*2 + zSide
						for _, zc := range zs {
							if len(zc) < 3 {
								continue
							}
							p.sides[octant] = append(p.sides[octant], signedContour{contour: zc, sign: sign})
						}
					}
				}
			}
		}
	}
	p.invalidate()
}

func (p *OctahedronPolygon) invalidate() {
	p.mu.Lock()
	p.cacheValid = false
	p.capValid = false
	p.mu.Unlock()
}

// Append merges other's boundary into p, representing the union of the
// two regions. Because both operands' contours are fed to the
// tessellator with sign +1 and resolved under the Positive rule, the
// merge doesn't need to happen eagerly: it is correct as soon as both
// operands' contours are simply concatenated per face.
func (p *OctahedronPolygon) Append(other *OctahedronPolygon) {
	for s := 0; s < 8; s++ {
		p.sides[s] = append(p.sides[s], other.sides[s]...)
	}
	p.invalidate()
}

// AppendReversed merges other's boundary into p with its winding sign
// negated, the building block Subtract uses: a region appended this way
// removes coverage from p wherever it overlaps, rather than adding to
// it, when resolved under the Positive rule.
func (p *OctahedronPolygon) AppendReversed(other *OctahedronPolygon) {
	for s := 0; s < 8; s++ {
		for _, sc := range other.sides[s] {
			p.sides[s] = append(p.sides[s], signedContour{contour: sc.contour.Reverse(), sign: -sc.sign})
		}
	}
	p.invalidate()
}

// Union returns a new polygon covering every point covered by a or b.
func Union(a, b *OctahedronPolygon) *OctahedronPolygon {
	p := a.Clone()
	p.Append(b)
	return p
}

// Intersect returns a new polygon covering only points covered by both
// a and b. This needs a different winding rule than Append/Union
// resolve under (AbsGeqTwo rather than Positive), so unlike Union it is
// baked in at tessellation time via a dedicated rule tag rather than by
// any change to how the contours are stored.
func Intersect(a, b *OctahedronPolygon) *OctahedronPolygon {
	p := New()
	for s := 0; s < 8; s++ {
		p.sides[s] = append(append([]signedContour(nil), a.sides[s]...), b.sides[s]...)
	}
	p.rule = ruleIntersect
	return p
}

// Subtract returns a new polygon covering points covered by a but not
// by b. Subtract always resolves under Positive, so subtracting from
// the result of an Intersect first needs that result re-flattened
// through FromRing/outline rather than subtracted from directly.
func Subtract(a, b *OctahedronPolygon) *OctahedronPolygon {
	p := a.Clone()
	p.rule = ruleUnion
	p.AppendReversed(b)
	return p
}

// windingRule records which tessellation rule resolves a polygon's
// stored contours into its actual fill. Union/Subtract always resolve
// under Positive (the default, zero value); only a polygon built by
// Intersect needs AbsGeqTwo.
type windingRule int

const (
	ruleUnion windingRule = iota
	ruleIntersect
)

func (p *OctahedronPolygon) tessRule() tess.WindingRule {
	if p.rule == ruleIntersect {
		return tess.AbsGeqTwo
	}
	return tess.Positive
}

// IsEmpty reports whether the polygon covers no area at all: either it
// has no contours on any face, or its resolved fill turns out empty
// (every face's contours cancel out, as happens after a Subtract that
// removes everything).
func (p *OctahedronPolygon) IsEmpty() bool {
	p.ensureCache()
	return len(p.fillCache) == 0
}

// BoundingCap returns a spherical cap guaranteed to contain the whole
// polygon, computed once and cached.
func (p *OctahedronPolygon) BoundingCap() s2.Cap {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.capValid {
		return p.capCache
	}
	var pts []Vec3
	for s := 0; s < 8; s++ {
		for _, sc := range p.sides[s] {
			for _, v := range sc.contour {
				pts = append(pts, v.Vertex)
			}
		}
	}
	p.capCache = computeBoundingCap(pts)
	p.capValid = true
	return p.capCache
}

// Intersects reports whether a and b share any area, using their
// bounding caps as a fast reject before falling back to an actual
// intersection test.
func Intersects(a, b *OctahedronPolygon) bool {
	if !capIntersects(a.BoundingCap(), b.BoundingCap()) {
		return false
	}
	return !Intersect(a, b).IsEmpty()
}

// ContainsPoint reports whether v lies inside the polygon.
func (p *OctahedronPolygon) ContainsPoint(v Vec3) bool {
	if !capContainsPoint(p.BoundingCap(), v) {
		return false
	}
	side := sideOf(v)
	x, y := projectOnFace(side, v)
	p.ensureCache()
	for _, ft := range p.fillCache {
		if ft.side == side && triContainsProjected(ft.tri, side, x, y) {
			return true
		}
	}
	return false
}

func triContainsProjected(tri [3]Vec3, side int, x, y float64) bool {
	ax, ay := projectOnFace(side, tri[0])
	bx, by := projectOnFace(side, tri[1])
	cx, cy := projectOnFace(side, tri[2])
	d1 := cross2(ax, ay, bx, by, x, y)
	d2 := cross2(bx, by, cx, cy, x, y)
	d3 := cross2(cx, cy, ax, ay, x, y)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross2(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Contains reports whether other is entirely inside p.
func Contains(p, other *OctahedronPolygon) bool {
	if !capContains(p.BoundingCap(), other.BoundingCap()) {
		return false
	}
	return Subtract(other, p).IsEmpty()
}

// Area returns the polygon's surface area in steradians, summing the
// spherical excess (Girard's theorem) of every triangle in its cached
// triangulated fill.
func (p *OctahedronPolygon) Area() float64 {
	p.ensureCache()
	total := 0.0
	for _, ft := range p.fillCache {
		total += girardExcess(ft.tri[0], ft.tri[1], ft.tri[2])
	}
	return total
}

// PointInside returns an arbitrary point known to lie inside the
// polygon, or an error if the polygon is empty. It takes the centroid
// of the first cached fill triangle's vertices and re-normalises it to
// the sphere, which is always interior to a non-degenerate triangle.
func (p *OctahedronPolygon) PointInside() (Vec3, error) {
	p.ensureCache()
	if len(p.fillCache) == 0 {
		return Vec3{}, errors.New("polygon is empty")
	}
	tri := p.fillCache[0].tri
	c := tri[0].Add(tri[1]).Add(tri[2])
	return c.Normalize(), nil
}
