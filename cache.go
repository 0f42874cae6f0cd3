package octpoly

import (
	"go.uber.org/zap"

	"github.com/skyregion/octpoly/internal/tess"
)

// cacheLogger receives diagnostics from the vertex-array cache rebuild:
// the original implementation reported a discarded mis-oriented
// triangle with qDebug(); this module reports the same condition
// through a structured logger instead, defaulting to a no-op so it
// never becomes a hard dependency for callers that don't configure one.
var cacheLogger *zap.Logger = zap.NewNop()

// SetLogger installs the logger used to report cache-rebuild
// diagnostics such as discarded mis-oriented triangles.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	cacheLogger = l
}

// ensureCache rebuilds the polygon's triangulated fill and outline from
// its stored per-face contours if they are stale, grounded on the
// original's updateVertexArray. Each face is tessellated independently
// in its own 2D chart, and the results are unprojected back onto the
// sphere and appended into the shared caches.
func (p *OctahedronPolygon) ensureCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cacheValid {
		return
	}

	p.fillCache = p.fillCache[:0]
	p.outlineCache = p.outlineCache[:0]
	rule := p.tessRule()
	arena := tess.NewArena()

	for side := 0; side < 8; side++ {
		if len(p.sides[side]) == 0 {
			continue
		}
		contours := make([]tess.Contour, len(p.sides[side]))
		for i, sc := range p.sides[side] {
			ring := make(tess.Loop, len(sc.contour))
			for j, ev := range sc.contour {
				x, y := projectOnFace(side, ev.Vertex)
				ring[j] = tess.Vertex{Point: tess.Point{X: x, Y: y}, EdgeFlag: ev.EdgeFlag}
			}
			contours[i] = tess.Contour{Ring: ring, Sign: sc.sign}
		}

		fillCB := &faceFillCollector{side: side}
		tess.Run(arena, contours, rule, tess.Triangles, fillCB)
		for _, tri := range fillCB.triangles {
			p.fillCache = append(p.fillCache, faceTriangle{tri: tri, side: side})
		}

		outlineCB := &faceOutlineCollector{side: side}
		tess.Run(arena, contours, rule, tess.Outline, outlineCB)
		p.outlineCache = append(p.outlineCache, outlineCB.loops...)
	}

	p.cacheValid = true
}

// faceFillCollector implements tess.Callbacks for triangle mode,
// unprojecting each triangle back onto the sphere and discarding any
// whose orientation came out clockwise as seen from outside the
// sphere: a correctly wound input never produces one, so its presence
// means two contours cancelled down to a degenerate sliver during
// tessellation, not a real triangle of the fill.
type faceFillCollector struct {
	side      int
	current   []Vec3
	triangles [][3]Vec3
}

func (f *faceFillCollector) Begin()                        { f.current = f.current[:0] }
func (f *faceFillCollector) Combine(_ tess.Point, _ bool) tess.Cookie { return nil }
func (f *faceFillCollector) EdgeFlag(bool)                 {}
func (f *faceFillCollector) Vertex(v tess.Vertex, _ tess.Cookie) {
	f.current = append(f.current, unprojectFromFace(f.side, v.X, v.Y))
}
func (f *faceFillCollector) End() {
	if len(f.current) != 3 {
		return
	}
	tri := [3]Vec3{f.current[0], f.current[1], f.current[2]}
	if sideDirections[f.side].Z < 0 {
		// The (x,y) chart of a z<0 face views it from inside the sphere,
		// so a CCW triangle in the chart is CW as seen from outside.
		tri[1], tri[2] = tri[2], tri[1]
	}
	if !triangleIsPositivelyOriented(tri[0], tri[1], tri[2]) {
		cacheLogger.Debug("discarding mis-oriented triangle", zap.Int("side", f.side))
		return
	}
	f.triangles = append(f.triangles, tri)
}

// faceOutlineCollector implements tess.Callbacks for outline mode,
// unprojecting each resolved boundary loop back onto the sphere.
type faceOutlineCollector struct {
	side    int
	current SubContour
	loops   []SubContour
}

func (f *faceOutlineCollector) Begin() { f.current = f.current[:0] }
func (f *faceOutlineCollector) Combine(_ tess.Point, _ bool) tess.Cookie {
	return nil
}
func (f *faceOutlineCollector) EdgeFlag(bool) {}
func (f *faceOutlineCollector) Vertex(v tess.Vertex, _ tess.Cookie) {
	f.current = append(f.current, EdgeVertex{
		Vertex:   unprojectFromFace(f.side, v.X, v.Y),
		EdgeFlag: v.EdgeFlag,
	})
}
func (f *faceOutlineCollector) End() {
	if len(f.current) >= 3 {
		f.loops = append(f.loops, append(SubContour(nil), f.current...))
	}
}

// FillTriangles returns the polygon's triangulated interior, each
// triangle as three unit vectors in CCW order.
func (p *OctahedronPolygon) FillTriangles() [][3]Vec3 {
	p.ensureCache()
	out := make([][3]Vec3, len(p.fillCache))
	for i, ft := range p.fillCache {
		out[i] = ft.tri
	}
	return out
}

// OutlineLoops returns the polygon's boundary, as closed rings with
// artificial seam edges (introduced by octant splitting or
// tessellation) marked with EdgeFlag false.
func (p *OctahedronPolygon) OutlineLoops() []SubContour {
	p.ensureCache()
	return append([]SubContour(nil), p.outlineCache...)
}
