package tess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) Loop {
	return Loop{
		{Point: Point{X: x0, Y: y0}, EdgeFlag: true},
		{Point: Point{X: x1, Y: y0}, EdgeFlag: true},
		{Point: Point{X: x1, Y: y1}, EdgeFlag: true},
		{Point: Point{X: x0, Y: y1}, EdgeFlag: true},
	}
}

type recorder struct {
	triangles [][]Vertex
	current   []Vertex
}

func (r *recorder) Begin()                                    { r.current = nil }
func (r *recorder) Vertex(v Vertex, _ Cookie)                  { r.current = append(r.current, v) }
func (r *recorder) Combine(at Point, flag bool) Cookie         { return nil }
func (r *recorder) EdgeFlag(bool)                              {}
func (r *recorder) End()                                       { r.triangles = append(r.triangles, r.current) }

func totalArea(tris [][]Vertex) float64 {
	area := 0.0
	for _, t := range tris {
		if len(t) != 3 {
			continue
		}
		area += 0.5 * ((t[1].X-t[0].X)*(t[2].Y-t[0].Y) - (t[2].X-t[0].X)*(t[1].Y-t[0].Y))
	}
	return area
}

func TestRunSingleSquareUnion(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	Run(a, []Contour{{Ring: square(0, 0, 1, 1), Sign: 1}}, Positive, Triangles, rec)
	require.InDelta(t, 1.0, totalArea(rec.triangles), 1e-9)
}

func TestRunOverlappingSquaresUnion(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	contours := []Contour{
		{Ring: square(0, 0, 2, 2), Sign: 1},
		{Ring: square(1, 1, 3, 3), Sign: 1},
	}
	Run(a, contours, Positive, Triangles, rec)
	require.InDelta(t, 7.0, totalArea(rec.triangles), 1e-6)
}

func TestRunOverlappingSquaresIntersect(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	contours := []Contour{
		{Ring: square(0, 0, 2, 2), Sign: 1},
		{Ring: square(1, 1, 3, 3), Sign: 1},
	}
	Run(a, contours, AbsGeqTwo, Triangles, rec)
	require.InDelta(t, 1.0, totalArea(rec.triangles), 1e-6)
}

func TestRunSubtraction(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	outer := square(0, 0, 2, 2)
	hole := square(0.5, 0.5, 1.5, 1.5)
	// Store the hole reversed, as a subtrahend is stored; its Sign of -1
	// is what cancels the outer square's coverage under the Positive rule.
	reversed := make(Loop, len(hole))
	for i, v := range hole {
		reversed[len(hole)-1-i] = v
	}
	contours := []Contour{
		{Ring: outer, Sign: 1},
		{Ring: reversed, Sign: -1},
	}
	Run(a, contours, Positive, Triangles, rec)
	require.InDelta(t, 3.0, totalArea(rec.triangles), 1e-6)
}

func TestRunDisjointSquaresNoIntersection(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	contours := []Contour{
		{Ring: square(0, 0, 1, 1), Sign: 1},
		{Ring: square(5, 5, 6, 6), Sign: 1},
	}
	Run(a, contours, AbsGeqTwo, Triangles, rec)
	require.Len(t, rec.triangles, 0)
}

func TestRunOutlineEdgeFlags(t *testing.T) {
	a := NewArena()
	rec := &recorder{}
	Run(a, []Contour{{Ring: square(0, 0, 1, 1), Sign: 1}}, Positive, Outline, rec)
	require.Len(t, rec.triangles, 1)
	require.Len(t, rec.triangles[0], 4)
	for _, v := range rec.triangles[0] {
		require.True(t, v.EdgeFlag)
	}
}
