package octpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func circleRing(centerRA, centerDec, radiusDeg float64, n int) []Vec3 {
	center := PointFromRADec(centerRA, centerDec)
	// Build an orthonormal basis (east, north) tangent to center.
	up := Vec3{Z: 1}
	if math.Abs(center.Z) > 0.99 {
		up = Vec3{X: 1}
	}
	east := center.Cross(up).Normalize()
	north := east.Cross(center).Normalize()

	r := radiusDeg * math.Pi / 180
	pts := make([]Vec3, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		v := center.Mul(math.Cos(r)).
			Add(east.Mul(math.Sin(r) * math.Cos(theta))).
			Add(north.Mul(math.Sin(r) * math.Sin(theta)))
		pts[i] = v.Normalize()
	}
	return pts
}

func TestUnitOctantAreaIsHalfPi(t *testing.T) {
	corners := []Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	p := FromRing(corners)
	require.InDelta(t, math.Pi/2, p.Area(), 1e-3)
}

func TestNorthHemisphereAreaIsTwoPi(t *testing.T) {
	ring := circleRing(0, 90, 90, 64)
	p := FromRing(ring)
	require.InDelta(t, 2*math.Pi, p.Area(), 0.05)
}

func TestTwoLuneUnionArea(t *testing.T) {
	a := FromRing([]Vec3{{X: 1}, {Y: 1}, {Z: 1}})
	b := FromRing([]Vec3{{X: 1}, {Z: 1}, {Y: -1}})
	u := Union(a, b)
	require.InDelta(t, a.Area()+b.Area(), u.Area(), 1e-3)
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	ring := circleRing(10, 20, 5, 24)
	a := FromRing(ring)
	b := FromRing(ring)
	diff := Subtract(a, b)
	require.True(t, diff.IsEmpty())
}

func TestDisjointCapsShortCircuitIntersects(t *testing.T) {
	a := FromRing(circleRing(0, 0, 2, 16))
	b := FromRing(circleRing(180, 0, 2, 16))
	require.False(t, capIntersects(a.BoundingCap(), b.BoundingCap()))
	require.False(t, Intersects(a, b))
}

func TestPoleCrossingRing(t *testing.T) {
	ring := circleRing(0, 90, 10, 32)
	p := FromRing(ring)
	require.True(t, p.ContainsPoint(Vec3{Z: 1}))
	expected := 2 * math.Pi * (1 - math.Cos(10*math.Pi/180))
	require.InDelta(t, expected, p.Area(), 0.01)
}

func TestContainsPointBasic(t *testing.T) {
	octant := FromRing([]Vec3{{X: 1}, {Y: 1}, {Z: 1}})
	inside := Vec3{X: 1, Y: 1, Z: 1}.Normalize()
	outside := Vec3{X: -1, Y: -1, Z: -1}.Normalize()
	require.True(t, octant.ContainsPoint(inside))
	require.False(t, octant.ContainsPoint(outside))
}

func TestAllSkyCoversEverything(t *testing.T) {
	sky := AllSky()
	require.InDelta(t, 4*math.Pi, sky.Area(), 0.05)
}
