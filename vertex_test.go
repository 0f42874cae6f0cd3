package octpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSubContourOpenEdges(t *testing.T) {
	verts := []Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	c := NewSubContour(verts, false)
	require.False(t, c[0].EdgeFlag)
	require.False(t, c[len(c)-1].EdgeFlag)
}

func TestNewSubContourClosedEdges(t *testing.T) {
	verts := []Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	c := NewSubContour(verts, true)
	for _, ev := range c {
		require.True(t, ev.EdgeFlag)
	}
}

func TestSubContourReverseRotatesFlags(t *testing.T) {
	// Four flags (true,true,false,false) with no rotational symmetry, so
	// a wrong rotation amount cannot reproduce the expected flags by
	// chance.
	c := SubContour{
		{Vertex: Vec3{X: 1}, EdgeFlag: true},
		{Vertex: Vec3{Y: 1}, EdgeFlag: true},
		{Vertex: Vec3{Z: 1}, EdgeFlag: false},
		{Vertex: Vec3{X: -1}, EdgeFlag: false},
	}
	r := c.Reverse()
	require.Len(t, r, 4)
	for i := range r {
		require.Equal(t, c[3-i].Vertex, r[i].Vertex)
	}
	// r[i] holds c[3-i]; the edge leaving it is the original edge
	// incoming to c[3-i], i.e. c[(3-i-1+4)%4].EdgeFlag == c[(6-i)%4].EdgeFlag.
	require.Equal(t, c[2].EdgeFlag, r[0].EdgeFlag)
	require.Equal(t, c[1].EdgeFlag, r[1].EdgeFlag)
	require.Equal(t, c[0].EdgeFlag, r[2].EdgeFlag)
	require.Equal(t, c[3].EdgeFlag, r[3].EdgeFlag)
}

func TestRectToSphereRoundTrip(t *testing.T) {
	for _, v := range []Vec3{
		{X: 1}, {Y: 1}, {Z: 1}, {X: -1}, {Y: -1}, {Z: -1},
		{X: 0.5, Y: 0.5, Z: 1 / math.Sqrt2},
	} {
		v = v.Normalize()
		ra, dec := rectToSphere(v)
		got := PointFromRADec(ra*180/math.Pi, dec*180/math.Pi)
		require.InDelta(t, v.X, got.X, 1e-9)
		require.InDelta(t, v.Y, got.Y, 1e-9)
		require.InDelta(t, v.Z, got.Z, 1e-9)
	}
}

func TestSubContourSerialiseShape(t *testing.T) {
	c := NewSubContour([]Vec3{{X: 1}, {Y: 1}, {Z: 1}}, true)
	s := c.Serialise()
	require.True(t, len(s) > 0)
	require.Equal(t, byte('['), s[0])
	require.Equal(t, byte(']'), s[len(s)-1])
}
