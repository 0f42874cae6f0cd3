package octpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitByPlaneNoCrossing(t *testing.T) {
	ring := NewSubContour([]Vec3{{X: 1, Y: 0.1}, {X: 1, Y: 0.2, Z: 0.1}, {X: 1, Y: 0.1, Z: 0.2}}, true)
	sides := splitByPlane(axisX, ring)
	require.Len(t, sides[0], 1)
	require.Empty(t, sides[1])
	require.Len(t, sides[0][0], 3)
}

func TestSplitByPlaneCrossing(t *testing.T) {
	ring := NewSubContour([]Vec3{
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: -1},
		{X: -1, Y: 1},
	}, true)
	sides := splitByPlane(axisY, ring)
	require.Len(t, sides[0], 1)
	require.Len(t, sides[1], 1)
	for _, s := range sides {
		for _, c := range s {
			require.GreaterOrEqual(t, len(c), 3)
		}
	}
}

func TestAttachPoleIfOpenAddsVertex(t *testing.T) {
	open := SubContour{
		{Vertex: Vec3{X: 1, Y: 0.1}.Normalize(), EdgeFlag: false},
		{Vertex: Vec3{X: 0.1, Y: 1}.Normalize(), EdgeFlag: false},
	}
	cs := []SubContour{open}
	attachPoleIfOpen(cs)
	require.Len(t, cs[0], 3)
	pole := cs[0][2].Vertex
	require.InDelta(t, 0, pole.X, 1e-12)
	require.InDelta(t, 0, pole.Y, 1e-12)
	require.InDelta(t, 1, math.Abs(pole.Z), 1e-12)
}

func TestAttachPoleIfOpenSkipsClosed(t *testing.T) {
	closed := SubContour{
		{Vertex: Vec3{X: 1}, EdgeFlag: true},
		{Vertex: Vec3{Y: 1}, EdgeFlag: true},
	}
	cs := []SubContour{closed}
	attachPoleIfOpen(cs)
	require.Len(t, cs[0], 2)
}
