package octpoly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBoundingCapContainsAllVertices(t *testing.T) {
	outline := []Vec3{
		{X: 1, Y: 0.1, Z: 0},
		{X: 0.9, Y: 0.3, Z: 0.1},
		{X: 0.8, Y: -0.2, Z: 0.2},
	}
	for i := range outline {
		outline[i] = outline[i].Normalize()
	}
	bcap := computeBoundingCap(outline)
	for _, v := range outline {
		require.True(t, capContainsPoint(bcap, v))
	}
}

func TestComputeBoundingCapExcludesAntipode(t *testing.T) {
	outline := []Vec3{
		Vec3{X: 1, Y: 0.05, Z: 0}.Normalize(),
		Vec3{X: 1, Y: -0.05, Z: 0}.Normalize(),
		Vec3{X: 0.99, Z: 0.1}.Normalize(),
	}
	bcap := computeBoundingCap(outline)
	require.False(t, capContainsPoint(bcap, Vec3{X: -1}))
}
