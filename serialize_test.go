package octpoly

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedTestPoints is a deterministic spread of points over the sphere,
// used in place of randomized sampling so round-trip tests stay
// reproducible without pulling in math/rand.
func fixedTestPoints(n int) []Vec3 {
	pts := make([]Vec3, n)
	for i := 0; i < n; i++ {
		// Deterministic spiral sampling (a fixed, non-random low-discrepancy
		// sequence), not a statistically unbiased sphere sampler.
		t := float64(i) / float64(n)
		z := 1 - 2*t
		r := math.Sqrt(math.Max(0, 1-z*z))
		theta := float64(i) * 2.399963229728653 // golden angle in radians
		pts[i] = Vec3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}.Normalize()
	}
	return pts
}

func TestSerializeRoundTripArea(t *testing.T) {
	ring := circleRing(30, -15, 12, 40)
	p := FromRing(ring)

	data, err := p.Serialize()
	require.NoError(t, err)

	q, err := Deserialize(data)
	require.NoError(t, err)

	require.InDelta(t, p.Area(), q.Area(), 1e-9)
}

func TestSerializeRoundTripPointMembership(t *testing.T) {
	ring := circleRing(30, -15, 12, 40)
	p := FromRing(ring)

	data, err := p.Serialize()
	require.NoError(t, err)
	q, err := Deserialize(data)
	require.NoError(t, err)

	for _, v := range fixedTestPoints(100) {
		require.Equal(t, p.ContainsPoint(v), q.ContainsPoint(v))
	}
}

func TestSerializeRoundTripAfterBooleanOp(t *testing.T) {
	a := FromRing(circleRing(0, 0, 20, 32))
	b := FromRing(circleRing(10, 5, 20, 32))
	u := Union(a, b)

	data, err := u.Serialize()
	require.NoError(t, err)
	q, err := Deserialize(data)
	require.NoError(t, err)

	require.InDelta(t, u.Area(), q.Area(), 1e-9)
	for _, v := range fixedTestPoints(100) {
		require.Equal(t, u.ContainsPoint(v), q.ContainsPoint(v))
	}
}

func TestDebugJSONProducesValidOutput(t *testing.T) {
	p := FromRing([]Vec3{{X: 1}, {Y: 1}, {Z: 1}})
	s, err := p.DebugJSON()
	require.NoError(t, err)

	var faces [8][]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &faces))
	require.Len(t, faces, 8)

	var populated int
	for _, subs := range faces {
		for _, sub := range subs {
			var triples [][3]json.RawMessage
			require.NoError(t, json.Unmarshal(sub, &triples))
			for _, triple := range triples {
				var ra, dec float64
				var flag bool
				require.NoError(t, json.Unmarshal(triple[0], &ra))
				require.NoError(t, json.Unmarshal(triple[1], &dec))
				require.NoError(t, json.Unmarshal(triple[2], &flag))
			}
			populated++
		}
	}
	require.Greater(t, populated, 0)
}
