package kepler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravcore/keplerbs/kepler"
	"github.com/gravcore/keplerbs/state"
)

var tol = kepler.Tolerances{DanbyB: 1e-13, NLag2: 50}

func energy(mu float64, x, v state.Vector3) float64 {
	return 0.5*v.Norm2() - mu/x.Norm()
}

// S1: circular orbit returns to its starting point after one full period.
func TestCircularOrbit(t *testing.T) {
	mu := 1.0
	x := state.Vector3{1, 0, 0}
	v := state.Vector3{0, 1, 0}

	xn, vn, res := kepler.DriftOne(mu, x, v, 2*math.Pi, tol)
	require.False(t, res.Failed(), "drift failed: %v", res)

	assert.InDelta(t, x[0], xn[0], 1e-9)
	assert.InDelta(t, x[1], xn[1], 1e-9)
	assert.InDelta(t, v[0], vn[0], 1e-9)
	assert.InDelta(t, v[1], vn[1], 1e-9)
}

// S2: eccentric elliptic orbit round-trips after one full period.
func TestEccentricOrbitPeriod(t *testing.T) {
	mu := 1.0
	x := state.Vector3{1, 0, 0}
	v := state.Vector3{0, 0.5, 0}

	alpha := 2*mu/x.Norm() - v.Norm2()
	a := mu / alpha
	period := 2 * math.Pi * math.Sqrt(a*a*a/mu)

	xn, vn, res := kepler.DriftOne(mu, x, v, period, tol)
	require.False(t, res.Failed())

	assert.InDelta(t, x[0], xn[0], 1e-7)
	assert.InDelta(t, x[1], xn[1], 1e-7)
	assert.InDelta(t, v[0], vn[0], 1e-7)
	assert.InDelta(t, v[1], vn[1], 1e-7)
}

// S3: hyperbolic flyby conserves energy.
func TestHyperbolicFlybyEnergy(t *testing.T) {
	mu := 1.0
	x := state.Vector3{10, 0, 0}
	v := state.Vector3{0, 0.5, 0}

	e0 := energy(mu, x, v)
	xn, vn, res := kepler.DriftOne(mu, x, v, 20, tol)
	require.False(t, res.Failed())

	e1 := energy(mu, xn, vn)
	assert.InDelta(t, e0, e1, 1e-10*math.Abs(e0))
}

// Property: angular momentum is preserved across any drift.
func TestAngularMomentumConservation(t *testing.T) {
	mu := 1.0
	cases := []struct {
		x, v state.Vector3
		dt   float64
	}{
		{state.Vector3{1, 0, 0}, state.Vector3{0, 1, 0}, 1.3},
		{state.Vector3{1, 0, 0}, state.Vector3{0, 0.5, 0}, 5.0},
		{state.Vector3{10, 0, 0}, state.Vector3{0, 0.5, 0}, 7.0},
	}
	for _, c := range cases {
		h0 := c.x.Cross(c.v).Norm()
		xn, vn, res := kepler.DriftOne(mu, c.x, c.v, c.dt, tol)
		require.False(t, res.Failed())
		h1 := xn.Cross(vn).Norm()
		assert.InDelta(t, h0, h1, 1e-10*h0)
	}
}

// Property: drifting forward then backward recovers the initial state.
func TestRoundTrip(t *testing.T) {
	mu := 1.0
	x := state.Vector3{1.2, -0.3, 0.1}
	v := state.Vector3{0.1, 0.9, -0.05}
	dt := 3.7

	xn, vn, res := kepler.DriftOne(mu, x, v, dt, tol)
	require.False(t, res.Failed())
	xb, vb, res2 := kepler.DriftOne(mu, xn, vn, -dt, tol)
	require.False(t, res2.Failed())

	for i := 0; i < 3; i++ {
		assert.InDelta(t, x[i], xb[i], 1e-9)
		assert.InDelta(t, v[i], vb[i], 1e-9)
	}
}

func TestZeroStepIsNoop(t *testing.T) {
	mu := 1.0
	x := state.Vector3{1, 0, 0}
	v := state.Vector3{0, 1, 0}
	xn, vn, res := kepler.DriftOne(mu, x, v, 0, tol)
	require.False(t, res.Failed())
	assert.Equal(t, x, xn)
	assert.Equal(t, v, vn)
}
