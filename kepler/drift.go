// Package kepler implements the universal-variable Kepler drift operator:
// advancing one body's (x, v) around a fixed central mass mu over a time
// step dt by analytically solving Kepler's equation, with a fast path for
// near-circular small-step elliptic orbits and a Newton/Laguerre universal
// solver covering every orbital regime (spec §4.2-§4.4).
package kepler

import (
	"math"

	"github.com/gravcore/keplerbs/state"
	"github.com/gravcore/keplerbs/status"
	"github.com/gravcore/keplerbs/stumpff"
)

// Tolerances bundles the tuning constants the drift operators need: the
// solver convergence threshold and the Laguerre iteration cap.
type Tolerances struct {
	DanbyB float64
	NLag2  int
}

// DriftOne advances (x, v) around the central mass mu by dt. If the
// single-step solve fails to converge, it retries by splitting dt into 10
// equal substeps; if any substep still fails, the failure is returned
// together with the state as of the last successfully completed substep,
// and the caller should treat the result as not having advanced.
func DriftOne(mu float64, x, v state.Vector3, dt float64, tol Tolerances) (state.Vector3, state.Vector3, status.Result) {
	if dt == 0 {
		return x, v, status.OK()
	}

	xn, vn, res := driftDan(mu, x, v, dt, tol)
	if !res.Failed() {
		return xn, vn, res
	}

	dtSub := dt / 10
	cx, cv := x, v
	for i := 0; i < 10; i++ {
		nx, nv, r := driftDan(mu, cx, cv, dtSub, tol)
		if r.Failed() {
			return cx, cv, r
		}
		cx, cv = nx, nv
	}
	return cx, cv, status.OK()
}

// driftDan is the single-step Kepler drift: it computes the orbital
// regime, attempts the fast elliptic path for small, near-circular steps,
// and otherwise solves the universal-variable form of Kepler's equation
// (spec §4.3).
func driftDan(mu float64, x, v state.Vector3, dt float64, tol Tolerances) (state.Vector3, state.Vector3, status.Result) {
	r0 := x.Norm()
	u := x.Dot(v)
	alpha := 2*mu/r0 - v.Norm2()

	effectiveDt := dt

	if alpha > 0 {
		a := mu / alpha
		n := math.Sqrt(mu / (a * a * a))
		ea := 1 - r0/a
		es := u / (n * a * a)
		e2 := ea*ea + es*es

		dm := math.Mod(dt*n, 2*math.Pi)
		effectiveDt = dm / n

		if dm*dm <= 0.16 && e2 <= 0.36 {
			if e2*dm*dm < 0.0016 {
				xk, s, c := kepmd(dm, ea, es)
				residual := xk - ea*s + es*(1-c) - dm
				if residual*residual <= tol.DanbyB {
					f, g, fdot, gdot := gaussFGElliptic(a, r0, n, ea, es, effectiveDt, xk, s, c)
					xn, vn := propagate(x, v, f, g, fdot, gdot)
					return xn, vn, status.OK()
				}
				// kepmd residual too large: fall through to the
				// universal path below, using the same period-reduced
				// effectiveDt.
			}
		}
	}

	s, fp, res := universalKepler(mu, effectiveDt, r0, u, alpha, tol.DanbyB, tol.NLag2)
	if res.Failed() {
		return x, v, res
	}

	_, u1, u2, u3 := stumpff.Scaled(s, alpha)
	f, g, fdot, gdot := gaussFGUniversal(mu, r0, fp, u1, u2, u3, effectiveDt)
	xn, vn := propagate(x, v, f, g, fdot, gdot)
	return xn, vn, status.OK()
}

func propagate(x, v state.Vector3, f, g, fdot, gdot float64) (state.Vector3, state.Vector3) {
	return x.Scale(f).Add(v.Scale(g)), x.Scale(fdot).Add(v.Scale(gdot))
}
