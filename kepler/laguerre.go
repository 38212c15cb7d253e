package kepler

import "math"

// laguerreOrder is the fixed Laguerre order L used in the fallback
// iteration (spec §4.2.4).
const laguerreOrder = 5.0

// laguerreSolve runs Laguerre's method on the universal Kepler equation
// when Newton iteration has failed to converge. It starts from whichever
// of the Newton result or the original initial guess has the smaller
// residual, per spec §4.2.4.
func laguerreSolve(mu, dt, r0, u, alpha, danbyB, sNewton, sInit float64, nlag2 int) (s float64, converged bool) {
	if math.Abs(fchk(mu, dt, r0, u, alpha, sInit)) < math.Abs(fchk(mu, dt, r0, u, alpha, sNewton)) {
		s = sInit
	} else {
		s = sNewton
	}

	// ncmax is NLAG2 in both branches in the upstream source; the
	// hyperbolic (alpha < 0) branch reads as though it was meant to use
	// a larger cap, but the two arms are identical. Preserved as-is per
	// spec §9's open question, not "fixed" here.
	ncmax := nlag2
	if alpha < 0 {
		ncmax = nlag2
	}

	const L = laguerreOrder
	for iter := 0; iter < ncmax; iter++ {
		f, fp, fpp, _ := residual(mu, dt, r0, u, alpha, s)

		disc := (L-1)*(L-1)*fp*fp - L*(L-1)*f*fpp
		if disc < 0 {
			disc = 0
		}
		denom := fp + signOf(fp)*math.Sqrt(disc)
		if denom == 0 {
			return s, false
		}
		ds := -L * f / denom
		s += ds

		fNew := fchk(mu, dt, r0, u, alpha, s)
		ratio := fNew / dt
		if ratio*ratio < danbyB*danbyB {
			return s, true
		}
	}
	return s, false
}
