package kepler

import (
	"github.com/gravcore/keplerbs/status"
	"github.com/gravcore/keplerbs/stumpff"
)

// universalKepler solves Kepler's equation in universal variables for s,
// returning s and fp = r0*U0 + u*U1 + mu*U2 (spec §4.2). Newton iteration
// is tried first; Laguerre's method is the fallback when Newton fails to
// converge within its 6-pass budget.
func universalKepler(mu, dt, r0, u, alpha, danbyB float64, nlag2 int) (s, fp float64, res status.Result) {
	sInit := initialGuess(mu, dt, r0, u, alpha)

	s, ok := newtonSolve(mu, dt, r0, u, alpha, danbyB, sInit)
	if !ok {
		sLag, ok2 := laguerreSolve(mu, dt, r0, u, alpha, danbyB, s, sInit, nlag2)
		if !ok2 {
			return 0, 0, status.Fail(status.LaguerreFailed,
				"laguerre solver did not converge in %d iterations", nlag2)
		}
		s = sLag
	}

	u0, u1, u2, _ := stumpff.Scaled(s, alpha)
	fp = r0*u0 + u*u1 + mu*u2
	return s, fp, status.OK()
}
