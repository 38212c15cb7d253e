package kepler

import "github.com/gravcore/keplerbs/stumpff"

// residual evaluates the Kepler universal-variable equation residual and
// its first three derivatives with respect to s, at the given s.
//
// f   = r0*U1 + u*U2 + mu*U3 - dt
// fp  = r0*U0 + u*U1 + mu*U2
// fpp = (mu - r0*alpha)*U1 + u*U0
// fppp= (mu - r0*alpha)*U0 - u*alpha*U1
func residual(mu, dt, r0, u, alpha, s float64) (f, fp, fpp, fppp float64) {
	u0, u1, u2, u3 := stumpff.Scaled(s, alpha)
	f = r0*u1 + u*u2 + mu*u3 - dt
	fp = r0*u0 + u*u1 + mu*u2
	fpp = (mu-r0*alpha)*u1 + u*u0
	fppp = (mu-r0*alpha)*u0 - u*alpha*u1
	return
}

// fchk returns the residual of the universal Kepler equation at s, used to
// compare the Newton result against the original initial guess when
// Newton fails to converge (spec §4.2.5).
func fchk(mu, dt, r0, u, alpha, s float64) float64 {
	f, _, _, _ := residual(mu, dt, r0, u, alpha, s)
	return f
}

// newtonSolve runs up to 6 passes of third-order (Halley-like) Newton
// iteration on the universal Kepler equation, per spec §4.2.3.
func newtonSolve(mu, dt, r0, u, alpha, danbyB, sGuess float64) (s float64, converged bool) {
	s = sGuess
	for iter := 0; iter < 6; iter++ {
		f, fp, fpp, fppp := residual(mu, dt, r0, u, alpha, s)

		ds := -f / fp
		ds = -f / (fp + ds*fpp/2)
		ds = -f / (fp + ds*fpp/2 + ds*ds*fppp/6)
		s += ds

		fNew := fchk(mu, dt, r0, u, alpha, s)
		ratio := fNew / dt
		if ratio*ratio < danbyB*danbyB {
			return s, true
		}
	}
	return s, false
}
