package kepler

import "math"

// p3solve finds the real root of the cubic
//
//	((mu - alpha*r0)/6)*s^3 + (u/2)*s^2 + r0*s - dt = 0
//
// used as the hyperbolic/parabolic initial guess. It reduces the cubic to
// depressed form t^3 + 3*qc*t - 2*rc = 0 and evaluates the Cardano
// discriminant qc^3 + rc^2. ok is false when the discriminant is negative
// (CubicUnsolvable in spec terms); the caller falls back to s = dt/r0.
func p3solve(mu, dt, r0, u, alpha float64) (s float64, ok bool) {
	a := (mu - alpha*r0) / 6
	b := u / 2
	c := r0
	d := -dt

	if a == 0 {
		return 0, false
	}

	b, c, d = b/a, c/a, d/a // normalize leading coefficient to 1

	shift := b / 3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d

	qc := p / 3
	rc := -q / 2
	disc := qc*qc*qc + rc*rc
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := math.Cbrt(rc+sq) + math.Cbrt(rc-sq)
	return t - shift, true
}
