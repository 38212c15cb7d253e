package kepler

// gaussFGElliptic computes the Gauss f, g, fdot, gdot functions for the
// fast elliptic path (spec §4.3 step 2b), given the orbital elements and
// the eccentric anomaly increment x solved by kepmd, with s = sin(x),
// c = cos(x).
func gaussFGElliptic(a, r0, n, ea, es, dt, x, s, c float64) (f, g, fdot, gdot float64) {
	r := a * (1 - ea*c + es*s)
	f = 1 - (a/r0)*(1-c)
	g = dt + (s-x)/n
	fdot = -(a * a * n / (r * r0)) * s
	gdot = 1 - (a/r)*(1-c)
	return
}

// gaussFGUniversal computes the Gauss f, g, fdot, gdot functions for the
// universal-variable path (spec §4.3 step 3), given the converged
// universal anomaly s (via its scaled Stumpff components u1, u2, u3) and
// fp = r0*U0 + u*U1 + mu*U2.
func gaussFGUniversal(mu, r0, fp, u1, u2, u3, dt float64) (f, g, fdot, gdot float64) {
	f = 1 - (mu/r0)*u2
	g = dt - mu*u3
	fdot = -(mu / (fp * r0)) * u1
	gdot = 1 - (mu/fp)*u2
	return
}
