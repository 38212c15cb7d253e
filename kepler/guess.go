package kepler

import "math"

func signOf(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// initialGuess produces a starting universal anomaly s for the Newton
// solver, per spec §4.2.1.
func initialGuess(mu, dt, r0, u, alpha float64) float64 {
	if alpha > 0 {
		if math.Abs(dt)/r0 <= 0.4 {
			return dt/r0 - (dt*dt*u)/(2*r0*r0*r0)
		}
		a := mu / alpha
		n := math.Sqrt(mu / (a * a * a))
		ea := 1 - r0/a
		es := u / (n * a * a)
		e := math.Sqrt(ea*ea + es*es)
		y := n*dt - es
		sigma := signOf(es*math.Cos(y) + ea*math.Sin(y))
		return (y + sigma*0.85*e) / math.Sqrt(alpha)
	}

	if s, ok := p3solve(mu, dt, r0, u, alpha); ok {
		return s
	}
	return dt / r0
}
