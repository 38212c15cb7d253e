package kepler

import (
	"math"
	"testing"

	"github.com/gravcore/keplerbs/stumpff"
)

// Wronskian: f*gdot - fdot*g == 1 for both Gauss f/g paths.
func TestWronskianElliptic(t *testing.T) {
	// dt solves n*dt = x - ea*sin(x) + es*(1-cos(x)) for the values below,
	// so that x is the eccentric-anomaly increment actually reached in dt.
	dt := (1.2 - 0.25*math.Sin(1.2) + 0.1*(1-math.Cos(1.2))) / 0.3
	f, g, fdot, gdot := gaussFGElliptic(2.0, 1.5, 0.3, 0.25, 0.1, dt, 1.2, math.Sin(1.2), math.Cos(1.2))
	w := f*gdot - fdot*g
	if math.Abs(w-1) > 1e-9 {
		t.Fatalf("wronskian = %v, want ~1", w)
	}
}

func TestWronskianUniversal(t *testing.T) {
	mu, r0, dt, alpha := 1.0, 1.0, 2.5, 1.0
	s, fp, res := universalKepler(mu, dt, r0, 0.0, alpha, 1e-13, 50)
	if res.Failed() {
		t.Fatalf("universalKepler failed: %v", res)
	}
	_, u1, u2, u3 := stumpff.Scaled(s, alpha)
	f, g, fdot, gdot := gaussFGUniversal(mu, r0, fp, u1, u2, u3, dt)
	w := f*gdot - fdot*g
	if math.Abs(w-1) > 1e-9 {
		t.Fatalf("wronskian = %v, want ~1", w)
	}
}
