package bsstep

import (
	"github.com/gravcore/keplerbs/force"
	"github.com/gravcore/keplerbs/state"
)

// bodyVectors holds per-integrated-body (indices 1..len-1 of the parent
// System) position or velocity vectors, one slice entry per body index
// (index 0 is left as the zero Vector3 and unused, keeping indices
// aligned with state.System's body numbering).
type bodyVectors []state.Vector3

func newBodyVectors(n int) bodyVectors { return make(bodyVectors, n) }

// modMidBS1 is the general (dissipative-capable) modified-midpoint
// integrator: it takes 2n half-substeps of size h = h0/(2n), advancing
// two parallel leapfrog sequences, per spec §4.5.
func modMidBS1(sys *state.System, a0 bodyVectors, t0, h0 float64, n int, cb force.Callback, params force.Params) (xEnd, vEnd bodyVectors) {
	nbody := sys.Len()
	nsteps := 2 * n
	h := h0 / float64(nsteps)

	xm := newBodyVectors(nbody)
	vm := newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		xm[i] = sys.Position(i)
		vm[i] = sys.Velocity(i)
	}

	xn := newBodyVectors(nbody)
	vn := newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		xn[i] = xm[i].AddScaled(h, vm[i])
		vn[i] = vm[i].AddScaled(h, a0[i])
	}

	work := sys.Clone()
	applyVectors(&work, xn, vn)
	tcur := t0 + h
	an := cb(tcur, &work, params)

	h2 := 2 * h
	for step := 2; step <= nsteps; step++ {
		for i := 1; i < nbody; i++ {
			xSwap := xm[i].AddScaled(h2, vn[i])
			vSwap := vm[i].AddScaled(h2, an[i])
			xm[i], xn[i] = xn[i], xSwap
			vm[i], vn[i] = vn[i], vSwap
		}
		tcur += h
		applyVectors(&work, xn, vn)
		an = cb(tcur, &work, params)
	}

	xEnd = newBodyVectors(nbody)
	vEnd = newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		xEnd[i] = xm[i].Add(xn[i]).AddScaled(h, vn[i]).Scale(0.5)
		vEnd[i] = vm[i].Add(vn[i]).AddScaled(h, an[i]).Scale(0.5)
	}
	return xEnd, vEnd
}

// modMidBS2 is the conservative-only modified-midpoint integrator: it
// takes n full substeps of size h = h0/n, accumulating the running sums
// B = a0/2 + sum(a_j, j < n) and C = sum(B_j) to build up the position
// update without
// retaining every intermediate substep state, per spec §4.5. force is
// always evaluated with the system's initial velocity v0, since BS2
// assumes acceleration does not depend on velocity.
func modMidBS2(sys *state.System, a0 bodyVectors, t0, h0 float64, n int, cb force.Callback, params force.Params) (xEnd, vEnd bodyVectors) {
	nbody := sys.Len()
	h := h0 / float64(n)

	x0 := newBodyVectors(nbody)
	v0 := newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		x0[i] = sys.Position(i)
		v0[i] = sys.Velocity(i)
	}

	b := newBodyVectors(nbody)
	c := newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		b[i] = a0[i].Scale(0.5)
	}
	work := sys.Clone()
	var aj bodyVectors

	for j := 1; j <= n; j++ {
		xj := newBodyVectors(nbody)
		for i := 1; i < nbody; i++ {
			xj[i] = x0[i].
				AddScaled(float64(j)*h, v0[i]).
				AddScaled(h*h/2, a0[i]).
				AddScaled(h*h, c[i])
		}
		applyVectors(&work, xj, v0)
		aj = cb(t0+float64(j)*h, &work, params)

		if j < n {
			for i := 1; i < nbody; i++ {
				b[i] = b[i].Add(aj[i])
				c[i] = c[i].Add(b[i])
			}
		}
	}

	xEnd = newBodyVectors(nbody)
	vEnd = newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		xEnd[i] = x0[i].
			AddScaled(float64(n)*h, v0[i]).
			AddScaled(h*h/2, a0[i]).
			AddScaled(h*h, c[i])
		vEnd[i] = v0[i].AddScaled(h, b[i]).AddScaled(h/2, aj[i])
	}
	return xEnd, vEnd
}

func applyVectors(sys *state.System, x, v bodyVectors) {
	for i := 1; i < len(x); i++ {
		sys.SetPosition(i, x[i])
		sys.SetVelocity(i, v[i])
	}
}
