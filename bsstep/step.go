// Package bsstep implements the adaptive-order Bulirsch-Stoer step for a
// system of N mutually interacting bodies: modified-midpoint substepping
// (general BS1 and conservative-only BS2 variants), polynomial
// extrapolation to zero step size, and the accept/shrink/retry step-size
// control of spec.md §4.
package bsstep

import (
	"fmt"
	"math"

	"github.com/gravcore/keplerbs/force"
	"github.com/gravcore/keplerbs/state"
)

// Variant selects which modified-midpoint substep integrator a step uses.
type Variant int

const (
	// BS1 is the general, dissipative-capable variant: force may depend
	// on velocity, and the leapfrog substep is twice as expensive per
	// order as BS2.
	BS1 Variant = iota
	// BS2 is the conservative-only variant: force must not depend on
	// velocity, letting the substep use cheaper position-only recursion.
	BS2
)

const (
	bs1MaxOrder = 8
	bs2MaxOrder = 12

	growFactor   = 1.3
	shrinkFactor = 0.55
	growBelowN   = 7

	// retryHalve is applied to h when no order up to n_max met tol.Eps,
	// per spec §4.6/§7: halve h0 and restart from n=1. Distinct from
	// shrinkFactor, which only scales hnext when a step is accepted at
	// n_max.
	retryHalve = 0.5
)

func maxOrder(v Variant) int {
	if v == BS2 {
		return bs2MaxOrder
	}
	return bs1MaxOrder
}

// machineEpsFloor bounds how far h0 may shrink before Step gives up and
// panics, per spec §7: "an implementation should defend with a maximum
// halvings bound that escalates to a hard error when h0 reaches
// machine-epsilon scale."
const machineEpsFloor = 4 * 2.220446049250313e-16

// Tolerances bounds a Bulirsch-Stoer step: Eps is the target scaled
// relative error (squared against errNorm's output, per spec §4.6). HMin
// and HMax, if nonzero, clamp the recommended next step size. Grow and
// Shrink override the default GROW/SHRINK factors of spec §6 when
// nonzero, and MaxOrder overrides the variant's default n_max when
// positive; this lets a caller source the step's tuning from a
// Constants record instead of always taking bsstep's built-in defaults.
type Tolerances struct {
	Eps        float64
	HMin, HMax float64
	Grow       float64
	Shrink     float64
	MaxOrder   int
}

// Diagnostics receives per-step diagnostics from Step: the accepted
// extrapolation order, step size and recommended next step on success, and
// each retry halving on failure. A nil Diagnostics passed to Step disables logging
// entirely.
type Diagnostics interface {
	Logf(format string, a ...interface{})
}

// Step advances the integrated bodies (indices 1..sys.Len()-1) of sys by
// h0, retrying with a halved step size whenever the order-n_max
// extrapolation fails to meet tol.Eps, per spec §4.6's accept/shrink/retry
// policy. It returns the updated system, the step size actually taken
// (hdid), and the step size recommended for the next call (hnext). diag,
// if non-nil, receives a line per accepted step and per failed retry.
func Step(variant Variant, t0 float64, sys state.System, h0 float64, cb force.Callback, params force.Params, tol Tolerances, diag Diagnostics) (next state.System, hdid, hnext float64) {
	nbody := sys.Len()
	ncols := 6 * (nbody - 1)
	nmax := maxOrder(variant)
	if tol.MaxOrder > 0 {
		nmax = tol.MaxOrder
	}
	grow, shrink := growFactor, shrinkFactor
	if tol.Grow != 0 {
		grow = tol.Grow
	}
	if tol.Shrink != 0 {
		shrink = tol.Shrink
	}

	x0 := newBodyVectors(nbody)
	v0 := newBodyVectors(nbody)
	for i := 1; i < nbody; i++ {
		x0[i] = sys.Position(i)
		v0[i] = sys.Velocity(i)
	}
	a0 := cb(t0, &sys, params)

	xscal := make([]float64, nbody)
	vscal := make([]float64, nbody)
	scaleFactors(xscal, vscal, x0, v0)

	h := h0
	for {
		if math.Abs(h) <= math.Abs(h0)*machineEpsFloor {
			panic(fmt.Errorf("bsstep: step size collapsed to machine precision (h0=%g, h=%g) without meeting tolerance %g", h0, h, tol.Eps))
		}

		table := newExtrapTable(nmax, ncols)
		accepted := false
		var sumRow []float64
		var acceptedN int

		for n := 1; n <= nmax; n++ {
			var xEnd, vEnd bodyVectors
			var hsq float64
			if variant == BS1 {
				xEnd, vEnd = modMidBS1(&sys, a0, t0, h, n, cb, params)
				hsq = 1 / (4 * float64(n) * float64(n))
			} else {
				xEnd, vEnd = modMidBS2(&sys, a0, t0, h, n, cb, params)
				hsub := h / float64(n)
				hsq = hsub * hsub
			}

			raw := flattenRow(xEnd, vEnd, ncols)
			errRow, sum := table.fold(n, hsq, raw)

			if n >= 4 {
				errmax := errNorm(errRow, xscal, vscal, nbody)
				if errmax <= tol.Eps*tol.Eps {
					accepted = true
					sumRow = sum
					acceptedN = n
					break
				}
			}
		}

		if accepted {
			next = sys.Clone()
			applyFlatRow(&next, sumRow)
			hdid = h
			switch {
			case acceptedN < growBelowN:
				hnext = h * grow
			case acceptedN == nmax:
				hnext = h * shrink
			default:
				hnext = h
			}
			if tol.HMax != 0 {
				hnext = clamp(hnext, -tol.HMax, tol.HMax)
			}
			if tol.HMin != 0 && math.Abs(hnext) < tol.HMin {
				hnext = math.Copysign(tol.HMin, hnext)
			}
			if diag != nil {
				diag.Logf("bsstep: accepted n=%d h=%g hnext=%g\n", acceptedN, h, hnext)
			}
			return next, hdid, hnext
		}

		if diag != nil {
			diag.Logf("bsstep: n_max=%d exhausted without convergence at h=%g, halving\n", nmax, h)
		}
		h *= retryHalve
	}
}

func flattenRow(x, v bodyVectors, ncols int) []float64 {
	row := make([]float64, ncols)
	for i := 1; i < len(x); i++ {
		base := (i - 1) * 6
		row[base+0], row[base+1], row[base+2] = x[i][0], x[i][1], x[i][2]
		row[base+3], row[base+4], row[base+5] = v[i][0], v[i][1], v[i][2]
	}
	return row
}

func applyFlatRow(sys *state.System, row []float64) {
	nbody := sys.Len()
	for i := 1; i < nbody; i++ {
		base := (i - 1) * 6
		sys.SetPosition(i, state.Vector3{row[base+0], row[base+1], row[base+2]})
		sys.SetVelocity(i, state.Vector3{row[base+3], row[base+4], row[base+5]})
	}
}
