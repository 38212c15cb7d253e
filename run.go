package keplerbs

import (
	"github.com/gravcore/keplerbs/bsstep"
	"github.com/gravcore/keplerbs/force"
	"github.com/gravcore/keplerbs/kepler"
	"github.com/gravcore/keplerbs/state"
	"github.com/gravcore/keplerbs/status"
)

// Drift advances one body around a fixed central mass mu by dt using the
// solver tolerances in c, per spec.md §4.2-§4.4. It guards the one
// precondition DriftOne assumes its caller has already checked: mu must
// be a positive central mass, not a numerical outcome DriftOne itself can
// fail on.
func Drift(c Constants, mu float64, x, v state.Vector3, dt float64) (state.Vector3, state.Vector3, status.Result) {
	if mu <= 0 {
		throwf("keplerbs: Drift requires mu > 0, got %g", mu)
	}
	return kepler.DriftOne(mu, x, v, dt, kepler.Tolerances{DanbyB: c.DanbyB, NLag2: c.NLag2})
}

// Integrate advances sys by h0 using variant's Bulirsch-Stoer step, with
// Grow/Shrink and the variant's max order sourced from c (spec.md §6)
// rather than bsstep's own defaults. eps, hmin, and hmax are passed
// through to bsstep.Tolerances unchanged. If log is non-nil, the step's
// accepted order and any shrink/retry halvings are appended to it; call
// log.Flush to write them out. Integrate guards the preconditions
// spec.md §1/§4 assume a caller has already validated before reaching
// Step: a non-nil force callback, and at least a central body plus one
// integrated body.
func Integrate(variant bsstep.Variant, c Constants, log *Logger, t0 float64, sys state.System, h0 float64, cb force.Callback, params force.Params, eps, hmin, hmax float64) (next state.System, hdid, hnext float64) {
	if cb == nil {
		throwf("keplerbs: Integrate requires a non-nil force callback")
	}
	if sys.Len() < 2 {
		throwf("keplerbs: Integrate requires at least 2 bodies (1 central + 1 integrated), got %d", sys.Len())
	}

	var diag bsstep.Diagnostics
	if log != nil {
		diag = log
	}

	maxOrder := c.BS1MaxOrder
	if variant == bsstep.BS2 {
		maxOrder = c.BS2MaxOrder
	}
	tol := bsstep.Tolerances{
		Eps:      eps,
		HMin:     hmin,
		HMax:     hmax,
		Grow:     c.Grow,
		Shrink:   c.Shrink,
		MaxOrder: maxOrder,
	}

	next, hdid, hnext = bsstep.Step(variant, t0, sys, h0, cb, params, tol, diag)
	if log != nil && hnext < h0 {
		warnf("keplerbs: step shrank h0=%g to hnext=%g", h0, hnext)
	}
	return next, hdid, hnext
}
