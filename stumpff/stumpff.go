// Package stumpff evaluates the Stumpff functions c0..c3 used by the
// universal-variable formulation of Kepler's equation (Danby, Fundamentals
// of Celestial Mechanics, §6.9).
package stumpff

import "math"

// reductionThreshold is the |x| above which the Maclaurin truncations lose
// accuracy; Compute reduces the argument below it before evaluating the
// series and restores it with the doubling identities afterward.
const reductionThreshold = 0.1

// Compute returns c0, c1, c2, c3 at argument x.
//
// c2 and c3 are evaluated from fixed-degree Horner polynomials (Danby's
// tabulated Maclaurin truncations); c1 and c0 follow from the identities
// c1 = 1 - x*c3, c0 = 1 - x*c2. Large |x| is handled by dividing the
// argument by 4, n times, until it is below reductionThreshold, evaluating
// there, and then applying the doubling identities n times to restore the
// original argument.
func Compute(x float64) (c0, c1, c2, c3 float64) {
	n := 0
	for math.Abs(x) >= reductionThreshold {
		n++
		x /= 4
	}

	c2 = (1 - x*(1-x*(1-x*(1-x*(1-x*(1-x/182)/132)/90)/56)/30)/12) / 2
	c3 = (1 - x*(1-x*(1-x*(1-x*(1-x*(1-x/210)/156)/110)/72)/42)/20) / 6
	c1 = 1 - x*c3
	c0 = 1 - x*c2

	for ; n > 0; n-- {
		c3 = (c2 + c0*c3) / 4
		c2 = c1 * c1 / 2
		c1 = c0 * c1
		c0 = 2*c0*c0 - 1
		x *= 4
	}
	return c0, c1, c2, c3
}

// Scaled returns the universal-variable building blocks
// U0 = c0(s²α), U1 = s·c1(s²α), U2 = s²·c2(s²α), U3 = s³·c3(s²α),
// the form in which Stumpff functions actually appear in Kepler's
// universal equation and its derivatives.
func Scaled(s, alpha float64) (u0, u1, u2, u3 float64) {
	c0, c1, c2, c3 := Compute(s * s * alpha)
	return c0, s * c1, s * s * c2, s * s * s * c3
}
