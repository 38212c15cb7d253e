package bsstep

import "math"

// errNorm computes the scaled relative error of the order-n extrapolation
// correction errRow (one 6-component block per integrated body, flattened)
// against per-body position/velocity scale factors, per spec §4.6:
//
//	errmax = max_k max( max(errRow.x[1..3])^2 * xscal[k], max(errRow.v[1..3])^2 * vscal[k] )
//
// This corrects the BS2 error-norm typo flagged in spec §9: the squared
// term is the same component multiplied by itself, not a cross term
// between differently-indexed rows.
func errNorm(errRow []float64, xscal, vscal []float64, nbody int) float64 {
	errmax := 0.0
	for i := 1; i < nbody; i++ {
		base := (i - 1) * 6
		xmax := 0.0
		for k := 0; k < 3; k++ {
			c := errRow[base+k]
			if c*c > xmax {
				xmax = c * c
			}
		}
		vmax := 0.0
		for k := 3; k < 6; k++ {
			c := errRow[base+k]
			if c*c > vmax {
				vmax = c * c
			}
		}
		if e := xmax * xscal[i]; e > errmax {
			errmax = e
		}
		if e := vmax * vscal[i]; e > errmax {
			errmax = e
		}
	}
	return math.Max(errmax, 0)
}

// scaleFactors computes xscal[i] = 1/|x_i|^2 and vscal[i] = 1/|v_i|^2 for
// every integrated body, recomputed at the start of each step attempt from
// the pre-step state per spec §4.6.
func scaleFactors(xscal, vscal []float64, x, v bodyVectors) {
	for i := 1; i < len(x); i++ {
		xn2 := x[i].Norm2()
		vn2 := v[i].Norm2()
		if xn2 == 0 {
			xn2 = 1
		}
		if vn2 == 0 {
			vn2 = 1
		}
		xscal[i] = 1 / xn2
		vscal[i] = 1 / vn2
	}
}
