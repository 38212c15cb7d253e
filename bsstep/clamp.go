package bsstep

import "golang.org/x/exp/constraints"

// clamp bounds x to [lo, hi]. Used to keep the recommended next step size
// within [-HMax, HMax], replacing the teacher's hand-written integer max() (the
// teacher's go.mod predates Go's builtin min/max) with the generic
// equivalent the rest of the retrieved pack reaches for.
func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
