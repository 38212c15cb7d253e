package force

import "github.com/gravcore/keplerbs/state"

// DirectSum is a pairwise-sum Newtonian gravity evaluator. It is a
// reference fixture for exercising bsstep in tests, not the acceleration
// evaluator named in spec.md §1 (that evaluator's real implementation is
// explicitly out of scope); it ignores Params.Aux entirely.
func DirectSum(t float64, sys *state.System, params Params) []state.Vector3 {
	n := sys.Len()
	acc := make([]state.Vector3, n)
	for i := 1; i < n; i++ {
		var a state.Vector3
		xi := sys.Position(i)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := sys.Position(j).Sub(xi)
			r2 := d.Norm2()
			if r2 == 0 {
				continue
			}
			r := d.Norm()
			a = a.AddScaled(sys.Mass[j]/(r2*r), d)
		}
		acc[i] = a
	}
	return acc
}
