// Package keplerbs ties together the universal-variable Kepler drift
// (package kepler) and the adaptive Bulirsch-Stoer step (package bsstep)
// behind a single set of tuning constants, matching spec.md §6's
// "Tuning constants" and §9's note that they belong in a constants record
// consumed at build time.
package keplerbs

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Constants bundles every tuning knob named in spec.md §6, loadable from
// a YAML configuration file.
type Constants struct {
	// DanbyB is the Kepler solver's convergence threshold (DANBYB),
	// typically around 1e-14.
	DanbyB float64 `yaml:"danby_b"`
	// NLag2 bounds the Laguerre fallback's iteration count (NLAG2).
	NLag2 int `yaml:"nlag2"`
	// Shrink multiplies h into hnext when a step is accepted at
	// n_max (SHRINK). The retry-on-failure halving when no order up to
	// n_max converges is a separate, fixed 0.5 factor, not Shrink.
	Shrink float64 `yaml:"shrink"`
	// Grow multiplies the step size after a cheaply-converged step
	// (GROW).
	Grow float64 `yaml:"grow"`
	// BS1MaxOrder and BS2MaxOrder bound the extrapolation order tried
	// before a Bulirsch-Stoer step must shrink and retry.
	BS1MaxOrder int `yaml:"bs1_max_order"`
	BS2MaxOrder int `yaml:"bs2_max_order"`
}

// DefaultConstants returns the values named in spec.md §6.
func DefaultConstants() Constants {
	return Constants{
		DanbyB:      1e-14,
		NLag2:       50,
		Shrink:      0.55,
		Grow:        1.3,
		BS1MaxOrder: 8,
		BS2MaxOrder: 12,
	}
}

// LoadConstants reads a YAML-encoded Constants document, filling any
// field the document omits from DefaultConstants.
func LoadConstants(r io.Reader) (Constants, error) {
	c := DefaultConstants()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Constants{}, err
	}
	return c, nil
}
