// Package force defines the acceleration-evaluator interface the
// Bulirsch-Stoer step consumes as a black box. The real evaluator (force
// from positions/velocities/masses/auxiliary flags to accelerations) is
// deliberately out of scope for this repository (spec.md §1); this
// package only fixes the shape of the callback and its auxiliary
// parameters so bsstep can be compiled and tested against it.
package force

import "github.com/gravcore/keplerbs/state"

// AuxFlag enumerates the auxiliary force contributions a Callback may be
// asked to include.
type AuxFlag int

const (
	// None applies gravity only.
	None AuxFlag = iota
	// Jet adds a cometary outgassing jet contribution.
	Jet
	// Radiation adds radiation-pressure.
	Radiation
	// Both applies Jet and Radiation together.
	Both
)

// EncounterPairs lists index pairs flagged for reduced-cost close-encounter
// evaluation. ICE[k]/JCE[k] form the k-th pair.
type EncounterPairs struct {
	ICE, JCE []int
}

// Params carries the auxiliary inputs to a Callback beyond raw
// position/velocity/mass: flags selecting non-gravitational terms,
// close-encounter pair lists for reduced-cost evaluation, oblateness
// coefficients, spin, and a per-body removed-status mask.
type Params struct {
	Aux        AuxFlag
	Encounters EncounterPairs
	J2, J4, J6 float64
	Spin       state.Vector3
	Removed    []bool
}

// Callback computes the acceleration on every non-central body (indices
// 1..sys.Len()-1) given the full system state at time t. It must be a
// pure function of its inputs: the Bulirsch-Stoer error estimate is
// undefined if Callback has hidden mutable state that affects its output.
//
// BS2 (conservative-only) always calls Callback with the step's initial
// velocity v0 rather than an updated one, since it assumes force
// does not depend on v; BS1 passes the actual current velocity.
type Callback func(t float64, sys *state.System, params Params) []state.Vector3
