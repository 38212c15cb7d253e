// Package status carries the tagged convergence outcomes returned by the
// Kepler solvers, preserving the numeric codes
// of the original flag-based interface for callers that still switch on
// them.
package status

import "fmt"

// Code enumerates the convergence outcomes a solver can report.
type Code int

const (
	// Converged means the solver reached its target tolerance.
	Converged Code = iota
	// ResidualTooLarge means the small-increment (kepmd) or Newton
	// universal solver failed to drive its residual below DANBYB within
	// its iteration budget.
	ResidualTooLarge
	// LaguerreFailed means the Laguerre fallback exhausted its iteration
	// cap without converging.
	LaguerreFailed
)

func (c Code) String() string {
	switch c {
	case Converged:
		return "converged"
	case ResidualTooLarge:
		return "residual too large"
	case LaguerreFailed:
		return "laguerre failed"
	default:
		return fmt.Sprintf("status.Code(%d)", int(c))
	}
}

// Result is the outcome of a solver call: Code zero-values to Converged,
// so a zero Result reads as success.
type Result struct {
	Code Code
	Err  error
}

// OK returns a converged result.
func OK() Result { return Result{Code: Converged} }

// Fail builds a failed result of the given code with a formatted reason.
func Fail(code Code, format string, a ...interface{}) Result {
	return Result{Code: code, Err: fmt.Errorf(format, a...)}
}

// Failed reports whether the result represents anything but convergence.
func (r Result) Failed() bool { return r.Code != Converged }

func (r Result) Error() string {
	if r.Err == nil {
		return r.Code.String()
	}
	return r.Err.Error()
}
