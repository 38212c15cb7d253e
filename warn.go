package keplerbs

import "fmt"

const (
	escape   = "\x1b"
	yellow   = 33
	hiyellow = 93
)

// throwf terminates the current call immediately due to a programmer
// error (a non-positive mu, a nil force callback, fewer than two bodies):
// conditions a caller could have prevented, as opposed to the numerical
// non-convergence a Result reports.
func throwf(format string, a ...interface{}) {
	panic(fmt.Errorf(format+"\n", a...))
}

func scolorf(color int, str string) string {
	return fmt.Sprintf("%s[%dm%s%s[0m", escape, color, str, escape)
}

// warnf prints a non-fatal diagnostic (a recommended next step smaller
// than the step requested) in yellow.
func warnf(format string, a ...interface{}) {
	fmt.Printf(scolorf(yellow, format)+"\n", a...)
}
