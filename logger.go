package keplerbs

import (
	"fmt"
	"io"
	"strings"
)

// Logger accumulates diagnostic messages from a run (accepted steps with
// their next-step recommendation, retry halvings) and writes them to Output on
// Flush. Buffering avoids interleaving writes with a caller's own output
// during a tight integration loop.
type Logger struct {
	Output io.Writer
	buff   strings.Builder
}

// NewLogger returns a Logger writing to w on Flush.
func NewLogger(w io.Writer) Logger {
	return Logger{Output: w, buff: strings.Builder{}}
}

// Logf formats a message into the logger's buffer.
func (log *Logger) Logf(format string, a ...interface{}) {
	log.buff.WriteString(fmt.Sprintf(format, a...))
}

// Flush writes the buffered messages to Output and resets the buffer.
func (log *Logger) Flush() {
	log.Output.Write([]byte(log.buff.String()))
	log.buff.Reset()
}
