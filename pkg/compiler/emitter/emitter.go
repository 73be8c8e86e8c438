// Package emitter accumulates generated C source in two ordered regions:
// a preamble for declarations and a body for executable statements. The
// final output is always preamble followed by body, regardless of the
// order in which the parser appended to each.
package emitter

import "strings"

type Emitter struct {
	preamble strings.Builder
	body     strings.Builder
}

func New() *Emitter {
	return &Emitter{}
}

// Preamble appends a line to the preamble region.
func (e *Emitter) Preamble(line string) {
	e.preamble.WriteString(line)
	e.preamble.WriteByte('\n')
}

// Emit appends text to the body region without a trailing newline.
func (e *Emitter) Emit(text string) {
	e.body.WriteString(text)
}

// Line appends text to the body region followed by a newline.
func (e *Emitter) Line(text string) {
	e.body.WriteString(text)
	e.body.WriteByte('\n')
}

// String materializes the output: the preamble region verbatim, then the
// body region verbatim. Only meaningful after a successful parse.
func (e *Emitter) String() string {
	return e.preamble.String() + e.body.String()
}
