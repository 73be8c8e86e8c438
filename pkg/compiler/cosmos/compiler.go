// Package cosmos wires the scanner, parser and emitter into a one-call
// compilation front end for Cosmos source.
package cosmos

import (
	"github.com/agenthands/cosmosc/pkg/compiler/emitter"
	"github.com/agenthands/cosmosc/pkg/compiler/lexer"
	"github.com/agenthands/cosmosc/pkg/compiler/parser"
)

// Version is the compiler release reported by the CLI.
const Version = "0.1.0"

// Compile translates Cosmos source into C source in a single pass.
// On error the returned text is empty and must be discarded; compilation
// stops at the first lexical, syntax or semantic violation.
func Compile(src string) (string, error) {
	scanner := lexer.NewScanner(src)
	out := emitter.New()

	p, err := parser.New(scanner, out)
	if err != nil {
		return "", err
	}
	if err := p.Program(); err != nil {
		return "", err
	}
	return out.String(), nil
}
