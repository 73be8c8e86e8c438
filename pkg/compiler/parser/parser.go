// Package parser drives the whole compilation: it pulls tokens from the
// scanner, validates the grammar and the variable/label rules, and pushes
// generated C into the emitter in a single pass. There is no syntax tree.
package parser

import (
	"fmt"

	"github.com/agenthands/cosmosc/pkg/compiler/emitter"
	"github.com/agenthands/cosmosc/pkg/compiler/lexer"
)

type Parser struct {
	scanner *lexer.Scanner
	emitter *emitter.Emitter

	curTok  lexer.Token
	peekTok lexer.Token

	symbols        map[string]bool // variables declared so far
	labelsDeclared map[string]bool
	labelsGotoed   map[string]bool
}

// New creates a parser over s emitting into e. It primes the two-token
// window, so lexical errors in the first two tokens surface here.
func New(s *lexer.Scanner, e *emitter.Emitter) (*Parser, error) {
	p := &Parser{
		scanner:        s,
		emitter:        e,
		symbols:        make(map[string]bool),
		labelsDeclared: make(map[string]bool),
		labelsGotoed:   make(map[string]bool),
	}
	// Advance twice so curTok and peekTok are both set.
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) nextToken() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.curTok = p.peekTok
	p.peekTok = tok
	return nil
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.curTok.Kind == kind
}

// match consumes the current token if it has the required kind, and fails
// the compilation otherwise.
func (p *Parser) match(kind lexer.Kind) error {
	if !p.check(kind) {
		return p.errorf("expected %s, got %s", kind, p.curTok.Kind)
	}
	return p.nextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("parse error on line %d: %s", p.curTok.Line, fmt.Sprintf(format, args...))
}

// Program is the single entry point. It drains the token stream, emits the
// complete C program, and returns the first error encountered, if any.
// The emitter's contents are meaningless unless Program returns nil.
//
// program := { statement }
func (p *Parser) Program() error {
	p.emitter.Preamble("#include <stdio.h>")
	p.emitter.Line("int main(void){")

	// Some newlines are required by the grammar; skip leading excess.
	for p.check(lexer.KindNewline) {
		if err := p.nextToken(); err != nil {
			return err
		}
	}

	for !p.check(lexer.KindEOF) {
		if err := p.statement(); err != nil {
			return err
		}
	}

	p.emitter.Line("return 0;")
	p.emitter.Line("}")

	// GOTO targets may be declared anywhere in the program, so existence
	// is only checkable now.
	for label := range p.labelsGotoed {
		if !p.labelsDeclared[label] {
			return fmt.Errorf("attempting to go to undeclared label: %s", label)
		}
	}
	return nil
}

func (p *Parser) statement() error {
	switch p.curTok.Kind {

	// PRINT (STRING | expression)
	case lexer.KindPrint:
		if err := p.nextToken(); err != nil {
			return err
		}
		if p.check(lexer.KindString) {
			p.emitter.Line(`printf("` + p.curTok.Text + `\n");`)
			if err := p.nextToken(); err != nil {
				return err
			}
		} else {
			p.emitter.Emit(`printf("%.2f\n", (float)(`)
			if err := p.expression(); err != nil {
				return err
			}
			p.emitter.Line("));")
		}

	// IF comparison THEN nl { statement } ENDIF
	case lexer.KindIf:
		if err := p.nextToken(); err != nil {
			return err
		}
		p.emitter.Emit("if(")
		if err := p.comparison(); err != nil {
			return err
		}
		if err := p.match(lexer.KindThen); err != nil {
			return err
		}
		if err := p.nl(); err != nil {
			return err
		}
		p.emitter.Line("){")
		for !p.check(lexer.KindEndif) && !p.check(lexer.KindEOF) {
			if err := p.statement(); err != nil {
				return err
			}
		}
		if err := p.match(lexer.KindEndif); err != nil {
			return err
		}
		p.emitter.Line("}")

	// WHILE comparison REPEAT nl { statement } ENDWHILE
	case lexer.KindWhile:
		if err := p.nextToken(); err != nil {
			return err
		}
		p.emitter.Emit("while(")
		if err := p.comparison(); err != nil {
			return err
		}
		if err := p.match(lexer.KindRepeat); err != nil {
			return err
		}
		if err := p.nl(); err != nil {
			return err
		}
		p.emitter.Line("){")
		for !p.check(lexer.KindEndwhile) && !p.check(lexer.KindEOF) {
			if err := p.statement(); err != nil {
				return err
			}
		}
		if err := p.match(lexer.KindEndwhile); err != nil {
			return err
		}
		p.emitter.Line("}")

	// LABEL ident
	case lexer.KindLabel:
		if err := p.nextToken(); err != nil {
			return err
		}
		if p.labelsDeclared[p.curTok.Text] {
			return p.errorf("label already exists: %s", p.curTok.Text)
		}
		p.labelsDeclared[p.curTok.Text] = true
		p.emitter.Line(p.curTok.Text + ":")
		if err := p.match(lexer.KindIdent); err != nil {
			return err
		}

	// GOTO ident
	case lexer.KindGoto:
		if err := p.nextToken(); err != nil {
			return err
		}
		// Forward references are legal; existence is checked in Program.
		p.labelsGotoed[p.curTok.Text] = true
		p.emitter.Line("goto " + p.curTok.Text + ";")
		if err := p.match(lexer.KindIdent); err != nil {
			return err
		}

	// LET ident = expression
	case lexer.KindLet:
		if err := p.nextToken(); err != nil {
			return err
		}
		p.declare(p.curTok.Text)
		p.emitter.Emit(p.curTok.Text + " = ")
		if err := p.match(lexer.KindIdent); err != nil {
			return err
		}
		if err := p.match(lexer.KindEq); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		p.emitter.Line(";")

	// INPUT ident
	case lexer.KindInput:
		if err := p.nextToken(); err != nil {
			return err
		}
		name := p.curTok.Text
		p.declare(name)
		// On a failed read, zero the variable and discard the pending
		// token so the stream is not left desynchronized.
		p.emitter.Line(`if(0 == scanf("%f", &` + name + `)){`)
		p.emitter.Line(name + " = 0;")
		p.emitter.Line(`scanf("%*s");`)
		p.emitter.Line("}")
		if err := p.match(lexer.KindIdent); err != nil {
			return err
		}

	default:
		return p.errorf("invalid statement at %s (%s)", p.curTok.Text, p.curTok.Kind)
	}

	return p.nl()
}

// declare records a variable on its first LET or INPUT and emits its
// one-time declaration into the preamble.
func (p *Parser) declare(name string) {
	if !p.symbols[name] {
		p.symbols[name] = true
		p.emitter.Preamble("float " + name + ";")
	}
}

// comparison := expression comparator expression { comparator expression }
func (p *Parser) comparison() error {
	if err := p.expression(); err != nil {
		return err
	}
	// At least one comparator is required.
	if !p.isComparisonOperator() {
		return p.errorf("expected comparison operator at %s", p.curTok.Text)
	}
	for p.isComparisonOperator() {
		p.emitter.Emit(p.curTok.Text)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) isComparisonOperator() bool {
	switch p.curTok.Kind {
	case lexer.KindGt, lexer.KindGtEq, lexer.KindLt, lexer.KindLtEq,
		lexer.KindEqEq, lexer.KindNotEq:
		return true
	}
	return false
}

// expression := term { ("+" | "-") term }
func (p *Parser) expression() error {
	if err := p.term(); err != nil {
		return err
	}
	for p.check(lexer.KindPlus) || p.check(lexer.KindMinus) {
		p.emitter.Emit(p.curTok.Text)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term := unary { ("*" | "/") unary }
func (p *Parser) term() error {
	if err := p.unary(); err != nil {
		return err
	}
	for p.check(lexer.KindAsterisk) || p.check(lexer.KindSlash) {
		p.emitter.Emit(p.curTok.Text)
		if err := p.nextToken(); err != nil {
			return err
		}
		if err := p.unary(); err != nil {
			return err
		}
	}
	return nil
}

// unary := ["+" | "-"] primary
func (p *Parser) unary() error {
	if p.check(lexer.KindPlus) || p.check(lexer.KindMinus) {
		p.emitter.Emit(p.curTok.Text)
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return p.primary()
}

// primary := NUMBER | IDENT
func (p *Parser) primary() error {
	switch p.curTok.Kind {
	case lexer.KindNumber:
		p.emitter.Emit(p.curTok.Text)
		return p.nextToken()
	case lexer.KindIdent:
		// Variables must be declared before use; labels are exempt.
		if !p.symbols[p.curTok.Text] {
			return p.errorf("referencing variable before assignment: %s", p.curTok.Text)
		}
		p.emitter.Emit(p.curTok.Text)
		return p.nextToken()
	default:
		return p.errorf("unexpected token at %s", p.curTok.Text)
	}
}

// nl := '\n'+
func (p *Parser) nl() error {
	if err := p.match(lexer.KindNewline); err != nil {
		return err
	}
	for p.check(lexer.KindNewline) {
		if err := p.nextToken(); err != nil {
			return err
		}
	}
	return nil
}
