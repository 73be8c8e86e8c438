package lexer

import "fmt"

// ScanError is a fatal lexical error. Scanning never recovers from one.
type ScanError struct {
	Line int
	Msg  string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("lexing error on line %d: %s", e.Line, e.Msg)
}

// Scanner performs lexical analysis on Cosmos source, producing one token
// per call to Next. The source is terminated with an appended newline so
// the final statement is always closed.
type Scanner struct {
	source string
	cursor int
	ch     byte // current character, 0 once past the end
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	s := &Scanner{
		source: source + "\n",
		cursor: -1,
		line:   1,
	}
	s.advance()
	return s
}

func (s *Scanner) advance() {
	if s.ch == '\n' {
		s.line++
	}
	s.cursor++
	if s.cursor >= len(s.source) {
		s.ch = 0
		return
	}
	s.ch = s.source[s.cursor]
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func (s *Scanner) errorf(format string, args ...interface{}) error {
	return &ScanError{Line: s.line, Msg: fmt.Sprintf(format, args...)}
}

// Next returns the next token from the source. After the first error or
// the EOF token, further calls are undefined.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()
	s.skipComment()

	var tok Token
	tok.Line = s.line

	switch {
	case s.ch == '+':
		tok.Text, tok.Kind = "+", KindPlus
	case s.ch == '-':
		tok.Text, tok.Kind = "-", KindMinus
	case s.ch == '*':
		tok.Text, tok.Kind = "*", KindAsterisk
	case s.ch == '/':
		tok.Text, tok.Kind = "/", KindSlash
	case s.ch == '\n':
		tok.Text, tok.Kind = "\n", KindNewline
	case s.ch == '=':
		if s.peek() == '=' {
			s.advance()
			tok.Text, tok.Kind = "==", KindEqEq
		} else {
			tok.Text, tok.Kind = "=", KindEq
		}
	case s.ch == '>':
		if s.peek() == '=' {
			s.advance()
			tok.Text, tok.Kind = ">=", KindGtEq
		} else {
			tok.Text, tok.Kind = ">", KindGt
		}
	case s.ch == '<':
		if s.peek() == '=' {
			s.advance()
			tok.Text, tok.Kind = "<=", KindLtEq
		} else {
			tok.Text, tok.Kind = "<", KindLt
		}
	case s.ch == '!':
		if s.peek() != '=' {
			return Token{}, s.errorf("expected !=, got !%c", s.peek())
		}
		s.advance()
		tok.Text, tok.Kind = "!=", KindNotEq
	case s.ch == '"':
		text, err := s.scanString()
		if err != nil {
			return Token{}, err
		}
		tok.Text, tok.Kind = text, KindString
	case isDigit(s.ch):
		text, err := s.scanNumber()
		if err != nil {
			return Token{}, err
		}
		tok.Text, tok.Kind = text, KindNumber
	case isAlpha(s.ch):
		tok.Text = s.scanIdentifier()
		if kw, ok := LookupKeyword(tok.Text); ok {
			tok.Kind = kw
		} else {
			tok.Kind = KindIdent
		}
	case s.ch == 0:
		tok.Kind = KindEOF
	default:
		return Token{}, s.errorf("unknown token %q", s.ch)
	}

	s.advance()
	return tok, nil
}

// skipWhitespace skips spaces, tabs and carriage returns. Newlines stay,
// they terminate statements.
func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' {
		s.advance()
	}
}

// skipComment skips a # comment up to, not including, the newline.
func (s *Scanner) skipComment() {
	if s.ch == '#' {
		for s.ch != '\n' {
			s.advance()
		}
	}
}

// scanString scans a double-quoted literal. The body is spliced verbatim
// into a C printf format string, so characters that would break that
// splice are rejected.
func (s *Scanner) scanString() (string, error) {
	s.advance()
	start := s.cursor
	for s.ch != '"' {
		switch s.ch {
		case '\r', '\t', '\\', '%':
			return "", s.errorf("illegal character in string")
		case 0:
			return "", s.errorf("unterminated string")
		}
		s.advance()
	}
	return s.source[start:s.cursor], nil
}

// scanNumber scans digits with an optional fractional part. A decimal
// point must be followed by at least one digit.
func (s *Scanner) scanNumber() (string, error) {
	start := s.cursor
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' {
		s.advance()
		if !isDigit(s.peek()) {
			return "", s.errorf("illegal character in number")
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.source[start : s.cursor+1], nil
}

func (s *Scanner) scanIdentifier() string {
	start := s.cursor
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.source[start : s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
