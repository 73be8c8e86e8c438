package lexer

// Kind represents the type of token produced by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNewline
	KindNumber
	KindIdent
	KindString

	// Keywords
	KindLabel
	KindGoto
	KindPrint
	KindInput
	KindLet
	KindIf
	KindThen
	KindEndif
	KindWhile
	KindRepeat
	KindEndwhile

	// Operators
	KindEq
	KindPlus
	KindMinus
	KindAsterisk
	KindSlash
	KindEqEq
	KindNotEq
	KindLt
	KindLtEq
	KindGt
	KindGtEq
)

var kindNames = map[Kind]string{
	KindEOF:      "EOF",
	KindNewline:  "NEWLINE",
	KindNumber:   "NUMBER",
	KindIdent:    "IDENT",
	KindString:   "STRING",
	KindLabel:    "LABEL",
	KindGoto:     "GOTO",
	KindPrint:    "PRINT",
	KindInput:    "INPUT",
	KindLet:      "LET",
	KindIf:       "IF",
	KindThen:     "THEN",
	KindEndif:    "ENDIF",
	KindWhile:    "WHILE",
	KindRepeat:   "REPEAT",
	KindEndwhile: "ENDWHILE",
	KindEq:       "=",
	KindPlus:     "+",
	KindMinus:    "-",
	KindAsterisk: "*",
	KindSlash:    "/",
	KindEqEq:     "==",
	KindNotEq:    "!=",
	KindLt:       "<",
	KindLtEq:     "<=",
	KindGt:       ">",
	KindGtEq:     ">=",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// keywords maps the canonical spelling of each reserved word to its kind.
// Lookup is exact and case-sensitive: "print" is an identifier, not PRINT.
var keywords = map[string]Kind{
	"LABEL":    KindLabel,
	"GOTO":     KindGoto,
	"PRINT":    KindPrint,
	"INPUT":    KindInput,
	"LET":      KindLet,
	"IF":       KindIf,
	"THEN":     KindThen,
	"ENDIF":    KindEndif,
	"WHILE":    KindWhile,
	"REPEAT":   KindRepeat,
	"ENDWHILE": KindEndwhile,
}

// LookupKeyword returns the keyword kind whose spelling equals text.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// Token is a lexical unit: the exact source substring and its kind.
// Tokens are immutable once produced.
type Token struct {
	Text string
	Kind Kind
	Line int
}
