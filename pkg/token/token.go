// Package token defines the lexical token model produced by the scanner.
package token

import "fmt"

// Kind classifies a lexeme. The set is closed: every character of input ends
// up in a token of exactly one of these kinds (or is skipped as whitespace).
type Kind int

const (
	Keyword Kind = iota
	Identifier
	Operator
	Literal
	Delimiter
	Comment
	Error
)

var kindNames = [...]string{
	Keyword:    "Keyword",
	Identifier: "Identifier",
	Operator:   "Operator",
	Literal:    "Literal",
	Delimiter:  "Delimiter",
	Comment:    "Comment",
	Error:      "Error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is an immutable classified lexeme tagged with the 1-based line it
// started on. Lexeme is the exact source text consumed, including quote
// characters and comment delimiters; a block comment spanning several lines
// keeps its embedded newlines and reports the line it opened on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// String renders the canonical reporting form: <line>: [<kind>] "<lexeme>".
func (t Token) String() string {
	return fmt.Sprintf("%d: [%s] %q", t.Line, t.Kind, t.Lexeme)
}

// IsError reports whether the token records a lexical error.
func (t Token) IsError() bool {
	return t.Kind == Error
}
