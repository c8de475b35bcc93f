package scanner

import (
	"strings"

	"javalex/pkg/keywords"
	"javalex/pkg/token"
)

// matchFunc is one recognition rule. It inspects the unconsumed remainder of
// a line (never empty) and, on success, returns the classification and the
// number of bytes consumed. Matchers are pure: no I/O, no shared state.
type matchFunc func(rest string, kw keywords.Set, invalid string) (token.Kind, int, bool)

// matchers is the fixed priority order; first success wins. The order is a
// correctness invariant, not an implementation detail: terminated strings
// must beat unterminated ones, keywords must beat identifiers, and operators
// must beat the invalid-prefix rule (which is why '%' can never start an
// invalid identifier).
var matchers = []matchFunc{
	matchString,
	matchNumber,
	matchOperator,
	matchDelimiter,
	matchKeyword,
	matchIdentifier,
	matchUnterminatedString,
	matchInvalidIdentifier,
}

// operators must stay sorted longest first so "==" is never split into two
// "=" tokens.
var operators = []string{
	"==", "!=", "<=", ">=", "&&", "||",
	"+", "-", "*", "/", "%", "=", "<", ">", "!",
}

const delimiters = "(){}[];,."

// matchString recognizes a complete double-quoted literal on this line.
// Backslash escapes are honored when locating the closing quote; the lexeme
// is the raw text including both quotes.
func matchString(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	if rest[0] != '"' {
		return 0, 0, false
	}
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++ // the escaped character cannot close the literal
		case '"':
			return token.Literal, i + 1, true
		}
	}
	return 0, 0, false // no closing quote on this line
}

// matchNumber recognizes an unsigned decimal integer or simple fraction.
// No exponents, no hex, no leading sign; "3." stops before the dot.
func matchNumber(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	n := digitRun(rest)
	if n == 0 {
		return 0, 0, false
	}
	if n < len(rest) && rest[n] == '.' {
		if frac := digitRun(rest[n+1:]); frac > 0 {
			n += 1 + frac
		}
	}
	return token.Literal, n, true
}

func matchOperator(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return token.Operator, len(op), true
		}
	}
	return 0, 0, false
}

func matchDelimiter(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	if strings.IndexByte(delimiters, rest[0]) >= 0 {
		return token.Delimiter, 1, true
	}
	return 0, 0, false
}

// matchKeyword recognizes a whole identifier-shaped word that is a member of
// the keyword set. Matching the maximal run first is what keeps "intx" an
// identifier rather than "int" followed by "x".
func matchKeyword(rest string, kw keywords.Set, _ string) (token.Kind, int, bool) {
	n := wordRun(rest)
	if n == 0 || !kw.Contains(rest[:n]) {
		return 0, 0, false
	}
	return token.Keyword, n, true
}

func matchIdentifier(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	n := wordRun(rest)
	if n == 0 {
		return 0, 0, false
	}
	return token.Identifier, n, true
}

// matchUnterminatedString claims an opening quote that matchString refused:
// the rest of the line, quote included, becomes one Error token.
func matchUnterminatedString(rest string, _ keywords.Set, _ string) (token.Kind, int, bool) {
	if rest[0] != '"' {
		return 0, 0, false
	}
	return token.Error, len(rest), true
}

// matchInvalidIdentifier recognizes an identifier-shaped run introduced by a
// disallowed leading character, e.g. "#foo". A lone prefix character with no
// run behind it falls through to the single-character fallback instead.
func matchInvalidIdentifier(rest string, _ keywords.Set, invalid string) (token.Kind, int, bool) {
	if strings.IndexByte(invalid, rest[0]) < 0 {
		return 0, 0, false
	}
	n := identRun(rest[1:])
	if n == 0 {
		return 0, 0, false
	}
	return token.Error, 1 + n, true
}

func digitRun(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// wordRun returns the length of the maximal identifier-shaped run at the
// start of s: letter or underscore, then letters, digits, and underscores.
func wordRun(s string) int {
	if !isIdentStart(s[0]) {
		return 0
	}
	return 1 + identRun(s[1:])
}

func identRun(s string) int {
	i := 0
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
