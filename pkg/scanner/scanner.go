// Package scanner implements the single-pass lexical scanner.
//
// The scanner walks source text line by line and emits a flat token stream.
// The only state carried across a line boundary is an open block comment:
// its accumulated text and the line it opened on. A scanner value serves
// exactly one Scan call; the carry state is never reused across scans.
package scanner

import (
	"strings"
	"unicode/utf8"

	"javalex/pkg/keywords"
	"javalex/pkg/token"
)

// DefaultInvalidPrefixes are the characters that introduce an invalid
// identifier when no option overrides them.
const DefaultInvalidPrefixes = "#$@"

// Option adjusts scanner behavior.
type Option func(*scanner)

// WithInvalidPrefixes replaces the set of characters treated as invalid
// identifier prefixes. Characters that already match an earlier rule
// (operators, delimiters) keep their higher-priority classification.
func WithInvalidPrefixes(chars string) Option {
	return func(s *scanner) { s.invalid = chars }
}

type scanner struct {
	kw      keywords.Set
	invalid string
	tokens  []token.Token

	// block comment carry state
	inBlock    bool
	blockText  strings.Builder
	blockStart int
}

// Scan tokenizes source against the given keyword set. It never fails:
// lexically invalid input becomes Error-kind tokens and the scan continues
// to the end of the input. Line numbers are 1-based. Empty input yields an
// empty token sequence.
func Scan(source string, kw keywords.Set, opts ...Option) []token.Token {
	s := &scanner{kw: kw, invalid: DefaultInvalidPrefixes}
	for _, opt := range opts {
		opt(s)
	}
	return s.run(source)
}

func (s *scanner) run(source string) []token.Token {
	for i, line := range strings.Split(source, "\n") {
		lineno := i + 1
		rest := line

		if s.inBlock {
			idx := strings.Index(rest, "*/")
			if idx < 0 {
				s.blockText.WriteByte('\n')
				s.blockText.WriteString(rest)
				continue
			}
			s.blockText.WriteByte('\n')
			s.blockText.WriteString(rest[:idx+2])
			s.emit(token.Comment, s.blockText.String(), s.blockStart)
			s.inBlock = false
			s.blockText.Reset()
			// The rest of this line is ordinary code on the same line number.
			rest = rest[idx+2:]
		}

		s.scanLine(rest, lineno)
	}

	// EOF with an open block comment: treat end of input as an implicit
	// terminator and flush, so no input bytes are silently dropped.
	if s.inBlock {
		s.emit(token.Comment, s.blockText.String(), s.blockStart)
		s.inBlock = false
		s.blockText.Reset()
	}

	return s.tokens
}

// scanLine consumes one line (or the remainder of one after a block comment
// closed) left to right. Whitespace between lexemes produces no token.
func (s *scanner) scanLine(line string, lineno int) {
	pos := 0
	for pos < len(line) {
		ch := line[pos]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			pos++
			continue
		}

		rest := line[pos:]

		if strings.HasPrefix(rest, "/*") {
			if idx := strings.Index(rest[2:], "*/"); idx >= 0 {
				end := 2 + idx + 2
				s.emit(token.Comment, rest[:end], lineno)
				pos += end
				continue
			}
			// No terminator on this line: carry into block state and let the
			// following lines accumulate onto it.
			s.inBlock = true
			s.blockStart = lineno
			s.blockText.Reset()
			s.blockText.WriteString(rest)
			return
		}

		if strings.HasPrefix(rest, "//") {
			s.emit(token.Comment, rest, lineno)
			return
		}

		kind, n := s.match(rest)
		s.emit(kind, rest[:n], lineno)
		pos += n
	}
}

// match runs the matcher pipeline and falls back to consuming a single
// character as an Error token, which guarantees forward progress on any
// input.
func (s *scanner) match(rest string) (token.Kind, int) {
	for _, m := range matchers {
		if kind, n, ok := m(rest, s.kw, s.invalid); ok {
			return kind, n
		}
	}
	_, size := utf8.DecodeRuneInString(rest)
	return token.Error, size
}

func (s *scanner) emit(kind token.Kind, lexeme string, line int) {
	s.tokens = append(s.tokens, token.Token{Kind: kind, Lexeme: lexeme, Line: line})
}
