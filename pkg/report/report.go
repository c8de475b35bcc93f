// Package report renders finished token streams for display. It is a pure
// consumer of the scanner's output: no formatting logic lives in the core.
package report

import (
	"encoding/json"
	"strings"

	"javalex/pkg/token"
)

// Format renders every token in the canonical <line>: [<kind>] "<lexeme>"
// form, one per line. Embedded newlines in lexemes are escaped so one token
// always occupies one output line.
func Format(tokens []token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatErrors renders only Error-kind tokens in the same form.
func FormatErrors(tokens []token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.IsError() {
			sb.WriteString(t.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// HasErrors reports whether any Error-kind token exists. This is the only
// way a caller distinguishes a clean scan from an error-laden one.
func HasErrors(tokens []token.Token) bool {
	for _, t := range tokens {
		if t.IsError() {
			return true
		}
	}
	return false
}

// TokenJSON is the wire shape of one token.
type TokenJSON struct {
	Line   int    `json:"line"`
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
}

// Listing couples a scan ID with the tokens for machine output.
type Listing struct {
	ScanID string      `json:"scanId,omitempty"`
	Tokens []TokenJSON `json:"tokens"`
}

// ToJSON serializes tokens for machine consumption.
func ToJSON(scanID string, tokens []token.Token) ([]byte, error) {
	listing := Listing{
		ScanID: scanID,
		Tokens: make([]TokenJSON, len(tokens)),
	}
	for i, t := range tokens {
		listing.Tokens[i] = TokenJSON{Line: t.Line, Kind: t.Kind.String(), Lexeme: t.Lexeme}
	}
	return json.Marshal(listing)
}

// Summary counts tokens by kind.
type Summary struct {
	ScanID string         `json:"scanId,omitempty"`
	Total  int            `json:"total"`
	ByKind map[string]int `json:"byKind"`
	Errors int            `json:"errors"`
}

// Summarize tallies the token stream.
func Summarize(scanID string, tokens []token.Token) Summary {
	summary := Summary{
		ScanID: scanID,
		Total:  len(tokens),
		ByKind: make(map[string]int),
	}
	for _, t := range tokens {
		summary.ByKind[t.Kind.String()]++
		if t.IsError() {
			summary.Errors++
		}
	}
	return summary
}
