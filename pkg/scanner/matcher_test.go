package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"javalex/pkg/keywords"
	"javalex/pkg/token"
)

// The pipeline has exactly nine rules: the eight matchers below plus the
// single-character fallback inside scanner.match.
func TestMatcherPipelineLength(t *testing.T) {
	assert.Len(t, matchers, 8)
}

// Multi-character operators must come before any operator that is their
// prefix, or longest-match breaks silently.
func TestOperatorTableLongestFirst(t *testing.T) {
	for i, long := range operators {
		for j, short := range operators {
			if j >= i {
				break
			}
			if short != long && strings.HasPrefix(long, short) {
				t.Errorf("operator %q listed before %q, longest-first order violated", short, long)
			}
		}
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		name string
		rest string
		n    int
		ok   bool
	}{
		{"terminated", `"ab" x`, 4, true},
		{"empty", `"" x`, 2, true},
		{"escaped_quote", `"a\"b" x`, 6, true},
		{"escape_then_close", `"a\\" x`, 5, true},
		{"unterminated", `"ab`, 0, false},
		{"trailing_backslash", `"ab\`, 0, false},
		{"not_a_string", `ab"`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, n, ok := matchString(tt.rest, nil, "")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, token.Literal, kind)
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

func TestMatchNumber(t *testing.T) {
	tests := []struct {
		name string
		rest string
		n    int
		ok   bool
	}{
		{"integer", "42;", 2, true},
		{"fraction", "3.14;", 4, true},
		{"stops_before_bare_dot", "3.x", 1, true},
		{"stops_at_second_dot", "3.14.15", 4, true},
		{"no_leading_dot", ".5", 0, false},
		{"no_sign", "-5", 0, false},
		{"not_a_number", "x5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, n, ok := matchNumber(tt.rest, nil, "")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, token.Literal, kind)
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

func TestMatchOperator(t *testing.T) {
	tests := []struct {
		rest string
		n    int
		ok   bool
	}{
		{"==x", 2, true},
		{"=x", 1, true},
		{"&&", 2, true},
		{"&", 0, false}, // not in the table; becomes a fallback Error
		{"|x", 0, false},
		{"<= 1", 2, true},
		{"!true", 1, true},
		{"x", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			kind, n, ok := matchOperator(tt.rest, nil, "")
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, token.Operator, kind)
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

func TestMatchKeywordAndIdentifier(t *testing.T) {
	kw := keywords.New("if", "while")

	kind, n, ok := matchKeyword("if(x)", kw, "")
	require.True(t, ok)
	assert.Equal(t, token.Keyword, kind)
	assert.Equal(t, 2, n)

	// "iffy" is not "if": the maximal run is checked, not a prefix.
	_, _, ok = matchKeyword("iffy", kw, "")
	assert.False(t, ok)

	kind, n, ok = matchIdentifier("iffy+1", kw, "")
	require.True(t, ok)
	assert.Equal(t, token.Identifier, kind)
	assert.Equal(t, 4, n)

	_, _, ok = matchIdentifier("1abc", kw, "")
	assert.False(t, ok)

	kind, n, ok = matchIdentifier("_x9 y", kw, "")
	require.True(t, ok)
	assert.Equal(t, token.Identifier, kind)
	assert.Equal(t, 3, n)
}

func TestMatchUnterminatedString(t *testing.T) {
	kind, n, ok := matchUnterminatedString(`"abc def`, nil, "")
	require.True(t, ok)
	assert.Equal(t, token.Error, kind)
	assert.Equal(t, 8, n)

	_, _, ok = matchUnterminatedString("abc", nil, "")
	assert.False(t, ok)
}

func TestMatchInvalidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		rest string
		n    int
		ok   bool
	}{
		{"hash_word", "#foo;", 4, true},
		{"at_word", "@x", 2, true},
		{"dollar_run", "$a_1+", 4, true},
		{"lone_prefix_falls_through", "#;", 0, false},
		{"not_in_set", "%foo", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, n, ok := matchInvalidIdentifier(tt.rest, nil, DefaultInvalidPrefixes)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, token.Error, kind)
				assert.Equal(t, tt.n, n)
			}
		})
	}
}

// Priority probes: when several rules could claim the same prefix, the
// pipeline order decides.
func TestPipelinePriorities(t *testing.T) {
	kw := keywords.New("int")

	tests := []struct {
		name  string
		input string
		kind  token.Kind
		lex   string
	}{
		{"terminated_string_beats_error", `"ok"`, token.Literal, `"ok"`},
		{"unterminated_string_is_error", `"nope`, token.Error, `"nope`},
		{"keyword_beats_identifier", "int", token.Keyword, "int"},
		{"number_beats_delimiter_dot", "1.5", token.Literal, "1.5"},
		{"operator_beats_invalid_prefix", "%", token.Operator, "%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Scan(tt.input, kw)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tt.kind, tokens[0].Kind)
			assert.Equal(t, tt.lex, tokens[0].Lexeme)
		})
	}
}
