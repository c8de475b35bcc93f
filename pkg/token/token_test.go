package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Keyword, "Keyword"},
		{Identifier, "Identifier"},
		{Operator, "Operator"},
		{Literal, "Literal"},
		{Delimiter, "Delimiter"},
		{Comment, "Comment"},
		{Error, "Error"},
		{Kind(42), "Kind(42)"},
		{Kind(-1), "Kind(-1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{
			name: "keyword",
			tok:  Token{Kind: Keyword, Lexeme: "int", Line: 3},
			want: `3: [Keyword] "int"`,
		},
		{
			name: "string_literal_keeps_quotes",
			tok:  Token{Kind: Literal, Lexeme: `"hi"`, Line: 1},
			want: `1: [Literal] "\"hi\""`,
		},
		{
			name: "multiline_comment_escapes_newline",
			tok:  Token{Kind: Comment, Lexeme: "/* a\nb */", Line: 7},
			want: `7: [Comment] "/* a\nb */"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestIsError(t *testing.T) {
	assert.True(t, Token{Kind: Error, Lexeme: "#x", Line: 1}.IsError())
	assert.False(t, Token{Kind: Identifier, Lexeme: "x", Line: 1}.IsError())
}
