package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxtools/loxscan/token"
)

func TestTokenStrings(t *testing.T) {
	t.Parallel()

	tok := token.NewToken(token.NUMBER, "12.34", 12.34, 7)
	assert.Equal(t, "NUMBER 12.34 12.34", tok.String())
	assert.Equal(t, `{Type: NUMBER, Lexeme: "12.34", Literal: 12.34, Line: 7}`, tok.GoString())

	eof := token.NewToken(token.EOF, "", nil, 1)
	assert.Equal(t, `{Type: EOF, Lexeme: "", Literal: <nil>, Line: 1}`, eof.GoString())
}

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	tokenType, ok := token.LookupKeyword("for")
	assert.True(t, ok)
	assert.Equal(t, token.FOR, tokenType)

	// Whole-lexeme and case-sensitive only.
	_, ok = token.LookupKeyword("forest")
	assert.False(t, ok)
	_, ok = token.LookupKeyword("For")
	assert.False(t, ok)
	_, ok = token.LookupKeyword("")
	assert.False(t, ok)
}
