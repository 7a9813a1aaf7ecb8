package syntax

import (
	"testing"

	"github.com/ortegagingrich/automata/automata"
	"github.com/stretchr/testify/require"
)

func compileAndTest(t *testing.T, pattern, input string) bool {
	t.Helper()
	nfa, err := CompilePattern(pattern)
	require.NoError(t, err)

	dfa, err := automata.Determinize(nfa)
	require.NoError(t, err)

	ok, err := dfa.Test([]byte(input))
	require.NoError(t, err)
	return ok
}

func TestTokenizeInsertsImplicitConcat(t *testing.T) {
	tokens, err := Tokenize("ab")
	require.NoError(t, err)
	require.Equal(t, []TokenKind{TokSymbol, TokConcat, TokSymbol, TokEOF}, kinds(tokens))
}

func TestTokenizeRejectsUnknownByte(t *testing.T) {
	_, err := Tokenize("a$b")
	require.ErrorIs(t, err, ErrUnexpectedByte)
}

func TestTokenizeEscapesMetacharacters(t *testing.T) {
	tokens, err := Tokenize(`a\|b`)
	require.NoError(t, err)
	require.Equal(t, []TokenKind{TokSymbol, TokConcat, TokSymbol, TokConcat, TokSymbol, TokEOF}, kinds(tokens))
}

func TestParseAndCompileConcatenation(t *testing.T) {
	require.True(t, compileAndTest(t, "ab", "ab"))
	require.False(t, compileAndTest(t, "ab", "a"))
}

func TestParseAndCompileUnion(t *testing.T) {
	require.True(t, compileAndTest(t, "a|b", "a"))
	require.True(t, compileAndTest(t, "a|b", "b"))
	require.False(t, compileAndTest(t, "a|b", "c"))
}

func TestParseAndCompileStar(t *testing.T) {
	require.True(t, compileAndTest(t, "a*", ""))
	require.True(t, compileAndTest(t, "a*", "aaaa"))
	require.False(t, compileAndTest(t, "a*", "aab"))
}

func TestParseAndCompileGrouping(t *testing.T) {
	require.True(t, compileAndTest(t, "(a|b)*c", "ababc"))
	require.False(t, compileAndTest(t, "(a|b)*c", "abab"))
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	_, err := CompilePattern("(a|b")
	require.ErrorIs(t, err, ErrUnexpectedToken)
}

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}
