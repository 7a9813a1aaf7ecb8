package automata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// accepts compiles nfa to a DFA and tests s against it, failing the test if
// determinization or execution reports an error.
func accepts(t *testing.T, nfa *Automaton, s string) bool {
	t.Helper()
	dfa, err := Determinize(nfa)
	require.NoError(t, err)
	require.NotNil(t, dfa)
	require.True(t, dfa.IsDeterministic())

	ok, err := dfa.Test([]byte(s))
	require.NoError(t, err)
	return ok
}

func TestAtomAcceptsExactlyOneByte(t *testing.T) {
	a := Atom('a')

	require.True(t, accepts(t, a, "a"))
	require.False(t, accepts(t, a, ""))
	require.False(t, accepts(t, a, "b"))
	require.False(t, accepts(t, a, "aa"))
}

func TestConcatenation(t *testing.T) {
	ab := Concatenation(Atom('a'), Atom('b'))

	require.True(t, accepts(t, ab, "ab"))
	require.False(t, accepts(t, ab, ""))
	require.False(t, accepts(t, ab, "a"))
	require.False(t, accepts(t, ab, "ba"))
	require.False(t, accepts(t, ab, "abb"))
}

func TestAlternation(t *testing.T) {
	aOrB := Alternation(Atom('a'), Atom('b'))

	require.True(t, accepts(t, aOrB, "a"))
	require.True(t, accepts(t, aOrB, "b"))
	require.False(t, accepts(t, aOrB, ""))
	require.False(t, accepts(t, aOrB, "ab"))
	require.False(t, accepts(t, aOrB, "c"))
}

func TestIteration(t *testing.T) {
	aStar := Iteration(Atom('a'))

	require.True(t, accepts(t, aStar, ""))
	require.True(t, accepts(t, aStar, "a"))
	require.True(t, accepts(t, aStar, "aa"))
	require.True(t, accepts(t, aStar, "aaaaaa"))
	require.False(t, accepts(t, aStar, "b"))
	require.False(t, accepts(t, aStar, "ab"))
}

func TestAlternationIdentityShortcut(t *testing.T) {
	x := Atom('x')

	same := Alternation(x, x)
	require.True(t, accepts(t, same, "x"))

	distinct := Alternation(Atom('x'), Atom('x'))
	require.True(t, accepts(t, distinct, "x"))
}

func TestAlternationCommutativityAndAssociativity(t *testing.T) {
	a, b, c := Atom('a'), Atom('b'), Atom('c')

	ab := Alternation(a, b)
	ba := Alternation(b, a)
	for _, s := range []string{"a", "b", "c", "", "ab"} {
		require.Equal(t, accepts(t, ab, s), accepts(t, ba, s), "input %q", s)
	}

	left := Alternation(Alternation(a, b), c)
	right := Alternation(a, Alternation(b, c))
	for _, s := range []string{"a", "b", "c", "", "ab"} {
		require.Equal(t, accepts(t, left, s), accepts(t, right, s), "input %q", s)
	}
}

func TestConcatenationAssociativity(t *testing.T) {
	a, b, c := Atom('a'), Atom('b'), Atom('c')

	left := Concatenation(Concatenation(a, b), c)
	right := Concatenation(a, Concatenation(b, c))

	for _, s := range []string{"abc", "ab", "bc", "", "abcc"} {
		require.Equal(t, accepts(t, left, s), accepts(t, right, s), "input %q", s)
	}
}

func TestIterationIdempotence(t *testing.T) {
	a := Atom('a')

	once := Iteration(a)
	twice := Iteration(Iteration(a))

	for _, s := range []string{"", "a", "aa", "aaaaa", "b", "ab"} {
		require.Equal(t, accepts(t, once, s), accepts(t, twice, s), "input %q", s)
	}
}

func TestCopyIsIndependentAndLanguagePreserving(t *testing.T) {
	original := Concatenation(Atom('a'), Iteration(Atom('b')))
	clone := original.Copy()

	require.Equal(t, len(original.Nodes), len(clone.Nodes))
	require.Equal(t, original.Start, clone.Start)

	for _, s := range []string{"a", "abbb", "ab", ""} {
		require.Equal(t, accepts(t, original, s), accepts(t, clone, s), "input %q", s)
	}

	// Mutating the clone must not perturb the original.
	clone.Nodes[0].Accept = !clone.Nodes[0].Accept
	require.NotEqual(t, original.Nodes[0].Accept, clone.Nodes[0].Accept)
}

func TestDeterminizeLanguagePreservedThroughConcatenationAndAlternation(t *testing.T) {
	nfa := Concatenation(Atom('a'), Alternation(Atom('b'), Atom('c')))
	dfa, err := Determinize(nfa)
	require.NoError(t, err)
	require.True(t, dfa.IsDeterministic())

	for s, want := range map[string]bool{
		"ab": true, "ac": true, "a": false, "abc": false, "": false,
	} {
		ok, err := dfa.Test([]byte(s))
		require.NoError(t, err)
		require.Equal(t, want, ok, "input %q", s)
	}
}
