// Package syntax is a small regular-expression front end sitting on top of
// package automata: a tokenizer and recursive-descent parser producing an
// AST, and a compiler translating that AST into the Thompson construction
// (automata.Atom/Alternation/Concatenation/Iteration). None of this is part
// of the automaton's own contract -- it is an external collaborator, the way
// a shell or script would drive the library from outside.
package syntax

import "github.com/pkg/errors"

// TokenKind distinguishes the lexical categories this package recognizes.
type TokenKind int

const (
	// TokSymbol is any literal byte to match.
	TokSymbol TokenKind = iota
	// TokUnion is the alternation operator '|'.
	TokUnion
	// TokConcat is an implicit concatenation, inserted between adjacent
	// symbols/groups that carry no explicit operator between them.
	TokConcat
	// TokStar is the iteration operator '*'.
	TokStar
	// TokLParen and TokRParen group subexpressions.
	TokLParen
	TokRParen
	// TokEOF marks the end of input.
	TokEOF
)

// Token is a single lexical unit: its kind, and the byte it carries (for
// TokSymbol; zero otherwise).
type Token struct {
	Kind  TokenKind
	Value byte
}

// ErrUnexpectedByte is reported by Tokenize when it encounters an unescaped
// reserved metacharacter or a trailing backslash.
var ErrUnexpectedByte = errors.New("syntax: unexpected byte in pattern")

func isMeta(c byte) bool {
	switch c {
	case '|', '*', '(', ')', '\\':
		return true
	case '^', '$', '.', '+', '?', '[', ']', '{', '}':
		// Reserved: regular-expression operators this syntax does not support.
		return true
	default:
		return false
	}
}

func lastIsOperand(tokens []Token) bool {
	if len(tokens) == 0 {
		return false
	}
	switch tokens[len(tokens)-1].Kind {
	case TokSymbol, TokStar, TokRParen:
		return true
	default:
		return false
	}
}

// Tokenize converts a pattern string into a token stream, inserting an
// explicit TokConcat wherever two operands are adjacent without an
// intervening operator -- mirroring how Toasa-regexp's tokenizer makes
// concatenation explicit before parsing, since the grammar below has no
// other way to represent "next to" as a binary operator.
//
// A backslash escapes the following byte, treating it as a literal symbol
// even if it would otherwise be a metacharacter. An unescaped reserved
// metacharacter (^ $ . + ? [ ] { }) is rejected with ErrUnexpectedByte.
func Tokenize(pattern string) ([]Token, error) {
	var tokens []Token
	escaped := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if escaped {
			if lastIsOperand(tokens) {
				tokens = append(tokens, Token{Kind: TokConcat})
			}
			tokens = append(tokens, Token{Kind: TokSymbol, Value: c})
			escaped = false
			continue
		}

		switch {
		case c == '\\':
			escaped = true
		case c == '|':
			tokens = append(tokens, Token{Kind: TokUnion})
		case c == '*':
			tokens = append(tokens, Token{Kind: TokStar})
		case c == '(':
			if lastIsOperand(tokens) {
				tokens = append(tokens, Token{Kind: TokConcat})
			}
			tokens = append(tokens, Token{Kind: TokLParen})
		case c == ')':
			tokens = append(tokens, Token{Kind: TokRParen})
		case !isMeta(c):
			if lastIsOperand(tokens) {
				tokens = append(tokens, Token{Kind: TokConcat})
			}
			tokens = append(tokens, Token{Kind: TokSymbol, Value: c})
		default:
			return nil, errors.Wrapf(ErrUnexpectedByte, "byte %q at offset %d", c, i)
		}
	}

	if escaped {
		return nil, errors.Wrap(ErrUnexpectedByte, "trailing backslash")
	}

	tokens = append(tokens, Token{Kind: TokEOF})
	return tokens, nil
}
