package syntax

import "github.com/ortegagingrich/automata/automata"

// Compile walks a pattern AST and builds the equivalent NFA using the
// Thompson constructors in package automata.
func Compile(n Node) *automata.Automaton {
	switch node := n.(type) {
	case *Symbol:
		return automata.Atom(node.Value)
	case *Union:
		return automata.Alternation(Compile(node.Left), Compile(node.Right))
	case *Concat:
		return automata.Concatenation(Compile(node.Left), Compile(node.Right))
	case *Star:
		return automata.Iteration(Compile(node.Operand))
	default:
		panic("syntax: unknown node type")
	}
}

// CompilePattern tokenizes, parses, and compiles a pattern string into an
// NFA in one step.
func CompilePattern(pattern string) (*automata.Automaton, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	ast, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	return Compile(ast), nil
}
