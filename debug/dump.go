// Package debug prints automata in a human-readable form for inspection
// during development. Nothing in this package is part of the automata
// package's contract; it exists purely as an observational aid, the same
// role print_automaton plays in the source this module was adapted from.
package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/ortegagingrich/automata/automata"
)

// separator writes a line of 80 copies of c, mirroring the source's
// print_separator_line.
func separator(w io.Writer, c byte) {
	fmt.Fprintln(w, strings.Repeat(string(c), 80))
}

// Dump writes a table describing every node and transition of a to w: its
// determinism, node count, and per-node accept flag and outgoing edges.
func Dump(w io.Writer, a *automata.Automaton) {
	if a == nil {
		fmt.Fprintln(w, "<nil automaton>")
		return
	}

	kind := "Nondeterministic"
	if a.IsDeterministic() {
		kind = "Deterministic"
	}
	fmt.Fprintf(w, "Finite Automaton (%s) of size %d:\n", kind, a.NumNodes())
	separator(w, '-')

	for i := 0; i < a.NumNodes(); i++ {
		node := a.Node(i)
		accept := "N"
		if node.Accept {
			accept = "Y"
		}
		fmt.Fprintf(w, "|Node: %2d|Accept: %s|Transitions: %2d", node.ID, accept, len(node.Transitions))
		for _, t := range node.Transitions {
			if t.Kind == automata.Epsilon {
				fmt.Fprintf(w, " <eps,%2d>", t.To)
			} else {
				fmt.Fprintf(w, " <%q,%2d>", t.Byte, t.To)
			}
		}
		fmt.Fprintln(w)
	}

	separator(w, '-')
}

// DumpDOT writes a Graphviz DOT representation of a to w, for rendering the
// automaton as a diagram rather than a table.
func DumpDOT(w io.Writer, a *automata.Automaton) {
	fmt.Fprintln(w, "digraph automaton {")
	fmt.Fprintln(w, "\trankdir=LR;")
	if a == nil {
		fmt.Fprintln(w, "}")
		return
	}

	for i := 0; i < a.NumNodes(); i++ {
		shape := "circle"
		if a.Node(i).Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "\tnode [shape = %s]; %d;\n", shape, i)
	}
	fmt.Fprintf(w, "\tstart [shape=point]; start -> %d;\n", a.Start)

	for i := 0; i < a.NumNodes(); i++ {
		for _, t := range a.Node(i).Transitions {
			label := "ε"
			if t.Kind == automata.Char {
				label = fmt.Sprintf("%q", t.Byte)
			}
			fmt.Fprintf(w, "\t%d -> %d [label = %s];\n", i, t.To, label)
		}
	}

	fmt.Fprintln(w, "}")
}
