package automata

// Atom builds the two-node NFA that accepts exactly the single byte b and
// nothing else: state 0 is the start, state 1 is accepting, and a single
// character transition on b links them.
func Atom(b byte) *Automaton {
	start := &Node{ID: 0}
	accept := &Node{ID: 1, Accept: true}
	start.Transitions = []Transition{{Kind: Char, Byte: b, To: 1}}
	return &Automaton{
		Nodes: []*Node{start, accept},
		Start: 0,
	}
}

// encapsulate rewrites a in place so it has exactly one accepting state: the
// newly appended node with id len(a.Nodes). Every formerly-accepting node
// loses its flag and gains one epsilon transition to the new accept. This
// runs even when a has zero accepting states, producing an accept node
// unreachable from any former accept; Reduce cleans that up afterward.
func encapsulate(a *Automaton) {
	newAcceptID := len(a.Nodes)
	end := &Node{ID: newAcceptID, Accept: true}
	for _, n := range a.Nodes {
		if n.Accept {
			n.Accept = false
			n.Transitions = append(n.Transitions, Transition{Kind: Epsilon, To: newAcceptID})
		}
	}
	a.Nodes = append(a.Nodes, end)
}

// Alternation builds the NFA for a1|a2. Both inputs are deep-copied and
// encapsulated before combination, so neither is mutated and the result
// shares no storage with them.
//
// If a1 and a2 are the same object (identity, not value, equality), the
// construction short-circuits and returns a copy of a1: an intentional
// optimization, not a correctness requirement.
func Alternation(a1, a2 *Automaton) *Automaton {
	if a1 == a2 {
		return a1.Copy()
	}

	left := a1.Copy()
	right := a2.Copy()
	encapsulate(left)
	encapsulate(right)

	n1 := len(left.Nodes)
	n2 := len(right.Nodes)
	renumberBy(left, 1)
	renumberBy(right, 1+n1)

	start := &Node{ID: 0, Transitions: []Transition{
		{Kind: Epsilon, To: left.Start},
		{Kind: Epsilon, To: right.Start},
	}}

	nodes := make([]*Node, 0, 2+n1+n2)
	nodes = append(nodes, start)
	nodes = append(nodes, left.Nodes...)
	nodes = append(nodes, right.Nodes...)

	accept := &Node{ID: 2 + n1 + n2 - 1, Accept: true}

	leftAccept := left.Nodes[n1-1]
	leftAccept.Accept = false
	leftAccept.Transitions = append(leftAccept.Transitions, Transition{Kind: Epsilon, To: accept.ID})

	rightAccept := right.Nodes[n2-1]
	rightAccept.Accept = false
	rightAccept.Transitions = append(rightAccept.Transitions, Transition{Kind: Epsilon, To: accept.ID})

	nodes = append(nodes, accept)

	return Reduce(&Automaton{Nodes: nodes, Start: 0})
}

// Concatenation builds the NFA for a1 followed by a2.
func Concatenation(a1, a2 *Automaton) *Automaton {
	left := a1.Copy()
	right := a2.Copy()
	encapsulate(left)
	encapsulate(right)

	n1 := len(left.Nodes)
	renumberBy(right, n1)

	leftAccept := left.Nodes[n1-1]
	leftAccept.Accept = false
	leftAccept.Transitions = append(leftAccept.Transitions, Transition{Kind: Epsilon, To: right.Start})

	nodes := make([]*Node, 0, n1+len(right.Nodes))
	nodes = append(nodes, left.Nodes...)
	nodes = append(nodes, right.Nodes...)

	return Reduce(&Automaton{Nodes: nodes, Start: left.Start})
}

// Iteration builds the NFA for a* (zero or more concatenations of a). The
// old accept loses its flag and gains two epsilon transitions: one back to
// the start (loop) and one forward to a fresh accept (exit). The start
// gains one additional epsilon transition directly to the fresh accept,
// covering the zero-iteration path.
func Iteration(a *Automaton) *Automaton {
	body := a.Copy()
	encapsulate(body)

	n := len(body.Nodes)
	oldAccept := body.Nodes[n-1]
	newAccept := &Node{ID: n, Accept: true}

	oldAccept.Accept = false
	oldAccept.Transitions = append(oldAccept.Transitions,
		Transition{Kind: Epsilon, To: body.Start},
		Transition{Kind: Epsilon, To: newAccept.ID},
	)

	startNode := body.Nodes[body.Start]
	startNode.Transitions = append(startNode.Transitions, Transition{Kind: Epsilon, To: newAccept.ID})

	nodes := make([]*Node, 0, n+1)
	nodes = append(nodes, body.Nodes...)
	nodes = append(nodes, newAccept)

	return Reduce(&Automaton{Nodes: nodes, Start: body.Start})
}

// Copy returns a deep clone of a; a thin package-level wrapper over
// (*Automaton).Copy so callers can use the same operation-table shape as the
// rest of this package's exported functions.
func Copy(a *Automaton) *Automaton {
	return a.Copy()
}
