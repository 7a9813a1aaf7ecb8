package automata

// Reduce shrinks an NFA without changing the language it accepts. It is a
// best-effort simplifier, not a normalizer or a minimizer: two equivalent
// automata need not reduce to the same shape. It exists only to bound the
// size explosion of nested Thompson compositions, and every composite
// constructor (Alternation, Concatenation, Iteration) applies it to its
// result before returning.
//
// Two local rewrites are applied in a single forward sweep over nodes:
//
//  1. Epsilon bypass: a non-start, non-accepting node with exactly one
//     outgoing transition, itself an epsilon, is dissolved. Every incoming
//     transition that pointed at it is rewritten, in place, to point at its
//     epsilon target instead. A node whose sole epsilon transition targets
//     itself is never dissolved (a self-loop has no meaningful bypass).
//  2. Dead node removal: a non-start, non-accepting node with no outgoing
//     and no inbound transitions is marked for removal.
//
// Because the sweep rewrites transitions as it goes, a node dissolved early
// in the pass is fully bypassed by the time a later node's single epsilon
// transition is inspected -- matching a straightforward single forward pass
// rather than a fixed-point iteration.
func Reduce(a *Automaton) *Automaton {
	removed := make([]bool, len(a.Nodes))

	for _, node := range a.Nodes {
		if node.ID == a.Start {
			continue
		}
		if node.Accept {
			continue
		}

		if len(node.Transitions) != 1 {
			if len(node.Transitions) == 0 && !hasInbound(a, node.ID, removed) {
				removed[node.ID] = true
			}
			continue
		}

		only := node.Transitions[0]
		if only.Kind != Epsilon {
			continue
		}
		if only.To == node.ID {
			continue
		}

		divert := only.To
		removed[node.ID] = true
		node.Transitions = nil

		for _, from := range a.Nodes {
			if from.ID == node.ID {
				continue
			}
			for i := range from.Transitions {
				if from.Transitions[i].To == node.ID {
					from.Transitions[i].To = divert
				}
			}
		}
	}

	return compact(a, removed)
}

func hasInbound(a *Automaton, target int, removed []bool) bool {
	for _, from := range a.Nodes {
		if removed[from.ID] {
			continue
		}
		for _, t := range from.Transitions {
			if t.To == target {
				return true
			}
		}
	}
	return false
}

// compact renumbers the surviving nodes of a to a dense [0, M) range and
// copies them, with remapped transition destinations, into a fresh
// automaton.
func compact(a *Automaton, removed []bool) *Automaton {
	newID := make([]int, len(a.Nodes))
	counter := 0
	for i, gone := range removed {
		if gone {
			newID[i] = -1
			continue
		}
		newID[i] = counter
		counter++
	}

	nodes := make([]*Node, counter)
	for i, node := range a.Nodes {
		if removed[i] {
			continue
		}
		clone := &Node{ID: newID[i], Accept: node.Accept}
		for _, t := range node.Transitions {
			clone.Transitions = append(clone.Transitions, Transition{
				Kind: t.Kind,
				Byte: t.Byte,
				To:   newID[t.To],
			})
		}
		nodes[newID[i]] = clone
	}

	return &Automaton{
		Nodes: nodes,
		Start: newID[a.Start],
	}
}
