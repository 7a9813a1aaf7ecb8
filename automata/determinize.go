package automata

// discovery accumulates the state of a single subset-construction run: the
// canonical DFA states found so far (keyed by subset content), the alphabet
// columns discovered so far (in discovery order), and the edges collected
// between them.
type discovery struct {
	nfa *Automaton

	alphabet []byte
	seenByte map[byte]bool

	index     map[string]int
	states    []bitset
	accepting []bool

	transFrom []string
	transTo   []string
	transByte []byte
}

// fill computes the epsilon-closure / subset-relevance of a seed subset:
// every NFA node reachable from seed via
// epsilon transitions is included in the result iff it is accepting or has
// at least one non-epsilon outgoing transition. Epsilon-only intermediate
// nodes are traversed but never recorded. Distinct bytes labelling
// non-epsilon transitions encountered along the way are appended to the
// shared alphabet, in first-encounter order.
func (d *discovery) fill(seed bitset) bitset {
	n := len(d.nfa.Nodes)
	result := newBitset(n)
	touched := newBitset(n)

	var visit func(id int)
	visit = func(id int) {
		if touched.get(id) {
			return
		}
		touched.set(id, true)

		node := d.nfa.Nodes[id]
		hasNonEpsilon := false
		for _, t := range node.Transitions {
			if t.Kind == Epsilon {
				visit(t.To)
				continue
			}
			hasNonEpsilon = true
			if !d.seenByte[t.Byte] {
				d.seenByte[t.Byte] = true
				d.alphabet = append(d.alphabet, t.Byte)
			}
		}

		if hasNonEpsilon || node.Accept {
			result.set(id, true)
		}
	}

	for id := 0; id < n; id++ {
		if seed.get(id) {
			visit(id)
		}
	}
	return result
}

// moveOnByte computes the raw (pre-closure) successor set reached from every
// node in subset via a character transition on c. Multiple character
// transitions on c from the same or different subset nodes are resolved by
// set union, which is how this construction absorbs the source NFA's
// non-determinism (all of which is otherwise factored through epsilons).
func moveOnByte(subset bitset, c byte, nfa *Automaton) bitset {
	seed := newBitset(len(nfa.Nodes))
	for id := 0; id < len(nfa.Nodes); id++ {
		if !subset.get(id) {
			continue
		}
		for _, t := range nfa.Nodes[id].Transitions {
			if t.Kind == Char && t.Byte == c {
				seed.set(t.To, true)
			}
		}
	}
	return seed
}

func isAccepting(subset bitset, nfa *Automaton) bool {
	for id := 0; id < len(nfa.Nodes); id++ {
		if subset.get(id) && nfa.Nodes[id].Accept {
			return true
		}
	}
	return false
}

// process is the recursive worklist step: it canonicalizes tentative via
// fill, records the (previous, tentative, tchar) edge when there is a
// previous state, and -- the first time a given canonical subset is seen --
// recurses once per alphabet byte known as of that state's own fill() call.
// Recursing depth-first (rather than breadth-first through an explicit
// queue) is what fixes both the DFA's state numbering and its lookup-table
// column order to first-discovery order.
//
// The zero subset is ignored for every successor, exactly as the source
// specifies, except at the very root: the start state is always
// materialized so the resulting automaton has a valid starting state, even
// in the degenerate case where the start's epsilon-closure contains no
// subset-relevant node.
func (d *discovery) process(tentative bitset, previousKey string, hasPrevious bool, tchar byte, isRoot bool) {
	newState := d.fill(tentative)
	if newState.isZero() && !isRoot {
		return
	}
	newKey := string(newState)

	if hasPrevious {
		d.transFrom = append(d.transFrom, previousKey)
		d.transTo = append(d.transTo, newKey)
		d.transByte = append(d.transByte, tchar)
	}

	if _, seen := d.index[newKey]; seen {
		return
	}
	d.index[newKey] = len(d.states)
	d.states = append(d.states, newState)
	d.accepting = append(d.accepting, isAccepting(newState, d.nfa))

	// Snapshot: only bytes known by the time this state's own fill() ran.
	chars := make([]byte, len(d.alphabet))
	copy(chars, d.alphabet)

	for _, c := range chars {
		succSeed := moveOnByte(newState, c, d.nfa)
		d.process(succSeed, newKey, true, c, false)
	}
}

// Determinize converts an NFA to an equivalent DFA via the subset
// construction. Determinizing a nil or zero-node automaton produces no
// result (and no error): there is nothing to convert.
func Determinize(nfa *Automaton) (*Automaton, error) {
	if nfa == nil || len(nfa.Nodes) == 0 {
		return nil, nil
	}

	d := &discovery{
		nfa:      nfa,
		seenByte: make(map[byte]bool),
		index:    make(map[string]int),
	}

	seed := newBitset(len(nfa.Nodes))
	seed.set(nfa.Start, true)
	d.process(seed, "", false, 0, true)

	nodes := make([]*Node, len(d.states))
	for i := range d.states {
		nodes[i] = &Node{ID: i, Accept: d.accepting[i]}
	}
	for i := range d.transFrom {
		from := d.index[d.transFrom[i]]
		to := d.index[d.transTo[i]]
		nodes[from].Transitions = append(nodes[from].Transitions, Transition{
			Kind: Char,
			Byte: d.transByte[i],
			To:   to,
		})
	}

	alphabet := make([]byte, len(d.alphabet))
	copy(alphabet, d.alphabet)

	return &Automaton{
		Nodes:              nodes,
		Start:              0,
		discoveredAlphabet: alphabet,
	}, nil
}
