package automata

import "github.com/projectdiscovery/gologger"

// BuildTable materializes the two-dimensional lookup table this DFA runs on:
// one row per state (in discovery order, so row 0 is the start), one column
// per distinct byte appearing as a transition condition anywhere in the
// automaton. A cell holds the destination state id, or -1 if that
// (state, byte) pair has no transition. Safe to call more than once; only
// the first call does any work.
//
// Column order follows the alphabet discovered during subset construction
// when the automaton came from Determinize; for a DFA assembled some other
// way, it falls back to first-occurrence order over the automaton's own
// transitions.
func (a *Automaton) BuildTable() error {
	if a == nil {
		return ErrNilAutomaton
	}
	if a.tableBuilt {
		return nil
	}
	if !a.IsDeterministic() {
		gologger.Error().Msgf("automata: refusing to build a lookup table for a non-deterministic automaton")
		return ErrNotDeterministic
	}

	columns := a.discoveredAlphabet
	if columns == nil {
		seen := make(map[byte]bool)
		for _, n := range a.Nodes {
			for _, t := range n.Transitions {
				if !seen[t.Byte] {
					seen[t.Byte] = true
					columns = append(columns, t.Byte)
				}
			}
		}
	}

	colIndex := make(map[byte]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}

	table := make([][]int, len(a.Nodes))
	for i := range table {
		row := make([]int, len(columns))
		for j := range row {
			row[j] = -1
		}
		table[i] = row
	}
	for _, n := range a.Nodes {
		for _, t := range n.Transitions {
			table[n.ID][colIndex[t.Byte]] = t.To
		}
	}

	a.columns = columns
	a.colIndex = colIndex
	a.table = table
	a.tableBuilt = true
	return nil
}

// Test decides whether the DFA accepts input in full (not a search: every
// byte of input must be consumed and the final state must be accepting).
// Rejection is constant-time per input byte and allocates nothing once the
// table is built.
//
// Invoking Test on a non-deterministic automaton is a programmer error: it
// is reported to the diagnostic channel and treated as a reject rather than
// a panic, matching the source's advisory error handling.
func (a *Automaton) Test(input []byte) (bool, error) {
	if a == nil {
		return false, ErrNilAutomaton
	}
	if !a.IsDeterministic() {
		gologger.Error().Msgf("automata: Test invoked on a non-deterministic automaton; rejecting")
		return false, ErrNotDeterministic
	}
	if !a.tableBuilt {
		if err := a.BuildTable(); err != nil {
			return false, err
		}
	}

	state := a.Start
	for _, b := range input {
		col, ok := a.colIndex[b]
		if !ok {
			return false, nil
		}
		next := a.table[state][col]
		if next < 0 {
			return false, nil
		}
		state = next
	}
	return a.Nodes[state].Accept, nil
}
