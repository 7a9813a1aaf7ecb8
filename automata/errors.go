package automata

import "github.com/pkg/errors"

// ErrNotDeterministic is reported when an operation that requires a DFA
// (table construction, execution) is asked to run against an automaton that
// still carries epsilon transitions. Per the package's error model this is a
// programmer error: callers get both a diagnostic log line and a reject
// verdict, never a panic.
var ErrNotDeterministic = errors.New("automata: operation requires a deterministic automaton")

// ErrNilAutomaton is reported when an operation is asked to inspect a nil
// automaton.
var ErrNilAutomaton = errors.New("automata: automaton is nil")
