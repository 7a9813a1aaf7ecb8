// Command automata is a small CLI front end over package automata: it
// compiles a pattern, determinizes it, tests an input string against it, and
// optionally dumps the resulting automaton for inspection.
package main

import (
	"os"

	"github.com/ortegagingrich/automata/automata"
	"github.com/ortegagingrich/automata/debug"
	"github.com/ortegagingrich/automata/syntax"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

type options struct {
	Pattern string
	Input   string
	Dump    bool
	DOT     bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Compile a pattern to a finite automaton and test an input string against it.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern to compile (atoms, '|', '*', grouping)"),
		flagSet.StringVarP(&opts.Input, "input", "i", "", "input string to test against the compiled automaton"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Dump, "dump", "d", false, "print a table describing the compiled automaton"),
		flagSet.BoolVar(&opts.DOT, "dot", false, "print a Graphviz DOT description of the compiled automaton"),
		flagSet.BoolVarP(&opts.Silent, "silent", "s", false, "only print the accept/reject verdict"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("a pattern is required (-pattern)")
	}

	return opts
}

func main() {
	opts := parseFlags()

	nfa, err := syntax.CompilePattern(opts.Pattern)
	if err != nil {
		gologger.Fatal().Msgf("could not compile pattern %q: %s", opts.Pattern, err)
	}

	dfa, err := automata.Determinize(nfa)
	if err != nil {
		gologger.Fatal().Msgf("could not determinize pattern %q: %s", opts.Pattern, err)
	}

	if !opts.Silent {
		gologger.Info().Msgf("compiled %q to a %d-state DFA", opts.Pattern, dfa.NumNodes())
	}

	if opts.Dump {
		debug.Dump(os.Stdout, dfa)
	}
	if opts.DOT {
		debug.DumpDOT(os.Stdout, dfa)
	}

	accepted, err := dfa.Test([]byte(opts.Input))
	if err != nil {
		gologger.Fatal().Msgf("could not test input %q: %s", opts.Input, err)
	}

	if opts.Silent {
		if accepted {
			gologger.Info().Msgf("accept")
		} else {
			gologger.Info().Msgf("reject")
		}
		return
	}

	if accepted {
		gologger.Info().Msgf("%q accepted", opts.Input)
	} else {
		gologger.Info().Msgf("%q rejected", opts.Input)
	}
}
