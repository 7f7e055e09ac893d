// Package compile chains the regex algebra into the automata layer:
// Regex[T] → NFA[T] (Thompson-style construction per combinator) → DFA[T]
// (ε-elimination then subset construction), per spec.md §4.2's "Regex→NFA"
// and "Regex→DFA" subsections. Complement and Conjunction nodes are handled
// by determinizing both operands first and composing the resulting DFAs
// (spec.md: "Complement / conjunction: first determinize both operands,
// then operate on DFAs"), even when they appear nested inside a larger
// Seq/Disj/Star tree.
package compile

import (
	"github.com/shadowCow/textfront/automata"
	"github.com/shadowCow/textfront/regex"
)

// fragment is a Thompson NFA fragment under construction: a start state and
// a single accepting state, both already registered in the shared builder.
type fragment struct {
	start, accept int
}

func newFragment[T comparable](b *automata.NFABuilder[T]) fragment {
	return fragment{start: b.AddState(), accept: b.AddState()}
}

// CompileDefault compiles r using regex.MinimalAlphabet(r) as Σ⁻. This is
// sufficient whenever every Literal in r was built from a concrete value
// (regex.Literal), since MinimalAlphabet enumerates exactly those values.
// Regexes containing predicate literals (regex.LiteralPred, regex.Range,
// ...) need Compile with an explicit candidate alphabet instead, since a
// predicate's domain cannot be enumerated from the function value alone.
func CompileDefault[T comparable](r regex.Regex[T]) automata.DFA[T] {
	return Compile(r, regex.MinimalAlphabet(r))
}

// Compile compiles r to a DFA[T] over the declared alphabet. alphabet must
// include every concrete value any Literal or predicate Literal in r can
// match; symbols outside alphabet are folded into the UNKNOWN column and
// will never satisfy a predicate literal's match, even if the predicate
// would have returned true for them.
func Compile[T comparable](r regex.Regex[T], alphabet []T) automata.DFA[T] {
	b := automata.NewNFABuilder[T]()
	for _, x := range alphabet {
		b.AddInput(x)
	}
	frag := build(b, r, alphabet)
	b.AddEpsilon(0, frag.start)
	b.SetAccepting(frag.accept, true)

	nfa := b.Build()
	return automata.ToDFA(automata.EliminateEpsilon(nfa))
}

func build[T comparable](b *automata.NFABuilder[T], r regex.Regex[T], alphabet []T) fragment {
	return regex.Match(r, regex.Visitor[T, fragment]{
		Empty: func() fragment {
			// Two disconnected states: nothing reaches accept, so this
			// fragment matches no string at all.
			return newFragment(b)
		},
		Epsilon: func() fragment {
			f := newFragment(b)
			b.AddEpsilon(f.start, f.accept)
			return f
		},
		Alphabet: func() fragment {
			f := newFragment(b)
			b.AddUnknownTransition(f.start, f.accept)
			for _, x := range alphabet {
				b.AddTransition(f.start, x, f.accept)
			}
			return f
		},
		Literal: func(match func(T) bool) fragment {
			f := newFragment(b)
			for _, x := range alphabet {
				if match(x) {
					b.AddTransition(f.start, x, f.accept)
				}
			}
			return f
		},
		Disj: func(a, c regex.Regex[T]) fragment {
			fa := build(b, a, alphabet)
			fc := build(b, c, alphabet)
			f := newFragment(b)
			b.AddEpsilon(f.start, fa.start)
			b.AddEpsilon(f.start, fc.start)
			b.AddEpsilon(fa.accept, f.accept)
			b.AddEpsilon(fc.accept, f.accept)
			return f
		},
		Seq: func(a, c regex.Regex[T]) fragment {
			fa := build(b, a, alphabet)
			fc := build(b, c, alphabet)
			b.AddEpsilon(fa.accept, fc.start)
			return fragment{start: fa.start, accept: fc.accept}
		},
		Star: func(inner regex.Regex[T]) fragment {
			fi := build(b, inner, alphabet)
			f := newFragment(b)
			b.AddEpsilon(f.start, fi.start)
			b.AddEpsilon(fi.accept, f.accept)
			b.AddEpsilon(f.start, f.accept)
			b.AddEpsilon(fi.accept, fi.start)
			return f
		},
		Complement: func(inner regex.Regex[T]) fragment {
			dfa := automata.Complement(Compile(inner, alphabet))
			return embedDFA(b, dfa)
		},
		Conj: func(a, c regex.Regex[T]) fragment {
			dfa := automata.Conjunction(Compile(a, alphabet), Compile(c, alphabet))
			return embedDFA(b, dfa)
		},
	})
}

// embedDFA copies d's states and transitions into b as plain NFA states,
// wiring every one of d's accepting states to a single fresh exit state via
// epsilon so the result composes as an ordinary Thompson fragment. d's
// DeadState is not itself copied: a transition that targeted DeadState is
// simply omitted, which has the same effect (the embedded NFA state just
// has no onward edge for that symbol).
func embedDFA[T comparable](b *automata.NFABuilder[T], d automata.DFA[T]) fragment {
	n := d.StateCount()
	offset := make([]int, n)
	for i := 0; i < n; i++ {
		offset[i] = b.AddState()
	}
	exit := b.AddState()

	for s := 0; s < n; s++ {
		for _, x := range d.Alphabet() {
			if t := d.Transition(s, x); t != automata.DeadState {
				b.AddTransition(offset[s], x, offset[t])
			}
		}
		if u := d.UnknownTransition(s); u != automata.DeadState {
			b.AddUnknownTransition(offset[s], offset[u])
		}
		if d.IsAccepting(s) {
			b.AddEpsilon(offset[s], exit)
		}
	}

	return fragment{start: offset[0], accept: exit}
}
