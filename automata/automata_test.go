package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLA builds the 3-state-with-DEAD DFA for L={a} from spec.md §8
// scenario A directly through the Builder, exercising AddInput/AddState/
// SetTransition/SetUnknownTransition/SetAccepting/Finalize.
func buildLA(t *testing.T) DFA[rune] {
	t.Helper()
	b := NewDFABuilder[rune]()
	b.AddInput('a')
	s0 := b.AddState() // start
	s1 := b.AddState() // accepting, saw exactly "a"
	s2 := b.AddState() // dead-in-all-but-name sink for anything past "a" or any non-a

	require.NoError(t, b.SetTransition(s0, 'a', s1))
	require.NoError(t, b.SetUnknownTransition(s0, s2))
	require.NoError(t, b.SetTransition(s1, 'a', s2))
	require.NoError(t, b.SetUnknownTransition(s1, s2))
	require.NoError(t, b.SetAllTransitions(s2, s2))

	require.NoError(t, b.SetAccepting(s0, false))
	require.NoError(t, b.SetAccepting(s1, true))
	require.NoError(t, b.SetAccepting(s2, false))

	dfa, err := b.Finalize()
	require.NoError(t, err)
	return dfa
}

func TestDFAScenarioA(t *testing.T) {
	dfa := buildLA(t)
	assert.True(t, dfa.Accepts([]rune{'a'}))
	assert.False(t, dfa.Accepts([]rune{}))
	assert.False(t, dfa.Accepts([]rune{'b'}))
	assert.False(t, dfa.Accepts([]rune{'a', 'b'}))
}

func TestDFAMunchLongestPrefix(t *testing.T) {
	// invariant 7: munch(w) returns max{k : accepts(prefix(w,k))} or absent.
	dfa := buildLA(t)

	length, matched := dfa.Munch([]rune{'a'})
	assert.True(t, matched)
	assert.Equal(t, 1, length)

	length, matched = dfa.Munch([]rune{'a', 'a', 'a'})
	assert.True(t, matched)
	assert.Equal(t, 1, length, "only the first 'a' is part of the longest accepted prefix")

	_, matched = dfa.Munch([]rune{'b', 'b'})
	assert.False(t, matched)
}

func TestDFABuilderFinalizeRejectsIncomplete(t *testing.T) {
	// invariant 8: Finalize fails if any cell is undefined.
	b := NewDFABuilder[rune]()
	b.AddInput('a')
	b.AddState()

	_, err := b.Finalize()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestDFABuilderRejectsInvalidState(t *testing.T) {
	b := NewDFABuilder[rune]()
	b.AddInput('a')
	b.AddState()

	err := b.SetTransition(5, 'a', 0)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDFABuilderRejectsUnknownInput(t *testing.T) {
	b := NewDFABuilder[rune]()
	s0 := b.AddState()

	err := b.SetTransition(s0, 'z', s0)
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestDFAComplement(t *testing.T) {
	// invariant 4: accepts(¬r,w) ⇔ ¬accepts(r,w).
	base := buildLA(t)
	comp := Complement(base)

	for _, w := range [][]rune{{}, {'a'}, {'b'}, {'a', 'b'}} {
		assert.Equal(t, !base.Accepts(w), comp.Accepts(w), "complement mismatch on %q", string(w))
	}
}

// buildNFAForLA builds an NFA over {a,b} that also accepts exactly {a},
// via an explicit ε before the literal transition, to exercise ε-closure
// and ε-elimination.
func buildNFAForLA(t *testing.T) NFA[rune] {
	t.Helper()
	nb := NewNFABuilder[rune]()
	mid := nb.AddState()
	accept := nb.AddState()

	require.NoError(t, nb.AddEpsilon(0, mid))
	require.NoError(t, nb.AddTransition(mid, 'a', accept))
	require.NoError(t, nb.SetAccepting(accept, true))

	return nb.Build()
}

func TestEpsilonEliminationAndSubsetConstruction(t *testing.T) {
	// invariant 9: nfa.accepts(w) = nfa.make_deterministic().accepts(w).
	nfa := buildNFAForLA(t)

	for _, w := range [][]rune{{}, {'a'}, {'b'}, {'a', 'a'}} {
		nfaAccepts := nfaAccepts(nfa, w)

		eliminated := EliminateEpsilon(nfa)
		dfa := ToDFA(eliminated)

		assert.Equal(t, nfaAccepts, dfa.Accepts(w), "mismatch on %q", string(w))
	}
}

// nfaAccepts is a reference NFA-walk used only by tests, tracking the
// current set of live states via repeated ε-closure + input step (named
// targets for x ∈ Σ⁻, UNKNOWN targets otherwise).
func nfaAccepts(n NFA[rune], w []rune) bool {
	current := epsilonClosure(n, map[int]bool{0: true})
	for _, x := range w {
		_, named := n.trans[x]
		next := map[int]bool{}
		for s := range current {
			targets := n.UnknownTargets(s)
			if named {
				targets = n.NamedTargets(s, x)
			}
			for t := range targets {
				next[t] = true
			}
		}
		current = epsilonClosure(n, next)
	}
	for s := range current {
		if n.IsAccepting(s) {
			return true
		}
	}
	return false
}

func TestProductConjunction(t *testing.T) {
	// L={a} & L={a} = L={a}; L={a} & complement(L={a}) = ∅.
	a := buildLA(t)
	conj := Conjunction(a, a)
	for _, w := range [][]rune{{}, {'a'}, {'b'}} {
		assert.Equal(t, a.Accepts(w), conj.Accepts(w))
	}

	empty := Conjunction(a, Complement(a))
	for _, w := range [][]rune{{}, {'a'}, {'b'}, {'a', 'a'}} {
		assert.False(t, empty.Accepts(w))
	}
}

func TestProductDisjunction(t *testing.T) {
	a := buildLA(t)
	disj := Disjunction(a, Complement(a))
	for _, w := range [][]rune{{}, {'a'}, {'b'}, {'a', 'a'}} {
		assert.True(t, disj.Accepts(w), "a | ¬a is the universal language")
	}
}
