package automata

// ToDFA performs powerset (subset) construction on n, which must already be
// ε-free — callers run EliminateEpsilon first, per spec.md §4.2's explicit
// two-step pipeline ("after ε-elimination, each DFA state is a subset of
// NFA states..."). Subsets are canonicalized to bit-vector keys (bitset.go)
// for the worklist, and the empty subset maps directly to DeadState rather
// than a real builder state.
func ToDFA[T comparable](n NFA[T]) DFA[T] {
	N := n.StateCount()
	b := NewDFABuilder[T]()
	for _, x := range n.Alphabet() {
		b.AddInput(x)
	}

	seen := map[string]int{}
	var worklist []subset

	indexOf := func(s subset) int {
		if s.isEmpty() {
			return DeadState
		}
		key := s.key()
		if idx, ok := seen[key]; ok {
			return idx
		}
		idx := b.AddState()
		seen[key] = idx
		worklist = append(worklist, s)
		return idx
	}

	start := newSubset(N)
	start.set(0)
	indexOf(start) // first AddState call becomes state 0, the DFA's start

	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		sIdx := seen[s.key()]

		accepting := false
		for _, m := range s.members() {
			if n.IsAccepting(m) {
				accepting = true
				break
			}
		}
		b.SetAccepting(sIdx, accepting)

		for _, x := range n.Alphabet() {
			next := newSubset(N)
			for _, m := range s.members() {
				for t := range n.NamedTargets(m, x) {
					next.set(t)
				}
			}
			b.SetTransition(sIdx, x, indexOf(next))
		}

		nextUnknown := newSubset(N)
		for _, m := range s.members() {
			for t := range n.UnknownTargets(m) {
				nextUnknown.set(t)
			}
		}
		b.SetUnknownTransition(sIdx, indexOf(nextUnknown))
	}

	dfa, err := b.Finalize()
	if err != nil {
		// Every state created above had every column assigned in the same
		// loop iteration that created it; an incomplete result here would
		// mean this function has a bug, not that the input was invalid.
		panic(err)
	}
	return dfa
}
