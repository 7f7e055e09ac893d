package automata

// Product builds the product automaton of a and b over the union of their
// alphabets. Per spec.md §4.2, states are encoded with two (n+1)×(m+1)
// tables: l ranges over a's states plus a sentinel row aN standing in for
// a's DeadState, r ranges over b's states plus a sentinel column bN
// standing in for b's DeadState, combo = l*(bN+1)+r. The single combo
// (aN,bN) — the table's last cell — is never instantiated as a real
// builder state; it is the product's own DeadState. combine decides
// acceptance of a product state from each side's (non-dead) acceptance.
func Product[T comparable](a, b DFA[T], combine func(aAccept, bAccept bool) bool) DFA[T] {
	aN, bN := a.StateCount(), b.StateCount()

	encode := func(l, r int) int {
		if l == DeadState {
			l = aN
		}
		if r == DeadState {
			r = bN
		}
		return l*(bN+1) + r
	}
	decode := func(c int) (int, int) { return c / (bN + 1), c % (bN + 1) }
	realL := func(l int) int {
		if l == aN {
			return DeadState
		}
		return l
	}
	realR := func(r int) int {
		if r == bN {
			return DeadState
		}
		return r
	}

	deadCombo := encode(DeadState, DeadState)
	comboCount := (aN + 1) * (bN + 1)

	alphaSet := map[T]bool{}
	var alphabet []T
	for _, x := range a.Alphabet() {
		if !alphaSet[x] {
			alphaSet[x] = true
			alphabet = append(alphabet, x)
		}
	}
	for _, x := range b.Alphabet() {
		if !alphaSet[x] {
			alphaSet[x] = true
			alphabet = append(alphabet, x)
		}
	}

	builder := NewDFABuilder[T]()
	for _, x := range alphabet {
		builder.AddInput(x)
	}

	ids := make([]int, comboCount)
	for i := range ids {
		ids[i] = unset
	}
	getOrCreate := func(c int) int {
		if ids[c] != unset {
			return ids[c]
		}
		s := builder.AddState()
		ids[c] = s
		return s
	}
	getOrCreate(encode(0, 0)) // forces (0,0) to be builder state 0, the product's start

	for c := 0; c < comboCount; c++ {
		if c == deadCombo {
			continue
		}
		s := getOrCreate(c)
		l, r := decode(c)
		rl, rr := realL(l), realR(r)

		lAccept := rl != DeadState && a.IsAccepting(rl)
		rAccept := rr != DeadState && b.IsAccepting(rr)
		builder.SetAccepting(s, combine(lAccept, rAccept))

		step := func(x *T) (int, int) {
			nl, nr := DeadState, DeadState
			if rl != DeadState {
				if x != nil {
					nl = a.Transition(rl, *x)
				} else {
					nl = a.UnknownTransition(rl)
				}
			}
			if rr != DeadState {
				if x != nil {
					nr = b.Transition(rr, *x)
				} else {
					nr = b.UnknownTransition(rr)
				}
			}
			return nl, nr
		}

		for i := range alphabet {
			x := alphabet[i]
			nl, nr := step(&x)
			target := encode(nl, nr)
			if target == deadCombo {
				builder.SetTransition(s, x, DeadState)
			} else {
				builder.SetTransition(s, x, getOrCreate(target))
			}
		}

		nl, nr := step(nil)
		target := encode(nl, nr)
		if target == deadCombo {
			builder.SetUnknownTransition(s, DeadState)
		} else {
			builder.SetUnknownTransition(s, getOrCreate(target))
		}
	}

	dfa, err := builder.Finalize()
	if err != nil {
		panic(err)
	}
	return dfa
}

// Conjunction builds the DFA accepting exactly the strings both a and b
// accept (spec.md invariant 5).
func Conjunction[T comparable](a, b DFA[T]) DFA[T] {
	return Product(a, b, func(x, y bool) bool { return x && y })
}

// Disjunction builds the DFA accepting strings either a or b accepts,
// by product construction rather than NFA alternation + re-determinizing.
func Disjunction[T comparable](a, b DFA[T]) DFA[T] {
	return Product(a, b, func(x, y bool) bool { return x || y })
}
