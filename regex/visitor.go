package regex

// Visitor holds one handler per Regex variant. Match replaces virtual
// dispatch with an exhaustive match on the tagged union (spec.md §9's
// design note) while still letting packages outside regex — compile, in
// particular — walk a tree whose node/kind fields are unexported.
type Visitor[T comparable, R any] struct {
	Empty      func() R
	Epsilon    func() R
	Alphabet   func() R
	Literal    func(match func(T) bool) R
	Disj       func(a, b Regex[T]) R
	Seq        func(a, b Regex[T]) R
	Star       func(a Regex[T]) R
	Complement func(a Regex[T]) R
	Conj       func(a, b Regex[T]) R
}

// Match dispatches r to the one handler in v matching its kind.
func Match[T comparable, R any](r Regex[T], v Visitor[T, R]) R {
	if r.node == nil {
		return v.Empty()
	}
	switch r.node.k {
	case kindEmpty:
		return v.Empty()
	case kindEpsilon:
		return v.Epsilon()
	case kindAlphabet:
		return v.Alphabet()
	case kindLiteral:
		return v.Literal(r.node.match)
	case kindDisj:
		return v.Disj(r.node.left, r.node.right)
	case kindSeq:
		return v.Seq(r.node.left, r.node.right)
	case kindStar:
		return v.Star(r.node.inner)
	case kindComplement:
		return v.Complement(r.node.inner)
	case kindConj:
		return v.Conj(r.node.left, r.node.right)
	default:
		return v.Empty()
	}
}
