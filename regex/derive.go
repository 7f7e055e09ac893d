package regex

// Nullable reports whether r accepts the empty string ε.
func Nullable[T comparable](r Regex[T]) bool {
	if r.node == nil {
		return false
	}
	switch r.node.k {
	case kindEpsilon, kindStar:
		return true
	case kindEmpty, kindAlphabet, kindLiteral:
		return false
	case kindDisj:
		return Nullable(r.node.left) || Nullable(r.node.right)
	case kindSeq, kindConj:
		return Nullable(r.node.left) && Nullable(r.node.right)
	case kindComplement:
		return !Nullable(r.node.inner)
	default:
		return false
	}
}

// Derive computes d_x(r), the Brzozowski derivative of r with respect to
// symbol x: the regex accepting {w : x·w ∈ L(r)}. Every recursive call goes
// back through the smart constructors in regex.go, so the algebraic
// identities hold at every step of derivation, not just at the leaves.
func Derive[T comparable](x T, r Regex[T]) Regex[T] {
	if r.node == nil {
		return Empty[T]()
	}
	switch r.node.k {
	case kindEmpty, kindEpsilon:
		return Empty[T]()
	case kindAlphabet:
		return Epsilon[T]()
	case kindLiteral:
		if r.node.match(x) {
			return Epsilon[T]()
		}
		return Empty[T]()
	case kindDisj:
		return Disj(Derive(x, r.node.left), Derive(x, r.node.right))
	case kindConj:
		return Conj(Derive(x, r.node.left), Derive(x, r.node.right))
	case kindSeq:
		left, right := r.node.left, r.node.right
		tail := Seq(Derive(x, left), right)
		if Nullable(left) {
			return Disj(tail, Derive(x, right))
		}
		return tail
	case kindStar:
		inner := r.node.inner
		return Seq(Derive(x, inner), Star(inner))
	case kindComplement:
		return Complement(Derive(x, r.node.inner))
	default:
		return Empty[T]()
	}
}

// Accepts reports whether r matches the full sequence w, by iteratively
// deriving r with respect to each symbol of w and checking nullability of
// what remains (spec invariant: accepts(r,w) ⇔ nullable(fold(derive,w,r))).
func Accepts[T comparable](r Regex[T], w []T) bool {
	for _, x := range w {
		r = Derive(x, r)
	}
	return Nullable(r)
}
