package regex

// Alphabet extraction only makes sense for regexes built from concrete
// Literal(x) nodes (not predicate literals, which have no enumerable x) —
// this mirrors tfl's generate_minimal_alphabet, which collects Literal leaves;
// Alphabet and predicate nodes contribute nothing, while Star, Complement
// and binary nodes are walked into. To recover the literal
// values from a node built by Literal, the constructor also stashes the
// value alongside the predicate; LiteralPred-built nodes carry none and are
// skipped.

// MinimalAlphabet returns the set of literal values that appear, textually,
// as Literal(x) nodes within r. Nodes built with LiteralPred contribute
// nothing (there is no way to enumerate an arbitrary predicate's domain).
func MinimalAlphabet[T comparable](r Regex[T]) []T {
	seen := map[T]bool{}
	var out []T
	var walk func(Regex[T])
	walk = func(r Regex[T]) {
		if r.node == nil {
			return
		}
		switch r.node.k {
		case kindLiteral:
			if r.node.value != nil {
				x := *r.node.value
				if !seen[x] {
					seen[x] = true
					out = append(out, x)
				}
			}
		case kindDisj, kindSeq, kindConj:
			walk(r.node.left)
			walk(r.node.right)
		case kindStar, kindComplement:
			walk(r.node.inner)
		}
	}
	walk(r)
	return out
}
