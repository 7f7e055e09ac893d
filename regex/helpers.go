package regex

import "cmp"

// Opt matches zero or one occurrence of r (r?).
func Opt[T comparable](r Regex[T]) Regex[T] {
	return Disj(Epsilon[T](), r)
}

// Plus matches one or more occurrences of r (r+ = r∙r*), supplementing the
// eight smart constructors with the derived operator tfl's RegexOps.hpp
// exposes as operator+.
func Plus[T comparable](r Regex[T]) Regex[T] {
	return Seq(r, Star(r))
}

// Any is an alias for Alphabet, matching spec.md's external-API naming
// (`any`) for the one-symbol wildcard.
func Any[T comparable]() Regex[T] {
	return Alphabet[T]()
}

// AnyOf matches a single symbol equal to any one of xs.
func AnyOf[T comparable](xs ...T) Regex[T] {
	if len(xs) == 0 {
		return Empty[T]()
	}
	r := Literal(xs[0])
	for _, x := range xs[1:] {
		r = Disj(r, Literal(x))
	}
	return r
}

// Word sequences a literal per rune of s, matching exactly the string s.
func Word(s string) Regex[rune] {
	runes := []rune(s)
	if len(runes) == 0 {
		return Epsilon[rune]()
	}
	r := Literal(runes[0])
	for _, c := range runes[1:] {
		r = Seq(r, Literal(c))
	}
	return r
}

// Range matches a single symbol x with lo <= x <= hi, for any T ordered by
// cmp.Ordered (runes, bytes, and other integral/string types). spec.md's
// Open Question about range(low, high) on arbitrary T is resolved here:
// Range is restricted to types with a defined `<`, via the type parameter
// constraint itself, rather than left ambiguous at the Regex[T] level.
func Range[T cmp.Ordered](lo, hi T) Regex[T] {
	return LiteralPred(func(x T) bool { return lo <= x && x <= hi })
}
