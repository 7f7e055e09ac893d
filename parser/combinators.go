package parser

// Optional is Opt's result type: Present distinguishes "matched nothing"
// from a real zero value of R.
type Optional[R any] struct {
	Value   R
	Present bool
}

// Opt matches zero or one occurrence of p (tfl's Parsers<T>::opt).
func Opt[T comparable, R any](p Parser[T, R]) Parser[T, Optional[R]] {
	return Disj(
		Epsilon[T, Optional[R]](Optional[R]{}),
		Map(p, func(v R) Optional[R] { return Optional[R]{Value: v, Present: true} }),
	)
}

// Many1 matches one or more occurrences of elem, in order (tfl's
// Parsers<T>::many1). Built as a right-recursive Recursive rather than an
// iterative loop — SPEC_FULL.md §6.4's documented correctness-over-
// performance tradeoff, matching spec.md §9's Open Question about the
// derivation lexer's own many1 taking the same non-tail-recursive shape.
func Many1[T comparable, R any](elem Parser[T, R]) Parser[T, []R] {
	rec := NewRecursive[T, []R]()
	body := Map(
		Seq(elem, Disj(Epsilon[T, []R](nil), rec.AsParser())),
		func(p Pair[R, []R]) []R { return append([]R{p.First}, p.Second...) },
	)
	if err := rec.Bind(body); err != nil {
		panic(err) // only fires on a packaging bug: a fresh Recursive is never pre-bound
	}
	return rec.AsParser()
}

// Many matches zero or more occurrences of elem (tfl's Parsers<T>::many),
// built directly on Many1 rather than its own independent Recursive —
// mathematically the same right-recursive shape tfl builds, just without
// duplicating the recursion machinery.
func Many[T comparable, R any](elem Parser[T, R]) Parser[T, []R] {
	return Disj(Epsilon[T, []R](nil), Many1(elem))
}

// RepSep1 matches elem, then zero or more (sep elem) pairs, dropping the
// separators from the result (tfl's Parsers<T>::repsep1).
func RepSep1[T comparable, R, S any](elem Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	tail := Many(Map(Seq(sep, elem), func(p Pair[S, R]) R { return p.Second }))
	return Map(Seq(elem, tail), func(p Pair[R, []R]) []R { return append([]R{p.First}, p.Second...) })
}

// RepSep matches zero or more elem separated by sep (tfl's
// Parsers<T>::repsep).
func RepSep[T comparable, R, S any](elem Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	return Disj(Epsilon[T, []R](nil), RepSep1(elem, sep))
}

// Choice is Either's result: a tagged union over whichever alternative
// matched (tfl's Parsers<T>::either, which returns a std::variant; Go has
// no variant type, so Index plus an any payload plays the same role).
type Choice struct {
	Index int
	Value any
}

// AsAny erases p's result type to any, the shape Either's alternatives
// must share since Go can't accept a variadic list of Parser[T, R1],
// Parser[T, R2], ... with independently-typed Ri.
func AsAny[T comparable, R any](p Parser[T, R]) Parser[T, any] {
	return Map(p, func(v R) any { return v })
}

// Either tries every alternative at the same position and tags whichever
// one produced each surviving candidate with its index.
func Either[T comparable](alternatives ...Parser[T, any]) Parser[T, Choice] {
	var result Parser[T, Choice]
	for i, alt := range alternatives {
		idx := i
		tagged := Map(alt, func(v any) Choice { return Choice{Index: idx, Value: v} })
		if i == 0 {
			result = tagged
			continue
		}
		result = Disj(result, tagged)
	}
	return result
}
