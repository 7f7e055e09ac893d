// Package parser implements the algebraic parser-combinator engine of
// spec.md §4.5, grounded on _examples/original_source/include/tfl/Parser.hpp:
// a Parser[T,R] is built from six constructors (Elem, Epsilon, Disj, Seq,
// Map, and a Recursive's one-time Bind), applies ambiguously — returning
// every (value, next-position) candidate rather than picking one eagerly —
// and ParseAll/Parse are the two evaluators spec.md §4.5 names: the
// all-candidates backtracking evaluator and the exactly-one-full-parse
// evaluator built on top of it.
//
// tfl expresses this with a virtual ParserBase<T,R> hierarchy and
// std::shared_ptr/std::weak_ptr for Recursive's forward reference; Go has
// neither virtual dispatch nor weak pointers, so each combinator here is a
// plain closure over the token slice and position — the same "type-erased
// behavior behind a stable handle" idea tfl's shared_ptr<ParserBase> plays,
// expressed the way Go parser combinators normally are.
package parser

// candidate is one live ambiguous parse: a value together with the
// position just past what it consumed (tfl's (R, It) pair).
type candidate[R any] struct {
	value R
	pos   int
}

// Parser is an immutable parser combinator over a token slice of T,
// producing ambiguous candidate parses of R.
type Parser[T comparable, R any] struct {
	apply func(toks []T, pos int) []candidate[R]
}

// Elem matches a single token satisfying pred, consuming it (tfl's
// Parser<T,R>::elem, specialized to the T==R case spec.md's Elem names).
func Elem[T comparable](pred func(T) bool) Parser[T, T] {
	return Parser[T, T]{apply: func(toks []T, pos int) []candidate[T] {
		if pos < len(toks) && pred(toks[pos]) {
			return []candidate[T]{{value: toks[pos], pos: pos + 1}}
		}
		return nil
	}}
}

// ElemEq matches a single token equal to x, consuming nothing on failure.
func ElemEq[T comparable](x T) Parser[T, T] {
	return Elem(func(t T) bool { return t == x })
}

// Epsilon consumes no input and always succeeds with val (tfl's eps).
func Epsilon[T comparable, R any](val R) Parser[T, R] {
	return Parser[T, R]{apply: func(toks []T, pos int) []candidate[R] {
		return []candidate[R]{{value: val, pos: pos}}
	}}
}

// Disj tries both left and right at the same position and keeps every
// candidate either produces (tfl's operator|) — this is what makes the
// engine ambiguous rather than eagerly committing to the first alternative
// that succeeds.
func Disj[T comparable, R any](left, right Parser[T, R]) Parser[T, R] {
	return Parser[T, R]{apply: func(toks []T, pos int) []candidate[R] {
		l := left.apply(toks, pos)
		r := right.apply(toks, pos)
		out := make([]candidate[R], 0, len(l)+len(r))
		out = append(out, l...)
		out = append(out, r...)
		return out
	}}
}

// Pair is the result of Seq: tfl's Sequence collapses onto std::pair, and
// R1/R2 being independently-typed is exactly why Parser combinators here
// are closures rather than a uniform tagged struct — a single concrete
// type can't hold children of two different result types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq runs left, then right starting from wherever each left candidate
// left off, pairing up every combination (tfl's operator&).
func Seq[T comparable, R1, R2 any](left Parser[T, R1], right Parser[T, R2]) Parser[T, Pair[R1, R2]] {
	return Parser[T, Pair[R1, R2]]{apply: func(toks []T, pos int) []candidate[Pair[R1, R2]] {
		var out []candidate[Pair[R1, R2]]
		for _, l := range left.apply(toks, pos) {
			for _, r := range right.apply(toks, l.pos) {
				out = append(out, candidate[Pair[R1, R2]]{value: Pair[R1, R2]{First: l.value, Second: r.value}, pos: r.pos})
			}
		}
		return out
	}}
}

// Map transforms every candidate p produces through f (tfl's .map).
func Map[T comparable, R, S any](p Parser[T, R], f func(R) S) Parser[T, S] {
	return Parser[T, S]{apply: func(toks []T, pos int) []candidate[S] {
		src := p.apply(toks, pos)
		out := make([]candidate[S], len(src))
		for i, c := range src {
			out[i] = candidate[S]{value: f(c.value), pos: c.pos}
		}
		return out
	}}
}

// Recursive is a forward-declarable Parser reference enabling recursive
// grammars (tfl's Recursive<T,R>, backed there by a weak_ptr into the
// eventual parser). Declare one, embed AsParser() inside the combinators
// that make up its own body, then Bind the body to it exactly once.
type Recursive[T comparable, R any] struct {
	bound *Parser[T, R]
}

// NewRecursive declares an unbound recursive parser reference.
func NewRecursive[T comparable, R any]() *Recursive[T, R] {
	return &Recursive[T, R]{}
}

// AsParser returns a Parser that defers to r's eventual Bind target,
// resolved at apply-time rather than at AsParser's own call time — this is
// what lets a Recursive be embedded in Seq/Disj/Map before Bind is ever
// called.
func (r *Recursive[T, R]) AsParser() Parser[T, R] {
	return Parser[T, R]{apply: func(toks []T, pos int) []candidate[R] {
		if r.bound == nil {
			panic(tagged(ErrRecursiveUnbound, "AsParser result applied before Bind"))
		}
		return r.bound.apply(toks, pos)
	}}
}

// Bind supplies r's definition. A second call returns ErrAlreadyBound
// (tfl's Recursive::operator= throwing "Recursive already defined").
func (r *Recursive[T, R]) Bind(p Parser[T, R]) error {
	if r.bound != nil {
		return tagged(ErrAlreadyBound, "this recursive parser already has a definition")
	}
	r.bound = &p
	return nil
}

// ParseAll runs the ambiguous evaluator to completion and returns the value
// of every candidate that consumed the entire token slice, duplicates
// included (tfl's
// parser_all). A Recursive exercised before Bind surfaces here as
// ErrRecursiveUnbound rather than a panic escaping to the caller.
func (p Parser[T, R]) ParseAll(toks []T) (results []R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			panic(rec)
		}
	}()

	for _, c := range p.apply(toks, 0) {
		if c.pos == len(toks) {
			results = append(results, c.value)
		}
	}
	return results, nil
}

// Parse is the unique-parse evaluator (tfl's operator()): it requires
// exactly one candidate consuming every token, failing with ErrNoParse or
// ErrAmbiguous otherwise.
func (p Parser[T, R]) Parse(toks []T) (R, error) {
	var zero R
	results, err := p.ParseAll(toks)
	if err != nil {
		return zero, err
	}
	switch len(results) {
	case 0:
		return zero, tagged(ErrNoParse, "0 matches over %d tokens", len(toks))
	case 1:
		return results[0], nil
	default:
		return zero, tagged(ErrAmbiguous, "%d matches over %d tokens", len(results), len(toks))
	}
}
