package lexer

import "github.com/shadowCow/textfront/buffer"

// Lexer is the common surface of DFALexer and DerivationLexer: apply to a
// buffer, get back a positioned token stream (spec.md §4.4: "apply(buffer)
// → sequence of positioned tokens"). Map and Filter wrap any Lexer in
// another, so a map/filter pipeline composes regardless of which flavor
// sits underneath (spec.md: "these compose (each is a lexer stage wrapping
// another)").
type Lexer[T comparable, R any] interface {
	Apply(buf *buffer.InputBuffer[T]) ([]Token[R], error)
}

type mapLexer[T comparable, R, S any] struct {
	inner Lexer[T, R]
	f     func(R) S
}

// Map returns a Lexer producing f(value) for every token inner produces,
// preserving position.
func Map[T comparable, R, S any](inner Lexer[T, R], f func(R) S) Lexer[T, S] {
	return mapLexer[T, R, S]{inner: inner, f: f}
}

func (m mapLexer[T, R, S]) Apply(buf *buffer.InputBuffer[T]) ([]Token[S], error) {
	toks, err := m.inner.Apply(buf)
	out := make([]Token[S], len(toks))
	for i, t := range toks {
		out[i] = Token[S]{Value: m.f(t.Value), Line: t.Line, Column: t.Column}
	}
	return out, err
}

type filterLexer[T comparable, R any] struct {
	inner Lexer[T, R]
	pred  func(R) bool
}

// Filter returns a Lexer that discards every token inner produces for which
// pred is false — the usual way to drop whitespace/comment tokens after
// lexing rather than special-casing them in the rule set.
func Filter[T comparable, R any](inner Lexer[T, R], pred func(R) bool) Lexer[T, R] {
	return filterLexer[T, R]{inner: inner, pred: pred}
}

func (f filterLexer[T, R]) Apply(buf *buffer.InputBuffer[T]) ([]Token[R], error) {
	toks, err := f.inner.Apply(buf)
	out := toks[:0]
	for _, t := range toks {
		if f.pred(t.Value) {
			out = append(out, t)
		}
	}
	return out, err
}
