// Package lexer implements the maximal-munch tokenizer of spec.md §4.4: an
// ordered rule set (matcher plus action) is run in lockstep over a
// buffer.InputBuffer, the longest non-empty match wins with ties broken by
// declaration order, and a dedicated newline matcher tracks line/column
// independently of token content.
//
// Two lexer flavors share this loop shape, mirroring spec.md's "DFA lexer"
// vs "derivation lexer": DFALexer compiles every rule's regex.Regex to a
// compile.Compile'd automata.DFA once, at construction time, and steps
// DFA.Transition per symbol; DerivationLexer instead steps regex.Derive
// directly against the rule's regex.Regex, recompiling no automaton but
// paying a derivative per symbol per rule — the "educational/slow" path
// spec.md §9 explicitly accepts as correctness-over-performance.
package lexer

import (
	"github.com/shadowCow/textfront/automata"
	"github.com/shadowCow/textfront/buffer"
	"github.com/shadowCow/textfront/compile"
	"github.com/shadowCow/textfront/regex"
)

// Token is a single lexer output: a value produced by a rule's action,
// tagged with the line and column its match began at (spec.md §4.4: "A
// token bears (line, column, value)").
type Token[R any] struct {
	Value  R
	Line   int
	Column int
}

// RuleDef declares one lexer rule in priority order: Pattern is matched
// against the buffered input, and on the longest match Map converts the
// matched symbols into a token value. Literal, when non-nil, names the
// exact sequence Pattern matches and nothing else — declaring this lets
// NewDFALexer register the rule with the literal prefilter (§6.3) instead
// of only the general per-rule DFA walk; it is the caller's responsibility
// to keep Literal and Pattern consistent (e.g. a keyword built with
// regex.Word("if") declares Literal: []rune("if")).
type RuleDef[T comparable, R any] struct {
	Name    string
	Pattern regex.Regex[T]
	Literal []T
	Map     func(matched []T) R
}

// advancePosition applies one token's worth of line/column movement. When
// the newline matcher accepts a non-empty prefix of the token's text
// (newlineLen > 0), the line counts up once and the column becomes 1 plus
// the length of the text after that prefix; newlines elsewhere in the
// token are not counted. Both lexer
// flavors share this since position tracking doesn't depend on how a rule's
// own match was computed.
func advancePosition(line, col, tokenLen, newlineLen int) (int, int) {
	if newlineLen > 0 {
		return line + 1, 1 + (tokenLen - newlineLen)
	}
	return line, col + tokenLen
}

// ---- DFA lexer ---------------------------------------------------------

type dfaRule[T comparable, R any] struct {
	name string
	dfa  automata.DFA[T]
	mp   func([]T) R
}

// DFALexer compiles every rule to a DFA once, then drives all of them (plus
// the literal prefilter, when any rule declared one) in lockstep per
// position, as spec.md §4.4 describes.
type DFALexer[T comparable, R any] struct {
	rules     []dfaRule[T, R]
	newline   automata.DFA[T]
	prefilter *literalPrefilter[T]
}

// NewDFALexer compiles rules (in declaration/priority order) and newline to
// DFA[T] over alphabet, and wires rules whose Literal field is set into an
// Aho-Corasick prefilter (spec.md §6.3 / SPEC_FULL.md §6.3). toBytes lets
// the caller supply how T encodes to bytes for that automaton; pass nil to
// disable the prefilter entirely (correctness is unaffected either way).
func NewDFALexer[T comparable, R any](rules []RuleDef[T, R], newline regex.Regex[T], alphabet []T, toBytes func([]T) []byte) *DFALexer[T, R] {
	lx := &DFALexer[T, R]{
		rules:   make([]dfaRule[T, R], len(rules)),
		newline: compile.Compile(newline, alphabet),
	}
	var literals []literalEntry
	for i, rd := range rules {
		lx.rules[i] = dfaRule[T, R]{name: rd.Name, dfa: compile.Compile(rd.Pattern, alphabet), mp: rd.Map}
		if rd.Literal != nil && toBytes != nil {
			literals = append(literals, literalEntry{ruleIdx: i, bytes: toBytes(rd.Literal)})
		}
	}
	if len(literals) > 0 {
		if pf, err := buildLiteralPrefilter[T](literals); err == nil {
			lx.prefilter = pf
		}
	}
	return lx
}

// Apply runs the maximal-munch loop to exhaustion, returning every token
// produced, in order.
func (lx *DFALexer[T, R]) Apply(buf *buffer.InputBuffer[T]) ([]Token[R], error) {
	var tokens []Token[R]
	line, col := 1, 1

	for !(buf.ConsumedAll() && buf.BufferedLen() == 0) {
		skipLiteral := lx.prefilter != nil && !lx.prefilter.mayMatch(buf)

		n := len(lx.rules)
		states := make([]int, n)
		alive := make([]bool, n)
		bestLen := make([]int, n)
		for i := range lx.rules {
			if skipLiteral && lx.prefilter.isLiteralRule(i) {
				bestLen[i] = -1
				continue
			}
			alive[i] = true
			bestLen[i] = -1
			if lx.rules[i].dfa.IsAccepting(0) {
				bestLen[i] = 0
			}
		}

		idx := 0
		for {
			anyAlive := false
			for i := range alive {
				if alive[i] {
					anyAlive = true
					break
				}
			}
			if !anyAlive {
				break
			}
			x, err := buf.At(idx)
			if err != nil {
				break
			}
			for i := range lx.rules {
				if !alive[i] {
					continue
				}
				next := lx.rules[i].dfa.Transition(states[i], x)
				if next == automata.DeadState {
					alive[i] = false
					continue
				}
				states[i] = next
				if lx.rules[i].dfa.IsAccepting(next) {
					bestLen[i] = idx + 1
				}
			}
			idx++
		}

		winner, winnerLen := -1, 0
		for i, l := range bestLen {
			if l > 0 && l > winnerLen {
				winner, winnerLen = i, l
			}
		}
		if winner == -1 {
			return tokens, tagged(ErrNoApplicableRule, "no rule matched at line %d, column %d", line, col)
		}

		matched := make([]T, winnerLen)
		for i := 0; i < winnerLen; i++ {
			v, _ := buf.At(i)
			matched[i] = v
		}
		tokens = append(tokens, Token[R]{Value: lx.rules[winner].mp(matched), Line: line, Column: col})

		nlLen, _ := lx.newline.Munch(matched)
		line, col = advancePosition(line, col, winnerLen, nlLen)

		if err := buf.Release(winnerLen); err != nil {
			return tokens, err
		}
	}

	return tokens, nil
}

// ---- derivation lexer ---------------------------------------------------

type derivationRule[T comparable, R any] struct {
	name    string
	pattern regex.Regex[T]
	mp      func([]T) R
}

// DerivationLexer keeps every rule as a regex.Regex and steps its
// derivative one symbol at a time instead of precompiling a DFA; this is
// spec.md §4.4's "derivation lexer", kept purely for its educational value
// and the cases where compiling every rule upfront is wasted work for a
// one-shot, short input.
type DerivationLexer[T comparable, R any] struct {
	rules   []derivationRule[T, R]
	newline regex.Regex[T]
}

func NewDerivationLexer[T comparable, R any](rules []RuleDef[T, R], newline regex.Regex[T]) *DerivationLexer[T, R] {
	lx := &DerivationLexer[T, R]{rules: make([]derivationRule[T, R], len(rules)), newline: newline}
	for i, rd := range rules {
		lx.rules[i] = derivationRule[T, R]{name: rd.Name, pattern: rd.Pattern, mp: rd.Map}
	}
	return lx
}

func (lx *DerivationLexer[T, R]) Apply(buf *buffer.InputBuffer[T]) ([]Token[R], error) {
	var tokens []Token[R]
	line, col := 1, 1

	for !(buf.ConsumedAll() && buf.BufferedLen() == 0) {
		n := len(lx.rules)
		cur := make([]regex.Regex[T], n)
		alive := make([]bool, n)
		bestLen := make([]int, n)
		for i := range lx.rules {
			cur[i] = lx.rules[i].pattern
			alive[i] = true
			bestLen[i] = -1
			if regex.Nullable(cur[i]) {
				bestLen[i] = 0
			}
		}

		idx := 0
		for {
			anyAlive := false
			for i := range alive {
				if alive[i] {
					anyAlive = true
					break
				}
			}
			if !anyAlive {
				break
			}
			x, err := buf.At(idx)
			if err != nil {
				break
			}
			for i := range lx.rules {
				if !alive[i] {
					continue
				}
				cur[i] = regex.Derive(x, cur[i])
				if regex.IsEmpty(cur[i]) {
					alive[i] = false
					continue
				}
				if regex.Nullable(cur[i]) {
					bestLen[i] = idx + 1
				}
			}
			idx++
		}

		winner, winnerLen := -1, 0
		for i, l := range bestLen {
			if l > 0 && l > winnerLen {
				winner, winnerLen = i, l
			}
		}
		if winner == -1 {
			return tokens, tagged(ErrNoApplicableRule, "no rule matched at line %d, column %d", line, col)
		}

		matched := make([]T, winnerLen)
		for i := 0; i < winnerLen; i++ {
			v, _ := buf.At(i)
			matched[i] = v
		}
		tokens = append(tokens, Token[R]{Value: lx.rules[winner].mp(matched), Line: line, Column: col})

		nlLen := maximalDerive(lx.newline, matched)
		line, col = advancePosition(line, col, winnerLen, nlLen)

		if err := buf.Release(winnerLen); err != nil {
			return tokens, err
		}
	}

	return tokens, nil
}

// maximalDerive is regex.Regex's equivalent of DFA.Munch: the length of the
// longest prefix of w the regex accepts, or 0 if none (including the empty
// prefix) does.
func maximalDerive[T comparable](r regex.Regex[T], w []T) int {
	best := 0
	if regex.Nullable(r) {
		best = 0
	} else {
		best = -1
	}
	cur := r
	for i, x := range w {
		cur = regex.Derive(x, cur)
		if regex.Nullable(cur) {
			best = i + 1
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
