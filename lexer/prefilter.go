package lexer

import (
	"github.com/coregx/ahocorasick"
)

// literalEntry is one literal rule's byte encoding, keyed back to its index
// in the owning DFALexer's rule slice.
type literalEntry struct {
	ruleIdx int
	bytes   []byte
}

// literalPrefilter wires github.com/coregx/ahocorasick — the same "literal
// engine bypass" coregx-coregex's meta engine reaches for once an
// alternation grows past Teddy's pattern limit — into the lexer's hot loop
// as a cheap, purely advisory pre-check (SPEC_FULL.md §6.3): one
// Aho-Corasick automaton is built over every rule's declared literal text,
// and mayMatch reports whether ANY of them could possibly start at the
// current buffer position. When it reports false, the maximal-munch loop
// skips stepping every literal rule's DFA entirely; when it reports true
// (or the probe itself is inconclusive), the loop falls back to the normal
// lockstep per-rule DFA walk, which remains the sole source of truth for which
// literal rule actually won and how long its match is. This can only make
// the loop skip work it would have wasted anyway — it never changes which
// rule wins or the length of its match.
type literalPrefilter[T comparable] struct {
	automaton *ahocorasick.Automaton
	isLiteral []bool
	// probeLen is the longest literal's encoded length in bytes; mayMatch
	// reads that many T-units, and since each byte or rune symbol encodes
	// to at least one byte, the window covers the longest pattern. It must
	// cover at least the longest pattern, or a real
	// match starting at offset 0 could be missed by reading too little —
	// the one case this filter must never get wrong (a false negative
	// would silently drop a literal rule that should have won).
	probeLen int
}

func buildLiteralPrefilter[T comparable](entries []literalEntry) (*literalPrefilter[T], error) {
	builder := ahocorasick.NewBuilder()
	maxLen := 0
	maxRule := 0
	for _, e := range entries {
		builder.AddPattern(e.bytes)
		if len(e.bytes) > maxLen {
			maxLen = len(e.bytes)
		}
		if e.ruleIdx+1 > maxRule {
			maxRule = e.ruleIdx + 1
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, tagged(errPrefilterBuild, "%v", err)
	}

	isLiteral := make([]bool, maxRule)
	for _, e := range entries {
		isLiteral[e.ruleIdx] = true
	}

	return &literalPrefilter[T]{automaton: auto, isLiteral: isLiteral, probeLen: maxLen}, nil
}

func (p *literalPrefilter[T]) isLiteralRule(i int) bool {
	return i < len(p.isLiteral) && p.isLiteral[i]
}

// mayMatch probes the buffer's currently-available window at offset 0 and
// reports whether the automaton found a match starting there. It only
// pulls as many symbols as are already buffered or cheaply available
// through At; any probing failure (e.g. the window is shorter than every
// pattern) is treated as "inconclusive" and answered true, since saying
// "maybe" is always safe here — only a false positive is tolerated, never a
// false negative.
func (p *literalPrefilter[T]) mayMatch(buf interface{ At(int) (T, error) }) bool {
	window := make([]byte, 0, p.probeLen)
	for i := 0; i < p.probeLen; i++ {
		v, err := buf.At(i)
		if err != nil {
			return true
		}
		b, ok := any(v).(byte)
		if !ok {
			if r, ok := any(v).(rune); ok {
				window = append(window, []byte(string(r))...)
				continue
			}
			return true
		}
		window = append(window, b)
	}
	m := p.automaton.Find(window, 0)
	return m != nil && m.Start == 0
}
