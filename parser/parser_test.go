package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digit(x rune) bool { return x >= '0' && x <= '9' }

func TestElemSeqMapBasics(t *testing.T) {
	p := Map(Seq(Elem(digit), Elem(digit)), func(pr Pair[rune, rune]) string {
		return string([]rune{pr.First, pr.Second})
	})

	v, err := p.Parse([]rune("12"))
	require.NoError(t, err)
	assert.Equal(t, "12", v)

	_, err = p.Parse([]rune("1"))
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestDisjTriesBothAlternatives(t *testing.T) {
	p := Disj(ElemEq(rune('a')), ElemEq(rune('b')))

	v, err := p.Parse([]rune("a"))
	require.NoError(t, err)
	assert.Equal(t, 'a', v)

	v, err = p.Parse([]rune("b"))
	require.NoError(t, err)
	assert.Equal(t, 'b', v)

	_, err = p.Parse([]rune("c"))
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestEpsilonConsumesNothing(t *testing.T) {
	p := Epsilon[rune, int](42)
	v, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

// invariant 12: parser_all(p1|p2, w) = parser_all(p1,w) ∪ parser_all(p2,w)
// as multisets.
func TestInvariant12DisjIsUnionOfParserAll(t *testing.T) {
	p1 := Map(Seq(Elem(digit), Elem(digit)), func(pr Pair[rune, rune]) string { return string([]rune{pr.First, pr.Second}) })
	p2 := Map(Elem(digit), func(r rune) string { return string(r) + "!" })

	combined := Disj(p1, p2)

	w := []rune("12")
	all1, err := p1.ParseAll(w)
	require.NoError(t, err)
	all2, err := p2.ParseAll(w)
	require.NoError(t, err)
	allCombined, err := combined.ParseAll(w)
	require.NoError(t, err)

	want := append(append([]string{}, all1...), all2...)
	sort.Strings(want)
	got := append([]string{}, allCombined...)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestRecursiveUnboundPanatsAsError(t *testing.T) {
	rec := NewRecursive[rune, int]()
	p := rec.AsParser()

	_, err := p.ParseAll([]rune("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecursiveUnbound)
}

func TestRecursiveDoubleBindFails(t *testing.T) {
	rec := NewRecursive[rune, int]()
	require.NoError(t, rec.Bind(Epsilon[rune, int](1)))
	err := rec.Bind(Epsilon[rune, int](2))
	assert.ErrorIs(t, err, ErrAlreadyBound)
}

// scenario H: p = eps(0) | (any & p).map(sum), on [1,10,100], parser_all
// returns {111}.
func TestScenarioHParserAmbiguity(t *testing.T) {
	rec := NewRecursive[int, int]()
	any_ := Elem(func(int) bool { return true })
	body := Disj(
		Epsilon[int, int](0),
		Map(Seq(any_, rec.AsParser()), func(pr Pair[int, int]) int { return pr.First + pr.Second }),
	)
	require.NoError(t, rec.Bind(body))

	results, err := rec.AsParser().ParseAll([]int{1, 10, 100})
	require.NoError(t, err)
	require.Equal(t, []int{111}, results)

	v, err := rec.AsParser().Parse([]int{1, 10, 100})
	require.NoError(t, err)
	assert.Equal(t, 111, v)
}

func TestAmbiguousGrammarReportsErrAmbiguous(t *testing.T) {
	// Both disjuncts map the same Elem, so "a" has two genuinely distinct
	// derivations of the same full-length parse.
	a := ElemEq(rune('a'))
	twoWays := Disj(Map(a, func(r rune) string { return "x" }), Map(a, func(r rune) string { return "y" }))

	_, err := twoWays.Parse([]rune("a"))
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestOpt(t *testing.T) {
	p := Opt(ElemEq(rune('a')))

	v, err := p.Parse([]rune("a"))
	require.NoError(t, err)
	assert.True(t, v.Present)
	assert.Equal(t, 'a', v.Value)

	v, err = p.Parse(nil)
	require.NoError(t, err)
	assert.False(t, v.Present)
}

func TestMany1RequiresAtLeastOne(t *testing.T) {
	p := Many1(Elem(digit))

	v, err := p.Parse([]rune("123"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	_, err = p.Parse(nil)
	assert.ErrorIs(t, err, ErrNoParse)
}

func TestManyAcceptsEmpty(t *testing.T) {
	p := Many(Elem(digit))

	v, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = p.Parse([]rune("42"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'4', '2'}, v)
}

func TestRepSepAndRepSep1(t *testing.T) {
	elem := Elem(digit)
	comma := ElemEq(rune(','))

	p := RepSep1(elem, comma)
	v, err := p.Parse([]rune("1,2,3"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	empty := RepSep(elem, comma)
	v, err = empty.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestEither(t *testing.T) {
	num := AsAny(Elem(digit))
	paren := AsAny(ElemEq(rune('(')))

	p := Either[rune](num, paren)

	v, err := p.Parse([]rune("5"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Index)
	assert.Equal(t, rune('5'), v.Value)

	v, err = p.Parse([]rune("("))
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index)
}
