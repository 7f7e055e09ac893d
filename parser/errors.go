package parser

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

var (
	// ErrAlreadyBound is the duplicate-recursive-binding error surface
	// (spec.md §7): Recursive.Bind called a second time on the same value.
	ErrAlreadyBound = errors.New("recursive parser already bound")

	// ErrRecursiveUnbound plays the role of tfl::Recursion's "Parser
	// expired" exception: a Recursive's AsParser() was exercised before
	// Bind supplied its definition. Go has no weak-pointer analog for a
	// freed parser, so this is the one way the same failure mode surfaces
	// here — using the reference before it has a definition.
	ErrRecursiveUnbound = errors.New("recursive parser used before it was bound")

	// ErrNoParse and ErrAmbiguous are spec.md §7's "parser no-parse /
	// ambiguous" pair: Parse requires exactly one candidate that consumes
	// every token.
	ErrNoParse  = errors.New("no parse consumed the entire input")
	ErrAmbiguous = errors.New("input parses ambiguously")
)

func tagged(kind error, format string, args ...any) error {
	msg := errorutil.NewWithTag("parser", fmt.Sprintf(format, args...))
	return fmt.Errorf("%w: %s", kind, msg.Error())
}
