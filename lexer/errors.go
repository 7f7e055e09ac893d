package lexer

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrNoApplicableRule is LexerNoApplicableRule (spec.md §7): at some
// position, no rule in the set matched a non-empty prefix of what remains.
var ErrNoApplicableRule = errors.New("no rule matched a non-empty prefix at this position")

// errPrefilterBuild is internal: a failure building the Aho-Corasick
// automaton degrades to "no prefilter" (NewDFALexer swallows it) rather
// than surfacing to callers, since the prefilter is purely an optimization.
var errPrefilterBuild = errors.New("literal prefilter build failed")

func tagged(kind error, format string, args ...any) error {
	msg := errorutil.NewWithTag("lexer", fmt.Sprintf(format, args...))
	return fmt.Errorf("%w: %s", kind, msg.Error())
}
