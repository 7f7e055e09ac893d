package automata

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Sentinel error kinds for the automata package (spec §7). Callers match
// with errors.Is against these; the surfaced message carries the
// "automata" tag via errorutil.NewWithTag, the same tagged-error helper
// projectdiscovery-alterx uses for its own CLI-facing errors.
var (
	ErrInvalidState = errors.New("state index out of range")
	ErrUnknownInput = errors.New("transition set on an input outside the declared alphabet")
	ErrIncomplete   = errors.New("finalize called with undefined transition cells")
)

func tagged(kind error, format string, args ...any) error {
	tagged := errorutil.NewWithTag("automata", fmt.Sprintf(format, args...))
	return fmt.Errorf("%w: %s", kind, tagged.Error())
}
