package buffer

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrExhausted is the sentinel kind for indexing past the end of the
// source, or releasing more values than are currently buffered (spec.md §7
// BufferExhausted).
var ErrExhausted = errors.New("buffer exhausted")

func tagged(kind error, format string, args ...any) error {
	msg := errorutil.NewWithTag("buffer", fmt.Sprintf(format, args...))
	return fmt.Errorf("%w: %s", kind, msg.Error())
}
