package render

import (
	"errors"
	"fmt"
)

// ErrRender is the single error kind produced by a rendering pass. Every
// fatal condition wraps it with a human readable message - callers are
// expected to treat any such error as "this document failed to render" with
// no partial output.
var ErrRender = errors.New("rendering error")

func renderErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRender, fmt.Sprintf(format, args...))
}
