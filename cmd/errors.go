package cmd

import (
	"errors"

	"github.com/AnyUserName/icoforge-cli/internal/sizes"
)

// CLI-boundary failures. The core's own failure kinds live in their
// owning packages; these cover the file-handling glue around it.
var (
	ErrSourceNotFound    = errors.New("source not found")
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrWriteFailed       = errors.New("destination write failed")
)

// ExitCode maps a command error to the documented process exit code:
// 0 success, 1 invalid size list, 2 source not found, 3 unsupported
// source format, 4 destination write failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sizes.ErrInvalidSizeSet):
		return 1
	case errors.Is(err, ErrSourceNotFound):
		return 2
	case errors.Is(err, ErrUnsupportedFormat):
		return 3
	case errors.Is(err, ErrWriteFailed):
		return 4
	default:
		return 1
	}
}
