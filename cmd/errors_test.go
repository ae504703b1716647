package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AnyUserName/icoforge-cli/internal/sizes"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{sizes.ErrInvalidSizeSet, 1},
		{fmt.Errorf("normalize: %w", sizes.ErrInvalidSizeSet), 1},
		{ErrSourceNotFound, 2},
		{fmt.Errorf("%w: /no/such.png", ErrSourceNotFound), 2},
		{ErrUnsupportedFormat, 3},
		{ErrWriteFailed, 4},
		{errors.New("anything else"), 1},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
