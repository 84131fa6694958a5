package cli

import (
	"errors"
	"fmt"

	"github.com/rtighilt/MARS/internal/domain"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitInput    = 2
	ExitLookup   = 3
	ExitFindings = 4
)

var (
	errUsage    = errors.New("usage")
	errFindings = errors.New("findings threshold reached")
)

func usageError(err error) error {
	return fmt.Errorf("%w: %v", errUsage, err)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errFindings):
		return ExitFindings
	case errors.Is(err, domain.ErrLookupTable):
		return ExitLookup
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrUnknownRule),
		errors.Is(err, errUsage):
		return ExitInput
	default:
		return ExitFailure
	}
}
