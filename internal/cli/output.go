package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
)

// Process exit statuses of the popdb command.
const (
	ExitOK     = 0
	ExitFailed = 1 // the library loaded but an operation on it failed
	ExitUsage  = 2 // bad flags or configuration, or no loadable library
)

// ExitError pins the exit status for Err. Op names the step that failed and
// prefixes the message.
type ExitError struct {
	Code int
	Op   string
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(op string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Op: op, Err: err}
}

// ExitCode returns the status popdb exits with for err. An ExitError carries
// its own; otherwise configuration and library loading errors are usage
// errors and anything else is a failure.
func ExitCode(err error) int {
	var ee *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, popdb.ErrInvalidConfig),
		errors.Is(err, popdb.ErrLibraryNotFound),
		errors.Is(err, popdb.ErrSymbolNotFound):
		return ExitUsage
	default:
		return ExitFailed
	}
}

// usageArgs turns a failed positional argument check into a usage error.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(cmd.CommandPath(), err)
		}
		return nil
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
