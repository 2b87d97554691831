// internal/appcore/exit.go
package appcore

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"abrank-core/candidate"
	"abrank-core/region"
	"abrank-core/structure"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
	"abrank/internal/tables"
	"abrank/internal/version"
	"abrank/internal/writers"
)

// ErrNoResults marks a run that completed but produced no rows.
var ErrNoResults = errors.New("no results")

// Exit codes.
const (
	ExitOK        = 0
	ExitNoResults = 1
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// ExitCode maps a run error to the process exit code.
func ExitCode(err error) int {
	var cellErr *tables.CellError
	var linkErr *region.LinkerNotFoundError
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, ErrNoResults),
		errors.Is(err, candidate.ErrEmptyJoin),
		errors.Is(err, structure.ErrNoScores):
		return ExitNoResults
	case errors.Is(err, cliutil.ErrMissingInput),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, tables.ErrMissingColumn),
		errors.As(err, &cellErr),
		errors.As(err, &linkErr):
		return ExitUsage
	}
	return ExitRuntime
}

// Finish prints err (if any) to stderr and returns its exit code.
func Finish(stderr io.Writer, err error) int {
	code := ExitCode(err)
	if err != nil && code != ExitOK && code != ExitCancelled {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return code
}

// ParseFailed handles a ParseArgs error: help and examples go to stdout with
// exit 0, anything else prints the error plus usage and exits 2.
func ParseFailed(fs *flag.FlagSet, err error, stdout, stderr io.Writer) int {
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(stdout)
		fs.Usage()
		return ExitOK
	}
	_, _ = fmt.Fprintln(stderr, err)
	fs.SetOutput(stderr)
	fs.Usage()
	return ExitUsage
}

// PrintVersion prints "<name> version <v>".
func PrintVersion(stdout io.Writer, name string) int {
	if _, err := fmt.Fprintf(stdout, "%s version %s\n", name, version.Version); err != nil && !writers.IsBrokenPipe(err) {
		return ExitRuntime
	}
	return ExitOK
}
