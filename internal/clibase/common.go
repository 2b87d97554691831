// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"abrank/internal/config"
	"abrank/internal/output"
)

// Common holds CLI fields shared by every abrank tool.
type Common struct {
	// Config
	ConfigFile string

	// Output
	Out    string // table path; "-" = stdout
	Format string // csv|tsv|json|jsonl; empty infers from Out
	Top    int

	// Run
	Threads int
	LogFile string
	Archive string

	// Misc
	Quiet    bool
	Verbose  bool
	NoColor  bool
	Version  bool
	Examples bool
}

// Register wires shared flags onto fs. outDefault is the default table path.
func Register(fs *flag.FlagSet, c *Common, outDefault string) {
	fs.StringVar(&c.ConfigFile, "config", "", "YAML config file")

	fs.StringVar(&c.Out, "out", outDefault, "output table ('-' = stdout) ["+outDefault+"]")
	fs.StringVar(&c.Out, "o", outDefault, "alias of --out")
	fs.StringVar(&c.Format, "format", "", "table format: csv | tsv | json | jsonl [from extension]")
	fs.IntVar(&c.Top, "top", 5, "rows in the console summary (0=none) [5]")

	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")
	fs.StringVar(&c.LogFile, "log-file", "", "append JSON logs to this rotated file")
	fs.StringVar(&c.Archive, "archive", "", "record tables in this SQLite run archive")

	fs.BoolVar(&c.Quiet, "quiet", false, "warnings and errors only [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging on the console [false]")
	fs.BoolVar(&c.NoColor, "no-color", false, "plain console summary [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")
}

// Visited returns the names of the flags set on the command line.
func Visited(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}

// Apply copies explicitly set shared flags over cfg; unset flags leave the
// config file and environment values alone.
func (c Common) Apply(set map[string]bool, cfg *config.Config) {
	if set["threads"] || set["t"] {
		cfg.Threads = c.Threads
	}
	if set["log-file"] {
		cfg.LogFile = c.LogFile
	}
	if set["archive"] {
		cfg.Archive = c.Archive
	}
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if c.Top < 0 {
		return errors.New("--top must be >= 0")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	if c.Format != "" {
		if _, err := output.ResolveFormat(c.Format, c.Out); err != nil {
			return fmt.Errorf("invalid --format %q (want %s)", c.Format, strings.Join(output.Formats, " | "))
		}
	}
	return nil
}
