// internal/clibase/usage.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"abrank/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, tool flags).
func UsageCommon(fs *flag.FlagSet, name, summary string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - %s\n\n", name, summary)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out file              Output table, '-' for STDOUT [%s]\n", def("out"))
		fmt.Fprintln(out, "      --format string         csv | tsv | json | jsonl [from extension, else csv]")
		fmt.Fprintf(out, "      --top int               Rows in the console summary (0=none) [%s]\n", def("top"))
		fmt.Fprintln(out, "      --no-color              Plain console summary")

		fmt.Fprintln(out, "\nRun:")
		fmt.Fprintln(out, "      --config file           YAML config (weights, thresholds, scheme)")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintln(out, "      --log-file file         Also write JSON logs to a rotated file")
		fmt.Fprintln(out, "      --archive file          Record output tables in a SQLite run archive")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Warnings and errors only")
		fmt.Fprintln(out, "      --verbose               Debug logging")
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  ABRANK_THREADS, ABRANK_LOG_FILE, ABRANK_ARCHIVE, ABRANK_SEED, ABRANK_MIN_IPTM, ABRANK_TAU")
		fmt.Fprintln(out, "  (read from the environment or ./.env; flags win)")
	}
}

// ErrPrintedAndExitOK is returned by ParseArgs for --examples; the app
// prints the examples and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints the quickstart block of a tool.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	_, _ = fmt.Fprintf(out, "%s - quickstart\n\nExamples:\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintf(out, "\nRun '%s -h' for every flag; settings can also come from --config and ABRANK_* variables.\n", name)
}
