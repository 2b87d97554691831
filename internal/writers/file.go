package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"abrank/internal/output"
)

// IsBrokenPipe reports a reader on stdout (head, less) that went away
// before the table was written in full.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// IsStdout reports whether path names standard output.
func IsStdout(path string) bool { return path == "" || path == "-" }

// WriteFile writes data through fn to path. The content lands in a temporary
// file in the same directory that is renamed over path on success, so a
// failed run never leaves a truncated table behind. "-" or "" writes to
// stdout.
func WriteFile(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if IsStdout(path) {
		bw := bufio.NewWriter(stdout)
		if err := fn(bw); err != nil {
			return err
		}
		return bw.Flush()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// WriteTableFile resolves the format for path and writes t there.
func WriteTableFile(path, format string, stdout io.Writer, t output.Table) error {
	f, err := output.ResolveFormat(format, path)
	if err != nil {
		return err
	}
	return WriteFile(path, stdout, func(w io.Writer) error {
		return WriteTable(f, w, t)
	})
}
