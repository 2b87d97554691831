// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
)

// Record is one FASTA entry. Seq is uppercase with all whitespace removed.
type Record struct {
	ID  string
	Seq string
}

// Len is the residue count.
func (r Record) Len() int { return len(r.Seq) }

// ReadFile loads every record of path.
func ReadFile(path string) ([]Record, error) {
	return ReadFileCtx(context.Background(), path)
}

// ReadFileCtx is ReadFile honoring ctx between lines.
func ReadFileCtx(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StreamPathCtx opens path and emits one Record per FASTA entry.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return fmt.Errorf("open fasta %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	if err := StreamCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
