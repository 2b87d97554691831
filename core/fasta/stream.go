// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamCtx parses FASTA from r and calls emit once per record, in file order.
// Sequence lines are concatenated until the next header; whitespace is
// dropped and residues are uppercased. Lines before the first header are
// ignored. A header without sequence lines yields an empty Seq.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id     string
		inRec  bool
		seqBuf = make([]byte, 0, 1024)
	)

	flush := func() error {
		if !inRec {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seqBuf)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			inRec = true
			seqBuf = seqBuf[:0]
			continue
		}
		if !inRec {
			continue
		}
		for _, c := range line {
			if c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f' {
				continue
			}
			if 'a' <= c && c <= 'z' {
				c -= 'a' - 'A'
			}
			seqBuf = append(seqBuf, c)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamFromReader is StreamCtx with a background context.
func StreamFromReader(r io.Reader, emit func(Record) error) error {
	return StreamCtx(context.Background(), r, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
