package fasta

import (
	"bufio"
	"io"
)

// Write serializes recs as FASTA. width > 0 wraps sequence lines at width
// residues; width <= 0 writes each sequence on one line.
func Write(w io.Writer, recs []Record, width int) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := bw.WriteString(">" + r.ID + "\n"); err != nil {
			return err
		}
		seq := r.Seq
		if width <= 0 {
			if _, err := bw.WriteString(seq + "\n"); err != nil {
				return err
			}
			continue
		}
		for len(seq) > 0 {
			n := width
			if n > len(seq) {
				n = len(seq)
			}
			if _, err := bw.WriteString(seq[:n] + "\n"); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return bw.Flush()
}
