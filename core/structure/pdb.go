package structure

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Chain is one polymer chain of a model, in file order.
type Chain struct {
	Label    string
	Residues int
}

// ChainLengths counts residues per chain from PDB ATOM records. Only CA atoms
// count, each unique (chain, resSeq, iCode) once. A blank chain label is
// reported as "_".
func ChainLengths(r io.Reader) ([]Chain, error) {
	type resKey struct{ chain, seq, icode string }
	seen := make(map[resKey]struct{})
	pos := make(map[string]int)
	var out []Chain

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ATOM") || len(line) < 27 {
			continue
		}
		if strings.TrimSpace(line[12:16]) != "CA" {
			continue
		}
		chain := strings.TrimSpace(line[21:22])
		if chain == "" {
			chain = "_"
		}
		k := resKey{chain, strings.TrimSpace(line[22:26]), strings.TrimSpace(line[26:27])}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		i, ok := pos[chain]
		if !ok {
			i = len(out)
			pos[chain] = i
			out = append(out, Chain{Label: chain})
		}
		out[i].Residues++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pdb: %w", err)
	}
	return out, nil
}

// FormatChains renders chains as "A:120;B:110".
func FormatChains(cs []Chain) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%s:%d", c.Label, c.Residues)
	}
	return strings.Join(parts, ";")
}
