package region

import "fmt"

// DefaultMinLinker is the shortest G/S/P run accepted as an scFv linker.
const DefaultMinLinker = 12

// Split is a single-chain construct cut at its linker.
type Split struct {
	Prefix string // VH
	Linker string
	Suffix string // VL
}

// LinkerNotFoundError reports that no linker run reached the minimum length.
type LinkerNotFoundError struct {
	Longest int
	Min     int
}

func (e *LinkerNotFoundError) Error() string {
	return fmt.Sprintf("linker not found: longest G/S/P run is %d, need >= %d", e.Longest, e.Min)
}

func isLinkerResidue(c byte) bool { return c == 'G' || c == 'S' || c == 'P' }

// SplitChain cuts seq at the longest maximal run of G/S/P residues. Ties go
// to the leftmost run. A run shorter than minLinker fails with
// *LinkerNotFoundError.
func SplitChain(seq string, minLinker int) (Split, error) {
	bestStart, bestLen := -1, 0
	n := len(seq)
	for i := 0; i < n; {
		if !isLinkerResidue(seq[i]) {
			i++
			continue
		}
		j := i
		for j < n && isLinkerResidue(seq[j]) {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen < minLinker || bestStart < 0 {
		return Split{}, &LinkerNotFoundError{Longest: bestLen, Min: minLinker}
	}
	end := bestStart + bestLen
	return Split{
		Prefix: seq[:bestStart],
		Linker: seq[bestStart:end],
		Suffix: seq[end:],
	}, nil
}
