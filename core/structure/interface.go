package structure

// TargetLast selects the last chain as the interface target.
const TargetLast = ""

// InterfacePAE averages the PAE over both off-diagonal blocks between the
// target chain and every other chain: partner rows x target columns plus
// target rows x partner columns. Chains occupy consecutive matrix indices
// in the given order. target names a chain label; TargetLast picks the
// last chain. ok is false with fewer than two chains, a missing matrix, an
// unknown target, or chain blocks running past the matrix.
func InterfacePAE(pae [][]float64, chains []Chain, target string) (float64, bool) {
	if len(chains) < 2 || len(pae) == 0 {
		return 0, false
	}
	type span struct{ from, to int }
	spans := make([]span, len(chains))
	start := 0
	for i, c := range chains {
		spans[i] = span{start, start + c.Residues}
		start += c.Residues
	}
	if start > len(pae) {
		return 0, false
	}
	for _, row := range pae[:start] {
		if len(row) < start {
			return 0, false
		}
	}

	ti := len(chains) - 1
	if target != TargetLast {
		ti = -1
		for i, c := range chains {
			if c.Label == target {
				ti = i
				break
			}
		}
		if ti < 0 {
			return 0, false
		}
	}
	tg := spans[ti]

	var sum float64
	var n int
	for pi, p := range spans {
		if pi == ti {
			continue
		}
		for i := p.from; i < p.to; i++ {
			for j := tg.from; j < tg.to; j++ {
				sum += pae[i][j]
				n++
			}
		}
		for i := tg.from; i < tg.to; i++ {
			for j := p.from; j < p.to; j++ {
				sum += pae[i][j]
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
