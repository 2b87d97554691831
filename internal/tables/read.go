package tables

import (
	"fmt"
	"strconv"
	"strings"

	"abrank-core/liability"
	"abrank-core/library"
	"abrank-core/rank"
	"abrank-core/solubility"
	"abrank-core/structure"

	"abrank/internal/output"
)

func ReadSolubility(path string) ([]solubility.Result, error) {
	var out []solubility.Result
	err := each(path, func(r row) error {
		if err := r.s.require(output.ColID, output.ColSolubilityScore); err != nil {
			return err
		}
		c := collector{r: r}
		res := solubility.Result{
			ID:                 r.str(output.ColID),
			Length:             c.int(output.ColLength),
			MeanHydrophobicity: c.float(output.ColMeanHydrophobicity),
			NetChargeProxy:     c.float(output.ColNetChargeProxy),
			FracAromatic:       c.float(output.ColFracAromatic),
			FracHydrophobic:    c.float(output.ColFracHydrophobic),
			Score:              c.float(output.ColSolubilityScore),
		}
		if c.err != nil {
			return c.err
		}
		out = append(out, res)
		return nil
	})
	return out, err
}

var liabilityFixed = map[string]bool{
	output.ColID: true, output.ColSplitOK: true, output.ColLengthCDR: true, output.ColLiabilityRiskCDR: true,
}

// ReadLiability reads the liability table. Every column past the fixed
// ones is a motif count.
func ReadLiability(path string) ([]liability.Result, error) {
	var out []liability.Result
	err := each(path, func(r row) error {
		if err := r.s.require(output.ColID, output.ColLiabilityRiskCDR); err != nil {
			return err
		}
		c := collector{r: r}
		res := liability.Result{
			ID:        r.str(output.ColID),
			SplitOK:   c.bool(output.ColSplitOK),
			LengthCDR: c.int(output.ColLengthCDR),
			Risk:      c.float(output.ColLiabilityRiskCDR),
			Counts:    liability.Counts{},
		}
		for _, h := range r.s.head {
			if liabilityFixed[h] {
				continue
			}
			if n := c.int(h); n != 0 {
				res.Counts[h] = n
			}
		}
		if c.err != nil {
			return c.err
		}
		out = append(out, res)
		return nil
	})
	return out, err
}

func ReadStructure(path string) ([]structure.Summary, error) {
	var out []structure.Summary
	err := each(path, func(r row) error {
		if err := r.s.require(output.ColID, output.ColMeanPLDDT, output.ColFWPLDDT, output.ColCDRPLDDT); err != nil {
			return err
		}
		c := collector{r: r}
		s := structure.Summary{
			ID:        r.str(output.ColID),
			ScoreFile: r.str(output.ColScoreFile),
			Confidence: structure.Confidence{
				Mean: c.float(output.ColMeanPLDDT),
				FW:   c.float(output.ColFWPLDDT),
				CDR:  c.float(output.ColCDRPLDDT),
				Min:  c.float(output.ColMinPLDDT),
				Max:  c.float(output.ColMaxPLDDT),
			},
			PTM:               c.optFloat(output.ColPTM),
			IPTM:              c.optFloat(output.ColIPTM),
			IPTMPlusPTM:       c.optFloat(output.ColIPTMPlusPTM),
			RankingConfidence: c.optFloat(output.ColRankingConfidence),
			MaxPAE:            c.optFloat(output.ColMaxPAE),
		}
		if c.err != nil {
			return c.err
		}
		out = append(out, s)
		return nil
	})
	return out, err
}

func ReadDocking(path string) ([]structure.DockingSummary, error) {
	var out []structure.DockingSummary
	err := each(path, func(r row) error {
		if err := r.s.require(output.ColCandidateID, output.ColIPTM); err != nil {
			return err
		}
		c := collector{r: r}
		d := structure.DockingSummary{
			CandidateID:      r.str(output.ColCandidateID),
			PLDDT:            c.optFloat(output.ColPLDDT),
			PTM:              c.optFloat(output.ColPTM),
			IPTM:             c.optFloat(output.ColIPTM),
			MeanInterfacePAE: c.optFloat(output.ColMeanInterfacePAE),
			PDBPath:          r.str(output.ColPDBPath),
		}
		chains, err := ParseChains(r.str(output.ColChainLengths))
		if err != nil {
			c.keep(r.cellErr(output.ColChainLengths, err))
		}
		d.Chains = chains
		if c.err != nil {
			return c.err
		}
		out = append(out, d)
		return nil
	})
	return out, err
}

// ParseChains reverses structure.FormatChains ("A:120;B:107").
func ParseChains(s string) ([]structure.Chain, error) {
	if s == "" {
		return nil, nil
	}
	var out []structure.Chain
	for _, part := range strings.Split(s, ";") {
		label, n, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid chain entry %q", part)
		}
		v, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("invalid chain length %q", part)
		}
		out = append(out, structure.Chain{Label: label, Residues: v})
	}
	return out, nil
}

// ReadDev reads a developability table for the final ranking. The id is
// taken from candidate_id, falling back to id.
func ReadDev(path, devCol string) ([]rank.DevRow, error) {
	var out []rank.DevRow
	err := each(path, func(r row) error {
		idCol := output.ColCandidateID
		if !r.s.has(idCol) {
			idCol = output.ColID
		}
		if err := r.s.require(idCol, devCol); err != nil {
			return err
		}
		c := collector{r: r}
		d := rank.DevRow{
			ID:            r.str(idCol),
			Score:         c.float(devCol),
			LiabilityRisk: c.optFloat(output.ColLiabilityRiskCDR),
			Solubility:    c.optFloat(output.ColSolubilityScore),
		}
		if c.err != nil {
			return c.err
		}
		out = append(out, d)
		return nil
	})
	return out, err
}

// ReadDomains reads an id, vh_seq, vl_seq table.
func ReadDomains(path string) ([]library.Domains, error) {
	var out []library.Domains
	err := each(path, func(r row) error {
		if err := r.s.require(output.ColID, output.ColVHSeq, output.ColVLSeq); err != nil {
			return err
		}
		out = append(out, library.Domains{
			ID:     r.str(output.ColID),
			VH:     strings.ToUpper(r.str(output.ColVHSeq)),
			VL:     strings.ToUpper(r.str(output.ColVLSeq)),
			Linker: r.str(output.ColLinker),
		})
		return nil
	})
	return out, err
}
