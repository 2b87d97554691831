package output

import (
	"abrank-core/aggregate"
	"abrank-core/rank"

	"abrank/pkg/api"
)

// CandidateTable renders ranked candidates.
func CandidateTable(cs []aggregate.Candidate, motifs []string) Table {
	t := Table{Columns: CandidateColumns(motifs)}
	for _, c := range cs {
		s, sol, lia := c.Structure, c.Solubility, c.Liability
		cells := []string{
			c.ID, Float(s.Mean), Float(s.FW), Float(s.CDR), Float(s.Min), Float(s.Max),
			OptFloat(s.PTM), OptFloat(s.IPTM),
			Float(sol.Score), Int(sol.Length), Float(sol.MeanHydrophobicity), Float(sol.NetChargeProxy),
			Float(sol.FracAromatic), Float(sol.FracHydrophobic),
			Bool01(lia.SplitOK), Int(lia.LengthCDR), Float(lia.Risk),
		}
		cells = append(cells, motifCells(lia.Counts, motifs)...)
		cells = append(cells, Float(c.StructScore), Float(c.StabilityScore), Float(c.DCS))
		t.add(api.CandidateV1{
			ID: c.ID, MeanPLDDT: s.Mean, FWPLDDT: s.FW, CDRPLDDT: s.CDR, MinPLDDT: s.Min, MaxPLDDT: s.Max,
			PTM: s.PTM, IPTM: s.IPTM,
			SolubilityScore: sol.Score, Length: sol.Length, MeanHydrophobicity: sol.MeanHydrophobicity,
			NetChargeProxy: sol.NetChargeProxy, FracAromatic: sol.FracAromatic, FracHydrophobic: sol.FracHydrophobic,
			SplitOK: lia.SplitOK, LengthCDR: lia.LengthCDR, LiabilityRiskCDR: lia.Risk,
			Motifs:      motifMap(lia.Counts, motifs),
			StructScore: c.StructScore, StabilityScore: c.StabilityScore, DCS: c.DCS,
		}, cells...)
	}
	return t
}

// FinalTable renders the final ranking. The optional liability and
// solubility columns appear when any row carries them.
func FinalTable(rows []rank.Row, devCol string) Table {
	withLia, withSol := false, false
	for _, r := range rows {
		withLia = withLia || r.LiabilityRisk != nil
		withSol = withSol || r.Solubility != nil
	}
	t := Table{Columns: FinalColumns(devCol, withLia, withSol)}
	for _, r := range rows {
		cells := []string{Int(r.Rank), r.CandidateID, OptFloat(r.FinalScore), Float(r.Dev),
			OptFloat(r.IPTM), OptFloat(r.MeanInterfacePAE), OptFloat(r.PLDDT), r.PDBPath}
		if withLia {
			cells = append(cells, OptFloat(r.LiabilityRisk))
		}
		if withSol {
			cells = append(cells, OptFloat(r.Solubility))
		}
		t.add(api.FinalRowV1{
			FinalRank: r.Rank, CandidateID: r.CandidateID, FinalScore: r.FinalScore, DevScore: r.Dev,
			IPTM: r.IPTM, MeanInterfacePAE: r.MeanInterfacePAE, PLDDT: r.PLDDT, PDBPath: r.PDBPath,
			LiabilityRiskCDR: r.LiabilityRisk, SolubilityScore: r.Solubility,
		}, cells...)
	}
	return t
}
