package output

import (
	"abrank-core/liability"
	"abrank-core/solubility"
	"abrank-core/structure"

	"abrank/pkg/api"
)

func SolubilityTable(rs []solubility.Result) Table {
	t := Table{Columns: SolubilityColumns}
	for _, r := range rs {
		t.add(api.SolubilityV1{
			ID: r.ID, Length: r.Length, MeanHydrophobicity: r.MeanHydrophobicity,
			NetChargeProxy: r.NetChargeProxy, FracAromatic: r.FracAromatic,
			FracHydrophobic: r.FracHydrophobic, SolubilityScore: r.Score,
		},
			r.ID, Int(r.Length), Float(r.MeanHydrophobicity), Float(r.NetChargeProxy),
			Float(r.FracAromatic), Float(r.FracHydrophobic), Float(r.Score))
	}
	return t
}

func motifCells(c liability.Counts, motifs []string) []string {
	out := make([]string, len(motifs))
	for i, m := range motifs {
		out[i] = Int(c[m])
	}
	return out
}

func motifMap(c liability.Counts, motifs []string) map[string]int {
	out := make(map[string]int, len(motifs))
	for _, m := range motifs {
		out[m] = c[m]
	}
	return out
}

func LiabilityTable(rs []liability.Result, motifs []string) Table {
	t := Table{Columns: LiabilityColumns(motifs)}
	for _, r := range rs {
		cells := []string{r.ID, Bool01(r.SplitOK), Int(r.LengthCDR), Float(r.Risk)}
		t.add(api.LiabilityV1{
			ID: r.ID, SplitOK: r.SplitOK, LengthCDR: r.LengthCDR,
			LiabilityRiskCDR: r.Risk, Motifs: motifMap(r.Counts, motifs),
		}, append(cells, motifCells(r.Counts, motifs)...)...)
	}
	return t
}

func StructureTable(rs []structure.Summary) Table {
	t := Table{Columns: StructureColumns}
	for _, r := range rs {
		t.add(api.StructureV1{
			ID: r.ID, ScoreFile: r.ScoreFile,
			MeanPLDDT: r.Mean, FWPLDDT: r.FW, CDRPLDDT: r.CDR, MinPLDDT: r.Min, MaxPLDDT: r.Max,
			PTM: r.PTM, IPTM: r.IPTM, IPTMPlusPTM: r.IPTMPlusPTM,
			RankingConfidence: r.RankingConfidence, MaxPAE: r.MaxPAE,
		},
			r.ID, r.ScoreFile, Float(r.Mean), Float(r.FW), Float(r.CDR), Float(r.Min), Float(r.Max),
			OptFloat(r.PTM), OptFloat(r.IPTM), OptFloat(r.IPTMPlusPTM),
			OptFloat(r.RankingConfidence), OptFloat(r.MaxPAE))
	}
	return t
}

func DockingTable(rs []structure.DockingSummary) Table {
	t := Table{Columns: DockingColumns}
	for _, r := range rs {
		chains := structure.FormatChains(r.Chains)
		t.add(api.DockingV1{
			CandidateID: r.CandidateID, PLDDT: r.PLDDT, PTM: r.PTM, IPTM: r.IPTM,
			MeanInterfacePAE: r.MeanInterfacePAE, ChainLengths: chains, PDBPath: r.PDBPath,
		},
			r.CandidateID, OptFloat(r.PLDDT), OptFloat(r.PTM), OptFloat(r.IPTM),
			OptFloat(r.MeanInterfacePAE), chains, r.PDBPath)
	}
	return t
}
