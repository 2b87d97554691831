package output

// Column names shared by writers and the table readers.
const (
	ColID                 = "id"
	ColLength             = "length"
	ColMeanHydrophobicity = "mean_hydrophobicity"
	ColNetChargeProxy     = "net_charge_proxy"
	ColFracAromatic       = "frac_aromatic"
	ColFracHydrophobic    = "frac_hydrophobic"
	ColSolubilityScore    = "solubility_score"

	ColSplitOK          = "split_ok"
	ColLengthCDR        = "length_cdr"
	ColLiabilityRiskCDR = "liability_risk_cdr"

	ColScoreFile         = "score_file"
	ColMeanPLDDT         = "mean_plddt"
	ColFWPLDDT           = "fw_plddt"
	ColCDRPLDDT          = "cdr_plddt"
	ColMinPLDDT          = "min_plddt"
	ColMaxPLDDT          = "max_plddt"
	ColPTM               = "ptm"
	ColIPTM              = "iptm"
	ColIPTMPlusPTM       = "iptm_plus_ptm"
	ColRankingConfidence = "ranking_confidence"
	ColMaxPAE            = "max_pae"

	ColCandidateID      = "candidate_id"
	ColPLDDT            = "plddt"
	ColMeanInterfacePAE = "mean_interface_pae"
	ColChainLengths     = "chain_lengths"
	ColPDBPath          = "pdb_path"

	ColStructScore    = "struct_score"
	ColStabilityScore = "stability_score"
	ColDCS            = "DCS"

	ColFinalRank  = "final_rank"
	ColFinalScore = "final_score"

	ColVHSeq     = "vh_seq"
	ColVLSeq     = "vl_seq"
	ColLinker    = "linker"
	ColMutations = "mutations"
)

var (
	SolubilityColumns = []string{ColID, ColLength, ColMeanHydrophobicity, ColNetChargeProxy,
		ColFracAromatic, ColFracHydrophobic, ColSolubilityScore}

	StructureColumns = []string{ColID, ColScoreFile, ColMeanPLDDT, ColFWPLDDT, ColCDRPLDDT,
		ColMinPLDDT, ColMaxPLDDT, ColPTM, ColIPTM, ColIPTMPlusPTM, ColRankingConfidence, ColMaxPAE}

	DockingColumns = []string{ColCandidateID, ColPLDDT, ColPTM, ColIPTM, ColMeanInterfacePAE,
		ColChainLengths, ColPDBPath}

	DomainsColumns = []string{ColID, ColVHSeq, ColVLSeq, ColLinker}
)

// LiabilityColumns appends the motif count columns in table order.
func LiabilityColumns(motifs []string) []string {
	cols := []string{ColID, ColSplitOK, ColLengthCDR, ColLiabilityRiskCDR}
	return append(cols, motifs...)
}

// CandidateColumns is the ranked developability table header.
func CandidateColumns(motifs []string) []string {
	cols := []string{ColID, ColMeanPLDDT, ColFWPLDDT, ColCDRPLDDT, ColMinPLDDT, ColMaxPLDDT,
		ColPTM, ColIPTM, ColSolubilityScore, ColLength, ColMeanHydrophobicity, ColNetChargeProxy,
		ColFracAromatic, ColFracHydrophobic, ColSplitOK, ColLengthCDR, ColLiabilityRiskCDR}
	cols = append(cols, motifs...)
	return append(cols, ColStructScore, ColStabilityScore, ColDCS)
}

// FinalColumns is the final ranking header; the optional upstream columns
// are appended when present.
func FinalColumns(devCol string, withLiability, withSolubility bool) []string {
	cols := []string{ColFinalRank, ColCandidateID, ColFinalScore, devCol, ColIPTM,
		ColMeanInterfacePAE, ColPLDDT, ColPDBPath}
	if withLiability {
		cols = append(cols, ColLiabilityRiskCDR)
	}
	if withSolubility {
		cols = append(cols, ColSolubilityScore)
	}
	return cols
}

// Run archive listing.
const (
	ColRunID     = "run_id"
	ColCommand   = "command"
	ColVersion   = "version"
	ColCreatedAt = "created_at"
	ColStages    = "stages"
)

var RunsColumns = []string{ColRunID, ColCommand, ColVersion, ColCreatedAt, ColStages}
