// pkg/api/scores_v1.go
package api

// Stable JSON/JSONL schemas. Keep fields, names and types stable; add new
// fields only with ",omitempty".

// SolubilityV1 is one row of the solubility table.
type SolubilityV1 struct {
	ID                 string  `json:"id"`
	Length             int     `json:"length"`
	MeanHydrophobicity float64 `json:"mean_hydrophobicity"`
	NetChargeProxy     float64 `json:"net_charge_proxy"`
	FracAromatic       float64 `json:"frac_aromatic"`
	FracHydrophobic    float64 `json:"frac_hydrophobic"`
	SolubilityScore    float64 `json:"solubility_score"`
}

// LiabilityV1 is one row of the CDR liability table.
type LiabilityV1 struct {
	ID               string         `json:"id"`
	SplitOK          bool           `json:"split_ok"`
	LengthCDR        int            `json:"length_cdr"`
	LiabilityRiskCDR float64        `json:"liability_risk_cdr"`
	Motifs           map[string]int `json:"motifs"`
}

// StructureV1 is the monomer confidence summary of one prediction.
type StructureV1 struct {
	ID                string   `json:"id"`
	ScoreFile         string   `json:"score_file"`
	MeanPLDDT         float64  `json:"mean_plddt"`
	FWPLDDT           float64  `json:"fw_plddt"`
	CDRPLDDT          float64  `json:"cdr_plddt"`
	MinPLDDT          float64  `json:"min_plddt"`
	MaxPLDDT          float64  `json:"max_plddt"`
	PTM               *float64 `json:"ptm"`
	IPTM              *float64 `json:"iptm"`
	IPTMPlusPTM       *float64 `json:"iptm_plus_ptm"`
	RankingConfidence *float64 `json:"ranking_confidence"`
	MaxPAE            *float64 `json:"max_pae"`
}

// DockingV1 is the complex-prediction summary of one candidate.
type DockingV1 struct {
	CandidateID      string   `json:"candidate_id"`
	PLDDT            *float64 `json:"plddt"`
	PTM              *float64 `json:"ptm"`
	IPTM             *float64 `json:"iptm"`
	MeanInterfacePAE *float64 `json:"mean_interface_pae"`
	ChainLengths     string   `json:"chain_lengths"`
	PDBPath          string   `json:"pdb_path"`
}
