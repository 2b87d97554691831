package api

// CandidateV1 is one row of the ranked developability table.
type CandidateV1 struct {
	ID                 string         `json:"id"`
	MeanPLDDT          float64        `json:"mean_plddt"`
	FWPLDDT            float64        `json:"fw_plddt"`
	CDRPLDDT           float64        `json:"cdr_plddt"`
	MinPLDDT           float64        `json:"min_plddt"`
	MaxPLDDT           float64        `json:"max_plddt"`
	PTM                *float64       `json:"ptm"`
	IPTM               *float64       `json:"iptm"`
	SolubilityScore    float64        `json:"solubility_score"`
	Length             int            `json:"length"`
	MeanHydrophobicity float64        `json:"mean_hydrophobicity"`
	NetChargeProxy     float64        `json:"net_charge_proxy"`
	FracAromatic       float64        `json:"frac_aromatic"`
	FracHydrophobic    float64        `json:"frac_hydrophobic"`
	SplitOK            bool           `json:"split_ok"`
	LengthCDR          int            `json:"length_cdr"`
	LiabilityRiskCDR   float64        `json:"liability_risk_cdr"`
	Motifs             map[string]int `json:"motifs"`
	StructScore        float64        `json:"struct_score"`
	StabilityScore     float64        `json:"stability_score"`
	DCS                float64        `json:"DCS"`
}

// FinalRowV1 is one row of the final ranking.
type FinalRowV1 struct {
	FinalRank        int      `json:"final_rank"`
	CandidateID      string   `json:"candidate_id"`
	FinalScore       *float64 `json:"final_score"`
	DevScore         float64  `json:"dev_score"`
	IPTM             *float64 `json:"iptm"`
	MeanInterfacePAE *float64 `json:"mean_interface_pae"`
	PLDDT            *float64 `json:"plddt"`
	PDBPath          string   `json:"pdb_path"`
	LiabilityRiskCDR *float64 `json:"liability_risk_cdr,omitempty"`
	SolubilityScore  *float64 `json:"solubility_score,omitempty"`
}

// VariantV1 describes one generated library member.
type VariantV1 struct {
	ID        string   `json:"id"`
	Mutations []string `json:"mutations"`
	Length    int      `json:"length"`
}

// DomainsV1 is an scFv split into VH and VL.
type DomainsV1 struct {
	ID     string `json:"id"`
	VHSeq  string `json:"vh_seq"`
	VLSeq  string `json:"vl_seq"`
	Linker string `json:"linker"`
}
