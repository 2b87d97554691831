package structure

import (
	"path/filepath"
	"sort"
)

// Summary is the monomer (scFv) confidence record of one job.
type Summary struct {
	ID        string
	ScoreFile string
	Confidence
	PTM               *float64
	IPTM              *float64
	IPTMPlusPTM       *float64
	RankingConfidence *float64
	MaxPAE            *float64
}

// LoadMonomer parses the rank score file of j. ok is false when the job has
// no score file for rank or the file carries no pLDDT profile.
func LoadMonomer(j Job, rank int) (Summary, bool, error) {
	path, _, _ := j.Files(rank)
	if path == "" {
		return Summary{}, false, nil
	}
	s, err := parseScoresFile(path)
	if err != nil {
		return Summary{}, false, err
	}
	conf, ok := RegionConfidence(s.PLDDT)
	if !ok {
		return Summary{}, false, nil
	}
	return Summary{
		ID:                j.ID,
		ScoreFile:         filepath.Base(path),
		Confidence:        conf,
		PTM:               s.PTM,
		IPTM:              s.IPTM,
		IPTMPlusPTM:       s.IPTMPlusPTM,
		RankingConfidence: s.RankingConfidence,
		MaxPAE:            s.MaxPAE,
	}, true, nil
}

// SortByMeanPLDDT orders summaries by descending mean pLDDT, ties by id.
func SortByMeanPLDDT(rows []Summary) {
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Mean != rows[b].Mean {
			return rows[a].Mean > rows[b].Mean
		}
		return rows[a].ID < rows[b].ID
	})
}

// DockingSummary is the complex-prediction record of one candidate.
type DockingSummary struct {
	CandidateID      string
	PLDDT            *float64
	PTM              *float64
	IPTM             *float64
	MeanInterfacePAE *float64
	Chains           []Chain
	PDBPath          string
}

// LoadDocking parses the rank artifacts of a complex job. The PAE matrix is
// taken from the score file, falling back to the separate PAE file. The
// interface metric needs both a matrix and a PDB model and is left nil
// otherwise, as it is for a PAE file that fails to parse.
func LoadDocking(j Job, rank int, target string) (DockingSummary, bool, error) {
	scoresPath, paePath, pdbPath := j.Files(rank)
	if scoresPath == "" {
		return DockingSummary{}, false, nil
	}
	s, err := parseScoresFile(scoresPath)
	if err != nil {
		return DockingSummary{}, false, err
	}
	pae := s.PAE
	if pae == nil && paePath != "" {
		// an unreadable PAE file only costs the interface metric
		if ps, err := parseScoresFile(paePath); err == nil {
			pae = ps.PAE
		}
	}

	d := DockingSummary{
		CandidateID: j.ID,
		PLDDT:       s.MeanPLDDT(),
		PTM:         s.PTM,
		IPTM:        s.IPTM,
		PDBPath:     pdbPath,
	}
	if pdbPath != "" {
		d.Chains, err = chainLengthsFile(pdbPath)
		if err != nil {
			return DockingSummary{}, false, err
		}
		if v, ok := InterfacePAE(pae, d.Chains, target); ok {
			d.MeanInterfacePAE = &v
		}
	}
	return d, true, nil
}
