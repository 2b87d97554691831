package structure

import (
	"encoding/json"
	"fmt"
	"io"
)

// Scores is the decoded content of one score (or PAE) JSON document.
// Optional scalars are nil when the key is missing or has an unusable shape.
type Scores struct {
	PLDDT             []float64
	PTM               *float64
	IPTM              *float64
	IPTMPlusPTM       *float64
	RankingConfidence *float64
	MaxPAE            *float64
	PAE               [][]float64
}

// MeanPLDDT is the scalar-or-mean view of the pLDDT field.
func (s Scores) MeanPLDDT() *float64 {
	if len(s.PLDDT) == 0 {
		return nil
	}
	m := mean(s.PLDDT)
	return &m
}

// ParseScores decodes a score JSON document. A top-level array is accepted
// and its first object is used. Scalar fields may be numbers or numeric
// lists (averaged). The PAE matrix is looked up under
// "predicted_aligned_error", "pae", then "pae.predicted_aligned_error"; a
// missing or malformed matrix leaves PAE nil without failing.
func ParseScores(r io.Reader) (Scores, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Scores{}, fmt.Errorf("decode scores: %w", err)
	}
	if arr, ok := doc.([]any); ok {
		if len(arr) == 0 {
			return Scores{}, nil
		}
		doc = arr[0]
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return Scores{}, fmt.Errorf("decode scores: top-level value is %T, want object", doc)
	}

	var s Scores
	switch v := obj["plddt"].(type) {
	case float64:
		s.PLDDT = []float64{v}
	case []any:
		s.PLDDT, _ = floats(v)
	}
	s.PTM = floatOrMean(obj, "ptm")
	s.IPTM = floatOrMean(obj, "iptm")
	s.IPTMPlusPTM = floatOrMean(obj, "iptm+ptm")
	s.RankingConfidence = floatOrMean(obj, "ranking_confidence")
	s.MaxPAE = floatOrMean(obj, "max_pae")
	s.PAE = paeMatrix(obj)
	return s, nil
}

func floatOrMean(obj map[string]any, key string) *float64 {
	switch v := obj[key].(type) {
	case float64:
		return &v
	case []any:
		fs, ok := floats(v)
		if !ok || len(fs) == 0 {
			return nil
		}
		m := mean(fs)
		return &m
	}
	return nil
}

func floats(v []any) ([]float64, bool) {
	out := make([]float64, len(v))
	for i, x := range v {
		f, ok := x.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func paeMatrix(obj map[string]any) [][]float64 {
	for _, k := range []string{"predicted_aligned_error", "pae"} {
		if rows, ok := obj[k].([]any); ok && len(rows) > 0 {
			if _, isRow := rows[0].([]any); isRow {
				return matrix(rows)
			}
		}
	}
	if nested, ok := obj["pae"].(map[string]any); ok {
		if rows, ok := nested["predicted_aligned_error"].([]any); ok {
			return matrix(rows)
		}
	}
	return nil
}

// matrix converts rows to a square float matrix, or nil.
func matrix(rows []any) [][]float64 {
	n := len(rows)
	if n == 0 {
		return nil
	}
	out := make([][]float64, n)
	for i, r := range rows {
		cells, ok := r.([]any)
		if !ok || len(cells) != n {
			return nil
		}
		if out[i], ok = floats(cells); !ok {
			return nil
		}
	}
	return out
}
