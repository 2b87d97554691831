package visitors

import (
	"go.uber.org/zap"

	"abrank-core/structure"
)

// Monomer summarizes the selected rank of one prediction job.
type Monomer struct {
	Rank int
	Log  *zap.Logger
}

func (v Monomer) Visit(j structure.Job) (keep bool, out structure.Summary, err error) {
	s, ok, err := structure.LoadMonomer(j, v.Rank)
	if err != nil {
		return false, s, err
	}
	if !ok {
		v.Log.Warn("no usable scores for rank", zap.String("id", j.ID), zap.String("rank", structure.RankTag(v.Rank)))
		return false, s, nil
	}
	return true, s, nil
}

// Docking summarizes the selected rank of one complex prediction.
type Docking struct {
	Rank   int
	Target string
	Log    *zap.Logger
}

func (v Docking) Visit(j structure.Job) (keep bool, out structure.DockingSummary, err error) {
	d, ok, err := structure.LoadDocking(j, v.Rank, v.Target)
	if err != nil {
		return false, d, err
	}
	if !ok {
		v.Log.Warn("no scores for rank", zap.String("id", j.ID), zap.String("rank", structure.RankTag(v.Rank)))
		return false, d, nil
	}
	if d.MeanInterfacePAE == nil {
		v.Log.Warn("interface PAE unavailable", zap.String("id", j.ID))
	}
	return true, d, nil
}
