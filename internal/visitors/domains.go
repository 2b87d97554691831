package visitors

import (
	"go.uber.org/zap"

	"abrank-core/fasta"
	"abrank-core/library"
)

// Domains splits one scFv into VH and VL. Records without a usable linker
// or with short domains are dropped with a warning.
type Domains struct {
	MinLinker int
	Log       *zap.Logger
}

func (v Domains) Visit(r fasta.Record) (keep bool, out library.Domains, err error) {
	d, err := library.SplitDomains(r, v.MinLinker)
	if err != nil {
		v.Log.Warn("skipping scFv", zap.Error(err))
		return false, out, nil
	}
	return true, d, nil
}
