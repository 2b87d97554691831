package cmdutil

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"abrank-core/structure"

	"abrank/internal/appcore"
	"abrank/internal/pipeline"
	"abrank/internal/visitors"
)

func scanRank(env *appcore.Env, root string) ([]structure.Job, error) {
	jobs, err := structure.Scan(root)
	if err != nil {
		return nil, err
	}
	if tag := env.Config.Structure.Tag; tag != "" {
		kept := jobs[:0]
		for _, j := range jobs {
			if strings.Contains(j.ID, tag) {
				kept = append(kept, j)
			}
		}
		jobs = kept
	}
	rank := env.Config.Structure.Rank
	n := 0
	for _, j := range jobs {
		if j.HasRank(rank) {
			n++
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w for %s", root, structure.ErrNoScores, structure.RankTag(rank))
	}
	env.Log.Info("scanned prediction jobs", zap.String("dir", root), zap.Int("jobs", len(jobs)), zap.Int("with_rank", n))
	return jobs, nil
}

// ParseMonomers summarizes the monomer predictions under root, best mean
// pLDDT first.
func ParseMonomers(ctx context.Context, env *appcore.Env, root string) ([]structure.Summary, error) {
	jobs, err := scanRank(env, root)
	if err != nil {
		return nil, err
	}
	v := visitors.Monomer{Rank: env.Config.Structure.Rank, Log: env.Log}
	rows, err := pipeline.Visit(ctx, env.Pipeline(), jobs, v.Visit)
	if err != nil {
		return nil, err
	}
	structure.SortByMeanPLDDT(rows)
	env.Log.Info("parsed monomer predictions", zap.Int("rows", len(rows)))
	return rows, nil
}

// ParseDocking summarizes the complex predictions under root in job order.
func ParseDocking(ctx context.Context, env *appcore.Env, root string) ([]structure.DockingSummary, error) {
	jobs, err := scanRank(env, root)
	if err != nil {
		return nil, err
	}
	v := visitors.Docking{Rank: env.Config.Structure.Rank, Target: env.Config.Structure.Target, Log: env.Log}
	rows, err := pipeline.Visit(ctx, env.Pipeline(), jobs, v.Visit)
	if err != nil {
		return nil, err
	}
	missing := 0
	for _, r := range rows {
		if r.MeanInterfacePAE == nil {
			missing++
		}
	}
	env.Log.Info("parsed docking predictions", zap.Int("rows", len(rows)), zap.Int("without_interface_pae", missing))
	return rows, nil
}
