package config

import (
	"abrank-core/aggregate"
	"abrank-core/library"
	"abrank-core/liability"
	"abrank-core/rank"
	"abrank-core/region"
)

func (c Config) RegionScheme() region.Scheme {
	s := region.Scheme{Name: c.Scheme.Name}
	copy(s.Heavy[:], c.Scheme.Heavy)
	copy(s.Light[:], c.Scheme.Light)
	return s
}

func (c Config) LiabilityScorer() liability.Scorer {
	return liability.Scorer{
		Scheme:    c.RegionScheme(),
		Table:     liability.DefaultTable().WithWeights(c.Liability.Weights),
		Tau:       c.Liability.Tau,
		MinLinker: c.Liability.MinLinker,
	}
}

func (c Config) Aggregator() aggregate.Aggregator {
	return aggregate.Aggregator{
		Thresholds: aggregate.Thresholds{
			MinMeanPLDDT:  c.Filters.MinMeanPLDDT,
			MinFWPLDDT:    c.Filters.MinFWPLDDT,
			MinSolubility: c.Filters.MinSolubility,
			MaxNGlyco:     c.Filters.MaxNGlyco,
		},
		Weights: aggregate.Weights{
			StructMean: c.Weights.StructMean,
			StructCDR:  c.Weights.StructCDR,
			StructFW:   c.Weights.StructFW,
			Struct:     c.Weights.Struct,
			Solubility: c.Weights.Solubility,
			Liability:  c.Weights.Liability,
			Stability:  c.Weights.Stability,
		},
		Diversity: aggregate.Diversity{
			Bins:      c.Diversity.Bins,
			PerBucket: c.Diversity.PerBucket,
			Total:     c.Diversity.Total,
		},
	}
}

func (c Config) Ranker() rank.Ranker {
	return rank.Ranker{
		MinIPTM: c.Final.MinIPTM,
		Weights: rank.Weights{Dev: c.Final.WDev, IPTM: c.Final.WIPTM, PAE: c.Final.WPAE},
	}
}

// LibraryOptions applies the library settings to t.
func (c Config) LibraryOptions(t library.Template) library.Options {
	t.Name = c.Library.Name
	return library.Options{
		Template:     t,
		Scheme:       c.RegionScheme(),
		Count:        c.Library.Count,
		MutsPerChain: c.Library.MutationsPerChain,
		Seed:         c.Library.Seed,
	}
}
