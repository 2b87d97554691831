package aggregate

// Diversity bounds the shortlist: Bins equal-width bins per feature, at
// most PerBucket candidates per bin combination and Total overall.
type Diversity struct {
	Bins      int
	PerBucket int
	Total     int
}

func DefaultDiversity() Diversity { return Diversity{Bins: 5, PerBucket: 2, Total: 20} }

// Bucket is the bin triple (solubility, liability risk, CDR pLDDT).
type Bucket [3]int

// binner assigns values to equal-width bins over [lo, hi]. Bins are closed
// on the right; lo falls in bin 0. A degenerate range maps to bin 0.
type binner struct {
	lo, hi float64
	edges  []float64
}

func newBinner(vals []float64, bins int) binner {
	b := binner{}
	if len(vals) == 0 {
		return b
	}
	b.lo, b.hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < b.lo {
			b.lo = v
		}
		if v > b.hi {
			b.hi = v
		}
	}
	if b.hi > b.lo && bins > 1 {
		step := (b.hi - b.lo) / float64(bins)
		b.edges = make([]float64, bins+1)
		for i := range b.edges {
			b.edges[i] = b.lo + float64(i)*step
		}
		b.edges[bins] = b.hi
	}
	return b
}

func (b binner) bin(v float64) int {
	if b.edges == nil {
		return 0
	}
	last := len(b.edges) - 2
	for i := 0; i < last; i++ {
		if v <= b.edges[i+1] {
			return i
		}
	}
	return last
}

// Buckets assigns each candidate its bin triple over the ranges observed
// in cs.
func (d Diversity) Buckets(cs []Candidate) []Bucket {
	sol := make([]float64, len(cs))
	risk := make([]float64, len(cs))
	cdr := make([]float64, len(cs))
	for i, c := range cs {
		sol[i] = c.Solubility.Score
		risk[i] = c.Liability.Risk
		cdr[i] = c.Structure.CDR
	}
	bs, br, bc := newBinner(sol, d.Bins), newBinner(risk, d.Bins), newBinner(cdr, d.Bins)
	out := make([]Bucket, len(cs))
	for i := range cs {
		out[i] = Bucket{bs.bin(sol[i]), br.bin(risk[i]), bc.bin(cdr[i])}
	}
	return out
}

// Select walks cs in order (already DCS-sorted), takes up to PerBucket
// candidates per bucket, concatenates the buckets in first-seen order and
// truncates to Total.
func (d Diversity) Select(cs []Candidate) []Candidate {
	if d.Total <= 0 || d.PerBucket <= 0 {
		return nil
	}
	buckets := d.Buckets(cs)
	var order []Bucket
	members := map[Bucket][]Candidate{}
	for i, c := range cs {
		b := buckets[i]
		if _, ok := members[b]; !ok {
			order = append(order, b)
			members[b] = nil
		}
		if len(members[b]) < d.PerBucket {
			members[b] = append(members[b], c)
		}
	}
	out := make([]Candidate, 0, d.Total)
	for _, b := range order {
		for _, c := range members[b] {
			if len(out) == d.Total {
				return out
			}
			out = append(out, c)
		}
	}
	return out
}
