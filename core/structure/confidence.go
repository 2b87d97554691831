// Package structure turns structure-prediction artifacts (score JSON, PAE
// matrices, PDB coordinates) into per-candidate confidence metrics.
package structure

// Confidence summarises a per-residue pLDDT profile.
type Confidence struct {
	Mean float64
	FW   float64
	CDR  float64
	Min  float64
	Max  float64
}

// flankLen is the framework proxy window taken from each end.
const flankLen = 80

// RegionConfidence computes the framework and CDR proxies of p. The
// framework proxy averages the first and last 80 residues when the profile
// has at least 160 of them, otherwise the whole profile. The CDR proxy
// averages the central band p[int(0.3n):int(0.7n)]. ok is false for an
// empty profile.
func RegionConfidence(p []float64) (Confidence, bool) {
	n := len(p)
	if n == 0 {
		return Confidence{}, false
	}
	c := Confidence{Mean: mean(p), Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		if v < c.Min {
			c.Min = v
		}
		if v > c.Max {
			c.Max = v
		}
	}

	if n >= 2*flankLen {
		fw := make([]float64, 0, 2*flankLen)
		fw = append(fw, p[:flankLen]...)
		fw = append(fw, p[n-flankLen:]...)
		c.FW = mean(fw)
	} else {
		c.FW = c.Mean
	}

	lo := int(float64(n) * 0.30)
	hi := int(float64(n) * 0.70)
	if hi > n {
		hi = n
	}
	if hi > lo {
		c.CDR = mean(p[lo:hi])
	} else {
		c.CDR = c.Mean
	}
	return c, true
}

func mean(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}
	return s / float64(len(v))
}
