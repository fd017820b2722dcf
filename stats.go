package carve

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the cumulative energy of the carved seams.
type Stats struct {
	Count  int
	Total  float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats computes summary statistics over the seam costs.
func (r *Result) Stats() Stats {
	if r == nil || len(r.Costs) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(r.Costs))
	for i, c := range r.Costs {
		xs[i] = float64(c)
	}
	s := Stats{
		Count: len(xs),
		Total: floats.Sum(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		s.Mean = xs[0]
	}
	return s
}
