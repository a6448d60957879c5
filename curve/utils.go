package curve

import (
	"github.com/uyouii/normal-band-chart/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// gridPoint is the i-th of n points across domain. The last point is pinned
// to the upper bound so accumulated rounding never leaves it short.
func gridPoint(domain model.Domain, step float64, i, n int) float64 {
	if i == n-1 {
		return domain.Upper
	}
	return domain.Lower + float64(i)*step
}

func strictlyIncreasing(samples []model.Sample) bool {
	for i := 1; i < len(samples); i++ {
		if !(samples[i].X > samples[i-1].X) {
			return false
		}
	}
	return true
}

// Peak is the largest sampled density, 0 for an empty curve.
func Peak(c *model.FullCurve) float64 {
	if c.Len() == 0 {
		return 0
	}
	return floats.Max(c.Ys())
}

// Area is the trapezoid-rule area under a band's samples. Bands with fewer
// than two samples have no area.
func Area(band model.Band) float64 {
	if band.Len() < 2 {
		return 0
	}
	xs, ys := make([]float64, band.Len()), make([]float64, band.Len())
	for i, s := range band.Samples {
		xs[i], ys[i] = s.X, s.Y
	}
	return integrate.Trapezoidal(xs, ys)
}

func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}
