package percentile

import (
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/model"
	"gonum.org/v1/gonum/stat/distuv"
)

func normal(params model.DistributionParams) distuv.Normal {
	return distuv.Normal{
		Mu:    params.Mean(),
		Sigma: params.StdDev(),
	}
}

// Percentile is 100 times the normal CDF of params at x. distuv evaluates the
// CDF through math.Erfc, which keeps full precision deep in both tails.
func Percentile(params model.DistributionParams, x float64) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, errors.Wrap(common.ErrorInvalidValue, "x is NaN")
	}
	return clamp(normal(params).CDF(x)*100, 0, 100), nil
}

func Evaluate(params model.DistributionParams, marker model.MarkerValue) (model.PercentileResult, error) {
	value, err := Percentile(params, marker.X)
	if err != nil {
		return model.PercentileResult{}, err
	}
	return model.PercentileResult{Value: value}, nil
}

// Quantile is the inverse of Percentile: the x at which p percent of the
// distribution lies at or below. p must be strictly inside (0, 100).
func Quantile(params model.DistributionParams, p float64) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if !(p > 0 && p < 100) {
		return 0, errors.Wrapf(common.ErrorInvalidValue, "percentile must be in (0, 100), got %v", p)
	}
	return normal(params).Quantile(p / 100), nil
}

// BandMass is the exact share, in percent, of the distribution inside a band.
func BandMass(params model.DistributionParams, kind model.BandKind) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	dist := normal(params)
	lower, upper := dist.CDF(params.LowerBound()), dist.CDF(params.UpperBound())

	switch kind {
	case model.BandBelow:
		return lower * 100, nil
	case model.BandAverage:
		return (upper - lower) * 100, nil
	case model.BandAbove:
		return dist.Survival(params.UpperBound()) * 100, nil
	}
	return 0, errors.Wrapf(common.ErrorInvalidValue, "unknown band kind %d", kind)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
