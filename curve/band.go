package curve

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/model"
)

// Classify places x in a band: below mean-stddev, above mean+stddev,
// average otherwise. Values exactly on mean±stddev are average.
func Classify(params model.DistributionParams, x float64) model.BandKind {
	switch {
	case x < params.LowerBound():
		return model.BandBelow
	case x > params.UpperBound():
		return model.BandAbove
	default:
		return model.BandAverage
	}
}

// Band splits c into its below, average and above runs. The bands share c's
// backing array, capped so appending to one never overwrites the next.
func Band(c *model.FullCurve) (below, average, above model.Band, err error) {
	if c == nil {
		err = errors.Wrap(common.ErrorInvalidValue, "nil curve")
		return
	}
	if err = c.Params.Validate(); err != nil {
		return
	}

	samples := c.Samples
	n := len(samples)

	// samples are sorted by x and Classify is monotone in x
	averageStart := sort.Search(n, func(i int) bool {
		return Classify(c.Params, samples[i].X) != model.BandBelow
	})
	aboveStart := sort.Search(n, func(i int) bool {
		return Classify(c.Params, samples[i].X) == model.BandAbove
	})

	below = model.Band{Kind: model.BandBelow, Samples: samples[:averageStart:averageStart]}
	average = model.Band{Kind: model.BandAverage, Samples: samples[averageStart:aboveStart:aboveStart]}
	above = model.Band{Kind: model.BandAbove, Samples: samples[aboveStart:n:n]}
	return below, average, above, nil
}

// SampleBands samples params and splits the result in one call.
func SampleBands(params model.DistributionParams, resolution int) (*model.FullCurve, [3]model.Band, error) {
	c, err := Sample(params, resolution)
	if err != nil {
		return nil, [3]model.Band{}, err
	}
	below, average, above, err := Band(c)
	if err != nil {
		return nil, [3]model.Band{}, err
	}
	return c, [3]model.Band{below, average, above}, nil
}
