package model

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
)

// DistributionParams describes the reference normal distribution.
// Build it with NewDistributionParams; the zero value is invalid.
type DistributionParams struct {
	mean   float64
	stddev float64
}

func NewDistributionParams(mean, stddev float64) (DistributionParams, error) {
	params := DistributionParams{mean: mean, stddev: stddev}
	if err := params.Validate(); err != nil {
		return DistributionParams{}, err
	}
	return params, nil
}

func (p DistributionParams) Mean() float64 {
	return p.mean
}

func (p DistributionParams) StdDev() float64 {
	return p.stddev
}

func (p DistributionParams) Validate() error {
	if math.IsNaN(p.mean) || math.IsInf(p.mean, 0) {
		return errors.Wrapf(common.ErrorInvalidParameter, "mean must be finite, got %v", p.mean)
	}
	// !(x > 0) also catches NaN
	if !(p.stddev > 0) || math.IsInf(p.stddev, 0) {
		return errors.Wrapf(common.ErrorInvalidParameter, "stddev must be positive and finite, got %v", p.stddev)
	}
	return nil
}

// LowerBound is mean - stddev, the edge between the below and average bands.
func (p DistributionParams) LowerBound() float64 {
	return p.mean - p.stddev
}

// UpperBound is mean + stddev, the edge between the average and above bands.
func (p DistributionParams) UpperBound() float64 {
	return p.mean + p.stddev
}

func (p DistributionParams) String() string {
	return fmt.Sprintf("N(mean=%v, stddev=%v)", p.mean, p.stddev)
}

// Domain is the closed x range a curve is sampled over.
type Domain struct {
	Lower float64
	Upper float64
}

func (d Domain) Width() float64 {
	return d.Upper - d.Lower
}

func (d Domain) Contains(x float64) bool {
	return x >= d.Lower && x <= d.Upper
}

// Sample is one point of the density curve.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MarkerValue struct {
	X float64 `json:"x"`
}

// PercentileResult is the CDF at the marker times 100, within [0, 100].
type PercentileResult struct {
	Value float64 `json:"value"`
}
