package curve

import (
	"math"
	"runtime"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/model"
	"golang.org/x/sync/errgroup"
)

var invSqrt2Pi = 1 / math.Sqrt(2*math.Pi)

// Density is the normal probability density of params at x.
func Density(params model.DistributionParams, x float64) float64 {
	z := (x - params.Mean()) / params.StdDev()
	return math.Exp(-0.5*z*z) / (params.StdDev() * math.Sqrt(2*math.Pi))
}

// StandardDensity is the N(0, 1) density at z.
func StandardDensity(z float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*z*z)
}

func SampleDomain(params model.DistributionParams) model.Domain {
	return model.Domain{
		Lower: params.Mean() - DomainZScore*params.StdDev(),
		Upper: params.Mean() + DomainZScore*params.StdDev(),
	}
}

// Sample evaluates the density of params at resolution evenly spaced points
// covering SampleDomain(params), both ends included.
func Sample(params model.DistributionParams, resolution int) (*model.FullCurve, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if resolution < MinResolution {
		return nil, errors.Wrapf(common.ErrorInvalidParameter,
			"resolution must be at least %d, got %d", MinResolution, resolution)
	}

	domain := SampleDomain(params)
	if math.IsInf(domain.Lower, 0) || math.IsInf(domain.Upper, 0) {
		return nil, errors.Wrapf(common.ErrorInvalidParameter, "sample domain overflows for %v", params)
	}

	step := domain.Width() / float64(resolution-1)
	samples := make([]model.Sample, resolution)

	fill := func(from, to int) {
		for i := from; i < to; i++ {
			x := gridPoint(domain, step, i, resolution)
			samples[i] = model.Sample{X: x, Y: Density(params, x)}
		}
	}

	if resolution < ParallelThreshold {
		fill(0, resolution)
	} else {
		fillParallel(resolution, fill)
	}

	if !strictlyIncreasing(samples) {
		return nil, errors.Wrapf(common.ErrorInvalidParameter,
			"stddev of %v too small to resolve %d distinct points", params, resolution)
	}

	return &model.FullCurve{
		Params:  params,
		Domain:  domain,
		Samples: samples,
	}, nil
}

// SampleDefault samples at DefaultResolution.
func SampleDefault(params model.DistributionParams) (*model.FullCurve, error) {
	return Sample(params, DefaultResolution)
}

// fillParallel splits [0, n) into contiguous chunks. Each goroutine writes
// only its own index range, so the result matches the sequential path.
func fillParallel(n int, fill func(from, to int)) {
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	if chunk < MinChunkSize {
		chunk = MinChunkSize
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for from := 0; from < n; from += chunk {
		from, to := from, IntMin(from+chunk, n)
		g.Go(func() error {
			fill(from, to)
			return nil
		})
	}
	_ = g.Wait()
}
