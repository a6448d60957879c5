package percentile

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/model"
)

func mustParams(t *testing.T, mean, stddev float64) model.DistributionParams {
	t.Helper()
	params, err := model.NewDistributionParams(mean, stddev)
	require.NoError(t, err)
	return params
}

func TestPercentileAtMeanIsFifty(t *testing.T) {
	for _, p := range [][2]float64{{0, 1}, {100, 15}, {-42.5, 0.01}, {1e6, 3e4}} {
		params := mustParams(t, p[0], p[1])
		v, err := Percentile(params, p[0])
		require.NoError(t, err)
		assert.InDelta(t, 50.0, v, 1e-6, "params=%v", params)
	}
}

func TestPercentileKnownValues(t *testing.T) {
	params := mustParams(t, 0, 1)
	cases := []struct {
		x    float64
		want float64
	}{
		{-1.5, 6.680720126885807},
		{-1, 15.865525393145708},
		{1, 84.13447460685429},
		{1.959963984540054, 97.5},
		{-3, 0.13498980316301035},
	}
	for _, c := range cases {
		v, err := Percentile(params, c.x)
		require.NoError(t, err)
		assert.InDelta(t, c.want, v, 1e-7, "x=%v", c.x)
	}
}

func TestPercentileScaled(t *testing.T) {
	// x = 130 is +2 sd above 100 with sd 15
	v, err := Percentile(mustParams(t, 100, 15), 130)
	require.NoError(t, err)
	assert.InDelta(t, 97.72498680518208, v, 1e-7)
}

func TestPercentileTails(t *testing.T) {
	params := mustParams(t, 0, 1)

	v, err := Percentile(params, -10)
	require.NoError(t, err)
	assert.Greater(t, v, 0.0)
	assert.InDelta(t, 7.619853024160527e-22, v, 1e-30)

	v, err = Percentile(params, math.Inf(-1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = Percentile(params, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)

	v, err = Percentile(params, 40)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v)
}

func TestPercentileMonotone(t *testing.T) {
	params := mustParams(t, 3, 0.7)
	prev := -1.0
	for x := -10.0; x <= 16; x += 0.01 {
		v, err := Percentile(params, x)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev, "x=%v", x)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 100.0)
		prev = v
	}
}

func TestPercentileRejectsInvalidParams(t *testing.T) {
	_, err := Percentile(model.DistributionParams{}, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	_, err = model.NewDistributionParams(0, 0)
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)

	_, err = Percentile(mustParams(t, 0, 1), math.NaN())
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestEvaluate(t *testing.T) {
	res, err := Evaluate(mustParams(t, 0, 1), model.MarkerValue{X: -1.5})
	require.NoError(t, err)
	assert.Equal(t, "6.68", fmt.Sprintf("%.2f", res.Value))

	_, err = Evaluate(model.DistributionParams{}, model.MarkerValue{})
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)
}

func TestQuantileInvertsPercentile(t *testing.T) {
	params := mustParams(t, 100, 15)
	for _, p := range []float64{0.1, 5, 25, 50, 75, 95, 99.9} {
		x, err := Quantile(params, p)
		require.NoError(t, err)
		back, err := Percentile(params, x)
		require.NoError(t, err)
		assert.InDelta(t, p, back, 1e-9, "p=%v", p)
	}

	x, err := Quantile(params, 50)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, x, 1e-9)
}

func TestQuantileRejectsOutOfRange(t *testing.T) {
	params := mustParams(t, 0, 1)
	for _, p := range []float64{0, 100, -1, 101, math.NaN()} {
		_, err := Quantile(params, p)
		assert.ErrorIs(t, err, common.ErrorInvalidValue, "p=%v", p)
	}
	_, err := Quantile(model.DistributionParams{}, 50)
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)
}

func TestBandMass(t *testing.T) {
	params := mustParams(t, 10, 2)

	below, err := BandMass(params, model.BandBelow)
	require.NoError(t, err)
	average, err := BandMass(params, model.BandAverage)
	require.NoError(t, err)
	above, err := BandMass(params, model.BandAbove)
	require.NoError(t, err)

	assert.InDelta(t, 15.865525393145708, below, 1e-9)
	assert.InDelta(t, 68.26894921370859, average, 1e-9)
	assert.InDelta(t, 15.865525393145708, above, 1e-9)
	assert.InDelta(t, 100.0, below+average+above, 1e-9)

	_, err = BandMass(params, model.BandKind(0))
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
	_, err = BandMass(model.DistributionParams{}, model.BandAverage)
	assert.ErrorIs(t, err, common.ErrorInvalidParameter)
}
