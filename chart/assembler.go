package chart

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/config"
	"github.com/uyouii/normal-band-chart/curve"
	"github.com/uyouii/normal-band-chart/model"
	"github.com/uyouii/normal-band-chart/percentile"
	"github.com/uyouii/normal-band-chart/utils"
	"go.uber.org/zap"
)

// Assemble samples the curve of params, ranks markerX against it and packs
// both into a ChartBundle. Errors from sampling or ranking are returned as is,
// and no bundle is returned alongside an error.
func Assemble(ctx context.Context, params model.DistributionParams,
	markerX float64, resolution int) (bundle *model.ChartBundle, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Assemble recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Stringer("params", params))
			bundle, err = nil, errors.Wrapf(common.ErrorInvalidValue, "assemble chart: %v", r)
		}
	}()

	fullCurve, bands, err := curve.SampleBands(params, resolution)
	if err != nil {
		logger.Error("sample curve failed", zap.Stringer("params", params),
			zap.Int("resolution", resolution), zap.Error(err))
		return nil, err
	}

	marker := model.MarkerValue{X: markerX}
	rank, err := percentile.Evaluate(params, marker)
	if err != nil {
		logger.Error("evaluate percentile failed", zap.Stringer("params", params),
			zap.Float64("markerX", markerX), zap.Error(err))
		return nil, err
	}

	peakY := curve.Peak(fullCurve)

	return &model.ChartBundle{
		Params:     params,
		Curve:      fullCurve,
		Below:      bands[0],
		Average:    bands[1],
		Above:      bands[2],
		Marker:     marker,
		Percentile: rank,
		MarkerBand: curve.Classify(params, markerX),
		MarkerLine: model.MarkerLine{X: markerX, Y0: 0, Y1: peakY},
		Label: model.Label{
			Text:    LabelText(rank.Value),
			AnchorX: markerX,
			AnchorY: LabelHeightRatio * peakY,
		},
		PeakY:      peakY,
		Title:      Title,
		XAxisTitle: XAxisTitle,
		YAxisTitle: YAxisTitle,
	}, nil
}

func AssembleDefault(ctx context.Context, params model.DistributionParams,
	markerX float64) (*model.ChartBundle, error) {
	return Assemble(ctx, params, markerX, curve.DefaultResolution)
}

func AssembleFromConfig(ctx context.Context, cfg *config.ChartConfig) (*model.ChartBundle, error) {
	if err := cfg.Validate(); err != nil {
		utils.GetLogger(ctx).Error("invalid chart config", zap.Error(err))
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return Assemble(ctx, params, cfg.Marker, cfg.Resolution)
}

// LabelText renders the marker annotation, e.g. "Patient\n6.68%".
func LabelText(percent float64) string {
	return fmt.Sprintf("Patient\n%.*f%%", LabelDecimals, utils.FormatFloat(percent, LabelDecimals))
}
