package config

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/uyouii/normal-band-chart/common"
	"github.com/uyouii/normal-band-chart/curve"
	"github.com/uyouii/normal-band-chart/model"
	"github.com/uyouii/normal-band-chart/utils"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ChartConfig is the on-disk description of one chart request.
//
//	mean: 100
//	stddev: 15
//	resolution: 1000 # optional
//	marker: 77.5
type ChartConfig struct {
	Mean       float64 `yaml:"mean"`
	StdDev     float64 `yaml:"stddev"`
	Resolution int     `yaml:"resolution,omitempty"`
	Marker     float64 `yaml:"marker"`
}

// Parse decodes YAML, fills defaults and validates. Unknown keys are rejected
// so a misspelt "stdev" cannot silently become zero.
func Parse(data []byte) (*ChartConfig, error) {
	cfg := &ChartConfig{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(common.ErrorInvalidValue, "empty chart config")
		}
		return nil, errors.Wrap(err, "decode chart config")
	}

	if cfg.Resolution == 0 {
		cfg.Resolution = curve.DefaultResolution
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(ctx context.Context, path string) (*ChartConfig, error) {
	logger := utils.GetLogger(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read chart config failed", zap.String("path", path), zap.Error(err))
		return nil, errors.Wrapf(err, "read chart config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		logger.Error("parse chart config failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	logger.Info("chart config loaded", zap.String("path", path), zap.Any("config", cfg))
	return cfg, nil
}

func (c *ChartConfig) Validate() error {
	if c == nil {
		return errors.Wrap(common.ErrorInvalidValue, "nil chart config")
	}
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.Resolution < curve.MinResolution {
		return errors.Wrapf(common.ErrorInvalidParameter,
			"resolution must be at least %d, got %d", curve.MinResolution, c.Resolution)
	}
	if math.IsNaN(c.Marker) || math.IsInf(c.Marker, 0) {
		return errors.Wrapf(common.ErrorInvalidValue, "marker must be finite, got %v", c.Marker)
	}
	return nil
}

func (c *ChartConfig) Params() (model.DistributionParams, error) {
	return model.NewDistributionParams(c.Mean, c.StdDev)
}

func (c *ChartConfig) MarkerValue() model.MarkerValue {
	return model.MarkerValue{X: c.Marker}
}
