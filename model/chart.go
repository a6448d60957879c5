package model

// MarkerLine is the vertical segment drawn at the marker, from Y0 to Y1.
type MarkerLine struct {
	X  float64 `json:"x"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

type Label struct {
	Text    string  `json:"text"`
	AnchorX float64 `json:"anchor_x"`
	AnchorY float64 `json:"anchor_y"`
}

// ChartBundle is everything a renderer needs for one chart. It is built once
// and must not be modified.
type ChartBundle struct {
	Params     DistributionParams `json:"-"`
	Curve      *FullCurve         `json:"curve"`
	Below      Band               `json:"below"`
	Average    Band               `json:"average"`
	Above      Band               `json:"above"`
	Marker     MarkerValue        `json:"marker"`
	Percentile PercentileResult   `json:"percentile"`
	MarkerBand BandKind           `json:"marker_band"`
	MarkerLine MarkerLine         `json:"marker_line"`
	Label      Label              `json:"label"`
	PeakY      float64            `json:"peak_y"`

	Title      string `json:"title"`
	XAxisTitle string `json:"x_axis_title"`
	YAxisTitle string `json:"y_axis_title"`
}

// Bands returns below, average and above in x order.
func (b *ChartBundle) Bands() []Band {
	return []Band{b.Below, b.Average, b.Above}
}
