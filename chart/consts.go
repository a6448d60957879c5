package chart

const (
	Title      = "Patient Health Status on Normal Distribution"
	XAxisTitle = "Health Metric"
	YAxisTitle = "Probability Density"

	// label sits at this fraction of the curve peak
	LabelHeightRatio = 0.9
	LabelDecimals    = 2
)
