package model

type BandKind int

const (
	BandBelow   BandKind = 1
	BandAverage BandKind = 2
	BandAbove   BandKind = 3
)

func (k BandKind) String() string {
	switch k {
	case BandBelow:
		return "below"
	case BandAverage:
		return "average"
	case BandAbove:
		return "above"
	}
	return "unknown"
}

// Band is a contiguous run of samples sharing one BandKind, ordered by X.
type Band struct {
	Kind    BandKind `json:"kind"`
	Samples []Sample `json:"samples"`
}

func (b Band) Len() int {
	return len(b.Samples)
}

func (b Band) IsEmpty() bool {
	return len(b.Samples) == 0
}

// FullCurve is the whole sampled density before banding.
type FullCurve struct {
	Params  DistributionParams `json:"-"`
	Domain  Domain             `json:"domain"`
	Samples []Sample           `json:"samples"`
}

func (c *FullCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Samples)
}

// Xs and Ys return the coordinates as separate slices.
func (c *FullCurve) Xs() []float64 {
	res := make([]float64, c.Len())
	for i := range res {
		res[i] = c.Samples[i].X
	}
	return res
}

func (c *FullCurve) Ys() []float64 {
	res := make([]float64, c.Len())
	for i := range res {
		res[i] = c.Samples[i].Y
	}
	return res
}
