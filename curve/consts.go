package curve

const (
	// samples per curve when the caller has no preference
	DefaultResolution = 1000
	MinResolution     = 2

	// the curve spans mean ± DomainZScore*stddev, > 99.99% of the mass
	DomainZScore = 4.0

	// at or above this resolution sampling is spread over goroutines
	ParallelThreshold = 50000
	// lower bound on the points handled by one goroutine
	MinChunkSize = 10000
)
