package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidParameter is returned for a non-positive or non-finite
	// stddev, a non-finite mean, or a resolution below 2.
	ErrorInvalidParameter = errors.New("invalid parameter")
)
