package gradient

import (
	"errors"
	"fmt"
)

// ErrInvalidGradientInput is returned for degenerate requests. Both ErrEmptyStops and
// ErrNonPositiveLength wrap it.
var ErrInvalidGradientInput = errors.New("invalid gradient input")

// ErrEmptyStops is returned when no stops are given.
var ErrEmptyStops = fmt.Errorf("%w: no stops", ErrInvalidGradientInput)

// ErrNonPositiveLength is returned when the requested length is zero or negative.
var ErrNonPositiveLength = fmt.Errorf("%w: length must be positive", ErrInvalidGradientInput)
