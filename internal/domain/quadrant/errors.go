package quadrant

import (
	"errors"

	"github.com/okian/opsboard/internal/domain/threshold"
)

// Sentinel error kinds for this package. ErrInvalidMetric is shared with the
// threshold classifier so callers can match either with one errors.Is.
var (
	ErrInvalidMetric = threshold.ErrInvalidMetric
	ErrInvalidScheme = errors.New("invalid quadrant scheme")
)
