package ratio

import (
	"errors"

	"github.com/okian/opsboard/internal/domain/threshold"
)

// Sentinel error kinds for this package.
var (
	ErrZeroBase      = errors.New("zero base")
	ErrInvalidMetric = threshold.ErrInvalidMetric
)
