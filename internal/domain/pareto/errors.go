package pareto

import (
	"errors"

	"github.com/okian/opsboard/internal/domain/threshold"
)

// Sentinel error kinds for this package.
var (
	ErrEmptyDistribution = errors.New("empty distribution")
	ErrInvalidTiers      = errors.New("invalid tier thresholds")
	ErrInvalidMetric     = threshold.ErrInvalidMetric
)
