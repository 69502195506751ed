package service

import (
	"errors"

	"github.com/okian/opsboard/internal/domain/pareto"
	"github.com/okian/opsboard/internal/domain/period"
	"github.com/okian/opsboard/internal/domain/quadrant"
	"github.com/okian/opsboard/internal/domain/ratio"
	"github.com/okian/opsboard/internal/domain/threshold"
)

// ErrUnknownLocale is returned by Validate for an unsupported locale.
var ErrUnknownLocale = period.ErrUnknownLocale

// errorKind names err for metric labels.
func errorKind(err error) string {
	switch {
	case errors.Is(err, threshold.ErrInvalidMetric):
		return "invalid_metric"
	case errors.Is(err, threshold.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, threshold.ErrInvalidTable):
		return "invalid_table"
	case errors.Is(err, quadrant.ErrInvalidScheme):
		return "invalid_scheme"
	case errors.Is(err, ratio.ErrZeroBase):
		return "zero_base"
	case errors.Is(err, pareto.ErrEmptyDistribution):
		return "empty_distribution"
	case errors.Is(err, pareto.ErrInvalidTiers):
		return "invalid_tiers"
	case errors.Is(err, period.ErrInvalidPeriod):
		return "invalid_period"
	case errors.Is(err, period.ErrUnknownLocale):
		return "unknown_locale"
	default:
		return "other"
	}
}
