package threshold

import (
	"fmt"
	"math"
)

// RangeStatus places a stock level against its par band.
type RangeStatus string

// Range statuses.
const (
	Low       RangeStatus = "Low"
	InRange   RangeStatus = "Optimal"
	Overstock RangeStatus = "Overstock"
)

// Gauge is the visual position of a stock level on a 0..max bar.
type Gauge struct {
	Status RangeStatus
	// Fill is current/max clamped to [0, 1].
	Fill float64
	// MinMarker is min/max, the position of the par minimum on the bar.
	MinMarker float64
}

// ClassifyRange compares current against the inclusive [min, max] band.
func ClassifyRange(current, min, max float64) (RangeStatus, error) {
	if !finite(current) || !finite(min) || !finite(max) {
		return "", fmt.Errorf("%w: current=%v min=%v max=%v", ErrInvalidMetric, current, min, max)
	}
	if min > max {
		return "", fmt.Errorf("%w: min %v exceeds max %v", ErrInvalidRange, min, max)
	}
	switch {
	case current < min:
		return Low, nil
	case current > max:
		return Overstock, nil
	default:
		return InRange, nil
	}
}

// NewGauge classifies current and computes its bar geometry. A zero max
// leaves both ratios undefined and is reported as ErrInvalidRange.
func NewGauge(current, min, max float64) (Gauge, error) {
	status, err := ClassifyRange(current, min, max)
	if err != nil {
		return Gauge{}, err
	}
	if max == 0 {
		return Gauge{}, fmt.Errorf("%w: max is zero", ErrInvalidRange)
	}
	return Gauge{
		Status:    status,
		Fill:      math.Max(0, math.Min(1, current/max)),
		MinMarker: min / max,
	}, nil
}
