package threshold

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidMetric = errors.New("invalid metric")
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidTable  = errors.New("invalid threshold table")
)
