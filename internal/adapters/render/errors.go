package render

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrUnknownFormat = errors.New("unknown output format")
)
