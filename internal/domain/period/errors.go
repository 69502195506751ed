package period

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrUnknownLocale = errors.New("unknown locale")
)
