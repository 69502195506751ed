package dataset

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrDuplicateID    = errors.New("duplicate id")
)
