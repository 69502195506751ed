// Package ratio derives percentage metrics from raw operational counts.
package ratio

import (
	"fmt"
	"math"
)

const percent = 100

// SellThrough is sold / produced * 100.
func SellThrough(sold, produced float64) (float64, error) {
	return share(sold, produced)
}

// WasteShare is wasted / produced * 100.
func WasteShare(wasted, produced float64) (float64, error) {
	return share(wasted, produced)
}

// Improvement is the relative reduction from manual to machine, in percent.
// A prep time falling from 180s to 90s is a 50% improvement; a negative
// result means the machine is worse.
func Improvement(manual, machine float64) (float64, error) {
	if !finite(manual) || !finite(machine) {
		return 0, fmt.Errorf("%w: manual=%v machine=%v", ErrInvalidMetric, manual, machine)
	}
	if manual == 0 {
		return 0, fmt.Errorf("%w: manual baseline is zero", ErrZeroBase)
	}
	return (manual - machine) / manual * percent, nil
}

func share(part, base float64) (float64, error) {
	if !finite(part) || !finite(base) {
		return 0, fmt.Errorf("%w: part=%v base=%v", ErrInvalidMetric, part, base)
	}
	if base <= 0 {
		return 0, fmt.Errorf("%w: base %v", ErrZeroBase, base)
	}
	return part / base * percent, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
