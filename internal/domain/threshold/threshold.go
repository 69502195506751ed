// Package threshold maps scalar metrics onto ordinal status labels.
//
// A Table lists cut points from highest to lowest; a value belongs to the
// first band whose lower bound it reaches. Every function here is pure and
// safe for concurrent use.
package threshold

import (
	"fmt"
	"math"
)

// Label is an ordinal status name such as "Optimal".
type Label string

// Sell-through labels.
const (
	Optimal  Label = "Optimal"
	Warning  Label = "Warning"
	Critical Label = "Critical"
)

// Default sell-through cut points, in percent.
const (
	DefaultOptimalMin = 90
	DefaultWarningMin = 75
)

// Band is a label with its inclusive lower bound.
type Band struct {
	Label Label
	Min   float64
}

// Table is an ordered set of bands, sorted descending by Min, plus the label
// used when no band matches.
type Table struct {
	Bands   []Band
	Default Label
}

// SellThroughTable builds the Optimal/Warning/Critical table.
func SellThroughTable(optimalMin, warningMin float64) Table {
	return Table{
		Bands: []Band{
			{Label: Optimal, Min: optimalMin},
			{Label: Warning, Min: warningMin},
		},
		Default: Critical,
	}
}

// DefaultSellThroughTable returns the table with the 90/75 cut points.
func DefaultSellThroughTable() Table {
	return SellThroughTable(DefaultOptimalMin, DefaultWarningMin)
}

// Validate checks that bands are finite, labelled and strictly descending.
func (t Table) Validate() error {
	if t.Default == "" {
		return fmt.Errorf("%w: default label is empty", ErrInvalidTable)
	}
	for i, b := range t.Bands {
		if b.Label == "" {
			return fmt.Errorf("%w: band %d has no label", ErrInvalidTable, i)
		}
		if !finite(b.Min) {
			return fmt.Errorf("%w: band %q has non-finite bound", ErrInvalidTable, b.Label)
		}
		if i > 0 && b.Min >= t.Bands[i-1].Min {
			return fmt.Errorf("%w: band %q (%v) is not below %q (%v)",
				ErrInvalidTable, b.Label, b.Min, t.Bands[i-1].Label, t.Bands[i-1].Min)
		}
	}
	return nil
}

// Classify returns the label of the first band whose lower bound value
// reaches, scanning from the highest cut point down. A value equal to a cut
// point belongs to that (higher) band. Values are not clamped.
func Classify(value float64, t Table) (Label, error) {
	if !finite(value) {
		return "", fmt.Errorf("%w: %v", ErrInvalidMetric, value)
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	for _, b := range t.Bands {
		if value >= b.Min {
			return b.Label, nil
		}
	}
	return t.Default, nil
}

// Labels lists every label the table can produce, highest band first.
func (t Table) Labels() []Label {
	out := make([]Label, 0, len(t.Bands)+1)
	for _, b := range t.Bands {
		out = append(out, b.Label)
	}
	return append(out, t.Default)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
