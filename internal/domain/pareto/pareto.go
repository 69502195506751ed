// Package pareto builds running share-of-total distributions over ranked
// contributors and groups them into ABC tiers.
package pareto

import (
	"fmt"
	"math"

	"github.com/okian/opsboard/internal/domain/model"
	"github.com/shopspring/decimal"
)

const percent = 100

// Row is one contributor with its running share of the total, in percent.
// CumulativeShare keeps full float64 precision; round with Rounded at the
// presentation boundary.
type Row struct {
	Item            model.RankedContributor
	Contribution    float64
	CumulativeShare float64
}

// Rounded returns the cumulative share rounded half away from zero to the
// given number of decimal places.
func (r Row) Rounded(places int32) float64 {
	return decimal.NewFromFloat(r.CumulativeShare).Round(places).InexactFloat64()
}

// Build computes cumulative shares over items in the order given.
//
// Callers must pass items sorted descending by contribution; Build never
// re-sorts. An empty list or a zero total yields ErrEmptyDistribution; a
// total beyond float64 range yields ErrInvalidMetric.
func Build(items []model.RankedContributor) ([]Row, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no contributors", ErrEmptyDistribution)
	}
	var total float64
	for _, it := range items {
		if math.IsNaN(it.Contribution) || math.IsInf(it.Contribution, 0) {
			return nil, fmt.Errorf("contributor %q: %w: %v", it.ID, ErrInvalidMetric, it.Contribution)
		}
		total += it.Contribution
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total contribution overflows", ErrInvalidMetric)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: total contribution is zero", ErrEmptyDistribution)
	}

	rows := make([]Row, len(items))
	var running float64
	for i, it := range items {
		running += it.Contribution
		rows[i] = Row{
			Item:            it,
			Contribution:    it.Contribution,
			CumulativeShare: running / total * percent,
		}
	}
	return rows, nil
}

// CoreCount returns the smallest number of leading rows whose cumulative
// share reaches share. It returns len(rows) when no prefix does.
func CoreCount(rows []Row, share float64) int {
	for i, r := range rows {
		if r.CumulativeShare >= share {
			return i + 1
		}
	}
	return len(rows)
}
