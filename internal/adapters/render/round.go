package render

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/okian/opsboard/internal/domain/types"
)

// Decimal places used at the presentation boundary.
const (
	PercentPlaces int32 = 1
	RatioPlaces   int32 = 3
)

// Rounded returns a copy of r with derived percentages rounded to
// PercentPlaces and gauge ratios to RatioPlaces. Raw input values are left
// as supplied.
func Rounded(r *types.Report) *types.Report {
	out := *r
	out.Waste = make([]types.WasteRow, len(r.Waste))
	for i, row := range r.Waste {
		row.SellThrough = round(row.SellThrough, PercentPlaces)
		row.WasteShare = round(row.WasteShare, PercentPlaces)
		out.Waste[i] = row
	}
	out.Inventory = make([]types.InventoryRow, len(r.Inventory))
	for i, row := range r.Inventory {
		row.Fill = round(row.Fill, RatioPlaces)
		row.MinMarker = round(row.MinMarker, RatioPlaces)
		out.Inventory[i] = row
	}
	out.Pareto.Rows = make([]types.ParetoRow, len(r.Pareto.Rows))
	for i, row := range r.Pareto.Rows {
		row.Share = round(row.Share, PercentPlaces)
		row.CumulativeShare = round(row.CumulativeShare, PercentPlaces)
		out.Pareto.Rows[i] = row
	}
	out.Impact = make([]types.ImpactRow, len(r.Impact))
	for i, row := range r.Impact {
		row.Improvement = round(row.Improvement, PercentPlaces)
		out.Impact[i] = row
	}
	out.Summary.AvgSellThrough = round(r.Summary.AvgSellThrough, PercentPlaces)
	return &out
}

// round rounds half away from zero. Non-finite values pass through.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// fixed formats v with exactly places decimals.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
