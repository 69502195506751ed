// Package types contains the report types shared by the service and the
// renderers.
package types

import "time"

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Report is the outcome of one evaluation over a dataset. Numbers keep full
// precision; renderers round them.
type Report struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Outlet      string         `json:"outlet"`
	Locale      string         `json:"locale"`
	Period      PeriodSection  `json:"period"`
	Waste       []WasteRow     `json:"waste"`
	Inventory   []InventoryRow `json:"inventory"`
	Menu        []MatrixRow    `json:"menu"`
	Stores      []MatrixRow    `json:"stores"`
	Pareto      ParetoSection  `json:"pareto"`
	Impact      []ImpactRow    `json:"impact"`
	Alerts      []Alert        `json:"alerts"`
	Summary     Summary        `json:"summary"`
}

// PeriodSection holds the display labels of the reporting period.
type PeriodSection struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Range    string `json:"range"`
	EndLabel string `json:"end_label"`
	EndShort string `json:"end_short"`
	Days     int    `json:"days"`
	Error    string `json:"error,omitempty"`
}

// WasteRow is a production line classified by sell-through.
type WasteRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Produced    float64 `json:"produced"`
	Sold        float64 `json:"sold"`
	Wasted      float64 `json:"wasted"`
	SellThrough float64 `json:"sell_through"`
	WasteShare  float64 `json:"waste_share"`
	Status      string  `json:"status"`
	Tone        string  `json:"tone"`
	Error       string  `json:"error,omitempty"`
}

// InventoryRow is a stock level classified against its par range.
type InventoryRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Current     float64 `json:"current"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Consumption float64 `json:"consumption"`
	Status      string  `json:"status"`
	Tone        string  `json:"tone"`
	Fill        float64 `json:"fill"`
	MinMarker   float64 `json:"min_marker"`
	Error       string  `json:"error,omitempty"`
}

// MatrixRow is a point placed on a two-axis matrix.
type MatrixRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Weight   *float64 `json:"weight,omitempty"`
	Quadrant string   `json:"quadrant"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Error    string   `json:"error,omitempty"`
}

// ParetoSection is the cumulative revenue distribution.
type ParetoSection struct {
	Total     float64     `json:"total"`
	CoreCount int         `json:"core_count"`
	Rows      []ParetoRow `json:"rows"`
	Error     string      `json:"error,omitempty"`
}

// ParetoRow is one ranked contributor.
type ParetoRow struct {
	Rank            int     `json:"rank"`
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Revenue         float64 `json:"revenue"`
	Share           float64 `json:"share"`
	CumulativeShare float64 `json:"cumulative_share"`
	Tier            string  `json:"tier"`
}

// ImpactRow compares a manual process metric with its automated one.
type ImpactRow struct {
	Metric      string  `json:"metric"`
	Manual      float64 `json:"manual"`
	Machine     float64 `json:"machine"`
	Improvement float64 `json:"improvement"`
	Trend       string  `json:"trend"`
	Error       string  `json:"error,omitempty"`
}

// Alert flags an entity needing attention.
type Alert struct {
	Severity string `json:"severity"`
	Section  string `json:"section"`
	EntityID string `json:"entity_id"`
	Message  string `json:"message"`
}

// Summary holds headline counts for the report.
type Summary struct {
	Entities       int     `json:"entities"`
	Errors         int     `json:"errors"`
	Alerts         int     `json:"alerts"`
	CriticalWaste  int     `json:"critical_waste"`
	LowStock       int     `json:"low_stock"`
	Overstock      int     `json:"overstock"`
	Stars          int     `json:"stars"`
	AvgSellThrough float64 `json:"avg_sell_through"`
}

// HasErrors reports whether any row was rejected by a classifier.
func (r *Report) HasErrors() bool {
	return r != nil && r.Summary.Errors > 0
}
