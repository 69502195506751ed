package ratio

// Trend is the direction of a change, used for KPI arrows.
type Trend string

// Trends.
const (
	Up   Trend = "up"
	Down Trend = "down"
	Flat Trend = "flat"
)

// TrendOf reports the sign of delta. NaN is Flat.
func TrendOf(delta float64) Trend {
	switch {
	case delta > 0:
		return Up
	case delta < 0:
		return Down
	default:
		return Flat
	}
}
