package pareto

import "fmt"

// Tier is an ABC class.
type Tier string

// ABC tiers.
const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Default tier ceilings, in percent of cumulative share.
const (
	DefaultTierA = 80
	DefaultTierB = 95
)

// Tiers holds the cumulative-share ceilings for the A and B tiers.
type Tiers struct {
	A float64
	B float64
}

// DefaultTiers returns the 80/95 split.
func DefaultTiers() Tiers {
	return Tiers{A: DefaultTierA, B: DefaultTierB}
}

// Validate requires 0 < A <= B <= 100.
func (t Tiers) Validate() error {
	if !(t.A > 0 && t.A <= t.B && t.B <= percent) {
		return fmt.Errorf("%w: a=%v b=%v", ErrInvalidTiers, t.A, t.B)
	}
	return nil
}

// Of returns the tier for a cumulative share.
func (t Tiers) Of(share float64) Tier {
	switch {
	case share <= t.A:
		return TierA
	case share <= t.B:
		return TierB
	default:
		return TierC
	}
}

// TieredRow is a Row with its ABC tier.
type TieredRow struct {
	Row
	Tier Tier
}

// Assign tiers every row: share <= A is "A", share <= B is "B", the rest "C".
func Assign(rows []Row, t Tiers) ([]TieredRow, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	out := make([]TieredRow, len(rows))
	for i, r := range rows {
		out[i] = TieredRow{Row: r, Tier: t.Of(r.CumulativeShare)}
	}
	return out, nil
}
