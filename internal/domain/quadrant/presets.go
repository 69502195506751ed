package quadrant

// Render colors shared by the presets.
const (
	ColorEmerald = "#10b981"
	ColorBlue    = "#3b82f6"
	ColorAmber   = "#f59e0b"
	ColorRose    = "#f43f5e"
)

// Menu engineering quadrant names.
const (
	Star      = "Star"
	Plowhorse = "Plowhorse"
	Puzzle    = "Puzzle"
	Dog       = "Dog"
)

// Store portfolio quadrant names.
const (
	HighRentHighRevenue = "High Rent/High Revenue"
	HighRentLowRevenue  = "High Rent/Low Revenue"
	LowRentHighRevenue  = "Low Rent/High Revenue"
	LowRentLowRevenue   = "Low Rent/Low Revenue"
)

// Default split lines.
const (
	MenuSplit         = 50
	StoreRentSplit    = 300
	StoreRevenueSplit = 750
)

// MenuEngineering classifies menu items by contribution margin (x) and
// sales volume (y), both on a 0..100 scale split at the midpoint.
func MenuEngineering() Scheme {
	return Scheme{
		Name:   "menu",
		Splits: Splits{X: MenuSplit, Y: MenuSplit},
		Labels: LabelMap{
			HighHigh: {Name: Star, Color: ColorEmerald},
			HighLow:  {Name: Plowhorse, Color: ColorBlue},
			LowHigh:  {Name: Puzzle, Color: ColorAmber},
			LowLow:   {Name: Dog, Color: ColorRose},
		},
	}
}

// StorePortfolio classifies outlets by rent (x) and revenue (y) against
// fixed reference lines.
func StorePortfolio() Scheme {
	return Scheme{
		Name:   "store",
		Splits: Splits{X: StoreRentSplit, Y: StoreRevenueSplit},
		Labels: LabelMap{
			HighHigh: {Name: HighRentHighRevenue, Color: ColorAmber},
			HighLow:  {Name: HighRentLowRevenue, Color: ColorRose},
			LowHigh:  {Name: LowRentHighRevenue, Color: ColorEmerald},
			LowLow:   {Name: LowRentLowRevenue, Color: ColorBlue},
		},
	}
}
