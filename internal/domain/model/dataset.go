package model

// WasteItem is a produced batch with its sold and wasted counts.
type WasteItem struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Produced float64 `yaml:"produced"`
	Sold     float64 `yaml:"sold"`
	Wasted   float64 `yaml:"wasted"`
}

// InventoryItem is a raw ingredient with its par level band.
type InventoryItem struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Unit        string  `yaml:"unit"`
	Current     float64 `yaml:"current"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Consumption float64 `yaml:"consumption"` // units per day
}

// MenuItem positions a menu entry by contribution margin and sales volume.
type MenuItem struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Margin  float64 `yaml:"margin"`
	Volume  float64 `yaml:"volume"`
	Revenue float64 `yaml:"revenue"`
}

// Store is an outlet in the portfolio with its monthly rent and revenue.
type Store struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Rent    float64 `yaml:"rent"`
	Revenue float64 `yaml:"revenue"`
}

// RevenueLine is a product's revenue over the period.
type RevenueLine struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Revenue float64 `yaml:"revenue"`
}

// TechImpact compares a metric before and after automation.
type TechImpact struct {
	Metric  string  `yaml:"metric"`
	Manual  float64 `yaml:"manual"`
	Machine float64 `yaml:"machine"`
}

// Dataset is everything the data source supplies for one report.
type Dataset struct {
	Outlet     string          `yaml:"outlet"`
	Period     DateRange       `yaml:"period"`
	Waste      []WasteItem     `yaml:"waste"`
	Inventory  []InventoryItem `yaml:"inventory"`
	Menu       []MenuItem      `yaml:"menu"`
	Stores     []Store         `yaml:"stores"`
	Revenue    []RevenueLine   `yaml:"revenue"`
	TechImpact []TechImpact    `yaml:"tech_impact"`
}

// Point maps a menu item onto the margin (x) / volume (y) plane.
func (m MenuItem) Point() QuadrantPoint {
	return QuadrantPoint{ID: m.ID, Name: m.Name, X: m.Margin, Y: m.Volume, Weight: Float(m.Revenue)}
}

// Point maps a store onto the rent (x) / revenue (y) plane.
func (s Store) Point() QuadrantPoint {
	return QuadrantPoint{ID: s.ID, Name: s.Name, X: s.Rent, Y: s.Revenue}
}

// Contributor converts a revenue line for cumulative analysis.
func (r RevenueLine) Contributor() RankedContributor {
	return RankedContributor{ID: r.ID, Name: r.Name, Contribution: r.Revenue}
}

// Entities returns the number of records across all sections.
func (d Dataset) Entities() int {
	return len(d.Waste) + len(d.Inventory) + len(d.Menu) + len(d.Stores) + len(d.Revenue) + len(d.TechImpact)
}
