// Package model contains domain models passed between layers.
package model

// MetricSample is a single entity's observed metric, e.g. a sell-through
// percentage. Values outside 0..100 are accepted for percentage samples.
type MetricSample struct {
	ID             string
	Name           string
	Value          float64
	SecondaryValue *float64 // optional, e.g. a target or prior value
	Weight         *float64 // optional magnitude used for sizing only
}

// QuadrantPoint carries two independent scores. Weight only sizes the
// rendered marker and never takes part in classification.
type QuadrantPoint struct {
	ID     string
	Name   string
	X      float64
	Y      float64
	Weight *float64
}

// RankedContributor is one line item of a ranked revenue or volume list.
type RankedContributor struct {
	ID           string
	Name         string
	Contribution float64
}

// DateRange is a display period as entered by the user. Either bound may be
// an unparsable string.
type DateRange struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Float returns a pointer to v, for optional sample fields.
func Float(v float64) *float64 { return &v }
