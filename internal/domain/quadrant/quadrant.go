// Package quadrant splits a plane of two independent scores into four
// business categories.
//
// Points on a split line resolve toward the high side of that axis.
package quadrant

import (
	"fmt"
	"math"

	"github.com/okian/opsboard/internal/domain/model"
)

// Quadrant identifies one of the four regions.
type Quadrant int

// Quadrants, named high/low on x then y.
const (
	HighHigh Quadrant = iota // A
	HighLow                  // B
	LowHigh                  // C
	LowLow                   // D
)

// String returns the letter tag A..D.
func (q Quadrant) String() string {
	switch q {
	case HighHigh:
		return "A"
	case HighLow:
		return "B"
	case LowHigh:
		return "C"
	case LowLow:
		return "D"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Splits are the reference lines for each axis.
type Splits struct {
	X float64
	Y float64
}

// Label is the business name and default render color of a quadrant.
type Label struct {
	Name  string
	Color string
}

// LabelMap holds a label for every quadrant, indexed by Quadrant.
type LabelMap [4]Label

// Scheme bundles split lines with the names they produce.
type Scheme struct {
	Name   string
	Splits Splits
	Labels LabelMap
}

// Tag is the classification result handed to the presentation layer.
type Tag struct {
	Quadrant Quadrant
	Name     string
	Color    string
}

// Classified pairs an input point with its tag. The point's weight is
// carried through untouched for marker sizing.
type Classified struct {
	Point model.QuadrantPoint
	Tag   Tag
}

// Classify assigns (x, y) to a quadrant. x >= splits.X and y >= splits.Y
// count as high.
func Classify(x, y float64, s Splits) (Quadrant, error) {
	if !finite(x) || !finite(y) {
		return 0, fmt.Errorf("%w: x=%v y=%v", ErrInvalidMetric, x, y)
	}
	if !finite(s.X) || !finite(s.Y) {
		return 0, fmt.Errorf("%w: split x=%v y=%v", ErrInvalidScheme, s.X, s.Y)
	}
	highX, highY := x >= s.X, y >= s.Y
	switch {
	case highX && highY:
		return HighHigh, nil
	case highX:
		return HighLow, nil
	case highY:
		return LowHigh, nil
	default:
		return LowLow, nil
	}
}

// Validate checks that splits are finite and every quadrant is named.
func (s Scheme) Validate() error {
	if !finite(s.Splits.X) || !finite(s.Splits.Y) {
		return fmt.Errorf("%w: %s: non-finite split", ErrInvalidScheme, s.Name)
	}
	for q, l := range s.Labels {
		if l.Name == "" {
			return fmt.Errorf("%w: %s: quadrant %s has no name", ErrInvalidScheme, s.Name, Quadrant(q))
		}
	}
	return nil
}

// At returns a copy of the scheme with different split lines.
func (s Scheme) At(splits Splits) Scheme {
	s.Splits = splits
	return s
}

// Label returns the label for q.
func (s Scheme) Label(q Quadrant) Label {
	if q < HighHigh || q > LowLow {
		return Label{}
	}
	return s.Labels[q]
}

// Tag classifies (x, y) and decorates the result with the scheme's labels.
func (s Scheme) Tag(x, y float64) (Tag, error) {
	q, err := Classify(x, y, s.Splits)
	if err != nil {
		return Tag{}, err
	}
	l := s.Label(q)
	return Tag{Quadrant: q, Name: l.Name, Color: l.Color}, nil
}

// ClassifyPoints tags every point in order. It stops at the first invalid
// point and reports its id.
func ClassifyPoints(points []model.QuadrantPoint, s Scheme) ([]Classified, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]Classified, 0, len(points))
	for _, p := range points {
		tag, err := s.Tag(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", p.ID, err)
		}
		out = append(out, Classified{Point: p, Tag: tag})
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
