// Package period turns a pair of user-entered dates into display labels.
package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/opsboard/internal/domain/model"
)

const (
	dateLayout      = "2006-01-02"
	defaultSpanDays = 7
	placeholder     = "-"
	secondsPerDay   = 24 * 60 * 60
)

// Labels are the strings shown for a reporting period.
type Labels struct {
	Range    string `json:"range"`
	End      string `json:"end"`
	EndShort string `json:"end_short"`
}

// Invalid returns the placeholder labels returned alongside ErrInvalidPeriod
// so callers can render them directly.
func Invalid() Labels {
	return Labels{Range: placeholder, End: placeholder, EndShort: placeholder}
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. Only the calendar date as
// written is kept; the time of day and offset are dropped.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidPeriod, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Format renders start and end for loc. If either bound does not parse it
// returns Invalid and an error wrapping ErrInvalidPeriod. Inverted ranges
// are rendered as given.
func Format(start, end string, loc Locale) (Labels, error) {
	l, ok := layouts[loc]
	if !ok {
		if loc != "" {
			return Invalid(), fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
		}
		l = layouts[DefaultLocale]
	}
	s, err := ParseDate(start)
	if err != nil {
		return Invalid(), fmt.Errorf("start: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return Invalid(), fmt.Errorf("end: %w", err)
	}
	endLong := l.long(e)
	return Labels{
		Range:    l.short(s) + " - " + endLong,
		End:      endLong,
		EndShort: l.short(e),
	}, nil
}

// FormatRange is Format over a model.DateRange.
func FormatRange(r model.DateRange, loc Locale) (Labels, error) {
	return Format(r.Start, r.End, loc)
}

// DefaultRange is the period pre-selected in the dashboard: the calendar
// day of now through seven days later.
func DefaultRange(now time.Time) model.DateRange {
	return model.DateRange{
		Start: now.Format(dateLayout),
		End:   now.AddDate(0, 0, defaultSpanDays).Format(dateLayout),
	}
}

// Days returns the number of calendar days from start to end, negative for
// an inverted range.
func Days(r model.DateRange) (int, error) {
	s, err := ParseDate(r.Start)
	if err != nil {
		return 0, err
	}
	e, err := ParseDate(r.End)
	if err != nil {
		return 0, err
	}
	return int((e.Unix() - s.Unix()) / secondsPerDay), nil
}
