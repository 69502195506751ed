package period

import (
	"fmt"
	"strings"
	"time"
)

// Locale selects month names and day/month order, e.g. "en-US".
type Locale string

// Supported locales.
const (
	EnUS Locale = "en-US"
	EnGB Locale = "en-GB"
	IdID Locale = "id-ID"

	DefaultLocale = EnUS
)

type layout struct {
	dayFirst bool
	months   [12]string
}

var englishMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var layouts = map[Locale]layout{
	EnUS: {dayFirst: false, months: englishMonths},
	EnGB: {dayFirst: true, months: englishMonths},
	IdID: {dayFirst: true, months: [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}},
}

// Locales lists the supported locales.
func Locales() []Locale {
	return []Locale{EnUS, EnGB, IdID}
}

// ParseLocale resolves a tag case-insensitively and accepts underscores
// ("en_us" is en-US). An empty tag is the default locale.
func ParseLocale(tag string) (Locale, error) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return DefaultLocale, nil
	}
	for _, l := range Locales() {
		if strings.EqualFold(tag, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
}

// short renders day and abbreviated month.
func (l layout) short(t time.Time) string {
	m := l.months[t.Month()-1]
	if l.dayFirst {
		return fmt.Sprintf("%d %s", t.Day(), m)
	}
	return fmt.Sprintf("%s %d", m, t.Day())
}

// long renders day, abbreviated month and year.
func (l layout) long(t time.Time) string {
	m := l.months[t.Month()-1]
	if l.dayFirst {
		return fmt.Sprintf("%d %s %d", t.Day(), m, t.Year())
	}
	return fmt.Sprintf("%s %d, %d", m, t.Day(), t.Year())
}
