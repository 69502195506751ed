// Package badge maps status labels to the badge tone the dashboard paints
// them with.
package badge

import "strings"

// Tone is a badge color family.
type Tone string

// Tones.
const (
	Positive Tone = "positive"
	Caution  Tone = "caution"
	Negative Tone = "negative"
	Surplus  Tone = "surplus"
	Info     Tone = "info"
	Neutral  Tone = "neutral"
)

var tones = map[string]Tone{
	"good":      Positive,
	"optimal":   Positive,
	"warning":   Caution,
	"critical":  Negative,
	"low":       Negative,
	"low stock": Negative,
	"overstock": Surplus,
	"info":      Info,
	"neutral":   Neutral,
}

var colors = map[Tone]string{
	Positive: "#10b981",
	Caution:  "#f59e0b",
	Negative: "#f43f5e",
	Surplus:  "#a855f7",
	Info:     "#3b82f6",
	Neutral:  "#64748b",
}

// ToneFor looks status up case-insensitively. Unknown statuses are Neutral.
func ToneFor(status string) Tone {
	if t, ok := tones[strings.ToLower(strings.TrimSpace(status))]; ok {
		return t
	}
	return Neutral
}

// Color is the tone's hex color.
func (t Tone) Color() string {
	if c, ok := colors[t]; ok {
		return c
	}
	return colors[Neutral]
}
