// Package pay turns free-form compensation labels into a heading and amount
// for job cards.
package pay

import (
	"regexp"
	"strings"
)

const (
	CategoryStarting = "Starting pay"
	CategoryDaily    = "Daily pay"
	CategoryMonthly  = "Monthly pay"
	CategoryWeekly   = "Weekly pay"
)

// Label is the display form of a pay string. Amount is never parsed as a
// number.
type Label struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// Heading is the chip title shown above the amount.
func (l Label) Heading() string {
	if l.Category == "" {
		return "Pay"
	}
	return l.Category
}

type rule struct {
	category string
	pattern  *regexp.Regexp
}

// Rules are evaluated in order; the first match wins.
var rules = []rule{
	{CategoryStarting, regexp.MustCompile(`(?i)starts?\s+at\s*`)},
	{CategoryDaily, regexp.MustCompile(`(?i)/day`)},
	{CategoryMonthly, regexp.MustCompile(`(?i)/month`)},
	{CategoryWeekly, regexp.MustCompile(`(?i)/week`)},
}

// Parse maps a raw label such as "₹500/day" to {Daily pay, ₹500}.
// Unrecognised labels come back with an empty category and unchanged.
func Parse(raw string) Label {
	for _, r := range rules {
		loc := r.pattern.FindStringIndex(raw)
		if loc == nil {
			continue
		}
		amount := raw[:loc[0]] + raw[loc[1]:]
		return Label{Category: r.category, Amount: strings.TrimSpace(amount)}
	}
	return Label{Amount: raw}
}
