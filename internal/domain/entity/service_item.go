package entity

import (
	"math"
	"strings"
)

// ServiceItem is one billable line of an agreement.
type ServiceItem struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// IsBlank reports whether the description is empty after trimming.
func (s ServiceItem) IsBlank() bool {
	return strings.TrimSpace(s.Description) == ""
}

// SumCosts adds the cost of every item, rounded to cents to match the stored total.
func SumCosts(items []ServiceItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost
	}

	return RoundCents(total)
}

// RoundCents rounds v to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// trimItems trims each description in place.
func trimItems(items []ServiceItem) []ServiceItem {
	for i := range items {
		items[i].Description = strings.TrimSpace(items[i].Description)
	}

	return items
}
