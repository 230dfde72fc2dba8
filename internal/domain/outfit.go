package domain

import "math"

// Outfit es un look compuesto a partir de una pieza semilla. No se persiste.
type Outfit struct {
	Items             []Item   `json:"items"`
	TotalPrice        float64  `json:"total_price"`
	Explanation       string   `json:"explanation"`
	SkippedCategories []string `json:"skipped_categories,omitempty"`
}

// Recommendation es la respuesta a un swipe.
type Recommendation struct {
	Suggestions []Item `json:"suggestions"`
	Hint        string `json:"hint"`
}

// RoundPrice redondea a 2 decimales.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
