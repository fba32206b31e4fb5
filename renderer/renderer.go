// Package renderer converts analysis records into markdown reports.
package renderer

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// dollar formats a monetary amount in USD for display. Non-finite amounts are
// printed as-is so that an upstream division by zero stays visible.
func dollar(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("$%.2f", v)
	}
	return money.NewFromFloat(v, money.USD).Display()
}
