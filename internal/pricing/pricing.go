// Package pricing computes derived amounts of contract items.
package pricing

// ComputeFinalValue returns quantity * unitValue - discount.
// The result is not clamped: a discount above the gross amount yields a
// negative value.
func ComputeFinalValue(quantity int, unitValue, discount float64) float64 {
	return float64(quantity)*unitValue - discount
}

