package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFinalValue(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		unit     float64
		discount float64
		want     float64
	}{
		{"no discount", 2, 10.0, 0, 20.0},
		{"with discount", 2, 10.0, 5.0, 15.0},
		{"discount above gross is not clamped", 1, 10.0, 20.0, -10.0},
		{"fractional price", 3, 2.5, 0.5, 7.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ComputeFinalValue(tc.quantity, tc.unit, tc.discount), 1e-9)
		})
	}
}
