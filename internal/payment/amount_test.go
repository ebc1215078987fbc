package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"19.995", 2000},
		{"10", 1000},
		{"0.5", 50},
		{"12.344", 1234},
		{"12.345", 1235},
		{"99.99", 9999},
		{"0.004", 0},
		{"1500", 150000},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestToMinorUnits_FromFloatAvoidsDrift(t *testing.T) {
	// 19.995*100 in float64 is 1999.4999..., which naive rounding turns into 1999.
	assert.Equal(t, int64(2000), ToMinorUnits(decimal.NewFromFloat(19.995)))
}
