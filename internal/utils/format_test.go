package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1000, "Rp 1.000"},
		{25000, "Rp 25.000"},
		{119000, "Rp 119.000"},
		{1500000, "Rp 1.500.000"},
		{-25000, "-Rp 25.000"},
		{math.NaN(), "Rp 0"},
		{math.Inf(1), "Rp 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatIDR(tt.amount), "amount %v", tt.amount)
	}
}
