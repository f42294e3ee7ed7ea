package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1500, "R$ 1.500,00"},
		{23126.8, "R$ 23.126,80"},
		{1234567.89, "R$ 1.234.567,89"},
		{999.999, "R$ 1.000,00"},
		{-250.5, "-R$ 250,50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

func TestPct(t *testing.T) {
	assert.Equal(t, "10%", Pct(10))
	assert.Equal(t, "7,5%", Pct(7.5))
	assert.Equal(t, "0%", Pct(0))
}
