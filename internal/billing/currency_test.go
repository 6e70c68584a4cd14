package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{75.5, "R$ 75,50"},
		{150, "R$ 150,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-99.9, "-R$ 99,90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.value))
	}
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"R$ 75,50", 75.5},
		{"R$ 1.234,56", 1234.56},
		{"R$ 150,00", 150},
		{"150", 150},
		{"150,50", 150.5},
	}
	for _, tt := range tests {
		got, err := ParseBRL(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseBRLRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "R$ ", "abc"} {
		_, err := ParseBRL(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.01, 75.5, 150, 999.99, 1234.56, 1234567.89} {
		got, err := ParseBRL(FormatBRL(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
