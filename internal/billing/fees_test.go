package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedroloango/futboss/models"
)

func TestResolveMonthlyFee(t *testing.T) {
	fees := []models.FeeSetting{
		{Category: "Sub-11", Value: 150},
		{Category: "Sub-15", Value: 180},
	}

	tests := []struct {
		name            string
		category        string
		hasScholarship  bool
		discountPercent float64
		want            float64
	}{
		{"plain lookup", "Sub-11", false, 0, 150},
		{"other category", "Sub-15", false, 0, 180},
		{"missing category falls back", "Sub-7", false, 0, DefaultMonthlyFee},
		{"half scholarship", "Sub-11", true, 50, 75},
		{"full scholarship", "Sub-11", true, 100, 0},
		{"flag without percent keeps base", "Sub-11", true, 0, 150},
		{"percent without flag keeps base", "Sub-11", false, 30, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMonthlyFee(fees, tt.category, tt.hasScholarship, tt.discountPercent)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 0, MonthIndex("Janeiro"))
	assert.Equal(t, 11, MonthIndex("Dezembro"))
	assert.Equal(t, -1, MonthIndex("January"))
	assert.Equal(t, -1, MonthIndex(""))
}
