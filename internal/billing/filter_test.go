package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroloango/futboss/models"
)

func samplePayments() []models.Payment {
	return []models.Payment{
		{StudentName: "Ana", Status: models.StatusPaid, Month: "Janeiro", Category: "Sub-11", PaymentType: "Mensalidade"},
		{StudentName: "Ana", Status: models.StatusPending, Month: "Fevereiro", Category: "Sub-11", PaymentType: "Mensalidade"},
		{StudentName: "Bruno", Status: models.StatusPaid, Month: "Janeiro", Category: "Sub-13", PaymentType: "Matrícula"},
	}
}

func TestApplyFiltersConjunction(t *testing.T) {
	got := ApplyFilters(samplePayments(), Filters{Search: "Ana", Status: "Pago"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].StudentName)
	assert.Equal(t, models.StatusPaid, got[0].Status)
}

func TestApplyFiltersEmptyMeansNoConstraint(t *testing.T) {
	got := ApplyFilters(samplePayments(), Filters{})
	assert.Len(t, got, 3)
}

func TestApplyFiltersSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := ApplyFilters(samplePayments(), Filters{Search: "brU"})
	require.Len(t, got, 1)
	assert.Equal(t, "Bruno", got[0].StudentName)
}

func TestApplyFiltersByEachField(t *testing.T) {
	payments := samplePayments()

	assert.Len(t, ApplyFilters(payments, Filters{Month: "Janeiro"}), 2)
	assert.Len(t, ApplyFilters(payments, Filters{Category: "Sub-13"}), 1)
	assert.Len(t, ApplyFilters(payments, Filters{PaymentType: "Matrícula"}), 1)
	assert.Empty(t, ApplyFilters(payments, Filters{Status: "Pago", Month: "Fevereiro"}))
}

func TestPageClampsToLastPage(t *testing.T) {
	payments := make([]models.Payment, 7)

	window, page := Page(payments, 1, 5)
	assert.Len(t, window, 5)
	assert.Equal(t, 1, page)

	window, page = Page(payments, 2, 5)
	assert.Len(t, window, 2)
	assert.Equal(t, 2, page)

	// The collection shrank below the requested page: clamp, don't blank.
	window, page = Page(payments, 9, 5)
	assert.Len(t, window, 2)
	assert.Equal(t, 2, page)

	window, page = Page(nil, 3, 5)
	assert.Empty(t, window)
	assert.Equal(t, 1, page)
}
