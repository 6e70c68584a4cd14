package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroloango/futboss/models"
)

func TestParseDisplayDateAcceptsBothLayouts(t *testing.T) {
	fromDisplay, err := parseDisplayDate("15/03/2025")
	require.NoError(t, err)
	fromISO, err := parseDisplayDate("2025-03-15")
	require.NoError(t, err)

	assert.Equal(t, fromDisplay, fromISO)
	assert.Equal(t, "15/03/2025", formatDisplayDate(fromDisplay))
}

func TestParseDisplayDateRejectsGarbage(t *testing.T) {
	_, err := parseDisplayDate("ontem")
	assert.Error(t, err)
}

func TestFormatDisplayDateZeroValue(t *testing.T) {
	assert.Equal(t, "", formatDisplayDate(time.Time{}))
}

func TestEvaluateAmountFormula(t *testing.T) {
	amount, err := evaluateAmountFormula("Valor * 0.5", 200)
	require.NoError(t, err)
	assert.InDelta(t, 100, amount, 0.001)

	amount, err = evaluateAmountFormula("Valor + 30", 150)
	require.NoError(t, err)
	assert.InDelta(t, 180, amount, 0.001)
}

func TestEvaluateAmountFormulaInvalid(t *testing.T) {
	_, err := evaluateAmountFormula("Valor *", 150)
	assert.Error(t, err)
}

func TestOverallScoreRoundsMean(t *testing.T) {
	in := evaluationInput{Technical: 8, Tactical: 7, Physical: 9, Mental: 7}
	assert.Equal(t, 8, in.overallScore())

	in = evaluationInput{Technical: 5, Tactical: 5, Physical: 5, Mental: 6}
	assert.Equal(t, 5, in.overallScore())
}

func TestUpcomingBirthdaysWindowAndOrder(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	students := []models.Student{
		{Name: "Ana", Status: models.StudentActive, BirthDate: "2014-06-12"},
		{Name: "Bruno", Status: models.StudentActive, BirthDate: "2013-07-05"},
		{Name: "Caio", Status: models.StudentActive, BirthDate: "2015-09-01"},
		{Name: "Inativo", Status: models.StudentInactive, BirthDate: "2014-06-15"},
	}
	students[0].ID = 1
	students[1].ID = 2
	students[2].ID = 3
	students[3].ID = 4

	got := upcomingBirthdays(students, now)

	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "12/06/2025", got[0].Birthday)
	assert.Equal(t, 11, got[0].TurnsAge)
	assert.Equal(t, "Bruno", got[1].Name)
}
