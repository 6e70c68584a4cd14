package billing

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroloango/futboss/models"
)

func newStudent(id uint, name, category, joinDate string) models.Student {
	s := models.Student{
		Name:     name,
		Category: category,
		JoinDate: joinDate,
		Status:   models.StudentActive,
	}
	s.ID = id
	return s
}

func TestGenerateYearlyScheduleCoverage(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		joinDate string
		want     int
	}{
		{"january start", "05/01/2025", 12},
		{"april start dd/mm/yyyy", "01/04/2025", 9},
		{"april start iso", "2025-04-01", 9},
		{"december start", "02/12/2025", 1},
		{"empty join date defaults to january", "", 12},
		{"garbage join date defaults to january", "next tuesday", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := []models.Student{newStudent(1, "Ana", "Sub-11", tt.joinDate)}
			got := GenerateYearlySchedule(students, nil, nil, today)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestGenerateYearlyScheduleIsIdempotent(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	students := []models.Student{
		newStudent(1, "Ana", "Sub-11", "01/03/2025"),
		newStudent(2, "Bruno", "Sub-13", "2025-01-20"),
	}

	first := GenerateYearlySchedule(students, nil, nil, today)
	require.NotEmpty(t, first)

	second := GenerateYearlySchedule(students, first, nil, today)
	assert.Empty(t, second, "second run over the same inputs must create nothing")
}

func TestGenerateYearlyScheduleTopsUpMissingMonths(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	students := []models.Student{newStudent(1, "Ana", "Sub-11", "01/01/2025")}

	// Simulate a partial previous run: March is missing.
	var existing []models.Payment
	for m := 0; m < 12; m++ {
		if m == 2 {
			continue
		}
		existing = append(existing, models.Payment{
			StudentID: 1,
			Month:     Months[m],
			Year:      "2025",
		})
	}

	got := GenerateYearlySchedule(students, existing, nil, today)
	require.Len(t, got, 1)
	assert.Equal(t, "Março", got[0].Month)
}

func TestGenerateYearlyScheduleStatusBoundary(t *testing.T) {
	// Today is June (month index 5).
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	students := []models.Student{newStudent(1, "Ana", "Sub-11", "01/01/2025")}

	got := GenerateYearlySchedule(students, nil, nil, today)
	require.Len(t, got, 12)

	byMonth := make(map[string]models.Payment, len(got))
	for _, p := range got {
		byMonth[p.Month] = p
	}

	assert.Equal(t, models.StatusOverdue, byMonth["Abril"].Status)
	assert.Equal(t, models.StatusOverdue, byMonth["Maio"].Status)
	assert.Equal(t, models.StatusPending, byMonth["Junho"].Status)
	assert.Equal(t, models.StatusPending, byMonth["Dezembro"].Status)
}

func TestGenerateYearlyScheduleScholarshipFee(t *testing.T) {
	today := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	student := newStudent(1, "Ana", "Sub-11", "01/12/2025")
	student.HasScholarship = true
	student.ScholarshipDiscount = 50

	fees := []models.FeeSetting{{Category: "Sub-11", Value: 150}}

	got := GenerateYearlySchedule([]models.Student{student}, nil, fees, today)
	require.Len(t, got, 1)
	assert.Equal(t, "R$ 75,00", got[0].Value)
}

func TestGenerateYearlyScheduleRecordShape(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	students := []models.Student{newStudent(7, "Carla", "Sub-15", "01/09/2025")}

	got := GenerateYearlySchedule(students, nil, nil, today)
	require.Len(t, got, 4) // September through December

	p := got[0]
	assert.Equal(t, uint(7), p.StudentID)
	assert.Equal(t, "Carla", p.StudentName)
	assert.Equal(t, "Sub-15", p.Category)
	assert.Equal(t, models.MonthlyFeeType, p.PaymentType)
	assert.Equal(t, DefaultPaymentMethod, p.PaymentMethod)
	assert.Equal(t, "Setembro", p.Month)
	assert.Equal(t, "2025", p.Year)
	assert.Equal(t, time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC), p.DueDate)
	assert.Equal(t, "R$ 150,00", p.Value) // default base fee, no table entry
}

func TestGenerateYearlyScheduleNoDuplicateTriples(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	students := []models.Student{
		newStudent(1, "Ana", "Sub-11", "01/01/2025"),
		newStudent(2, "Bruno", "Sub-13", "01/05/2025"),
	}

	existing := []models.Payment{
		{StudentID: 1, Month: "Fevereiro", Year: "2025", PaymentType: models.MonthlyFeeType},
	}

	all := append(existing, GenerateYearlySchedule(students, existing, nil, today)...)

	type triple struct {
		studentID uint
		month     string
		year      string
	}
	seen := make(map[triple]bool)
	for _, p := range all {
		key := triple{p.StudentID, p.Month, p.Year}
		assert.False(t, seen[key], "duplicate obligation for %+v", key)
		seen[key] = true
	}
}

func TestShouldGenerateYearlySchedule(t *testing.T) {
	today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, ShouldGenerateYearlySchedule(nil, today))

	lastYear := []models.Payment{{Month: "Janeiro", Year: "2024"}}
	assert.True(t, ShouldGenerateYearlySchedule(lastYear, today))

	currentYear := append(lastYear, models.Payment{Month: "Janeiro", Year: strconv.Itoa(today.Year())})
	assert.False(t, ShouldGenerateYearlySchedule(currentYear, today))
}
