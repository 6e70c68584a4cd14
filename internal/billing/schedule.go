package billing

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/pedroloango/futboss/models"
)

// Generated monthly obligations fall due on this day of the month.
const dueDay = 10

// DefaultPaymentMethod is assigned to generated obligations until the user
// confirms the payment with an explicit method.
const DefaultPaymentMethod = "PIX"

// obligationKey identifies one monthly obligation. Duplicate detection uses
// the numeric (year, month) pair rather than the display month name, so a
// localization change cannot break the guard. The display string is kept on
// the record separately.
type obligationKey struct {
	studentID uint
	year      int
	month     int
}

// GenerateYearlySchedule produces one monthly-fee obligation per student per
// month, from the student's join month through December of today's year,
// skipping (student, month, year) pairs that already have a recorded
// obligation. Months already elapsed relative to today are created as
// Atrasado, the rest as Pendente. The existence check is the sole duplicate
// guard, which makes repeated invocation idempotent: a second run over the
// same inputs yields nothing.
func GenerateYearlySchedule(students []models.Student, existing []models.Payment, fees []models.FeeSetting, today time.Time) []models.Payment {
	currentYear := today.Year()
	currentMonth := int(today.Month()) - 1

	seen := make(map[obligationKey]bool, len(existing))
	for _, p := range existing {
		year, err := strconv.Atoi(p.Year)
		if err != nil {
			continue
		}
		month := MonthIndex(p.Month)
		if month < 0 {
			continue
		}
		seen[obligationKey{p.StudentID, year, month}] = true
	}

	var generated []models.Payment
	for _, student := range students {
		startMonth := startMonthFor(student)
		fee := ResolveMonthlyFee(fees, student.Category, student.HasScholarship, student.ScholarshipDiscount)

		for month := startMonth; month < 12; month++ {
			key := obligationKey{student.ID, currentYear, month}
			if seen[key] {
				continue
			}
			seen[key] = true

			status := models.StatusPending
			if month < currentMonth {
				status = models.StatusOverdue
			}

			generated = append(generated, models.Payment{
				StudentID:     student.ID,
				StudentName:   student.Name,
				Category:      student.Category,
				PaymentType:   models.MonthlyFeeType,
				Value:         FormatBRL(fee),
				DueDate:       time.Date(currentYear, time.Month(month+1), dueDay, 0, 0, 0, 0, time.UTC),
				Status:        status,
				PaymentMethod: DefaultPaymentMethod,
				Month:         Months[month],
				Year:          strconv.Itoa(currentYear),
			})
		}
	}

	return generated
}

// ShouldGenerateYearlySchedule gates the automatic run on page load: it is
// true only while no obligation exists yet for today's year. Manual
// regeneration bypasses this check.
func ShouldGenerateYearlySchedule(existing []models.Payment, today time.Time) bool {
	currentYear := strconv.Itoa(today.Year())
	for _, p := range existing {
		if p.Year == currentYear {
			return false
		}
	}
	return true
}

// startMonthFor extracts the 0-based month index of the student's join date.
// Both DD/MM/YYYY and YYYY-MM-DD shapes are accepted. Anything else degrades
// to January; that leniency is long-standing behavior the rest of the system
// relies on, so it is kept but logged.
func startMonthFor(student models.Student) int {
	if student.JoinDate == "" {
		return 0
	}

	if t, err := time.Parse("02/01/2006", student.JoinDate); err == nil {
		return int(t.Month()) - 1
	}

	isoDate := student.JoinDate
	if len(isoDate) > 10 {
		isoDate = isoDate[:10]
	}
	if t, err := time.Parse("2006-01-02", isoDate); err == nil {
		return int(t.Month()) - 1
	}

	slog.Warn("Unparseable join date, falling back to January",
		"student_id", student.ID, "join_date", student.JoinDate)
	return 0
}
