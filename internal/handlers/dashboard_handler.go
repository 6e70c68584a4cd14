package handlers

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedroloango/futboss/config"
	"github.com/pedroloango/futboss/internal/billing"
	"github.com/pedroloango/futboss/models"
)

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// UpcomingBirthday is a student whose birthday falls within the next 30 days.
type UpcomingBirthday struct {
	StudentID uint   `json:"studentId"`
	Name      string `json:"name"`
	Birthday  string `json:"birthday"` // DD/MM/YYYY of this year's occurrence
	TurnsAge  int    `json:"turnsAge"`
}

// GetDashboardStatsHandler aggregates the landing-page numbers: roster
// totals, the month's collected amount, obligation counts by status, the
// category distribution and upcoming birthdays.
func GetDashboardStatsHandler(c *gin.Context) {
	now := time.Now()
	currentYear := strconv.Itoa(now.Year())
	currentMonth := billing.Months[int(now.Month())-1]

	var students []models.Student
	if err := config.DB.Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos"})
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("year = ?", currentYear).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar as mensalidades"})
		return
	}

	activeCount := 0
	scholarshipCount := 0
	distribution := make(map[string]int)
	for _, s := range students {
		if s.Status == models.StudentActive {
			activeCount++
			distribution[s.Category]++
		}
		if s.HasScholarship {
			scholarshipCount++
		}
	}

	categories := make([]CategoryCount, 0, len(distribution))
	for _, cat := range models.Categories {
		if n := distribution[cat]; n > 0 {
			categories = append(categories, CategoryCount{Category: cat, Count: n})
		}
	}

	var paidThisMonth float64
	pendingCount := 0
	overdueCount := 0
	for _, p := range payments {
		switch p.Status {
		case models.StatusPaid:
			if p.Month == currentMonth {
				if v, err := billing.ParseBRL(p.Value); err == nil {
					paidThisMonth += v
				}
			}
		case models.StatusPending:
			pendingCount++
		case models.StatusOverdue:
			overdueCount++
		}
	}

	scholarshipShare := 0
	if len(students) > 0 {
		scholarshipShare = int(math.Round(float64(scholarshipCount) / float64(len(students)) * 100))
	}

	c.JSON(http.StatusOK, gin.H{
		"totalStudents":        len(students),
		"activeStudents":       activeCount,
		"paidThisMonth":        billing.FormatBRL(paidThisMonth),
		"pendingCount":         pendingCount,
		"overdueCount":         overdueCount,
		"categoryDistribution": categories,
		"scholarshipShare":     scholarshipShare,
		"upcomingBirthdays":    upcomingBirthdays(students, now),
	})
}

// upcomingBirthdays lists active students whose birthday occurs within 30
// days of the reference date, soonest first.
func upcomingBirthdays(students []models.Student, now time.Time) []UpcomingBirthday {
	limit := now.AddDate(0, 0, 30)
	birthdays := make([]UpcomingBirthday, 0)
	when := make(map[uint]time.Time)

	for _, s := range students {
		if s.Status != models.StudentActive || s.BirthDate == "" {
			continue
		}
		birth, err := time.Parse("2006-01-02", s.BirthDate)
		if err != nil {
			continue
		}

		next := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
		if next.Before(now.Truncate(24 * time.Hour)) {
			next = next.AddDate(1, 0, 0)
		}
		if next.After(limit) {
			continue
		}

		birthdays = append(birthdays, UpcomingBirthday{
			StudentID: s.ID,
			Name:      s.Name,
			Birthday:  next.Format(displayDateLayout),
			TurnsAge:  next.Year() - birth.Year(),
		})
		when[s.ID] = next
	}

	sort.Slice(birthdays, func(i, j int) bool {
		return when[birthdays[i].StudentID].Before(when[birthdays[j].StudentID])
	})
	return birthdays
}
