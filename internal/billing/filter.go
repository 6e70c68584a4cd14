package billing

import (
	"strings"

	"github.com/pedroloango/futboss/models"
)

// Filters holds the compound predicates of the payments screen. Empty fields
// impose no constraint; non-empty fields combine with AND semantics.
type Filters struct {
	Search      string // case-insensitive substring match on the student name
	Status      string
	Month       string
	Category    string
	PaymentType string
}

// ApplyFilters returns the obligations that satisfy every non-empty
// predicate. The input order is preserved.
func ApplyFilters(payments []models.Payment, f Filters) []models.Payment {
	result := make([]models.Payment, 0, len(payments))
	search := strings.ToLower(f.Search)

	for _, p := range payments {
		if search != "" && !strings.Contains(strings.ToLower(p.StudentName), search) {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Month != "" && p.Month != f.Month {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.PaymentType != "" && p.PaymentType != f.PaymentType {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Page slices a filtered collection for display. The requested page is
// clamped to the last available page when the collection shrank below the
// requested range, so a stale page number never produces an empty window.
// It returns the window and the effective page number.
func Page(payments []models.Payment, page, pageSize int) ([]models.Payment, int) {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page <= 0 {
		page = 1
	}

	lastPage := (len(payments) + pageSize - 1) / pageSize
	if lastPage == 0 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * pageSize
	if start >= len(payments) {
		return []models.Payment{}, page
	}
	end := start + pageSize
	if end > len(payments) {
		end = len(payments)
	}
	return payments[start:end], page
}
