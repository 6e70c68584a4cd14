package billing

import "github.com/pedroloango/futboss/models"

// DefaultMonthlyFee applies when a category has no FeeSetting entry.
const DefaultMonthlyFee = 150.0

// ResolveMonthlyFee computes the monthly amount due for a student of the
// given category. The fee table is looked up by category with a fixed
// fallback; when the scholarship flag is set and the discount percentage is
// positive, the base amount is reduced proportionally. The form layer clamps
// the percentage to [0,100]; this function does not re-validate it.
func ResolveMonthlyFee(fees []models.FeeSetting, category string, hasScholarship bool, discountPercent float64) float64 {
	base := DefaultMonthlyFee
	for _, fee := range fees {
		if fee.Category == category {
			base = fee.Value
			break
		}
	}

	if hasScholarship && discountPercent > 0 {
		return base * (1 - discountPercent/100)
	}
	return base
}
