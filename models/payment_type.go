package models

import "gorm.io/gorm"

// Name of the recurring monthly-fee payment type created by the schedule
// generator. Seeded on startup and must never be deleted.
const MonthlyFeeType = "Mensalidade"

// PaymentType classifies a charge ("Mensalidade", "Matrícula", "Uniforme", ...).
// Formula, when set, computes the charge amount for one-off payments from the
// submitted base value; it is evaluated with the variable "Valor" bound to
// that value (e.g. "Valor * 0.5" for a half-price promotion).
type PaymentType struct {
	gorm.Model
	Name    string `json:"name" gorm:"unique;not null"`
	Formula string `json:"formula"`
}
