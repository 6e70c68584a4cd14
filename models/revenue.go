package models

import (
	"time"

	"gorm.io/gorm"
)

// Revenue is a one-off income record not tied to a student (sponsorships,
// event tickets, ...). Plain CRUD lifecycle, no generation logic.
type Revenue struct {
	gorm.Model
	Description   string    `json:"description" gorm:"not null"`
	PaymentTypeID uint      `json:"paymentTypeId"`
	PaymentType   string    `json:"paymentType"`
	Value         float64   `json:"value" gorm:"type:numeric(12,2);not null"`
	RevenueDate   time.Time `json:"-"`
}
