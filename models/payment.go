package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the lifecycle state of an obligation. The backing store
// keeps it as free text, so handlers validate it on every read and write.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pendente"
	StatusPaid    PaymentStatus = "Pago"
	StatusOverdue PaymentStatus = "Atrasado"
)

// Valid reports whether the status is one of the three known states.
func (s PaymentStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid || s == StatusOverdue
}

// Payment is one billing obligation: either a generated monthly fee for a
// (student, month, year) triple or a one-off charge such as an enrollment fee.
type Payment struct {
	gorm.Model
	StudentID     uint          `json:"studentId"`
	StudentName   string        `json:"student"` // display copy, denormalized at creation time
	Description   string        `json:"description"`
	PaymentTypeID uint          `json:"paymentTypeId"`
	PaymentType   string        `json:"paymentType"`
	Category      string        `json:"category"` // copied from the student at creation time
	Value         string        `json:"value"`    // currency-formatted display string, e.g. "R$ 150,00"
	DueDate       time.Time     `json:"-"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(16);default:'Pendente'"`
	PaymentMethod string        `json:"paymentMethod"`
	Month         string        `json:"month"` // localized month name, display key
	Year          string        `json:"year"`
	PaymentDate   *time.Time    `json:"-"`
}
