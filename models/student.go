package models

import (
	"time"

	"gorm.io/gorm"
)

// Categories is the closed set of age brackets shared by students, fee
// settings and payments.
var Categories = []string{"Sub-7", "Sub-9", "Sub-11", "Sub-13", "Sub-15", "Sub-17"}

// IsValidCategory reports whether the given label belongs to the known set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Student statuses.
const (
	StudentActive   = "Ativo"
	StudentInactive = "Inativo"
)

// Student represents an enrolled academy player.
type Student struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	BirthDate string `json:"birthDate"` // stored as YYYY-MM-DD
	RG        string `json:"rg"`
	CPF       string `json:"cpf"`
	Category  string `json:"category" gorm:"not null"`
	// JoinDate determines the first billable month. Kept as the raw string the
	// client submitted: both DD/MM/YYYY and YYYY-MM-DD are accepted downstream.
	JoinDate            string  `json:"joinDate"`
	Polo                string  `json:"polo"`
	Status              string  `json:"status" gorm:"default:'Ativo'"`
	ResponsibleName     string  `json:"responsibleName"`
	ResponsibleCPF      string  `json:"responsibleCpf"`
	Whatsapp            string  `json:"whatsapp"`
	Address             string  `json:"address"`
	Position            string  `json:"position"`
	Phone               string  `json:"phone"`
	HasScholarship      bool    `json:"hasScholarship"`
	ScholarshipDiscount float64 `json:"scholarshipDiscount"` // percent, 0-100
}

// Age derives the player's age in full years at the reference date. Returns 0
// when the birth date is absent or malformed.
func (s Student) Age(at time.Time) int {
	if s.BirthDate == "" {
		return 0
	}
	birth, err := time.Parse("2006-01-02", s.BirthDate)
	if err != nil {
		return 0
	}
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
