package models

import "gorm.io/gorm"

// FeeSetting maps a category to its base monthly fee. At most one entry per
// category; categories without an entry fall back to the default base amount.
type FeeSetting struct {
	gorm.Model
	Category string  `json:"category" gorm:"unique;not null"`
	Value    float64 `json:"value" gorm:"type:numeric(12,2);not null"`
}
