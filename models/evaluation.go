package models

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation holds one skill assessment of a student. Score is the rounded
// mean of the four individual ratings, computed at save time.
type Evaluation struct {
	gorm.Model
	StudentID uint      `json:"studentId" gorm:"not null"`
	Student   Student   `json:"student" gorm:"foreignKey:StudentID"`
	Date      time.Time `json:"date"`
	Technical int       `json:"technical"`
	Tactical  int       `json:"tactical"`
	Physical  int       `json:"physical"`
	Mental    int       `json:"mental"`
	Score     int       `json:"score"`
	Notes     string    `json:"notes"`
}
