package models

import (
	"time"

	"gorm.io/gorm"
)

// AttendanceRecord is one roll call for a category on a given date.
type AttendanceRecord struct {
	gorm.Model
	Date     time.Time          `json:"date"`
	Category string             `json:"category" gorm:"not null"`
	Details  []AttendanceDetail `json:"details" gorm:"foreignKey:AttendanceRecordID"`
}

// AttendanceDetail marks a single student present or absent within a record.
type AttendanceDetail struct {
	gorm.Model
	AttendanceRecordID uint   `json:"attendanceRecordId"`
	StudentID          uint   `json:"studentId"`
	StudentName        string `json:"studentName"`
	Present            bool   `json:"present"`
}
