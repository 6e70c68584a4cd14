package models

import "gorm.io/gorm"

// User is a dashboard account. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	gorm.Model
	Login        string `json:"login" gorm:"unique;not null"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-" gorm:"not null"`
	Roles        []Role `json:"roles" gorm:"many2many:user_roles;"`
}

// UserResponse is the trimmed user shape embedded in other responses.
type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"fullName"`
}
