package models

import "gorm.io/gorm"

// User represents a registered user.
type User struct {
	gorm.Model
	Username     string `gorm:"size:20;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	AboutMe      string `gorm:"size:200"`
}
