package models

import "gorm.io/gorm"

type NewsletterSubscription struct {
	gorm.Model
	Email string `gorm:"uniqueIndex" json:"email"`
	Name  string `json:"name"`
}
