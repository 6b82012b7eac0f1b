package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserRole  = "user"
	AgentRole = "agent"
	AdminRole = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	// one of UserRole, AgentRole, AdminRole
	Role        string     `gorm:"default:user" json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}
