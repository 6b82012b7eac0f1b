package models

import "gorm.io/gorm"

const (
	AgentRequestStatusPending  = "pending"
	AgentRequestStatusApproved = "approved"
	AgentRequestStatusRejected = "rejected"
)

// AgentRequest is a platform user asking to be promoted to the agent role.
// One request per email; approval flips the user's stored role.
type AgentRequest struct {
	gorm.Model
	PublicId    string `gorm:"uniqueIndex" json:"id"`
	Email       string `gorm:"uniqueIndex" json:"email"`
	Name        string `json:"name"`
	Experience  string `json:"experience"`
	Specialties string `json:"specialties"`
	Status      string `gorm:"index;default:pending" json:"status"`
}
