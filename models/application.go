package models

import "gorm.io/gorm"

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

type Application struct {
	gorm.Model
	PublicId         string `gorm:"uniqueIndex" json:"id"`
	PolicyId         string `gorm:"index" json:"policyId"`
	ApplicantEmail   string `gorm:"index" json:"email"`
	ApplicantName    string `json:"name"`
	Address          string `json:"address"`
	NomineeName      string `json:"nomineeName"`
	NomineeRelation  string `json:"nomineeRelation"`
	HealthDisclosure string `json:"healthDisclosure"`
	Status           string `gorm:"index;default:pending" json:"status"`
	// email of the agent the admin assigned to handle this application
	AssignedAgentEmail string `gorm:"index" json:"assignedAgentEmail"`
	RejectionFeedback  string `json:"rejectionFeedback"`
}
