package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	PublicId      string `gorm:"uniqueIndex" json:"id"`
	PolicyId      string `gorm:"index" json:"policyId"`
	ReviewerEmail string `json:"email"`
	ReviewerName  string `json:"name"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}
