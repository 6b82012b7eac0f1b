package models

import "gorm.io/gorm"

type Policy struct {
	gorm.Model
	PublicId         string `gorm:"uniqueIndex" json:"id"`
	Title            string `json:"title"`
	Category         string `gorm:"index" json:"category"`
	Description      string `json:"description"`
	MinAge           int    `json:"minAge"`
	MaxAge           int    `json:"maxAge"`
	CoverageMinCents int64  `json:"coverageMin"`
	CoverageMaxCents int64  `json:"coverageMax"`
	DurationYears    int    `json:"durationYears"`
	BasePremiumCents int64  `json:"basePremium"`
	ImageURL         string `json:"imageURL"`
	// bumped on every recorded payment, drives the popular-policies listing
	PurchaseCount int64 `json:"purchaseCount"`
}
