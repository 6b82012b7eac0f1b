package models

import "gorm.io/gorm"

const (
	PaymentStatusSucceeded = "succeeded"
)

type Payment struct {
	gorm.Model
	PublicId      string `gorm:"uniqueIndex" json:"id"`
	PolicyId      string `gorm:"index" json:"policyId"`
	ApplicationId string `gorm:"index" json:"applicationId"`
	PayerEmail    string `gorm:"index" json:"email"`
	AmountCents   int64  `json:"amount"`
	Currency      string `json:"currency"`
	// payment-intent id assigned by the gateway
	ProviderIntentId string `json:"transactionId"`
	Status           string `json:"status"`
}
