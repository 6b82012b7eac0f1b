package models

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

func (db *Database) CreateReview(review *Review) (*Review, error) {
	if review.PublicId == "" {
		review.PublicId = NewPublicId()
	}
	result := db.GormDB.Create(review)
	if result.Error != nil {
		slog.Error("failed to create review", "reviewerEmail", review.ReviewerEmail, "error", result.Error)
		return nil, result.Error
	}
	slog.Info("review created", "reviewId", review.PublicId, "policyId", review.PolicyId)
	return review, nil
}

func (db *Database) ListReviews(limit int) ([]Review, error) {
	var reviews []Review
	if err := db.GormDB.Order("created_at desc").Limit(limit).Find(&reviews).Error; err != nil {
		slog.Error("error listing reviews", "error", err)
		return nil, err
	}
	return reviews, nil
}

// CreateNewsletterSubscription returns gorm.ErrDuplicatedKey when the email
// is already subscribed.
func (db *Database) CreateNewsletterSubscription(email string, name string) (*NewsletterSubscription, error) {
	subscription := &NewsletterSubscription{Email: email, Name: name}
	result := db.GormDB.Create(subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			slog.Debug("duplicate newsletter subscription", "email", email)
		} else {
			slog.Error("failed to create newsletter subscription", "email", email, "error", result.Error)
		}
		return nil, result.Error
	}
	slog.Info("newsletter subscription created", "email", email)
	return subscription, nil
}
