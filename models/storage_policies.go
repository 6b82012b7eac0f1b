package models

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"
)

func (db *Database) CreatePolicy(policy *Policy) (*Policy, error) {
	if policy.PublicId == "" {
		policy.PublicId = NewPublicId()
	}
	result := db.GormDB.Create(policy)
	if result.Error != nil {
		slog.Error("failed to create policy", "title", policy.Title, "error", result.Error)
		return nil, result.Error
	}
	slog.Info("policy created", "policyId", policy.PublicId, "title", policy.Title)
	return policy, nil
}

func (db *Database) GetPolicy(publicId string) (*Policy, error) {
	policy := &Policy{}
	result := db.GormDB.Take(policy, "public_id = ?", publicId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching policy", "policyId", publicId, "error", result.Error)
		return nil, result.Error
	}
	return policy, nil
}

// ListPolicies pages through the catalogue, optionally filtered by exact
// category and a case-insensitive title search.
func (db *Database) ListPolicies(category string, search string, page int, limit int) ([]Policy, int64, error) {
	query := db.GormDB.Model(&Policy{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("lower(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		slog.Error("error counting policies", "error", err)
		return nil, 0, err
	}

	var policies []Policy
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&policies).Error
	if err != nil {
		slog.Error("error listing policies", "error", err)
		return nil, 0, err
	}
	return policies, total, nil
}

func (db *Database) TopPolicies(limit int) ([]Policy, error) {
	var policies []Policy
	err := db.GormDB.Order("purchase_count desc").Limit(limit).Find(&policies).Error
	if err != nil {
		slog.Error("error listing top policies", "error", err)
		return nil, err
	}
	return policies, nil
}

// UpdatePolicy returns nil, nil when the policy does not exist.
func (db *Database) UpdatePolicy(publicId string, updated *Policy) (*Policy, error) {
	policy, err := db.GetPolicy(publicId)
	if err != nil || policy == nil {
		return nil, err
	}

	policy.Title = updated.Title
	policy.Category = updated.Category
	policy.Description = updated.Description
	policy.MinAge = updated.MinAge
	policy.MaxAge = updated.MaxAge
	policy.CoverageMinCents = updated.CoverageMinCents
	policy.CoverageMaxCents = updated.CoverageMaxCents
	policy.DurationYears = updated.DurationYears
	policy.BasePremiumCents = updated.BasePremiumCents
	policy.ImageURL = updated.ImageURL

	if err := db.GormDB.Save(policy).Error; err != nil {
		slog.Error("failed to update policy", "policyId", publicId, "error", err)
		return nil, err
	}
	slog.Info("policy updated", "policyId", publicId)
	return policy, nil
}

func (db *Database) DeletePolicy(publicId string) (bool, error) {
	result := db.GormDB.Where("public_id = ?", publicId).Delete(&Policy{})
	if result.Error != nil {
		slog.Error("failed to delete policy", "policyId", publicId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementPolicyPurchases is a single atomic column bump; concurrent
// payments never read-modify-write the counter in the application.
func (db *Database) IncrementPolicyPurchases(publicId string) error {
	err := db.GormDB.Model(&Policy{}).Where("public_id = ?", publicId).
		UpdateColumn("purchase_count", gorm.Expr("purchase_count + ?", 1)).Error
	if err != nil {
		slog.Error("failed to increment policy purchases", "policyId", publicId, "error", err)
	}
	return err
}
