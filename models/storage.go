package models

import (
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserByEmail returns nil, nil when no record exists. A read-only role
// check must neither fail on nor create an absent profile.
func (db *Database) GetUserByEmail(email string) (*User, error) {
	user := &User{}
	result := db.GormDB.Take(user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("user not found", "email", email)
			return nil, nil
		}
		slog.Error("error fetching user", "email", email, "error", result.Error)
		return nil, result.Error
	}
	return user, nil
}

// UpsertUser creates or refreshes the profile row for email. The role
// column is excluded from the update set so a repeat login can never
// reset a promotion.
func (db *Database) UpsertUser(email string, name string, photoURL string) (*User, error) {
	now := time.Now()
	user := &User{
		Email:       email,
		Name:        name,
		PhotoURL:    photoURL,
		Role:        UserRole,
		LastLoginAt: &now,
	}
	result := db.GormDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "photo_url", "last_login_at", "updated_at"}),
	}).Create(user)
	if result.Error != nil {
		slog.Error("failed to upsert user", "email", email, "error", result.Error)
		return nil, result.Error
	}

	slog.Info("user profile upserted", "email", email)
	// re-read so the caller sees the stored role, not the insert default
	return db.GetUserByEmail(email)
}

// PromoteUser sets the stored role for email, creating the profile row
// when none exists yet. An agent request can be filed and approved before
// the requester's first profile upsert, and the promotion must still land.
func (db *Database) PromoteUser(email string, name string, role string) (*User, error) {
	user := &User{
		Email: email,
		Name:  name,
		Role:  role,
	}
	result := db.GormDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(user)
	if result.Error != nil {
		slog.Error("failed to promote user", "email", email, "role", role, "error", result.Error)
		return nil, result.Error
	}
	slog.Info("user promoted", "email", email, "role", role)
	return db.GetUserByEmail(email)
}

// UpdateUserRole returns nil, nil when no user record exists for email.
func (db *Database) UpdateUserRole(email string, role string) (*User, error) {
	result := db.GormDB.Model(&User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		slog.Error("failed to update user role", "email", email, "role", role, "error", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	slog.Info("user role updated", "email", email, "role", role)
	return db.GetUserByEmail(email)
}

func (db *Database) ListUsers(page int, limit int) ([]User, int64, error) {
	var users []User
	var total int64

	if err := db.GormDB.Model(&User{}).Count(&total).Error; err != nil {
		slog.Error("error counting users", "error", err)
		return nil, 0, err
	}

	err := db.GormDB.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	if err != nil {
		slog.Error("error listing users", "error", err)
		return nil, 0, err
	}
	return users, total, nil
}
