// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"sewsmart/internal/cache"
	"sewsmart/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) (created bool, err error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetInfosByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*models.UserInfo, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert creates the user if no row with the external id exists, otherwise
// updates the mutable profile fields. Returns whether a row was created.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) (bool, error) {
	var existing models.User
	err := r.db.WithContext(ctx).
		Where("external_id = ?", user.ExternalID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if createErr := r.db.WithContext(ctx).Create(user).Error; createErr != nil {
			return false, createErr
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	existing.Username = user.Username
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Avatar = user.Avatar
	existing.Bio = user.Bio
	if updateErr := r.db.WithContext(ctx).Save(&existing).Error; updateErr != nil {
		return false, updateErr
	}
	*user = existing

	cache.InvalidateUser(ctx, user.ExternalID)
	return false, nil
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(externalID), &user, cache.UserTTL, func() error {
		return r.db.WithContext(ctx).
			Where("external_id = ?", externalID).
			First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetInfosByExternalIDs batch-loads the public profile shape for a set of
// external ids. Unknown ids are simply absent from the result map.
func (r *userRepository) GetInfosByExternalIDs(ctx context.Context, externalIDs []string) (map[string]*models.UserInfo, error) {
	infos := make(map[string]*models.UserInfo, len(externalIDs))
	if len(externalIDs) == 0 {
		return infos, nil
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Where("external_id IN ?", externalIDs).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for i := range users {
		infos[users[i].ExternalID] = users[i].Info()
	}
	return infos, nil
}
