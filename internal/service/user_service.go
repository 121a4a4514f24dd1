// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"errors"

	"sewsmart/internal/models"
	"sewsmart/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

type SyncUserInput struct {
	ExternalID string
	Username   string
	Name       string
	Email      string
	Avatar     string
	Bio        string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SyncUser creates or updates the profile for an identity provider subject.
// Returns the stored user and whether a new profile was created.
func (s *UserService) SyncUser(ctx context.Context, in SyncUserInput) (*models.User, bool, error) {
	if in.ExternalID == "" || in.Username == "" || in.Name == "" {
		return nil, false, models.NewValidationError("Missing required fields")
	}

	user := &models.User{
		ExternalID: in.ExternalID,
		Username:   in.Username,
		Name:       in.Name,
		Email:      in.Email,
		Avatar:     in.Avatar,
		Bio:        in.Bio,
	}
	created, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}

func (s *UserService) GetUser(ctx context.Context, externalID string) (*models.User, error) {
	if externalID == "" {
		return nil, models.NewValidationError("User id is required")
	}
	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundMessageError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
