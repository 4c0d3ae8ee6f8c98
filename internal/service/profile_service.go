package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"nutrio/internal/model"
	"nutrio/internal/repository"
)

// ProfileService handles profile updates for an authenticated user.
type ProfileService interface {
	Update(ctx context.Context, email string, profile *model.Profile) error
}

type profileService struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(userRepo repository.UserRepository, log *logrus.Logger) ProfileService {
	return &profileService{userRepo: userRepo, log: log}
}

// Update writes the five profile fields to the user matching email.
func (s *profileService) Update(ctx context.Context, email string, profile *model.Profile) error {
	if err := s.userRepo.UpdateProfile(ctx, email, profile); err != nil {
		s.log.WithError(err).WithField("email", email).Error("profile: update failed")
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
