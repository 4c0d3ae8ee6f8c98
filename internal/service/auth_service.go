package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "nutrio/internal/errors"
	"nutrio/internal/model"
	"nutrio/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, confirmPassword string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, log *logrus.Logger) AuthService {
	return &authService{userRepo: userRepo, log: log}
}

// Signup creates a new user with a hashed password. The password is hashed
// exactly once, here. There is no existence pre-check: the unique indexes on
// name and email are the sole arbiter, so the insert is attempted first and
// a duplicate-key rejection is translated into the user-facing error. Two
// concurrent signups for the same email both take this path and exactly one
// wins.
func (s *authService) Signup(ctx context.Context, name, email, password, confirmPassword string) (*model.User, error) {
	if password != confirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The index name is not part of the translated error, so look
			// the email up to pick the right message.
			if existing, ferr := s.userRepo.FindByEmail(ctx, email); ferr == nil && existing != nil {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, apperrors.ErrNameTaken
		}
		s.log.WithError(err).WithField("email", email).Error("signup: create user failed")
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email and password. A missing user and a
// wrong password produce the same error so the response cannot reveal which
// field was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.log.WithError(err).WithField("email", email).Error("login: lookup failed")
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
