package repository

import (
	"context"

	"gorm.io/gorm"

	"nutrio/internal/model"
)

// UserRepository defines persistence operations on the users table.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// UpdateProfile sets exactly the five profile columns on the row
	// matching email, leaving everything else untouched.
	UpdateProfile(ctx context.Context, email string, profile *model.Profile) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, email string, profile *model.Profile) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"age":    profile.Age,
			"gender": profile.Gender,
			"dob":    profile.DOB,
			"weight": profile.Weight,
			"height": profile.Height,
		}).Error
}
