// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// UserRepository reads owner accounts. The identity service owns the user
// lifecycle; the engine only resolves IDs when validating block targets.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}
