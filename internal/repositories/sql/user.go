package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// UserRepo репозиторий пользователей.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create сохраняет пользователя. Занятый email возвращает repositories.ErrDuplicateKey.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", convertErrorType(err))
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by email: %w", convertErrorType(err))
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Take(&user, id).Error; err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, convertErrorType(err))
	}
	return &user, nil
}
