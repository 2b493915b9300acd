package memstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// UserRepo репозиторий пользователей в памяти.
type UserRepo struct {
	s *db.MemoryStorage
}

func NewUserRepo(store *db.MemoryStorage) *UserRepo {
	return &UserRepo{s: store}
}

// Create сохраняет пользователя. Занятый email возвращает repositories.ErrDuplicateKey.
func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	u.s.TxMu.Lock()
	defer u.s.TxMu.Unlock()

	if _, err := u.GetByEmail(ctx, user.Email); err == nil {
		return fmt.Errorf("create user: %w", repositories.ErrDuplicateKey)
	}

	now := time.Now()
	user.ID = u.s.NextID(u.s.Users)
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := memory.Set(ctx, db.Key(user.ID), user, u.s.Users); err != nil {
		return fmt.Errorf("create user: %w", convertErrorType(err))
	}
	return nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	found, err := memory.FilterAll(ctx, u.s.Users, func(user models.User) bool {
		return strings.EqualFold(user.Email, email)
	})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", convertErrorType(err))
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("get user by email: %w", repositories.ErrNotFound)
	}
	return &found[0], nil
}

func (u *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := memory.Get[models.User](ctx, db.Key(id), u.s.Users)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, convertErrorType(err))
	}
	return user, nil
}
