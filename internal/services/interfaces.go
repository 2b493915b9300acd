package services

import (
	"context"
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// SlugChecker проверяет занятость slug. Учитываются все ссылки, включая мягко удаленные.
type SlugChecker interface {
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

// LinkRepository описывает репозиторий ссылок. Все выборки, кроме SlugExists и ResetAccessCounts,
// ограничены владельцем.
type LinkRepository interface {
	SlugChecker
	// Create сохраняет ссылку. Занятый slug возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, link *models.Link) error
	// GetActiveBySlug находит не удаленную ссылку по slug.
	GetActiveBySlug(ctx context.Context, slug string) (*models.Link, error)
	GetByUser(ctx context.Context, userID, id uint, scope repositories.Scope) (*models.Link, error)
	Update(ctx context.Context, userID, id uint, upd repositories.LinkUpdate) (*models.Link, error)
	SoftDelete(ctx context.Context, userID, id uint) error
	// Restore возвращает ссылку из корзины. Если ее slug занят другой ссылкой - repositories.ErrDuplicateKey.
	Restore(ctx context.Context, userID, id uint) (*models.Link, error)
	ForceDelete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, q repositories.LinkQuery) ([]models.Link, int64, error)
	ListTrashed(ctx context.Context, userID uint, limit, offset int) ([]models.Link, int64, error)
	// ResetAccessCounts обнуляет счетчики всех ссылок и возвращает количество измененных записей.
	ResetAccessCounts(ctx context.Context) (int64, error)
	Totals(ctx context.Context, userID uint) (repositories.LinkTotals, error)
	CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	TopByAccessCount(ctx context.Context, userID uint, limit int) ([]models.Link, error)
}

// AccessLogRepository описывает журнал переходов.
type AccessLogRepository interface {
	// RecordAccess атомарно увеличивает счетчик ссылки и добавляет запись в журнал.
	RecordAccess(ctx context.Context, entry *models.AccessLog) error
	CountSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	ListByLink(ctx context.Context, linkID uint, limit int) ([]models.AccessLog, error)
}

// UserRepository описывает репозиторий пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// AccessRecorder фиксирует событие перехода по ссылке.
type AccessRecorder interface {
	Record(ctx context.Context, entry *models.AccessLog) error
}
