package sql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// AccessLogRepo репозиторий журнала переходов по ссылкам.
type AccessLogRepo struct {
	db *gorm.DB
}

// NewAccessLogRepo создает новый экземпляр репозитория журнала переходов.
func NewAccessLogRepo(db *gorm.DB) *AccessLogRepo {
	return &AccessLogRepo{db: db}
}

// RecordAccess в одной транзакции увеличивает счетчик переходов ссылки и добавляет запись в журнал.
//
// Параметры:
//   - ctx: контекст выполнения
//   - entry: запись журнала; LinkID должен указывать на не удаленную ссылку
//
// Возвращает:
//   - error: repositories.ErrNotFound, если ссылка не найдена или удалена
func (r *AccessLogRepo) RecordAccess(ctx context.Context, entry *models.AccessLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Link{}).
			Where("id = ?", entry.LinkID).
			UpdateColumn("access_count", gorm.Expr("access_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repositories.ErrNotFound
		}
		if entry.AccessedAt.IsZero() {
			entry.AccessedAt = time.Now()
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return fmt.Errorf("record access to link %d: %w", entry.LinkID, convertErrorType(err))
	}
	return nil
}

// CountSince считает переходы по не удаленным ссылкам пользователя начиная с since.
func (r *AccessLogRepo) CountSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AccessLog{}).
		Joins("JOIN links ON links.id = access_logs.link_id").
		Where("links.user_id = ? AND links.deleted_at IS NULL AND access_logs.accessed_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count accesses of user %d since %s: %w", userID, since, convertErrorType(err))
	}
	return count, nil
}

// ListByLink возвращает журнал переходов ссылки, начиная с последних.
func (r *AccessLogRepo) ListByLink(ctx context.Context, linkID uint, limit int) ([]models.AccessLog, error) {
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("accessed_at DESC").Order("id DESC")
	// Limit(0) в gorm означает LIMIT 0, а не отсутствие ограничения
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.AccessLog
	err := query.Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list accesses of link %d: %w", linkID, convertErrorType(err))
	}
	return entries, nil
}
