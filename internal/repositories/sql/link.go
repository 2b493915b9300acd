package sql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// LinkRepo репозиторий ссылок.
type LinkRepo struct {
	db *gorm.DB
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
func NewLinkRepo(db *gorm.DB) *LinkRepo {
	return &LinkRepo{db: db}
}

// Create сохраняет новую ссылку. Если slug уже занят (в том числе удаленной ссылкой),
// возвращается repositories.ErrDuplicateKey.
func (r *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("create link: %w", convertErrorType(err))
	}
	return nil
}

// SlugExists проверяет, занят ли slug любой ссылкой, включая мягко удаленные.
// Ссылка с идентификатором excludeID не учитывается (0 - не исключать ничего).
func (r *LinkRepo) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Unscoped().Model(&models.Link{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug `%s` existence: %w", slug, convertErrorType(err))
	}
	return count > 0, nil
}

// GetActiveBySlug находит не удаленную ссылку по точному совпадению slug.
func (r *LinkRepo) GetActiveBySlug(ctx context.Context, slug string) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&link).Error; err != nil {
		return nil, fmt.Errorf("get link by slug `%s`: %w", slug, convertErrorType(err))
	}
	return &link, nil
}

// GetByUser находит ссылку владельца в заданной области видимости.
func (r *LinkRepo) GetByUser(ctx context.Context, userID, id uint, scope repositories.Scope) (*models.Link, error) {
	var link models.Link
	err := withScope(r.db.WithContext(ctx), scope).
		Where("user_id = ? AND id = ?", userID, id).
		Take(&link).Error
	if err != nil {
		return nil, fmt.Errorf("get link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	return &link, nil
}

// Update изменяет поля не удаленной ссылки владельца и возвращает обновленную запись.
func (r *LinkRepo) Update(ctx context.Context, userID, id uint, upd repositories.LinkUpdate) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND id = ?", userID, id).Take(&link).Error; err != nil {
			return err //nolint:wrapcheck
		}

		changes := make(map[string]any, 3) //nolint:mnd
		if upd.OriginalURL != nil {
			changes["original_url"] = *upd.OriginalURL
		}
		if upd.Slug != nil {
			changes["slug"] = *upd.Slug
		}
		switch {
		case upd.ClearTitle:
			changes["title"] = nil
		case upd.Title != nil:
			changes["title"] = *upd.Title
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&link).Updates(changes).Error //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("update link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	return r.GetByUser(ctx, userID, id, repositories.ScopeActive)
}

// SoftDelete помечает не удаленную ссылку владельца как удаленную.
func (r *LinkRepo) SoftDelete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Link{})
	if res.Error != nil {
		return fmt.Errorf("soft delete link %d: %w", id, convertErrorType(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("soft delete link %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// Restore снимает пометку удаления. Выполняется в транзакции: ссылка должна быть удалена и
// принадлежать пользователю, а ее slug не должен быть занят другой записью.
func (r *LinkRepo) Restore(ctx context.Context, userID, id uint) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Unscoped().
			Where("user_id = ? AND id = ? AND deleted_at IS NOT NULL", userID, id).
			Take(&link).Error; err != nil {
			return err //nolint:wrapcheck
		}

		var claimed int64
		if err := tx.Unscoped().Model(&models.Link{}).
			Where("slug = ? AND id <> ?", link.Slug, link.ID).
			Count(&claimed).Error; err != nil {
			return err //nolint:wrapcheck
		}
		if claimed > 0 {
			return repositories.ErrDuplicateKey
		}

		link.DeletedAt = gorm.DeletedAt{}
		return tx.Unscoped().Model(&link).Update("deleted_at", nil).Error //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("restore link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	return &link, nil
}

// ForceDelete окончательно удаляет ссылку владельца в любом состоянии вместе с журналом переходов.
func (r *LinkRepo) ForceDelete(ctx context.Context, userID, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := lockForUpdate(tx).Unscoped().
			Where("user_id = ? AND id = ?", userID, id).
			Take(&link).Error; err != nil {
			return err //nolint:wrapcheck
		}
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.AccessLog{}).Error; err != nil {
			return err //nolint:wrapcheck
		}
		return tx.Unscoped().Delete(&link).Error //nolint:wrapcheck
	})
	if err != nil {
		return fmt.Errorf("force delete link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	return nil
}

// List возвращает страницу не удаленных ссылок владельца и общее количество подходящих записей.
func (r *LinkRepo) List(ctx context.Context, q repositories.LinkQuery) ([]models.Link, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", q.UserID)
		if q.Search != "" {
			like := "%" + strings.ToLower(q.Search) + "%"
			tx = tx.Where(
				"LOWER(COALESCE(title, '')) LIKE ? OR LOWER(original_url) LIKE ? OR LOWER(slug) LIKE ?",
				like, like, like,
			)
		}
		return tx
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count links of user %d: %w", q.UserID, convertErrorType(err))
	}

	var links []models.Link
	err := r.db.WithContext(ctx).Scopes(filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: q.Desc}).
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&links).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list links of user %d: %w", q.UserID, convertErrorType(err))
	}
	return links, total, nil
}

// ListTrashed возвращает страницу мягко удаленных ссылок владельца.
func (r *LinkRepo) ListTrashed(ctx context.Context, userID uint, limit, offset int) ([]models.Link, int64, error) {
	trashed := func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("user_id = ? AND deleted_at IS NOT NULL", userID)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Scopes(trashed).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count trashed links of user %d: %w", userID, convertErrorType(err))
	}

	var links []models.Link
	err := r.db.WithContext(ctx).Scopes(trashed).
		Order("deleted_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&links).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list trashed links of user %d: %w", userID, convertErrorType(err))
	}
	return links, total, nil
}

// ResetAccessCounts обнуляет счетчики переходов всех ссылок, включая удаленные.
// Возвращает количество записей, у которых счетчик был отличен от нуля.
func (r *LinkRepo) ResetAccessCounts(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Model(&models.Link{}).
		Where("access_count <> 0").
		UpdateColumn("access_count", 0)
	if res.Error != nil {
		return 0, fmt.Errorf("reset access counts: %w", convertErrorType(res.Error))
	}
	return res.RowsAffected, nil
}

// Totals возвращает количество не удаленных ссылок владельца и сумму их счетчиков.
func (r *LinkRepo) Totals(ctx context.Context, userID uint) (repositories.LinkTotals, error) {
	var totals repositories.LinkTotals
	err := r.db.WithContext(ctx).Model(&models.Link{}).
		Select("COUNT(*) AS links, COALESCE(SUM(access_count), 0) AS views").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return totals, fmt.Errorf("totals of user %d: %w", userID, convertErrorType(err))
	}
	return totals, nil
}

// CountCreatedSince считает не удаленные ссылки владельца, созданные начиная с since.
func (r *LinkRepo) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Link{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count links of user %d created since %s: %w", userID, since, convertErrorType(err))
	}
	return count, nil
}

// TopByAccessCount возвращает limit самых посещаемых не удаленных ссылок владельца.
func (r *LinkRepo) TopByAccessCount(ctx context.Context, userID uint, limit int) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("access_count DESC").Order("id ASC").
		Limit(limit).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("top links of user %d: %w", userID, convertErrorType(err))
	}
	return links, nil
}

func withScope(tx *gorm.DB, scope repositories.Scope) *gorm.DB {
	switch scope {
	case repositories.ScopeTrashed:
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	case repositories.ScopeAny:
		return tx.Unscoped()
	default:
		return tx
	}
}

// lockForUpdate добавляет SELECT ... FOR UPDATE там, где диалект его поддерживает.
// SQLite сериализует запись на уровне всей базы и такой конструкции не знает.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return tx
}
