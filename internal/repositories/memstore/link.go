package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// LinkRepo репозиторий ссылок в памяти.
type LinkRepo struct {
	s *db.MemoryStorage
}

// NewLinkRepo создает новый экземпляр репозитория ссылок.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *LinkRepo: инициализированный репозиторий
func NewLinkRepo(store *db.MemoryStorage) *LinkRepo {
	return &LinkRepo{s: store}
}

// Create сохраняет новую ссылку и проставляет ей идентификатор и временные метки.
// Занятый slug (в том числе удаленной ссылкой) возвращает repositories.ErrDuplicateKey.
func (l *LinkRepo) Create(ctx context.Context, link *models.Link) error {
	l.s.TxMu.Lock()
	defer l.s.TxMu.Unlock()

	taken, err := l.slugTaken(ctx, link.Slug, 0)
	if err != nil {
		return fmt.Errorf("create link: %w", convertErrorType(err))
	}
	if taken {
		return fmt.Errorf("create link with slug `%s`: %w", link.Slug, repositories.ErrDuplicateKey)
	}

	now := time.Now()
	link.ID = l.s.NextID(l.s.Links)
	link.CreatedAt = now
	link.UpdatedAt = now
	if setErr := memory.Set(ctx, db.Key(link.ID), link, l.s.Links); setErr != nil {
		return fmt.Errorf("create link: %w", convertErrorType(setErr))
	}
	return nil
}

// SlugExists проверяет, занят ли slug любой ссылкой, кроме excludeID.
func (l *LinkRepo) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	taken, err := l.slugTaken(ctx, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("check slug `%s` existence: %w", slug, convertErrorType(err))
	}
	return taken, nil
}

// GetActiveBySlug находит не удаленную ссылку по slug.
func (l *LinkRepo) GetActiveBySlug(ctx context.Context, slug string) (*models.Link, error) {
	found, err := memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool {
		return link.Slug == slug && !link.IsTrashed()
	})
	if err != nil {
		return nil, fmt.Errorf("get link by slug `%s`: %w", slug, convertErrorType(err))
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("get link by slug `%s`: %w", slug, repositories.ErrNotFound)
	}
	return &found[0], nil
}

// GetByUser находит ссылку владельца в заданной области видимости.
func (l *LinkRepo) GetByUser(ctx context.Context, userID, id uint, scope repositories.Scope) (*models.Link, error) {
	link, err := memory.Get[models.Link](ctx, db.Key(id), l.s.Links)
	if err != nil {
		return nil, fmt.Errorf("get link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	if link.UserID != userID || !inScope(link, scope) {
		return nil, fmt.Errorf("get link %d of user %d: %w", id, userID, repositories.ErrNotFound)
	}
	return link, nil
}

// Update изменяет поля не удаленной ссылки владельца.
func (l *LinkRepo) Update(ctx context.Context, userID, id uint, upd repositories.LinkUpdate) (*models.Link, error) {
	l.s.TxMu.Lock()
	defer l.s.TxMu.Unlock()

	if upd.Slug != nil {
		taken, err := l.slugTaken(ctx, *upd.Slug, id)
		if err != nil {
			return nil, fmt.Errorf("update link %d: %w", id, convertErrorType(err))
		}
		if taken {
			return nil, fmt.Errorf("update link %d: %w", id, repositories.ErrDuplicateKey)
		}
	}

	var updated models.Link
	err := memory.Update(ctx, db.Key(id), l.s.Links, func(link *models.Link) error {
		if link.UserID != userID || link.IsTrashed() {
			return repositories.ErrNotFound
		}
		if upd.OriginalURL != nil {
			link.OriginalURL = *upd.OriginalURL
		}
		if upd.Slug != nil {
			link.Slug = *upd.Slug
		}
		switch {
		case upd.ClearTitle:
			link.Title = nil
		case upd.Title != nil:
			title := *upd.Title
			link.Title = &title
		}
		link.UpdatedAt = time.Now()
		updated = *link
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update link %d of user %d: %w", id, userID, convertErrorType(err))
	}
	return &updated, nil
}

// SoftDelete помечает ссылку владельца как удаленную.
func (l *LinkRepo) SoftDelete(ctx context.Context, userID, id uint) error {
	err := memory.Update(ctx, db.Key(id), l.s.Links, func(link *models.Link) error {
		if link.UserID != userID || link.IsTrashed() {
			return repositories.ErrNotFound
		}
		link.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
		return nil
	})
	if err != nil {
		return fmt.Errorf("soft delete link %d: %w", id, convertErrorType(err))
	}
	return nil
}

// Restore снимает пометку удаления, если slug ссылки не занят другой записью.
func (l *LinkRepo) Restore(ctx context.Context, userID, id uint) (*models.Link, error) {
	l.s.TxMu.Lock()
	defer l.s.TxMu.Unlock()

	current, err := l.GetByUser(ctx, userID, id, repositories.ScopeTrashed)
	if err != nil {
		return nil, fmt.Errorf("restore link: %w", err)
	}
	taken, err := l.slugTaken(ctx, current.Slug, id)
	if err != nil {
		return nil, fmt.Errorf("restore link %d: %w", id, convertErrorType(err))
	}
	if taken {
		return nil, fmt.Errorf("restore link %d: %w", id, repositories.ErrDuplicateKey)
	}

	var restored models.Link
	err = memory.Update(ctx, db.Key(id), l.s.Links, func(link *models.Link) error {
		link.DeletedAt = gorm.DeletedAt{}
		restored = *link
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("restore link %d: %w", id, convertErrorType(err))
	}
	return &restored, nil
}

// ForceDelete окончательно удаляет ссылку владельца вместе с журналом переходов.
func (l *LinkRepo) ForceDelete(ctx context.Context, userID, id uint) error {
	l.s.TxMu.Lock()
	defer l.s.TxMu.Unlock()

	if _, err := l.GetByUser(ctx, userID, id, repositories.ScopeAny); err != nil {
		return fmt.Errorf("force delete: %w", err)
	}

	entries, err := memory.FilterAll(ctx, l.s.AccessLogs, func(entry models.AccessLog) bool {
		return entry.LinkID == id
	})
	if err != nil {
		return fmt.Errorf("force delete link %d: %w", id, convertErrorType(err))
	}
	for _, entry := range entries {
		if delErr := memory.Delete(ctx, db.Key(entry.ID), l.s.AccessLogs); delErr != nil {
			return fmt.Errorf("force delete access log %d: %w", entry.ID, convertErrorType(delErr))
		}
	}
	if delErr := memory.Delete(ctx, db.Key(id), l.s.Links); delErr != nil {
		return fmt.Errorf("force delete link %d: %w", id, convertErrorType(delErr))
	}
	return nil
}

// List возвращает страницу не удаленных ссылок владельца и общее количество подходящих записей.
func (l *LinkRepo) List(ctx context.Context, q repositories.LinkQuery) ([]models.Link, int64, error) {
	search := strings.ToLower(q.Search)
	links, err := memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool {
		if link.UserID != q.UserID || link.IsTrashed() {
			return false
		}
		if search == "" {
			return true
		}
		title := ""
		if link.Title != nil {
			title = *link.Title
		}
		return strings.Contains(strings.ToLower(title), search) ||
			strings.Contains(strings.ToLower(link.OriginalURL), search) ||
			strings.Contains(strings.ToLower(link.Slug), search)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list links of user %d: %w", q.UserID, convertErrorType(err))
	}

	slices.SortStableFunc(links, func(a, b models.Link) int {
		c := compareBy(q.SortBy, &a, &b)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if q.Desc {
			return -c
		}
		return c
	})
	return paginate(links, q.Limit, q.Offset), int64(len(links)), nil
}

// ListTrashed возвращает страницу мягко удаленных ссылок владельца, начиная с последних удаленных.
func (l *LinkRepo) ListTrashed(ctx context.Context, userID uint, limit, offset int) ([]models.Link, int64, error) {
	links, err := memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool {
		return link.UserID == userID && link.IsTrashed()
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list trashed links of user %d: %w", userID, convertErrorType(err))
	}
	slices.SortStableFunc(links, func(a, b models.Link) int {
		if c := b.DeletedAt.Time.Compare(a.DeletedAt.Time); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return paginate(links, limit, offset), int64(len(links)), nil
}

// ResetAccessCounts обнуляет счетчики всех ссылок, включая удаленные.
func (l *LinkRepo) ResetAccessCounts(ctx context.Context) (int64, error) {
	l.s.TxMu.Lock()
	defer l.s.TxMu.Unlock()

	links, err := memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool {
		return link.AccessCount != 0
	})
	if err != nil {
		return 0, fmt.Errorf("reset access counts: %w", convertErrorType(err))
	}
	for _, link := range links {
		updErr := memory.Update(ctx, db.Key(link.ID), l.s.Links, func(stored *models.Link) error {
			stored.AccessCount = 0
			return nil
		})
		if updErr != nil {
			return 0, fmt.Errorf("reset access count of link %d: %w", link.ID, convertErrorType(updErr))
		}
	}
	return int64(len(links)), nil
}

// Totals возвращает количество не удаленных ссылок владельца и сумму их счетчиков.
func (l *LinkRepo) Totals(ctx context.Context, userID uint) (repositories.LinkTotals, error) {
	var totals repositories.LinkTotals
	links, err := l.active(ctx, userID)
	if err != nil {
		return totals, fmt.Errorf("totals of user %d: %w", userID, convertErrorType(err))
	}
	for _, link := range links {
		totals.Links++
		totals.Views += int64(link.AccessCount)
	}
	return totals, nil
}

// CountCreatedSince считает не удаленные ссылки владельца, созданные начиная с since.
func (l *LinkRepo) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	links, err := l.active(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count links of user %d: %w", userID, convertErrorType(err))
	}
	var count int64
	for _, link := range links {
		if !link.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// TopByAccessCount возвращает limit самых посещаемых не удаленных ссылок владельца.
func (l *LinkRepo) TopByAccessCount(ctx context.Context, userID uint, limit int) ([]models.Link, error) {
	links, err := l.active(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("top links of user %d: %w", userID, convertErrorType(err))
	}
	slices.SortStableFunc(links, func(a, b models.Link) int {
		if c := cmp.Compare(b.AccessCount, a.AccessCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return paginate(links, limit, 0), nil
}

func (l *LinkRepo) active(ctx context.Context, userID uint) ([]models.Link, error) {
	return memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool { //nolint:wrapcheck
		return link.UserID == userID && !link.IsTrashed()
	})
}

// slugTaken должен вызываться под TxMu, если результат используется для последующей записи.
func (l *LinkRepo) slugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	found, err := memory.FilterAll(ctx, l.s.Links, func(link models.Link) bool {
		return link.Slug == slug && link.ID != excludeID
	})
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return len(found) > 0, nil
}

func inScope(link *models.Link, scope repositories.Scope) bool {
	switch scope {
	case repositories.ScopeTrashed:
		return link.IsTrashed()
	case repositories.ScopeAny:
		return true
	default:
		return !link.IsTrashed()
	}
}

func compareBy(field string, a, b *models.Link) int {
	switch field {
	case repositories.SortByTitle:
		return cmp.Compare(strings.ToLower(deref(a.Title)), strings.ToLower(deref(b.Title)))
	case repositories.SortBySlug:
		return cmp.Compare(a.Slug, b.Slug)
	case repositories.SortByAccessCount:
		return cmp.Compare(a.AccessCount, b.AccessCount)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func paginate(links []models.Link, limit, offset int) []models.Link {
	if offset < 0 || offset >= len(links) {
		return []models.Link{}
	}
	links = links[offset:]
	if limit > 0 && limit < len(links) {
		links = links[:limit]
	}
	return links
}
