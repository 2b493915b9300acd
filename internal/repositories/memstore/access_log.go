package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// AccessLogRepo журнал переходов в памяти.
type AccessLogRepo struct {
	s *db.MemoryStorage
}

func NewAccessLogRepo(store *db.MemoryStorage) *AccessLogRepo {
	return &AccessLogRepo{s: store}
}

// RecordAccess увеличивает счетчик переходов не удаленной ссылки и добавляет запись в журнал.
// Обе операции выполняются под TxMu, поэтому запись без инкремента (и наоборот) невозможна.
func (a *AccessLogRepo) RecordAccess(ctx context.Context, entry *models.AccessLog) error {
	a.s.TxMu.Lock()
	defer a.s.TxMu.Unlock()

	err := memory.Update(ctx, db.Key(entry.LinkID), a.s.Links, func(link *models.Link) error {
		if link.IsTrashed() {
			return repositories.ErrNotFound
		}
		link.AccessCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("record access to link %d: %w", entry.LinkID, convertErrorType(err))
	}

	if entry.AccessedAt.IsZero() {
		entry.AccessedAt = time.Now()
	}
	entry.ID = a.s.NextID(a.s.AccessLogs)
	if setErr := memory.Set(ctx, db.Key(entry.ID), entry, a.s.AccessLogs); setErr != nil {
		// откатываем инкремент, чтобы счетчик совпадал с журналом
		_ = memory.Update(context.WithoutCancel(ctx), db.Key(entry.LinkID), a.s.Links, func(link *models.Link) error {
			link.AccessCount--
			return nil
		})
		return fmt.Errorf("record access to link %d: %w", entry.LinkID, convertErrorType(setErr))
	}
	return nil
}

// CountSince считает переходы по не удаленным ссылкам пользователя начиная с since.
func (a *AccessLogRepo) CountSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	links, err := memory.FilterAll(ctx, a.s.Links, func(link models.Link) bool {
		return link.UserID == userID && !link.IsTrashed()
	})
	if err != nil {
		return 0, fmt.Errorf("count accesses of user %d: %w", userID, convertErrorType(err))
	}
	owned := make(map[uint]struct{}, len(links))
	for _, link := range links {
		owned[link.ID] = struct{}{}
	}

	entries, err := memory.FilterAll(ctx, a.s.AccessLogs, func(entry models.AccessLog) bool {
		_, ok := owned[entry.LinkID]
		return ok && !entry.AccessedAt.Before(since)
	})
	if err != nil {
		return 0, fmt.Errorf("count accesses of user %d: %w", userID, convertErrorType(err))
	}
	return int64(len(entries)), nil
}

// ListByLink возвращает журнал переходов ссылки, начиная с последних.
func (a *AccessLogRepo) ListByLink(ctx context.Context, linkID uint, limit int) ([]models.AccessLog, error) {
	entries, err := memory.FilterAll(ctx, a.s.AccessLogs, func(entry models.AccessLog) bool {
		return entry.LinkID == linkID
	})
	if err != nil {
		return nil, fmt.Errorf("list accesses of link %d: %w", linkID, convertErrorType(err))
	}
	// ключи упорядочены по возрастанию идентификатора
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
