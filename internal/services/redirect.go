package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// LinkFinder ищет не удаленную ссылку по slug.
type LinkFinder interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.Link, error)
}

// Visit данные запроса, вызвавшего переход.
type Visit struct {
	IP        string
	UserAgent string
}

// RedirectAccessor разрешает slug в целевой адрес и учитывает переход.
type RedirectAccessor struct {
	links    LinkFinder
	recorder AccessRecorder
	log      *zap.Logger
	now      func() time.Time
}

func NewRedirectAccessor(links LinkFinder, recorder AccessRecorder, log *zap.Logger) *RedirectAccessor {
	return &RedirectAccessor{
		links:    links,
		recorder: recorder,
		log:      log,
		now:      time.Now,
	}
}

// Resolve находит не удаленную ссылку по slug, фиксирует переход и возвращает целевой адрес.
//
// Возвращает:
//   - string: адрес для редиректа
//   - error: ErrRecordNotFound для неверного формата, неизвестного или удаленного slug
//     (без побочных эффектов); ErrTransientStorage при сбое хранилища
func (r *RedirectAccessor) Resolve(ctx context.Context, slug string, visit Visit) (string, error) {
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: malformed slug", ErrRecordNotFound)
	}

	link, err := r.links.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("%w: slug %s", ErrRecordNotFound, slug)
		}
		r.log.Error("lookup link by slug", zap.String("slug", slug), zap.Error(err))
		return "", fmt.Errorf("%w: lookup: %w", ErrTransientStorage, err)
	}

	entry := &models.AccessLog{
		LinkID:     link.ID,
		IPAddress:  visit.IP,
		AccessedAt: r.now(),
	}
	if visit.UserAgent != "" {
		ua := visit.UserAgent
		entry.UserAgent = &ua
	}

	if recErr := r.recorder.Record(ctx, entry); recErr != nil {
		// ссылку могли удалить между поиском и записью
		if errors.Is(recErr, repositories.ErrNotFound) {
			return "", fmt.Errorf("%w: slug %s", ErrRecordNotFound, slug)
		}
		r.log.Error("record link access",
			zap.Uint("link_id", link.ID),
			zap.String("slug", slug),
			zap.Error(recErr),
		)
		return "", fmt.Errorf("%w: record access: %w", ErrTransientStorage, recErr)
	}

	return link.OriginalURL, nil
}
