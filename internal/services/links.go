package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// Параметры пагинации.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
	TrashPerPage   = 15
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// CreateLinkInput данные для создания ссылки. Пустой Slug означает автоматическую генерацию.
type CreateLinkInput struct {
	Slug  *string
	Title *string
	URL   string
}

// UpdateLinkInput частичное обновление ссылки. nil поля не изменяются.
// Пустой Title или ClearTitle сбрасывают заголовок в NULL.
type UpdateLinkInput struct {
	URL        *string
	Slug       *string
	Title      *string
	ClearTitle bool
}

// ListParams параметры списка ссылок.
type ListParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// LinkPage страница списка ссылок.
type LinkPage struct {
	Items    []models.Link
	Total    int64
	Page     int
	PerPage  int
	LastPage int
}

// LinkService управление ссылками владельца.
type LinkService struct {
	links LinkRepository
	slugs *SlugAllocator
	log   *zap.Logger
}

func NewLinkService(links LinkRepository, slugs *SlugAllocator, log *zap.Logger) *LinkService {
	return &LinkService{links: links, slugs: slugs, log: log}
}

// Create создает ссылку пользователя.
//
// Пользовательский slug проверяется аллокатором, а конфликт на вставке превращается в ошибку
// валидации с правилом RuleUnique. Без slug подбирается случайный: при конфликте на вставке
// (параллельная аллокация) попытка повторяется с новым кандидатом.
//
// Параметры:
//   - ctx: контекст выполнения
//   - userID: владелец ссылки
//   - in: данные ссылки
//
// Возвращает:
//   - *models.Link: созданная ссылка
//   - error: *ValidationError, ErrAllocationExhausted или ErrUnknown
func (s *LinkService) Create(ctx context.Context, userID uint, in CreateLinkInput) (*models.Link, error) {
	targetURL, err := validateURL(in.URL)
	if err != nil {
		return nil, err
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	link := &models.Link{UserID: userID, OriginalURL: targetURL, Title: title}

	if in.Slug != nil && *in.Slug != "" {
		if vErr := s.slugs.Validate(ctx, *in.Slug, 0); vErr != nil {
			return nil, vErr
		}
		link.Slug = *in.Slug
		if createErr := s.links.Create(ctx, link); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				return nil, newValidationError("slug", RuleUnique, "slug has already been taken")
			}
			return nil, fmt.Errorf("%w: create link: %w", ErrUnknown, createErr)
		}
		return link, nil
	}

	for range s.slugs.MaxAttempts() {
		slug, genErr := s.slugs.Generate(ctx, 0)
		if genErr != nil {
			if errors.Is(genErr, ErrAllocationExhausted) {
				s.log.Error("slug allocation exhausted", zap.Uint("user_id", userID), zap.Error(genErr))
			}
			return nil, genErr
		}

		link.ID = 0
		link.Slug = slug
		createErr := s.links.Create(ctx, link)
		if createErr == nil {
			return link, nil
		}
		if !errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: create link: %w", ErrUnknown, createErr)
		}
		s.log.Debug("slug collision on insert, retrying", zap.String("slug", slug))
	}

	s.log.Error("slug allocation exhausted on insert", zap.Uint("user_id", userID))
	return nil, fmt.Errorf("%w: insert retries exceeded", ErrAllocationExhausted)
}

// Get возвращает не удаленную ссылку владельца.
func (s *LinkService) Get(ctx context.Context, userID, id uint) (*models.Link, error) {
	link, err := s.links.GetByUser(ctx, userID, id, repositories.ScopeActive)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return link, nil
}

// Update частично обновляет не удаленную ссылку владельца.
func (s *LinkService) Update(ctx context.Context, userID, id uint, in UpdateLinkInput) (*models.Link, error) {
	if _, err := s.links.GetByUser(ctx, userID, id, repositories.ScopeActive); err != nil {
		return nil, convertRepoError(err)
	}

	var upd repositories.LinkUpdate
	if in.URL != nil {
		targetURL, err := validateURL(*in.URL)
		if err != nil {
			return nil, err
		}
		upd.OriginalURL = &targetURL
	}
	if in.Slug != nil {
		if err := s.slugs.Validate(ctx, *in.Slug, id); err != nil {
			return nil, err
		}
		upd.Slug = in.Slug
	}
	switch {
	case in.ClearTitle:
		upd.ClearTitle = true
	case in.Title != nil:
		title, err := normalizeTitle(in.Title)
		if err != nil {
			return nil, err
		}
		upd.Title = title
		upd.ClearTitle = title == nil
	}

	link, err := s.links.Update(ctx, userID, id, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, newValidationError("slug", RuleUnique, "slug has already been taken")
		}
		return nil, convertRepoError(err)
	}
	return link, nil
}

// Delete мягко удаляет ссылку владельца.
func (s *LinkService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.links.SoftDelete(ctx, userID, id); err != nil {
		return convertRepoError(err)
	}
	return nil
}

// Restore возвращает ссылку из корзины. Если slug за это время занят другой ссылкой,
// возвращается ошибка валидации с правилом RuleUnique.
func (s *LinkService) Restore(ctx context.Context, userID, id uint) (*models.Link, error) {
	link, err := s.links.Restore(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, newValidationError("slug", RuleUnique, "slug is used by another link")
		}
		return nil, convertRepoError(err)
	}
	return link, nil
}

// ForceDelete окончательно удаляет ссылку в любом состоянии вместе с журналом переходов.
func (s *LinkService) ForceDelete(ctx context.Context, userID, id uint) error {
	if err := s.links.ForceDelete(ctx, userID, id); err != nil {
		return convertRepoError(err)
	}
	return nil
}

// List возвращает страницу ссылок владельца с поиском и сортировкой.
// Неизвестное поле сортировки заменяется на created_at, направление по умолчанию - desc.
func (s *LinkService) List(ctx context.Context, userID uint, p ListParams) (*LinkPage, error) {
	page := max(p.Page, 1)
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	sortBy := p.SortBy
	if !slices.Contains(repositories.SortableLinkFields, sortBy) {
		sortBy = repositories.SortByCreatedAt
	}

	items, total, err := s.links.List(ctx, repositories.LinkQuery{
		UserID: userID,
		Search: strings.TrimSpace(p.Search),
		SortBy: sortBy,
		Desc:   !strings.EqualFold(p.SortOrder, "asc"),
		Limit:  perPage,
		Offset: pageOffset(page, perPage),
	})
	if err != nil {
		return nil, convertRepoError(err)
	}
	return newLinkPage(items, total, page, perPage), nil
}

// Trash возвращает страницу мягко удаленных ссылок владельца.
func (s *LinkService) Trash(ctx context.Context, userID uint, page int) (*LinkPage, error) {
	page = max(page, 1)
	items, total, err := s.links.ListTrashed(ctx, userID, TrashPerPage, pageOffset(page, TrashPerPage))
	if err != nil {
		return nil, convertRepoError(err)
	}
	return newLinkPage(items, total, page, TrashPerPage), nil
}

// pageOffset смещение страницы page. Для номеров страниц, при которых смещение не помещается в int,
// возвращается наибольшее кратное perPage смещение: такая страница заведомо пуста.
func pageOffset(page, perPage int) int {
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return (page - 1) * perPage
}

func newLinkPage(items []models.Link, total int64, page, perPage int) *LinkPage {
	lastPage := max(int((total+int64(perPage)-1)/int64(perPage)), 1)
	return &LinkPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}
}

// validateURL проверяет, является ли строка корректным http(s) URL, и возвращает его нормализованную форму.
func validateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", newValidationError("original_url", RuleRequired, "url is required")
	}
	if len(rawURL) > models.URLMaxLength {
		return "", newValidationError("original_url", RuleMax,
			fmt.Sprintf("url may not be greater than %d characters", models.URLMaxLength))
	}

	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", newValidationError("original_url", RuleURL, "invalid URL format")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", newValidationError("original_url", RuleURL, "URL must have http or https scheme")
	}
	if parsedURL.Host == "" {
		return "", newValidationError("original_url", RuleURL, "URL must have a host")
	}
	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return "", newValidationError("original_url", RuleURL, "invalid hostname")
	}
	return parsedURL.String(), nil
}

// normalizeTitle обрезает пробелы; пустой заголовок превращается в nil.
func normalizeTitle(title *string) (*string, error) {
	if title == nil {
		return nil, nil //nolint:nilnil
	}
	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return nil, nil //nolint:nilnil
	}
	if utf8.RuneCountInString(trimmed) > models.TitleMaxLength {
		return nil, newValidationError("title", RuleMax,
			fmt.Sprintf("title may not be greater than %d characters", models.TitleMaxLength))
	}
	return &trimmed, nil
}

// convertRepoError переводит ошибки репозитория в ошибки сервисного слоя.
func convertRepoError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrUnknown, err)
}
