package controllers

import (
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

// LinkResource представление ссылки в ответах API.
type LinkResource struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	Title       *string    `json:"title"`
	OriginalURL string     `json:"original_url"`
	Slug        string     `json:"slug"`
	ShortURL    string     `json:"short_url"`
	ID          uint       `json:"id"`
	AccessCount uint       `json:"access_count"`
}

// PageMeta метаданные страницы списка.
type PageMeta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
}

// LinkCollection страница ссылок.
type LinkCollection struct {
	Data []LinkResource `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// TopLinkResource элемент рейтинга самых посещаемых ссылок.
type TopLinkResource struct {
	Title       *string `json:"title"`
	Slug        string  `json:"slug"`
	ShortURL    string  `json:"short_url"`
	ID          uint    `json:"id"`
	AccessCount uint    `json:"access_count"`
}

// SummaryResource сводная статистика.
type SummaryResource struct {
	TotalLinks  int64   `json:"total_links"`
	TotalViews  int64   `json:"total_views"`
	TotalClicks int64   `json:"total_clicks"`
	AvgCTR      float64 `json:"avg_ctr"`
}

// DetailedStatsResource подробная статистика.
type DetailedStatsResource struct {
	SummaryResource
	TopLinks   []TopLinkResource `json:"top_links"`
	LinksToday int64             `json:"links_today"`
	ViewsToday int64             `json:"views_today"`
}

// UserResource представление пользователя без хеша пароля.
type UserResource struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ID        uint      `json:"id"`
}

// AccessLogResource запись журнала переходов.
type AccessLogResource struct {
	AccessedAt time.Time `json:"accessed_at"`
	UserAgent  *string   `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	ID         uint      `json:"id"`
}

func newLinkResource(link *models.Link, base string) LinkResource {
	res := LinkResource{
		ID:          link.ID,
		OriginalURL: link.OriginalURL,
		Slug:        link.Slug,
		ShortURL:    base + "/" + link.Slug,
		Title:       link.Title,
		AccessCount: link.AccessCount,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
	if link.DeletedAt.Valid {
		deletedAt := link.DeletedAt.Time
		res.DeletedAt = &deletedAt
	}
	return res
}

func newLinkCollection(page *services.LinkPage, base string) LinkCollection {
	data := make([]LinkResource, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, newLinkResource(&page.Items[i], base))
	}
	return LinkCollection{
		Data: data,
		Meta: PageMeta{
			Total:       page.Total,
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
			LastPage:    page.LastPage,
		},
	}
}

func newSummaryResource(s *services.Summary) SummaryResource {
	return SummaryResource{
		TotalLinks:  s.TotalLinks,
		TotalViews:  s.TotalViews,
		TotalClicks: s.TotalClicks,
		AvgCTR:      s.AvgCTR,
	}
}

func newDetailedStatsResource(d *services.DetailedStats, base string) DetailedStatsResource {
	top := make([]TopLinkResource, 0, len(d.TopLinks))
	for _, link := range d.TopLinks {
		top = append(top, TopLinkResource{
			ID:          link.ID,
			Title:       link.Title,
			Slug:        link.Slug,
			ShortURL:    base + "/" + link.Slug,
			AccessCount: link.AccessCount,
		})
	}
	return DetailedStatsResource{
		SummaryResource: newSummaryResource(&d.Summary),
		LinksToday:      d.LinksToday,
		ViewsToday:      d.ViewsToday,
		TopLinks:        top,
	}
}

func newUserResource(u *models.User) UserResource {
	return UserResource{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func newAccessLogCollection(entries []models.AccessLog) []AccessLogResource {
	out := make([]AccessLogResource, 0, len(entries))
	for _, e := range entries {
		out = append(out, AccessLogResource{
			ID:         e.ID,
			IPAddress:  e.IPAddress,
			UserAgent:  e.UserAgent,
			AccessedAt: e.AccessedAt,
		})
	}
	return out
}
