package services

import (
	"context"
	"math"
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

const (
	// TopLinksLimit количество ссылок в рейтинге самых посещаемых.
	TopLinksLimit = 5

	DefaultAccessesLimit = 50
	MaxAccessesLimit     = 100
)

// Summary сводная статистика владельца.
type Summary struct {
	TotalLinks  int64
	TotalViews  int64
	TotalClicks int64
	AvgCTR      float64
}

// DetailedStats подробная статистика владельца.
type DetailedStats struct {
	Summary
	TopLinks   []models.Link
	LinksToday int64
	ViewsToday int64
}

// StatsService статистика по не удаленным ссылкам владельца.
type StatsService struct {
	links LinkRepository
	logs  AccessLogRepository
}

func NewStatsService(links LinkRepository, logs AccessLogRepository) *StatsService {
	return &StatsService{links: links, logs: logs}
}

// Summary возвращает количество ссылок, сумму переходов и производный CTR.
// Переходом и кликом считается одно и то же событие, поэтому при наличии
// переходов CTR равен 100, иначе 0.
func (s *StatsService) Summary(ctx context.Context, userID uint) (*Summary, error) {
	totals, err := s.links.Totals(ctx, userID)
	if err != nil {
		return nil, convertRepoError(err)
	}

	summary := &Summary{
		TotalLinks:  totals.Links,
		TotalViews:  totals.Views,
		TotalClicks: totals.Views,
	}
	if summary.TotalViews > 0 {
		summary.AvgCTR = round2(float64(summary.TotalClicks) / float64(summary.TotalViews) * 100) //nolint:mnd
	}
	return summary, nil
}

// Detailed дополняет сводку данными за текущие сутки (начиная с полуночи по времени now)
// и рейтингом самых посещаемых ссылок.
func (s *StatsService) Detailed(ctx context.Context, userID uint, now time.Time) (*DetailedStats, error) {
	summary, err := s.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	midnight := StartOfDay(now)
	linksToday, err := s.links.CountCreatedSince(ctx, userID, midnight)
	if err != nil {
		return nil, convertRepoError(err)
	}
	viewsToday, err := s.logs.CountSince(ctx, userID, midnight)
	if err != nil {
		return nil, convertRepoError(err)
	}
	top, err := s.links.TopByAccessCount(ctx, userID, TopLinksLimit)
	if err != nil {
		return nil, convertRepoError(err)
	}

	return &DetailedStats{
		Summary:    *summary,
		LinksToday: linksToday,
		ViewsToday: viewsToday,
		TopLinks:   top,
	}, nil
}

// LinkAccesses возвращает последние переходы по ссылке владельца, в том числе находящейся в корзине.
// limit вне диапазона 1..MaxAccessesLimit заменяется значением по умолчанию или максимумом.
func (s *StatsService) LinkAccesses(ctx context.Context, userID, linkID uint, limit int) ([]models.AccessLog, error) {
	if _, err := s.links.GetByUser(ctx, userID, linkID, repositories.ScopeAny); err != nil {
		return nil, convertRepoError(err)
	}

	switch {
	case limit < 1:
		limit = DefaultAccessesLimit
	case limit > MaxAccessesLimit:
		limit = MaxAccessesLimit
	}

	entries, err := s.logs.ListByLink(ctx, linkID, limit)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return entries, nil
}

// StartOfDay возвращает полночь дня t в его часовом поясе.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}
