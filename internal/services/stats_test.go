package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
	"github.com/fsdevblog/shortlinks/internal/services/mocks"
)

func TestStatsService_Summary(t *testing.T) {
	tests := []struct {
		name    string
		totals  repositories.LinkTotals
		wantCTR float64
	}{
		{name: "no views", totals: repositories.LinkTotals{Links: 3}, wantCTR: 0},
		{name: "with views", totals: repositories.LinkTotals{Links: 3, Views: 12}, wantCTR: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			links := mocks.NewMockLinkRepository(ctrl)
			links.EXPECT().Totals(gomock.Any(), uint(1)).Return(tt.totals, nil)

			summary, err := NewStatsService(links, mocks.NewMockAccessLogRepository(ctrl)).Summary(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.totals.Links, summary.TotalLinks)
			assert.Equal(t, tt.totals.Views, summary.TotalViews)
			assert.Equal(t, tt.totals.Views, summary.TotalClicks)
			assert.InDelta(t, tt.wantCTR, summary.AvgCTR, 0.001)
		})
	}
}

func TestStatsService_DetailedUsesMidnight(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkRepository(ctrl)
	logs := mocks.NewMockAccessLogRepository(ctrl)

	now := time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	links.EXPECT().Totals(gomock.Any(), uint(1)).Return(repositories.LinkTotals{Links: 2, Views: 5}, nil)
	links.EXPECT().CountCreatedSince(gomock.Any(), uint(1), midnight).Return(int64(1), nil)
	logs.EXPECT().CountSince(gomock.Any(), uint(1), midnight).Return(int64(4), nil)
	links.EXPECT().TopByAccessCount(gomock.Any(), uint(1), TopLinksLimit).Return(nil, nil)

	detailed, err := NewStatsService(links, logs).Detailed(context.Background(), 1, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, detailed.LinksToday)
	assert.EqualValues(t, 4, detailed.ViewsToday)
	assert.EqualValues(t, 5, detailed.TotalViews)
}

func TestStatsService_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkRepository(ctrl)
	links.EXPECT().Totals(gomock.Any(), uint(1)).Return(repositories.LinkTotals{}, errors.New("down"))

	_, err := NewStatsService(links, mocks.NewMockAccessLogRepository(ctrl)).Summary(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestStatsService_LinkAccesses(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: DefaultAccessesLimit},
		{name: "negative", limit: -3, wantLimit: DefaultAccessesLimit},
		{name: "custom", limit: 10, wantLimit: 10},
		{name: "capped", limit: 5000, wantLimit: MaxAccessesLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			links := mocks.NewMockLinkRepository(ctrl)
			logs := mocks.NewMockAccessLogRepository(ctrl)

			entries := []models.AccessLog{{ID: 2, LinkID: 9, IPAddress: "10.0.0.1"}}
			links.EXPECT().GetByUser(gomock.Any(), uint(1), uint(9), repositories.ScopeAny).Return(&models.Link{ID: 9}, nil)
			logs.EXPECT().ListByLink(gomock.Any(), uint(9), tt.wantLimit).Return(entries, nil)

			got, err := NewStatsService(links, logs).LinkAccesses(context.Background(), 1, 9, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestStatsService_LinkAccessesForeignLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mocks.NewMockLinkRepository(ctrl)
	logs := mocks.NewMockAccessLogRepository(ctrl)

	links.EXPECT().GetByUser(gomock.Any(), uint(2), uint(9), repositories.ScopeAny).Return(nil, repositories.ErrNotFound)

	_, err := NewStatsService(links, logs).LinkAccesses(context.Background(), 2, 9, 0)
	require.ErrorIs(t, err, ErrRecordNotFound)
}
