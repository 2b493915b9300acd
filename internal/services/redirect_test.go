package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
	"github.com/fsdevblog/shortlinks/internal/services/mocks"
)

func TestRedirectAccessor_Resolve(t *testing.T) {
	target := "https://example.com/target"
	link := &models.Link{ID: 3, Slug: "count01", OriginalURL: target}
	visit := Visit{IP: "10.0.0.1", UserAgent: "test-agent"}

	t.Run("records access and returns target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)

		links.EXPECT().GetActiveBySlug(gomock.Any(), "count01").Return(link, nil)
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *models.AccessLog) error {
				assert.Equal(t, link.ID, entry.LinkID)
				assert.Equal(t, visit.IP, entry.IPAddress)
				require.NotNil(t, entry.UserAgent)
				assert.Equal(t, visit.UserAgent, *entry.UserAgent)
				assert.False(t, entry.AccessedAt.IsZero())
				return nil
			},
		)

		got, err := NewRedirectAccessor(links, recorder, zap.NewNop()).Resolve(context.Background(), "count01", visit)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("malformed slug does not touch storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)
		accessor := NewRedirectAccessor(links, recorder, zap.NewNop())

		for _, slug := range []string{"abc", "abcdefghi", "abc-def", ""} {
			_, err := accessor.Resolve(context.Background(), slug, visit)
			assert.ErrorIs(t, err, ErrRecordNotFound, slug)
		}
	})

	t.Run("unknown or trashed slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)

		links.EXPECT().GetActiveBySlug(gomock.Any(), "invalid1").
			Return(nil, fmt.Errorf("wrap: %w", repositories.ErrNotFound))

		_, err := NewRedirectAccessor(links, recorder, zap.NewNop()).Resolve(context.Background(), "invalid1", visit)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("link removed before record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)

		links.EXPECT().GetActiveBySlug(gomock.Any(), "count01").Return(link, nil)
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(repositories.ErrNotFound)

		_, err := NewRedirectAccessor(links, recorder, zap.NewNop()).Resolve(context.Background(), "count01", visit)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("storage failure is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)

		links.EXPECT().GetActiveBySlug(gomock.Any(), "count01").Return(link, nil)
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := NewRedirectAccessor(links, recorder, zap.NewNop()).Resolve(context.Background(), "count01", visit)
		assert.ErrorIs(t, err, ErrTransientStorage)
	})

	t.Run("empty user agent is stored as null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mocks.NewMockLinkRepository(ctrl)
		recorder := mocks.NewMockAccessRecorder(ctrl)

		links.EXPECT().GetActiveBySlug(gomock.Any(), "count01").Return(link, nil)
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *models.AccessLog) error {
				assert.Nil(t, entry.UserAgent)
				return nil
			},
		)

		_, err := NewRedirectAccessor(links, recorder, zap.NewNop()).
			Resolve(context.Background(), "count01", Visit{IP: "10.0.0.1"})
		require.NoError(t, err)
	})
}
