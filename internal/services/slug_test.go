package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/services/mocks"
)

func TestSlugAllocator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSlugChecker(ctrl)
	repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), uint(0)).Return(false, nil).AnyTimes()

	allocator := NewSlugAllocator(repo, 10)
	ctx := context.Background()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		slug, err := allocator.Generate(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(slug), 6)
		assert.LessOrEqual(t, len(slug), 8)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, slug)
		seen[slug] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestSlugAllocator_GenerateLengthClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSlugChecker(ctrl)
	repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	allocator := NewSlugAllocator(repo, 10)

	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "too short", length: 2, want: 6},
		{name: "negative", length: -1, want: 6},
		{name: "exact", length: 7, want: 7},
		{name: "too long", length: 20, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug, err := allocator.Generate(context.Background(), tt.length)
			require.NoError(t, err)
			assert.Len(t, slug, tt.want)
		})
	}
}

func TestSlugAllocator_GenerateRetriesAndExhausts(t *testing.T) {
	t.Run("retries taken candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSlugChecker(ctrl)
		gomock.InOrder(
			repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), uint(0)).Return(true, nil).Times(2),
			repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), uint(0)).Return(false, nil),
		)

		slug, err := NewSlugAllocator(repo, 5).Generate(context.Background(), 6)
		require.NoError(t, err)
		assert.Len(t, slug, 6)
	})

	t.Run("exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSlugChecker(ctrl)
		repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), uint(0)).Return(true, nil).Times(3)

		_, err := NewSlugAllocator(repo, 3).Generate(context.Background(), 0)
		assert.ErrorIs(t, err, ErrAllocationExhausted)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockSlugChecker(ctrl)
		repo.EXPECT().SlugExists(gomock.Any(), gomock.Any(), uint(0)).Return(false, errors.New("db down"))

		_, err := NewSlugAllocator(repo, 3).Generate(context.Background(), 0)
		assert.ErrorIs(t, err, ErrUnknown)
	})
}

func TestSlugAllocator_IsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSlugChecker(ctrl)
	repo.EXPECT().SlugExists(gomock.Any(), "taken01", uint(0)).Return(true, nil).AnyTimes()
	repo.EXPECT().SlugExists(gomock.Any(), "free001", uint(0)).Return(false, nil).AnyTimes()

	allocator := NewSlugAllocator(repo, 10)

	tests := []struct {
		candidate string
		want      bool
	}{
		{candidate: "abc", want: false},
		{candidate: "abcdefghi", want: false},
		{candidate: "abc-def", want: false},
		{candidate: "abc_def", want: false},
		{candidate: "taken01", want: false},
		{candidate: "free001", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			ok, err := allocator.IsValid(context.Background(), tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSlugAllocator_ValidateRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSlugChecker(ctrl)
	repo.EXPECT().SlugExists(gomock.Any(), "taken01", uint(0)).Return(true, nil)
	repo.EXPECT().SlugExists(gomock.Any(), "taken01", uint(7)).Return(false, nil)

	allocator := NewSlugAllocator(repo, 10)
	ctx := context.Background()

	tests := []struct {
		name      string
		candidate string
		excludeID uint
		wantRule  string
	}{
		{name: "length", candidate: "abc", wantRule: RuleLength},
		{name: "charset", candidate: "abc-def", wantRule: RuleCharset},
		{name: "unique", candidate: "taken01", wantRule: RuleUnique},
		{name: "own slug", candidate: "taken01", excludeID: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := allocator.Validate(ctx, tt.candidate, tt.excludeID)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "slug", vErr.Field)
			assert.Equal(t, tt.wantRule, vErr.Rule)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
