package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
)

// LinkLifecycleSuite проверяет сервисы поверх in-memory хранилища.
type LinkLifecycleSuite struct {
	suite.Suite
	storage *db.Storage
	svc     *Services
	owner   *models.User
	visit   Visit
}

func (s *LinkLifecycleSuite) SetupTest() {
	storage, err := db.NewConnectionFactory(context.Background(), db.FactoryConfig{StorageType: db.StorageTypeInMemory})
	s.Require().NoError(err)
	s.storage = storage

	s.svc, err = Factory(storage, FactoryOptions{
		Logger:     zap.NewNop(),
		AccessMode: AccessModeSync,
		JWTSecret:  []byte("secret"),
		JWTTTL:     time.Hour,
	})
	s.Require().NoError(err)

	s.owner, err = s.svc.Users.Register(context.Background(), RegisterInput{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "password123",
	})
	s.Require().NoError(err)
	s.visit = Visit{IP: "127.0.0.1", UserAgent: "suite"}
}

func (s *LinkLifecycleSuite) create(slug string) *models.Link {
	link, err := s.svc.Links.Create(context.Background(), s.owner.ID, CreateLinkInput{
		URL:  "https://example.com/" + slug,
		Slug: &slug,
	})
	s.Require().NoError(err)
	return link
}

func (s *LinkLifecycleSuite) TestResolveCountsExactlyOnce() {
	ctx := context.Background()
	link := s.create("count01")
	s.Zero(link.AccessCount)

	target, err := s.svc.Redirects.Resolve(ctx, "count01", s.visit)
	s.Require().NoError(err)
	s.Equal(link.OriginalURL, target)

	got, err := s.svc.Links.Get(ctx, s.owner.ID, link.ID)
	s.Require().NoError(err)
	s.EqualValues(1, got.AccessCount)
	s.Equal(1, s.storage.Memory.AccessLogs.Len())
}

func (s *LinkLifecycleSuite) TestResolveUnknownAndTrashedHaveNoSideEffects() {
	ctx := context.Background()
	link := s.create("hidden1")
	s.Require().NoError(s.svc.Links.Delete(ctx, s.owner.ID, link.ID))

	for _, slug := range []string{"invalid1", "hidden1"} {
		_, err := s.svc.Redirects.Resolve(ctx, slug, s.visit)
		s.ErrorIs(err, ErrRecordNotFound, slug)
	}
	s.Equal(0, s.storage.Memory.AccessLogs.Len())

	trashed, err := s.svc.Links.Trash(ctx, s.owner.ID, 1)
	s.Require().NoError(err)
	s.Require().Len(trashed.Items, 1)
	s.Zero(trashed.Items[0].AccessCount)
}

func (s *LinkLifecycleSuite) TestTakenSlugEvenWhenTrashed() {
	ctx := context.Background()
	link := s.create("taken01")
	s.Require().NoError(s.svc.Links.Delete(ctx, s.owner.ID, link.ID))
	before := s.storage.Memory.Links.Len()

	slug := "taken01"
	_, err := s.svc.Links.Create(ctx, s.owner.ID, CreateLinkInput{URL: "https://example.com", Slug: &slug})
	var vErr *ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Equal(RuleUnique, vErr.Rule)
	s.Equal(before, s.storage.Memory.Links.Len())
}

func (s *LinkLifecycleSuite) TestRestoreAndForceDelete() {
	ctx := context.Background()
	link := s.create("cycle01")
	_, err := s.svc.Redirects.Resolve(ctx, "cycle01", s.visit)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Links.Delete(ctx, s.owner.ID, link.ID))
	restored, err := s.svc.Links.Restore(ctx, s.owner.ID, link.ID)
	s.Require().NoError(err)
	s.False(restored.IsTrashed())

	_, err = s.svc.Redirects.Resolve(ctx, "cycle01", s.visit)
	s.Require().NoError(err)
	s.Equal(2, s.storage.Memory.AccessLogs.Len())

	s.Require().NoError(s.svc.Links.ForceDelete(ctx, s.owner.ID, link.ID))
	s.Equal(0, s.storage.Memory.AccessLogs.Len())

	_, err = s.svc.Links.Get(ctx, s.owner.ID, link.ID)
	s.ErrorIs(err, ErrRecordNotFound)

	again := s.create("cycle01")
	s.NotEqual(link.ID, again.ID)
}

func (s *LinkLifecycleSuite) TestListIsOwnerScopedAndCaseInsensitive() {
	ctx := context.Background()
	stranger, err := s.svc.Users.Register(ctx, RegisterInput{Name: "x", Email: gofakeit.Email(), Password: "password123"})
	s.Require().NoError(err)

	title := "Golang Weekly"
	_, err = s.svc.Links.Create(ctx, s.owner.ID, CreateLinkInput{URL: "https://example.com/a", Title: &title})
	s.Require().NoError(err)
	_, err = s.svc.Links.Create(ctx, s.owner.ID, CreateLinkInput{URL: "https://GOLANG.org/doc"})
	s.Require().NoError(err)
	_, err = s.svc.Links.Create(ctx, s.owner.ID, CreateLinkInput{URL: "https://example.com/rust"})
	s.Require().NoError(err)
	_, err = s.svc.Links.Create(ctx, stranger.ID, CreateLinkInput{URL: "https://golang.org/other"})
	s.Require().NoError(err)

	page, err := s.svc.Links.List(ctx, s.owner.ID, ListParams{Search: "golang"})
	s.Require().NoError(err)
	s.EqualValues(2, page.Total)
	for _, link := range page.Items {
		s.Equal(s.owner.ID, link.UserID)
	}

	_, err = s.svc.Links.Get(ctx, stranger.ID, page.Items[0].ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *LinkLifecycleSuite) TestPageBeyondIntRangeIsEmpty() {
	ctx := context.Background()
	s.create("page001")

	page, err := s.svc.Links.List(ctx, s.owner.ID, ListParams{Page: math.MaxInt/DefaultPerPage + 2})
	s.Require().NoError(err)
	s.Empty(page.Items)
	s.EqualValues(1, page.Total)
	s.Equal(1, page.LastPage)

	trash, err := s.svc.Links.Trash(ctx, s.owner.ID, math.MaxInt)
	s.Require().NoError(err)
	s.Empty(trash.Items)
}

func (s *LinkLifecycleSuite) TestStatsAndReset() {
	ctx := context.Background()
	first := s.create("stats01")
	second := s.create("stats02")
	for range 3 {
		_, err := s.svc.Redirects.Resolve(ctx, "stats01", s.visit)
		s.Require().NoError(err)
	}
	_, err := s.svc.Redirects.Resolve(ctx, "stats02", s.visit)
	s.Require().NoError(err)

	detailed, err := s.svc.Stats.Detailed(ctx, s.owner.ID, time.Now())
	s.Require().NoError(err)
	s.EqualValues(2, detailed.TotalLinks)
	s.EqualValues(4, detailed.TotalViews)
	s.EqualValues(4, detailed.TotalClicks)
	s.InDelta(100.0, detailed.AvgCTR, 0.001)
	s.EqualValues(2, detailed.LinksToday)
	s.EqualValues(4, detailed.ViewsToday)
	s.Require().Len(detailed.TopLinks, 2)
	s.Equal(first.ID, detailed.TopLinks[0].ID)
	s.Equal(second.ID, detailed.TopLinks[1].ID)

	s.Require().NoError(s.svc.Links.Delete(ctx, s.owner.ID, second.ID))
	affected, err := s.svc.CounterReset.Reset(ctx)
	s.Require().NoError(err)
	s.EqualValues(2, affected)

	affected, err = s.svc.CounterReset.Reset(ctx)
	s.Require().NoError(err)
	s.Zero(affected)

	summary, err := s.svc.Stats.Summary(ctx, s.owner.ID)
	s.Require().NoError(err)
	s.EqualValues(1, summary.TotalLinks)
	s.Zero(summary.TotalViews)
	s.Zero(summary.AvgCTR)

	trashed, err := s.svc.Links.Trash(ctx, s.owner.ID, 1)
	s.Require().NoError(err)
	s.Require().Len(trashed.Items, 1)
	s.Zero(trashed.Items[0].AccessCount)
}

func (s *LinkLifecycleSuite) TestLinkAccessesAreOwnerScoped() {
	ctx := context.Background()
	link := s.create("log0001")
	for range 3 {
		_, err := s.svc.Redirects.Resolve(ctx, "log0001", s.visit)
		s.Require().NoError(err)
	}

	entries, err := s.svc.Stats.LinkAccesses(ctx, s.owner.ID, link.ID, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("127.0.0.1", entries[0].IPAddress)

	s.Require().NoError(s.svc.Links.Delete(ctx, s.owner.ID, link.ID))
	entries, err = s.svc.Stats.LinkAccesses(ctx, s.owner.ID, link.ID, 0)
	s.Require().NoError(err)
	s.Len(entries, 3)

	stranger, err := s.svc.Users.Register(ctx, RegisterInput{Name: "x", Email: gofakeit.Email(), Password: "password123"})
	s.Require().NoError(err)
	_, err = s.svc.Stats.LinkAccesses(ctx, stranger.ID, link.ID, 0)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *LinkLifecycleSuite) TestLoginIssuesToken() {
	ctx := context.Background()
	token, user, err := s.svc.Users.Login(ctx, s.owner.Email, "password123")
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(s.owner.ID, user.ID)

	_, _, err = s.svc.Users.Login(ctx, s.owner.Email, "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = s.svc.Users.Login(ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.svc.Users.Register(ctx, RegisterInput{Name: "dup", Email: s.owner.Email, Password: "password123"})
	s.ErrorIs(err, ErrUserExists)
}

func (s *LinkLifecycleSuite) TestPing() {
	s.NoError(s.svc.Ping.CheckConnection(context.Background()))
}

func TestLinkLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LinkLifecycleSuite))
}

func TestFactory_UnknownAccessMode(t *testing.T) {
	_, err := Factory(&db.Storage{Type: db.StorageTypeInMemory, Memory: db.NewMemStorage()}, FactoryOptions{
		AccessMode: "sometimes",
	})
	if err == nil {
		t.Fatal("expected error for unknown access mode")
	}
}
