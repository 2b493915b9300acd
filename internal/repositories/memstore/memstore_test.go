package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

type MemRepoSuite struct {
	suite.Suite
	store *db.MemoryStorage
	links *LinkRepo
	logs  *AccessLogRepo
	users *UserRepo
	owner *models.User
}

func (s *MemRepoSuite) SetupTest() {
	s.store = db.NewMemStorage()
	s.links = NewLinkRepo(s.store)
	s.logs = NewAccessLogRepo(s.store)
	s.users = NewUserRepo(s.store)

	s.owner = &models.User{Name: gofakeit.Name(), Email: gofakeit.Email(), PasswordHash: "hash"}
	s.Require().NoError(s.users.Create(context.Background(), s.owner))
}

func (s *MemRepoSuite) newLink(slug string) *models.Link {
	link := &models.Link{UserID: s.owner.ID, OriginalURL: "https://example.com/" + slug, Slug: slug}
	s.Require().NoError(s.links.Create(context.Background(), link))
	return link
}

func (s *MemRepoSuite) TestCreate_ConcurrentSameSlug() {
	ctx := context.Background()
	const workers = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.links.Create(ctx, &models.Link{UserID: s.owner.ID, OriginalURL: gofakeit.URL(), Slug: "race0001"})
		}()
	}
	wg.Wait()
	close(errs)

	var created, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			created++
		default:
			s.ErrorIs(err, repositories.ErrDuplicateKey)
			duplicates++
		}
	}
	s.Equal(1, created)
	s.Equal(workers-1, duplicates)
}

func (s *MemRepoSuite) TestRecordAccess_Concurrent() {
	ctx := context.Background()
	link := s.newLink("visit01")

	const visits = 50
	var wg sync.WaitGroup
	for range visits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: link.ID, IPAddress: gofakeit.IPv4Address()}))
		}()
	}
	wg.Wait()

	got, err := s.links.GetActiveBySlug(ctx, "visit01")
	s.Require().NoError(err)
	s.EqualValues(visits, got.AccessCount)

	entries, err := s.logs.ListByLink(ctx, link.ID, 0)
	s.Require().NoError(err)
	s.Len(entries, visits)

	count, err := s.logs.CountSince(ctx, s.owner.ID, time.Now().Add(-time.Minute))
	s.Require().NoError(err)
	s.EqualValues(visits, count)
}

func (s *MemRepoSuite) TestRecordAccess_TrashedLink() {
	ctx := context.Background()
	link := s.newLink("gone001")
	s.Require().NoError(s.links.SoftDelete(ctx, s.owner.ID, link.ID))

	err := s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: link.ID, IPAddress: "127.0.0.1"})
	s.ErrorIs(err, repositories.ErrNotFound)
	s.Equal(0, s.store.AccessLogs.Len())
}

func (s *MemRepoSuite) TestSoftDeleteRestore() {
	ctx := context.Background()
	link := s.newLink("back001")

	s.Require().NoError(s.links.SoftDelete(ctx, s.owner.ID, link.ID))
	s.ErrorIs(s.links.SoftDelete(ctx, s.owner.ID, link.ID), repositories.ErrNotFound)

	exists, err := s.links.SlugExists(ctx, "back001", 0)
	s.Require().NoError(err)
	s.True(exists, "trashed link keeps its slug")

	_, err = s.links.Restore(ctx, s.owner.ID+1, link.ID)
	s.ErrorIs(err, repositories.ErrNotFound)

	restored, err := s.links.Restore(ctx, s.owner.ID, link.ID)
	s.Require().NoError(err)
	s.False(restored.IsTrashed())

	_, err = s.links.Restore(ctx, s.owner.ID, link.ID)
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *MemRepoSuite) TestUpdateTitle() {
	ctx := context.Background()
	link := s.newLink("titl001")

	title := "Docs"
	updated, err := s.links.Update(ctx, s.owner.ID, link.ID, repositories.LinkUpdate{Title: &title})
	s.Require().NoError(err)
	s.Require().NotNil(updated.Title)
	s.Equal("Docs", *updated.Title)

	_, err = s.links.Update(ctx, s.owner.ID, link.ID, repositories.LinkUpdate{ClearTitle: true})
	s.Require().NoError(err)

	stored, err := s.links.GetByUser(ctx, s.owner.ID, link.ID, repositories.ScopeActive)
	s.Require().NoError(err)
	s.Nil(stored.Title)
}

func (s *MemRepoSuite) TestForceDelete() {
	ctx := context.Background()
	link := s.newLink("force01")
	other := s.newLink("force02")
	s.Require().NoError(s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: link.ID, IPAddress: "127.0.0.1"}))
	s.Require().NoError(s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: other.ID, IPAddress: "127.0.0.1"}))

	s.Require().NoError(s.links.ForceDelete(ctx, s.owner.ID, link.ID))
	s.Equal(1, s.store.AccessLogs.Len())

	exists, err := s.links.SlugExists(ctx, "force01", 0)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *MemRepoSuite) TestList() {
	ctx := context.Background()
	titles := []string{"Go blog", "Rust book", "golang news"}
	for i, slug := range []string{"cccccc", "aaaaaa", "bbbbbb"} {
		title := titles[i]
		link := &models.Link{UserID: s.owner.ID, OriginalURL: "https://example.com/" + slug, Slug: slug, Title: &title}
		s.Require().NoError(s.links.Create(ctx, link))
	}

	links, total, err := s.links.List(ctx, repositories.LinkQuery{
		UserID: s.owner.ID,
		SortBy: repositories.SortBySlug,
		Limit:  2,
	})
	s.Require().NoError(err)
	s.EqualValues(3, total)
	s.Require().Len(links, 2)
	s.Equal("aaaaaa", links[0].Slug)
	s.Equal("bbbbbb", links[1].Slug)

	links, total, err = s.links.List(ctx, repositories.LinkQuery{
		UserID: s.owner.ID,
		SortBy: repositories.SortBySlug,
		Limit:  2,
		Offset: 2,
	})
	s.Require().NoError(err)
	s.EqualValues(3, total)
	s.Require().Len(links, 1)

	links, total, err = s.links.List(ctx, repositories.LinkQuery{
		UserID: s.owner.ID,
		Search: "GO",
		SortBy: repositories.SortByTitle,
		Desc:   true,
		Limit:  15,
	})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(links, 2)
	s.Equal("bbbbbb", links[0].Slug)

	_, total, err = s.links.List(ctx, repositories.LinkQuery{UserID: s.owner.ID + 1, Limit: 15})
	s.Require().NoError(err)
	s.Zero(total)

	links, total, err = s.links.List(ctx, repositories.LinkQuery{UserID: s.owner.ID, Limit: 15, Offset: -15})
	s.Require().NoError(err)
	s.EqualValues(3, total)
	s.Empty(links)
}

func (s *MemRepoSuite) TestResetAccessCounts() {
	ctx := context.Background()
	active := s.newLink("reset01")
	trashed := s.newLink("reset02")
	s.Require().NoError(s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: active.ID, IPAddress: "127.0.0.1"}))
	s.Require().NoError(s.logs.RecordAccess(ctx, &models.AccessLog{LinkID: trashed.ID, IPAddress: "127.0.0.1"}))
	s.Require().NoError(s.links.SoftDelete(ctx, s.owner.ID, trashed.ID))

	affected, err := s.links.ResetAccessCounts(ctx)
	s.Require().NoError(err)
	s.EqualValues(2, affected)

	got, err := s.links.GetByUser(ctx, s.owner.ID, trashed.ID, repositories.ScopeTrashed)
	s.Require().NoError(err)
	s.Zero(got.AccessCount)

	affected, err = s.links.ResetAccessCounts(ctx)
	s.Require().NoError(err)
	s.Zero(affected)
	s.Equal(2, s.store.AccessLogs.Len())
}

func (s *MemRepoSuite) TestUsers() {
	ctx := context.Background()
	err := s.users.Create(ctx, &models.User{Name: "dup", Email: s.owner.Email, PasswordHash: "x"})
	s.ErrorIs(err, repositories.ErrDuplicateKey)

	got, err := s.users.GetByID(ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Equal(s.owner.Email, got.Email)

	_, err = s.users.GetByEmail(ctx, "nobody@example.com")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func TestMemRepoSuite(t *testing.T) {
	suite.Run(t, new(MemRepoSuite))
}
