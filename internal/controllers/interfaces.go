package controllers

import (
	"context"
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/store.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// Redirector разрешает slug в адрес редиректа, учитывая переход.
type Redirector interface {
	Resolve(ctx context.Context, slug string, visit services.Visit) (string, error)
}

// LinkManager управление ссылками аутентифицированного пользователя.
type LinkManager interface {
	Create(ctx context.Context, userID uint, in services.CreateLinkInput) (*models.Link, error)
	Get(ctx context.Context, userID, id uint) (*models.Link, error)
	Update(ctx context.Context, userID, id uint, in services.UpdateLinkInput) (*models.Link, error)
	Delete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, userID uint, p services.ListParams) (*services.LinkPage, error)
	Trash(ctx context.Context, userID uint, page int) (*services.LinkPage, error)
	Restore(ctx context.Context, userID, id uint) (*models.Link, error)
	ForceDelete(ctx context.Context, userID, id uint) error
}

// StatsProvider статистика пользователя.
type StatsProvider interface {
	Summary(ctx context.Context, userID uint) (*services.Summary, error)
	Detailed(ctx context.Context, userID uint, now time.Time) (*services.DetailedStats, error)
	LinkAccesses(ctx context.Context, userID, linkID uint, limit int) ([]models.AccessLog, error)
}

// UserManager регистрация и аутентификация.
type UserManager interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
