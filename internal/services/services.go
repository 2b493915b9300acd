package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/repositories/memstore"
	"github.com/fsdevblog/shortlinks/internal/repositories/sql"
)

// AccessMode режим учета переходов.
type AccessMode string

const (
	AccessModeSync  AccessMode = "sync"
	AccessModeAsync AccessMode = "async"
)

// FactoryOptions параметры сборки сервисов.
type FactoryOptions struct {
	Logger          *zap.Logger
	AccessMode      AccessMode
	JWTSecret       []byte
	JWTTTL          time.Duration
	SlugMaxAttempts int
	AsyncRecorder   AsyncRecorderOptions
}

// Services набор сервисов приложения.
type Services struct {
	Links        *LinkService
	Redirects    *RedirectAccessor
	Stats        *StatsService
	Users        *UserService
	CounterReset *CounterResetService
	Ping         *PingService
	// AsyncRecorder заполнен только в AccessModeAsync; его Run должен быть запущен вызывающей стороной.
	AsyncRecorder *AsyncRecorder
}

type repos struct {
	links LinkRepository
	logs  AccessLogRepository
	users UserRepository
}

// Factory собирает сервисы поверх открытого хранилища.
func Factory(storage *db.Storage, opts FactoryOptions) (*Services, error) {
	if storage == nil {
		return nil, errors.New("storage is nil")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var r repos
	switch storage.Type {
	case db.StorageTypePostgres, db.StorageTypeSQLite:
		if storage.SQL == nil {
			return nil, fmt.Errorf("storage %s has no sql connection", storage.Type)
		}
		r = repos{
			links: sql.NewLinkRepo(storage.SQL),
			logs:  sql.NewAccessLogRepo(storage.SQL),
			users: sql.NewUserRepo(storage.SQL),
		}
	case db.StorageTypeInMemory:
		if storage.Memory == nil {
			return nil, errors.New("in-memory storage is not initialized")
		}
		r = repos{
			links: memstore.NewLinkRepo(storage.Memory),
			logs:  memstore.NewAccessLogRepo(storage.Memory),
			users: memstore.NewUserRepo(storage.Memory),
		}
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storage.Type)
	}

	return build(r, storage, opts)
}

func build(r repos, pinger Pinger, opts FactoryOptions) (*Services, error) {
	log := opts.Logger
	svc := &Services{
		Stats:        NewStatsService(r.links, r.logs),
		Users:        NewUserService(r.users, opts.JWTSecret, opts.JWTTTL, log.Named("users")),
		CounterReset: NewCounterResetService(r.links, log.Named("counter_reset")),
		Ping:         NewPingService(pinger),
	}

	slugs := NewSlugAllocator(r.links, opts.SlugMaxAttempts)
	svc.Links = NewLinkService(r.links, slugs, log.Named("links"))

	var recorder AccessRecorder
	switch opts.AccessMode {
	case AccessModeSync, "":
		recorder = NewSyncRecorder(r.logs)
	case AccessModeAsync:
		svc.AsyncRecorder = NewAsyncRecorder(r.logs, log.Named("access_recorder"), opts.AsyncRecorder)
		recorder = svc.AsyncRecorder
	default:
		return nil, fmt.Errorf("unknown access mode: %s", opts.AccessMode)
	}
	svc.Redirects = NewRedirectAccessor(r.links, recorder, log.Named("redirects"))

	return svc, nil
}
