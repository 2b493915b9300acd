package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/shortlinks/internal/config"
	"github.com/fsdevblog/shortlinks/internal/controllers"
	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/logs"
	"github.com/fsdevblog/shortlinks/internal/scheduler"
	"github.com/fsdevblog/shortlinks/internal/services"
	"github.com/fsdevblog/shortlinks/internal/tlscert"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	config    config.Config
	storage   *db.Storage
	services  *services.Services
	scheduler *scheduler.Scheduler
	server    *http.Server
	Logger    *zap.Logger
}

// New собирает приложение: логгер, хранилище, сервисы, роутер и планировщик.
func New(conf config.Config) (*App, error) {
	logger, err := logs.New()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	storage, err := db.NewConnectionFactory(ctx, db.FactoryConfig{
		Logger:       logger.Named("db"),
		StorageType:  storageType(&conf),
		PostgresDSN:  conf.DatabaseDSN,
		SQLiteDBPath: conf.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	svc, err := services.Factory(storage, services.FactoryOptions{
		Logger:          logger,
		AccessMode:      accessMode(conf.AccessLogMode),
		JWTSecret:       []byte(conf.JWTSecret),
		JWTTTL:          conf.JWTTTL,
		SlugMaxAttempts: conf.SlugMaxAttempts,
		AsyncRecorder: services.AsyncRecorderOptions{
			Workers:   conf.AccessLogWorkers,
			QueueSize: conf.AccessLogQueue,
		},
	})
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	router := controllers.SetupRouter(controllers.RouterParams{
		Redirector:  svc.Redirects,
		Links:       svc.Links,
		Stats:       svc.Stats,
		Users:       svc.Users,
		PingService: svc.Ping,
		Logger:      logger.Named("http"),
		BaseURL:     conf.BaseURL,
		JWTSecret:   []byte(conf.JWTSecret),
		CORSOrigins: conf.CORSOrigins,
	})

	return &App{
		config:    conf,
		storage:   storage,
		services:  svc,
		scheduler: scheduler.New(svc.CounterReset, conf.ResetSchedule, logger.Named("scheduler")),
		server: &http.Server{
			Addr:              conf.ServerAddress,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
		},
		Logger: logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер, планировщик и, в async режиме, воркеры учета переходов.
// Блокируется до SIGINT/SIGTERM или ошибки одного из компонентов.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := a.storage.Close(); err != nil {
			a.Logger.Error("close storage", zap.Error(err))
		}
		_ = a.Logger.Sync()
	}()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("http server started",
			zap.String("address", a.server.Addr),
			zap.Bool("https", a.config.EnableHTTPS),
		)
		if err := a.serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("shutdown command received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.scheduler.Run(gCtx) //nolint:wrapcheck
	})

	if a.services.AsyncRecorder != nil {
		// После закрытия очереди Record пишет синхронно, поэтому переходы во время Shutdown не теряются.
		g.Go(func() error {
			return a.services.AsyncRecorder.Run(gCtx) //nolint:wrapcheck
		})
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// serve запускает сервер по HTTP или, если включено, по HTTPS с подготовленной парой сертификат/ключ.
func (a *App) serve() error {
	if !a.config.EnableHTTPS {
		return a.server.ListenAndServe() //nolint:wrapcheck
	}
	if err := tlscert.Ensure(tlscert.Options{
		CertFile: a.config.TLSCertFile,
		KeyFile:  a.config.TLSKeyFile,
		Hosts:    tlsHosts(a.config.BaseURL),
	}); err != nil {
		return fmt.Errorf("prepare tls certificate: %w", err)
	}
	return a.server.ListenAndServeTLS(a.config.TLSCertFile, a.config.TLSKeyFile) //nolint:wrapcheck
}

// tlsHosts хосты самоподписанного сертификата: localhost и хост базового адреса.
func tlsHosts(baseURL string) []string {
	hosts := []string{"localhost", "127.0.0.1", "::1"}
	if u, err := url.Parse(baseURL); err == nil && u.Hostname() != "" && !slices.Contains(hosts, u.Hostname()) {
		hosts = append(hosts, u.Hostname())
	}
	return hosts
}

func storageType(conf *config.Config) db.StorageType {
	switch {
	case conf.DatabaseDSN != "":
		return db.StorageTypePostgres
	case conf.SQLitePath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}

func accessMode(mode config.AccessLogMode) services.AccessMode {
	if mode == config.AccessLogModeAsync {
		return services.AccessModeAsync
	}
	return services.AccessModeSync
}
