package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db/migrations"
)

// migrationsTable таблица goose с версиями схемы.
const migrationsTable = "schema_migrations"

// NewPostgresConnection создает новый пул подключений к PostgreSQL.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dsn: строка подключения к базе данных (Data Source Name)
//
// Возвращает:
//   - *pgxpool.Pool: пул подключений к PostgreSQL
//   - error: ошибка создания подключения
func NewPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("failed to parse config: %w", confErr)
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", pingErr)
	}
	return pool, nil
}

// NewPostgres подключается к PostgreSQL, применяет миграции и открывает gorm поверх пула pgx.
func NewPostgres(ctx context.Context, dsn string, log *zap.Logger) (*Storage, error) {
	pool, err := NewPostgresConnection(ctx, dsn)
	if err != nil {
		return nil, err
	}

	// database/sql обертка разделяет соединения с пулом, закрывать ее отдельно от пула не нужно.
	sqlDB := stdlib.OpenDBFromPool(pool)

	if migrateErr := migrate(ctx, sqlDB, log); migrateErr != nil {
		pool.Close()
		return nil, migrateErr
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{TranslateError: true, Logger: newGormLogger(log)},
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open gorm over pgx pool: %w", err)
	}

	return &Storage{
		Type: StorageTypePostgres,
		SQL:  gormDB,
		closers: []func() error{
			func() error {
				pool.Close()
				return nil
			},
		},
	}, nil
}

func migrate(ctx context.Context, sqlDB *sql.DB, log *zap.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseLogger{log: log.Named("goose")})
	goose.SetTableName(migrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migrations dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// gooseLogger направляет вывод goose в zap.
type gooseLogger struct {
	log *zap.Logger
}

func (g *gooseLogger) Printf(format string, args ...any) {
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Fatalf не завершает процесс: goose вернет ошибку, которая будет обработана выше.
func (g *gooseLogger) Fatalf(format string, args ...any) {
	g.log.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
