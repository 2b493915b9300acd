package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AccessLogMode режим записи событий доступа к ссылкам.
type AccessLogMode string

// AccessLogModeSync событие записывается до ответа редиректом.
// AccessLogModeAsync событие записывается фоновыми воркерами после ответа.
const (
	AccessLogModeSync  AccessLogMode = "sync"
	AccessLogModeAsync AccessLogMode = "async"
)

// Значения по умолчанию.
const (
	DefaultServerAddress    = "localhost:8080"
	DefaultJWTTTL           = 24 * time.Hour
	DefaultResetSchedule    = "0 0 1 * *"
	DefaultSlugMaxAttempts  = 100
	DefaultAccessLogWorkers = 4
	DefaultAccessLogQueue   = 1024
	DefaultTLSCertFile      = "certs/cert.pem"
	DefaultTLSKeyFile       = "certs/key.pem"
)

// Config конфигурация приложения.
type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL (scheme://host)
	BaseURL string `env:"BASE_URL"`
	// Строка подключения к PostgreSQL
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу SQLite. Используется, если не задан DatabaseDSN
	SQLitePath string `env:"SQLITE_PATH"`
	// Секрет для подписи JWT токенов пользователей
	JWTSecret string `env:"JWT_SECRET"`
	// Cron выражение для ежемесячного сброса счетчиков
	ResetSchedule string `env:"RESET_SCHEDULE"`
	// Режим записи событий доступа: sync или async
	AccessLogMode AccessLogMode `env:"ACCESS_LOG_MODE"`
	// Время жизни JWT токена
	JWTTTL time.Duration `env:"JWT_TTL"`
	// Количество фоновых воркеров в async режиме
	AccessLogWorkers int `env:"ACCESS_LOG_WORKERS"`
	// Размер очереди событий в async режиме
	AccessLogQueue int `env:"ACCESS_LOG_QUEUE"`
	// Максимальное количество попыток подобрать свободный slug
	SlugMaxAttempts int `env:"SLUG_MAX_ATTEMPTS"`
	// Включить HTTPS. Если пары сертификат/ключ нет, будет выпущен самоподписанный сертификат
	EnableHTTPS bool `env:"ENABLE_HTTPS"`
	// Путь к PEM файлу сертификата
	TLSCertFile string `env:"TLS_CERT_FILE"`
	// Путь к PEM файлу приватного ключа
	TLSKeyFile string `env:"TLS_KEY_FILE"`
	// Разрешенные CORS источники для /api через запятую. "*" разрешает любой источник
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig загружает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами. Если в рабочей директории есть .env,
// его значения дополняют окружение, не перетирая уже заданные переменные.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(flag.CommandLine, os.Args[1:])
}

// MustLoadConfig аналогичен LoadConfig, но вызывает панику в случае ошибки.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

func loadConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if err := env.Parse(&envConfig); err != nil {
		return nil, fmt.Errorf("parse ENV config: %w", err)
	}

	if err := loadFlags(fs, args, &flagsConfig); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// loadFlags парсит флаги командной строки.
func loadFlags(fs *flag.FlagSet, args []string, flagsConfig *Config) error {
	fs.StringVar(&flagsConfig.ServerAddress, "a", DefaultServerAddress, "Адрес сервера")
	fs.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&flagsConfig.SQLitePath, "s", "", "Путь к файлу базы SQLite")
	fs.StringVar(&flagsConfig.JWTSecret, "j", "", "Секрет для подписи JWT токенов")
	fs.StringVar(&flagsConfig.ResetSchedule, "r", DefaultResetSchedule, "Расписание сброса счетчиков (cron)")
	fs.BoolVar(&flagsConfig.EnableHTTPS, "t", false, "Включить HTTPS")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запущенного сервера)"
	fs.Func("b", bDesc, func(rawURL string) error {
		baseURL, err := normalizeBaseURL(rawURL)
		if err != nil {
			return err
		}
		flagsConfig.BaseURL = baseURL
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// normalizeBaseURL отсекает Path и Query, если они заданы в базовом урле.
func normalizeBaseURL(rawURL string) (string, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}
	return (&url.URL{Scheme: parsedURL.Scheme, Host: parsedURL.Host}).String(), nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress:    defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress, DefaultServerAddress),
		BaseURL:          strings.TrimSuffix(defaultIfBlank(envConfig.BaseURL, flagsConfig.BaseURL, ""), "/"),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN, ""),
		SQLitePath:       defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath, ""),
		JWTSecret:        defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret, ""),
		ResetSchedule:    defaultIfBlank(envConfig.ResetSchedule, flagsConfig.ResetSchedule, DefaultResetSchedule),
		AccessLogMode:    defaultIfBlank(envConfig.AccessLogMode, flagsConfig.AccessLogMode, AccessLogModeSync),
		JWTTTL:           defaultIfBlank(envConfig.JWTTTL, flagsConfig.JWTTTL, DefaultJWTTTL),
		AccessLogWorkers: defaultIfBlank(envConfig.AccessLogWorkers, flagsConfig.AccessLogWorkers, DefaultAccessLogWorkers),
		AccessLogQueue:   defaultIfBlank(envConfig.AccessLogQueue, flagsConfig.AccessLogQueue, DefaultAccessLogQueue),
		SlugMaxAttempts:  defaultIfBlank(envConfig.SlugMaxAttempts, flagsConfig.SlugMaxAttempts, DefaultSlugMaxAttempts),
		EnableHTTPS:      envConfig.EnableHTTPS || flagsConfig.EnableHTTPS,
		TLSCertFile:      defaultIfBlank(envConfig.TLSCertFile, DefaultTLSCertFile),
		TLSKeyFile:       defaultIfBlank(envConfig.TLSKeyFile, DefaultTLSKeyFile),
		CORSOrigins:      envConfig.CORSOrigins,
	}
}

// defaultIfBlank возвращает первое не нулевое значение.
func defaultIfBlank[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret is required (JWT_SECRET or -j)")
	}
	if c.AccessLogMode != AccessLogModeSync && c.AccessLogMode != AccessLogModeAsync {
		return fmt.Errorf("unknown access log mode `%s`", c.AccessLogMode)
	}
	if c.BaseURL != "" {
		if _, err := normalizeBaseURL(c.BaseURL); err != nil {
			return err
		}
	}
	return nil
}
