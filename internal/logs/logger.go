package logs

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

// LevelType определяет уровень логирования.
type LevelType string

// EncodingTypeConsole Форматирование для консоли.
// EncodingTypeJSON Форматирование в JSON.
const (
	EncodingTypeConsole EncodingType = "console"
	EncodingTypeJSON    EncodingType = "json"
)

// Уровни логирования.
const (
	LevelTypeDebug   LevelType = "debug"
	LevelTypeInfo    LevelType = "info"
	LevelTypeWarning LevelType = "warn"
	LevelTypeError   LevelType = "error"
	LevelTypeFatal   LevelType = "fatal"
)

// releaseModeEnv переменная окружения, переключающая логгер в продакшн режим.
const releaseModeEnv = "GIN_MODE"

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	InitialFields    map[string]any // Начальные поля для каждой записи
	Level            LevelType      // Уровень логирования
	Encoding         EncodingType   // Формат вывода
	OutputPaths      []string       // Пути вывода логов
	ErrorOutputPaths []string       // Пути вывода ошибок
}

// IsRelease сообщает, запущено ли приложение в продакшн режиме.
func IsRelease() bool {
	return os.Getenv(releaseModeEnv) == "release"
}

// New создает новый логгер с указанными настройками.
//
// Вне продакшн режима по умолчанию используется консольный вывод и уровень debug,
// в продакшн режиме - JSON и уровень info.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *zap.Logger: настроенный логгер
//   - error: ошибка создания логгера
func New(opts ...func(*LoggerOptions)) (*zap.Logger, error) {
	isProduction := IsRelease()

	var encoding = EncodingTypeConsole
	var level = LevelTypeDebug
	if isProduction {
		encoding = EncodingTypeJSON
		level = LevelTypeInfo
	}

	options := LoggerOptions{
		Level:            level,
		Encoding:         encoding,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, errLvl := zap.ParseAtomicLevel(string(options.Level))
	if errLvl != nil {
		return nil, fmt.Errorf("parse level: %w", errLvl)
	}

	conf := zap.Config{
		Level:             lvl,
		Development:       !isProduction,
		DisableStacktrace: false,
		Encoding:          string(options.Encoding),
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      options.OutputPaths,
		ErrorOutputPaths: options.ErrorOutputPaths,
		InitialFields:    options.InitialFields,
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// MustNew аналогичен New, но в случае ошибки вызывает panic.
func MustNew(opts ...func(*LoggerOptions)) *zap.Logger {
	log, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return log
}

// WithLevel опция, задающая уровень логирования.
func WithLevel(level LevelType) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.Level = level
	}
}
