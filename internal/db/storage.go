package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db/memory"
)

// StorageType тип хранилища.
type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

// FactoryConfig параметры подключения к хранилищу.
type FactoryConfig struct {
	Logger       *zap.Logger
	StorageType  StorageType
	PostgresDSN  string
	SQLiteDBPath string
}

// MemoryStorage набор коллекций in-memory хранилища.
//
// TxMu сериализует многошаговые операции над несколькими коллекциями
// (проверка уникальности и вставка, учет перехода, каскадное удаление).
type MemoryStorage struct {
	TxMu       sync.Mutex
	Links      *memory.MStorage
	AccessLogs *memory.MStorage
	Users      *memory.MStorage

	seqMu sync.Mutex
	seq   map[*memory.MStorage]uint
}

// NewMemStorage создает пустое in-memory хранилище.
func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		Links:      memory.NewMemStorage(),
		AccessLogs: memory.NewMemStorage(),
		Users:      memory.NewMemStorage(),
		seq:        make(map[*memory.MStorage]uint, 3), //nolint:mnd
	}
}

// NextID выдает следующий идентификатор для коллекции. Идентификаторы не переиспользуются.
func (m *MemoryStorage) NextID(collection *memory.MStorage) uint {
	m.seqMu.Lock()
	defer m.seqMu.Unlock()
	m.seq[collection]++
	return m.seq[collection]
}

// Key возвращает ключ записи в коллекции. Ключи дополнены нулями, чтобы
// лексикографический порядок совпадал с порядком идентификаторов.
func Key(id uint) string {
	return fmt.Sprintf("%020d", id)
}

// Storage открытое подключение к хранилищу. Для SQL хранилищ заполнено поле SQL,
// для in-memory - Memory.
type Storage struct {
	SQL     *gorm.DB
	Memory  *MemoryStorage
	Type    StorageType
	closers []func() error
}

// NewConnectionFactory открывает хранилище заданного типа и применяет к нему схему.
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (*Storage, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		return NewPostgres(ctx, config.PostgresDSN, log)
	case StorageTypeSQLite:
		if config.SQLiteDBPath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		return NewSQLite(config.SQLiteDBPath, log)
	case StorageTypeInMemory:
		return &Storage{Type: StorageTypeInMemory, Memory: NewMemStorage()}, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}

// Ping проверяет соединение с хранилищем.
func (s *Storage) Ping(ctx context.Context) error {
	if s.SQL == nil {
		return nil
	}
	sqlDB, err := s.SQL.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
		return fmt.Errorf("ping %s: %w", s.Type, pingErr)
	}
	return nil
}

// Close закрывает все открытые соединения в обратном порядке.
func (s *Storage) Close() error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, s.closers[i]())
	}
	return err
}
