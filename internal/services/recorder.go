package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// SyncRecorder записывает переход до ответа клиенту.
type SyncRecorder struct {
	repo AccessLogRepository
}

func NewSyncRecorder(repo AccessLogRepository) *SyncRecorder {
	return &SyncRecorder{repo: repo}
}

func (s *SyncRecorder) Record(ctx context.Context, entry *models.AccessLog) error {
	if err := s.repo.RecordAccess(ctx, entry); err != nil {
		return fmt.Errorf("sync record: %w", err)
	}
	return nil
}

// AsyncRecorderOptions настройки асинхронной записи переходов.
type AsyncRecorderOptions struct {
	Workers      int           // Количество воркеров
	QueueSize    int           // Размер очереди
	MaxRetries   int           // Количество повторов при сбое записи
	RetryBackoff time.Duration // Пауза между повторами, растет линейно
	WriteTimeout time.Duration // Таймаут одной попытки записи
}

// AsyncRecorder складывает события в ограниченную очередь, которую разбирают воркеры.
// Если очередь заполнена или рекордер остановлен, событие записывается синхронно,
// поэтому события не теряются.
type AsyncRecorder struct {
	repo  AccessLogRepository
	log   *zap.Logger
	queue chan *models.AccessLog
	opts  AsyncRecorderOptions

	mu     sync.RWMutex
	closed bool
}

func NewAsyncRecorder(repo AccessLogRepository, log *zap.Logger, opts AsyncRecorderOptions) *AsyncRecorder {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize < 0 {
		opts.QueueSize = 0
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 100 * time.Millisecond //nolint:mnd
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 3 * time.Second //nolint:mnd
	}
	return &AsyncRecorder{
		repo:  repo,
		log:   log,
		queue: make(chan *models.AccessLog, opts.QueueSize),
		opts:  opts,
	}
}

// Record ставит событие в очередь и сразу возвращает управление.
func (a *AsyncRecorder) Record(ctx context.Context, entry *models.AccessLog) error {
	a.mu.RLock()
	if !a.closed {
		select {
		case a.queue <- entry:
			a.mu.RUnlock()
			return nil
		default:
		}
	}
	a.mu.RUnlock()

	a.log.Debug("access queue is unavailable, recording synchronously", zap.Uint("link_id", entry.LinkID))
	if err := a.repo.RecordAccess(ctx, entry); err != nil {
		return fmt.Errorf("async record fallback: %w", err)
	}
	return nil
}

// Run запускает воркеры и блокируется до отмены ctx. После отмены очередь закрывается,
// а воркеры дописывают оставшиеся в ней события.
func (a *AsyncRecorder) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for range a.opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range a.queue {
				a.persist(entry)
			}
		}()
	}

	<-ctx.Done()

	a.mu.Lock()
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	wg.Wait()
	a.log.Info("access recorder stopped")
	return nil
}

func (a *AsyncRecorder) persist(entry *models.AccessLog) {
	var err error
	for attempt := 1; attempt <= a.opts.MaxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), a.opts.WriteTimeout)
		err = a.repo.RecordAccess(ctx, entry)
		cancel()

		if err == nil {
			return
		}
		if errors.Is(err, repositories.ErrNotFound) {
			a.log.Warn("link disappeared before access was recorded", zap.Uint("link_id", entry.LinkID))
			return
		}
		if attempt < a.opts.MaxRetries {
			time.Sleep(time.Duration(attempt) * a.opts.RetryBackoff)
		}
	}
	a.log.Error("failed to record link access",
		zap.Uint("link_id", entry.LinkID),
		zap.Int("attempts", a.opts.MaxRetries),
		zap.Error(err),
	)
}
