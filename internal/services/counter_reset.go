package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CounterResetter обнуляет счетчики переходов.
type CounterResetter interface {
	ResetAccessCounts(ctx context.Context) (int64, error)
}

// CounterResetService периодический сброс счетчиков переходов.
type CounterResetService struct {
	repo CounterResetter
	log  *zap.Logger
}

func NewCounterResetService(repo CounterResetter, log *zap.Logger) *CounterResetService {
	return &CounterResetService{repo: repo, log: log}
}

// Reset обнуляет счетчики всех ссылок, включая удаленные. Повторный запуск ничего не меняет.
// Журнал переходов не затрагивается.
func (s *CounterResetService) Reset(ctx context.Context) (int64, error) {
	affected, err := s.repo.ResetAccessCounts(ctx)
	if err != nil {
		s.log.Error("reset access counters", zap.Error(err))
		return 0, fmt.Errorf("%w: reset counters: %w", ErrTransientStorage, err)
	}
	s.log.Info("access counters reset", zap.Int64("links", affected))
	return affected, nil
}
