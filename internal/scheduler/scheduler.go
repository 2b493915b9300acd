// Package scheduler запускает периодические задачи обслуживания по cron расписанию.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultJobTimeout ограничение времени выполнения одной задачи.
const DefaultJobTimeout = 5 * time.Minute

// CounterResetter обнуляет счетчики переходов всех ссылок.
type CounterResetter interface {
	Reset(ctx context.Context) (int64, error)
}

type Scheduler struct {
	c          *cron.Cron
	log        *zap.Logger
	resetter   CounterResetter
	schedule   string
	jobTimeout time.Duration
}

// New создает планировщик со стандартным 5-полевым синтаксисом cron в локальной зоне.
// Пересекающиеся запуски одной задачи пропускаются.
func New(resetter CounterResetter, schedule string, log *zap.Logger) *Scheduler {
	c := cron.New(
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	return &Scheduler{
		c:          c,
		log:        log,
		resetter:   resetter,
		schedule:   schedule,
		jobTimeout: DefaultJobTimeout,
	}
}

// Run регистрирует задачи, запускает планировщик и блокируется до отмены ctx.
// После отмены дожидается завершения уже запущенных задач.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.c.AddFunc(s.schedule, func() { s.resetCounters(ctx) }); err != nil {
		return fmt.Errorf("register counter reset with schedule `%s`: %w", s.schedule, err)
	}
	s.c.Start()
	s.log.Info("scheduler started", zap.String("reset_schedule", s.schedule))

	<-ctx.Done()
	<-s.c.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) resetCounters(ctx context.Context) {
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.jobTimeout)
	defer cancel()

	affected, err := s.resetter.Reset(jobCtx)
	if err != nil {
		s.log.Error("monthly counter reset failed", zap.Error(err))
		return
	}
	s.log.Info("monthly counter reset done", zap.Int64("links", affected))
}
