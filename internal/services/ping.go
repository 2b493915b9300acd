package services

import (
	"context"
	"fmt"
)

// Pinger проверяет доступность хранилища. Реализуется db.Storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService проверка здоровья для GET /ping.
type PingService struct {
	conn Pinger
}

func NewPingService(conn Pinger) *PingService {
	return &PingService{conn: conn}
}

// CheckConnection возвращает ErrTransientStorage, если хранилище не отвечает.
func (s *PingService) CheckConnection(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	if err := s.conn.Ping(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrTransientStorage, err)
	}
	return nil
}
