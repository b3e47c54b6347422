package catalog

import (
	"context"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]*domain.BookingService, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BookingService, error)
}

// Cache интерфейс кэша ответов
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
