package newsletter

import (
	"context"

	"github.com/m04kA/studio-service/internal/domain"
)

// SubscriberRepository интерфейс репозитория подписчиков
type SubscriberRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error)
	Reactivate(ctx context.Context, id int64, name string) (*domain.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
