package availability

import (
	"context"

	"github.com/m04kA/studio-service/internal/domain"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	List(ctx context.Context) ([]*domain.AvailabilityRule, error)
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
