package list_availability_rules

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context) ([]models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
