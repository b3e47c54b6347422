package subscription_status

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

type NewsletterService interface {
	Status(ctx context.Context, email string) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
