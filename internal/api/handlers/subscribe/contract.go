package subscribe

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscribeResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
