package unsubscribe

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

type NewsletterService interface {
	Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
