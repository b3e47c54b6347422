package submit_contact

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

type PortfolioService interface {
	SubmitContact(ctx context.Context, req *models.ContactRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
