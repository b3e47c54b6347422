package get_project

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

type PortfolioService interface {
	GetProject(ctx context.Context, slug string) (*models.ProjectDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
