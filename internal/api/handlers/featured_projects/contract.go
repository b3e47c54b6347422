package featured_projects

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

type PortfolioService interface {
	FeaturedProjects(ctx context.Context) ([]models.ProjectResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
