package list_projects

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
)

type PortfolioService interface {
	ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ProjectListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
