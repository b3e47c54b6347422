package portfolio

import (
	"context"

	"github.com/m04kA/studio-service/internal/domain"
)

// Repository интерфейс репозитория портфолио
type Repository interface {
	ListCategories(ctx context.Context) ([]*domain.PortfolioCategory, error)
	ListProjects(ctx context.Context, filter domain.ProjectsFilter) ([]*domain.Project, error)
	CountProjects(ctx context.Context, filter domain.ProjectsFilter) (int, error)
	GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	CreateContactSubmission(ctx context.Context, s *domain.ContactSubmission) (*domain.ContactSubmission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
