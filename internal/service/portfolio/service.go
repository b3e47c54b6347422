package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/studio-service/internal/domain"
	portfolioRepo "github.com/m04kA/studio-service/internal/infra/storage/portfolio"
	"github.com/m04kA/studio-service/internal/service/portfolio/models"
	"github.com/m04kA/studio-service/pkg/ptr"
)

// Service портфолио и форма обратной связи
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса портфолио
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories возвращает категории проектов
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategories(categories), nil
}

// ListProjects возвращает страницу проектов
func (s *Service) ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ProjectListResponse, error) {
	page := domain.NewPage(req.Page, req.PageSize)
	filter := domain.ProjectsFilter{
		CategorySlug: req.CategorySlug,
		Featured:     req.Featured,
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	}

	count, err := s.repo.CountProjects(ctx, filter)
	if err != nil {
		s.logger.Error("ListProjects: failed to count projects: %v", err)
		return nil, fmt.Errorf("%w: ListProjects - count: %v", ErrInternal, err)
	}

	projects, err := s.repo.ListProjects(ctx, filter)
	if err != nil {
		s.logger.Error("ListProjects: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProjects - repository error: %v", ErrInternal, err)
	}

	return &models.ProjectListResponse{
		Count:   count,
		Results: models.FromDomainProjects(projects),
	}, nil
}

// FeaturedProjects возвращает избранные проекты (не больше FeaturedProjectsLimit)
func (s *Service) FeaturedProjects(ctx context.Context) ([]models.ProjectResponse, error) {
	projects, err := s.repo.ListProjects(ctx, domain.ProjectsFilter{
		Featured: ptr.Ptr(true),
		Limit:    domain.FeaturedProjectsLimit,
	})
	if err != nil {
		s.logger.Error("FeaturedProjects: repository error: %v", err)
		return nil, fmt.Errorf("%w: FeaturedProjects - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProjects(projects), nil
}

// GetProject возвращает карточку проекта
func (s *Service) GetProject(ctx context.Context, slug string) (*models.ProjectDetailResponse, error) {
	project, err := s.repo.GetProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, portfolioRepo.ErrProjectNotFound) {
			s.logger.Warn("GetProject: project slug=%s not found", slug)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("GetProject: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetProject - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProjectDetail(project), nil
}

// SubmitContact сохраняет сообщение с формы обратной связи
func (s *Service) SubmitContact(ctx context.Context, req *models.ContactRequest) error {
	submission, err := s.repo.CreateContactSubmission(ctx, req.ToDomainSubmission())
	if err != nil {
		s.logger.Error("SubmitContact: repository error: %v", err)
		return fmt.Errorf("%w: SubmitContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SubmitContact: saved submission id=%d from %s", submission.ID, submission.Email)
	return nil
}
