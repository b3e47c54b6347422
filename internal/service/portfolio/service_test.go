package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	portfolioRepo "github.com/m04kA/studio-service/internal/infra/storage/portfolio"
	"github.com/m04kA/studio-service/internal/service/portfolio/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeRepo struct {
	projects   []*domain.Project
	lastFilter domain.ProjectsFilter
	submitted  *domain.ContactSubmission
	err        error
}

func (f *fakeRepo) ListCategories(context.Context) ([]*domain.PortfolioCategory, error) {
	return []*domain.PortfolioCategory{{ID: 1, Name: "Weddings", Slug: "weddings"}}, f.err
}

func (f *fakeRepo) ListProjects(_ context.Context, filter domain.ProjectsFilter) ([]*domain.Project, error) {
	f.lastFilter = filter
	return f.projects, f.err
}

func (f *fakeRepo) CountProjects(context.Context, domain.ProjectsFilter) (int, error) {
	return len(f.projects), f.err
}

func (f *fakeRepo) GetProjectBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, portfolioRepo.ErrProjectNotFound
}

func (f *fakeRepo) CreateContactSubmission(_ context.Context, s *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = 1
	f.submitted = s
	return s, nil
}

func harborFilm() *domain.Project {
	return &domain.Project{
		ID:    1,
		Title: "Harbor",
		Slug:  "harbor",
		Year:  2024,
		Images: []domain.ProjectImage{
			{ID: 1, Image: "a.jpg"},
			{ID: 2, Image: "bts.jpg", IsBehindTheScenes: true},
		},
		Credits:   []domain.Credit{{Role: "Director", Name: "A. Smith"}},
		Equipment: []string{"RED Komodo"},
	}
}

func TestService_ListProjects(t *testing.T) {
	repo := &fakeRepo{projects: []*domain.Project{harborFilm()}}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListProjects(context.Background(), &models.ListProjectsRequest{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Harbor", resp.Results[0].Title)
	assert.Equal(t, uint64(domain.DefaultPageSize), repo.lastFilter.Limit)
	assert.Equal(t, uint64(0), repo.lastFilter.Offset)
}

func TestService_FeaturedProjects_Limited(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.FeaturedProjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(domain.FeaturedProjectsLimit), repo.lastFilter.Limit)
	require.NotNil(t, repo.lastFilter.Featured)
	assert.True(t, *repo.lastFilter.Featured)
}

func TestService_GetProject_SplitsBehindTheScenes(t *testing.T) {
	svc := NewService(&fakeRepo{projects: []*domain.Project{harborFilm()}}, logger.NewNop())

	detail, err := svc.GetProject(context.Background(), "harbor")

	require.NoError(t, err)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "a.jpg", detail.Images[0].Image)
	require.Len(t, detail.BehindTheScenes, 1)
	assert.Equal(t, "bts.jpg", detail.BehindTheScenes[0].Image)
	assert.Equal(t, []string{"RED Komodo"}, detail.Equipment)
	assert.Equal(t, "Director", detail.Credits[0].Role)
}

func TestService_GetProject_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.NewNop())

	_, err := svc.GetProject(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestService_SubmitContact(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())

	err := svc.SubmitContact(context.Background(), &models.ContactRequest{
		Name:    "  Jane Doe ",
		Email:   "jane@example.com",
		Message: "We need a wedding film",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.submitted)
	assert.Equal(t, "Jane Doe", repo.submitted.Name)
}

func TestService_SubmitContact_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, logger.NewNop())

	err := svc.SubmitContact(context.Background(), &models.ContactRequest{Name: "x", Email: "x@example.com", Message: "hi"})

	assert.ErrorIs(t, err, ErrInternal)
}
