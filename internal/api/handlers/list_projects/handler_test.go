package list_projects

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/service/portfolio/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakePortfolio struct {
	lastReq *models.ListProjectsRequest
	err     error
}

func (f *fakePortfolio) ListProjects(_ context.Context, req *models.ListProjectsRequest) (*models.ProjectListResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProjectListResponse{Count: 0, Results: []models.ProjectResponse{}}, nil
}

func TestHandler_PassesFilters(t *testing.T) {
	svc := &fakePortfolio{}
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/?category=weddings&page=3&page_size=6", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "weddings", *svc.lastReq.CategorySlug)
	assert.Nil(t, svc.lastReq.Featured)
	assert.Equal(t, 3, svc.lastReq.Page)
	assert.Equal(t, 6, svc.lastReq.PageSize)
}

func TestHandler_BadPage(t *testing.T) {
	svc := &fakePortfolio{}
	w := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/?page=first", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq)
}

func TestHandler_ServiceError(t *testing.T) {
	w := httptest.NewRecorder()

	NewHandler(&fakePortfolio{err: errors.New("db down")}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
