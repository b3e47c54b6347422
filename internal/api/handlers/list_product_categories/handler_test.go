package list_product_categories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/service/shop/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeShop struct {
	items []models.CategoryResponse
	err   error
}

func (f fakeShop) ListCategories(_ context.Context) ([]models.CategoryResponse, error) {
	return f.items, f.err
}

func serve(svc fakeShop) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/shop/categories", nil))
	return w
}

func TestHandler_ListsCategories(t *testing.T) {
	w := serve(fakeShop{items: []models.CategoryResponse{
		{ID: 1, Name: "Presets", Slug: "presets", Description: "Lightroom presets"},
		{ID: 2, Name: "Prints", Slug: "prints"},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Presets","slug":"presets","description":"Lightroom presets"},
		{"id":2,"name":"Prints","slug":"prints","description":""}
	]`, w.Body.String())
}

func TestHandler_Empty(t *testing.T) {
	w := serve(fakeShop{items: []models.CategoryResponse{}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ServiceError(t *testing.T) {
	w := serve(fakeShop{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
