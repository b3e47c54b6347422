package featured_products

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
	items []models.ProductResponse
	err   error
}

func (f fakeShop) FeaturedProducts(_ context.Context) ([]models.ProductResponse, error) {
	return f.items, f.err
}

func serve(svc fakeShop) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/shop/products/featured", nil))
	return w
}

func TestHandler_ListsFeatured(t *testing.T) {
	w := serve(fakeShop{items: []models.ProductResponse{
		{ID: 9, Name: "Film Presets", Slug: "film-presets", Price: "49.00", CurrentPrice: "49.00", IsDigital: true, Featured: true, Features: []string{"12 presets"}},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id":9,"name":"Film Presets","slug":"film-presets","category":null,"category_name":null,
		"price":"49.00","sale_price":null,"current_price":"49.00","is_on_sale":false,
		"short_description":"","image":"","is_digital":true,"featured":true,"features":["12 presets"]
	}]`, w.Body.String())
}

func TestHandler_Empty(t *testing.T) {
	w := serve(fakeShop{items: []models.ProductResponse{}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ServiceError(t *testing.T) {
	w := serve(fakeShop{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
