package get_product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/internal/service/shop"
	"github.com/m04kA/studio-service/internal/service/shop/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeShop struct{}

func (fakeShop) GetProduct(_ context.Context, slug string) (*models.ProductDetailResponse, error) {
	if slug != "lut-pack" {
		return nil, shop.ErrProductNotFound
	}
	return &models.ProductDetailResponse{
		ProductResponse: models.ProductResponse{ID: 1, Slug: slug, Price: "30.00", CurrentPrice: "30.00", Features: []string{}},
		Images:          []models.ProductImageResponse{},
	}, nil
}

func TestHandler(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/products/{slug}", NewHandler(fakeShop{}, logger.NewNop()).Handle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/lut-pack", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"lut-pack"`)
	assert.Contains(t, w.Body.String(), `"current_price":"30.00"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}
