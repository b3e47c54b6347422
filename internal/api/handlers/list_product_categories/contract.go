package list_product_categories

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/shop/models"
)

type ShopService interface {
	ListCategories(ctx context.Context) ([]models.CategoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
