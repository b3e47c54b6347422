package get_product

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/shop/models"
)

type ShopService interface {
	GetProduct(ctx context.Context, slug string) (*models.ProductDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
