package get_order

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/shop/models"
)

type ShopService interface {
	GetOrder(ctx context.Context, number string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
