package shop

import (
	"context"

	"github.com/m04kA/studio-service/internal/domain"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	ListCategories(ctx context.Context) ([]*domain.ProductCategory, error)
	List(ctx context.Context, filter domain.ProductsFilter) ([]*domain.Product, error)
	Count(ctx context.Context, filter domain.ProductsFilter) (int, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
