package create_order

import (
	"fmt"
	"strings"

	"github.com/m04kA/studio-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" || len(req.Items) == 0 {
		return fmt.Errorf("%w: customer details and cart items are required", ErrInvalidInput)
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: items[%d].product_id must be positive", ErrInvalidInput, i)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("%w: items[%d].quantity must be at least 1", ErrInvalidInput, i)
		}
	}

	return nil
}

// buildItems собирает позиции заказа по текущим ценам
// Неизвестные и неактивные товары пропускаются
func buildItems(items []Item, products map[int64]*domain.Product) []domain.OrderItem {
	result := make([]domain.OrderItem, 0, len(items))

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}

		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}

		result = append(result, domain.OrderItem{
			ProductID:   &product.ID,
			ProductName: product.Name,
			Price:       product.CurrentPrice(),
			Quantity:    quantity,
		})
	}

	return result
}

func productIDs(items []Item) []int64 {
	ids := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
