package create_order

import (
	createOrder "github.com/m04kA/studio-service/internal/usecase/create_order"
)

// OrderItemRequest позиция корзины в HTTP запросе
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"min=0"`
}

// CreateOrderRequest HTTP request model
// Обязательность покупателя и корзины проверяет use case
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"max=200"`
	CustomerEmail string             `json:"customer_email" validate:"omitempty,email"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
	CouponCode    string             `json:"coupon_code" validate:"max=50"`
	Notes         string             `json:"notes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest() *createOrder.Request {
	items := make([]createOrder.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createOrder.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &createOrder.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Items:         items,
		CouponCode:    r.CouponCode,
		Notes:         r.Notes,
	}
}
